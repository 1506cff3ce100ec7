package player

import (
	"math/rand"

	"github.com/ratel-online/mantis/consts"
	"github.com/ratel-online/mantis/mantis/color"
	"github.com/ratel-online/mantis/mantis/game"
)

type automatedPolicy struct {
	basicPolicy
	rng *rand.Rand
}

func NewAutomatedPolicy(rng *rand.Rand) game.Policy {
	return automatedPolicy{rng: rng}
}

// Decide compares how many of the card's back colors sit in its own tank with
// the best such overlap among opponents. Ties go to scoring; among equally good
// opponents the target is picked at random.
func (p automatedPolicy) Decide(view game.View) (game.Decision, bool) {
	own := Overlap(view.Back, view.Self.Tank)

	best := -1
	var candidates []string
	for _, opponent := range view.Opponents {
		n := Overlap(view.Back, opponent.Tank)
		switch {
		case n > best:
			best = n
			candidates = []string{opponent.Name}
		case n == best:
			candidates = append(candidates, opponent.Name)
		}
	}

	if len(candidates) == 0 || own >= best {
		return game.Score(), true
	}
	target := candidates[0]
	if len(candidates) > 1 {
		target = candidates[p.rng.Intn(len(candidates))]
	}
	return game.StealFrom(target), true
}

// Overlap counts the back colors that have a positive count in tank.
func Overlap(back [consts.BackColors]color.Color, tank game.Counts) int {
	overlap := 0
	for _, c := range back {
		if tank.Get(c) > 0 {
			overlap++
		}
	}
	return overlap
}
