package game

import (
	"math/rand"

	"github.com/ratel-online/mantis/consts"
	"github.com/ratel-online/mantis/mantis/color"
)

type ResultKind int

const (
	_ ResultKind = iota
	ResultAddedToTank
	ResultMovedToScorePile
	ResultStealSucceeded
	ResultStealFailed
)

// Result describes which branch of a score or steal transition fired.
type Result struct {
	Kind   ResultKind
	Color  color.Color
	Amount int
	Target string
}

type PlayerState struct {
	name      string
	tank      Counts
	scorePile Counts
}

// NewPlayerState seeds the tank with independent picks, with replacement, so a
// color may start with a count above one.
func NewPlayerState(name string, set color.Set, rng *rand.Rand) *PlayerState {
	var tank Counts
	for i := 0; i < consts.InitialTankDraws; i++ {
		tank[set.At(rng.Intn(set.Len()))]++
	}
	return &PlayerState{name: name, tank: tank}
}

func RestorePlayerState(name string, tank Counts, scorePile Counts) *PlayerState {
	return &PlayerState{name: name, tank: tank, scorePile: scorePile}
}

func (p *PlayerState) Name() string {
	return p.name
}

func (p *PlayerState) Tank() Counts {
	return p.tank
}

func (p *PlayerState) ScorePile() Counts {
	return p.scorePile
}

func (p *PlayerState) ScoreTotal() int {
	return p.scorePile.Total()
}

// Score puts a first sighting of c into the tank and banks the tank plus the
// drawn unit on a second sighting.
func (p *PlayerState) Score(c color.Color) Result {
	n := p.tank[c]
	if n == 0 {
		p.tank[c] = 1
		return Result{Kind: ResultAddedToTank, Color: c, Amount: 1}
	}
	p.scorePile[c] += n + 1
	p.tank[c] = 0
	return Result{Kind: ResultMovedToScorePile, Color: c, Amount: n + 1}
}

// Steal moves target's holding of c plus the drawn unit into p's tank. A miss
// seeds target's tank instead and leaves p untouched.
func (p *PlayerState) Steal(target *PlayerState, c color.Color) (Result, error) {
	if target == nil || target == p || target.name == p.name {
		return Result{}, consts.ErrorsInvalidDecision.With("%s cannot steal from itself", p.name)
	}
	n := target.tank[c]
	if n > 0 {
		p.tank[c] += n + 1
		target.tank[c] = 0
		return Result{Kind: ResultStealSucceeded, Color: c, Amount: n + 1, Target: target.name}, nil
	}
	target.tank[c] = 1
	return Result{Kind: ResultStealFailed, Color: c, Amount: 1, Target: target.name}, nil
}

type Snapshot struct {
	Name       string
	Tank       Counts
	ScorePile  Counts
	ScoreTotal int
}

func (p *PlayerState) Snapshot() Snapshot {
	return Snapshot{
		Name:       p.name,
		Tank:       p.tank,
		ScorePile:  p.scorePile,
		ScoreTotal: p.ScoreTotal(),
	}
}
