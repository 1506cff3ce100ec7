package card

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/ratel-online/mantis/consts"
	"github.com/ratel-online/mantis/mantis/color"
)

// Card shows three distinct back colors and commits to one of them on its front.
type Card struct {
	back  [consts.BackColors]color.Color
	front color.Color
}

// Draw samples the back colors without replacement from set and picks the
// front uniformly among them. set always holds at least three colors.
func Draw(rng *rand.Rand, set color.Set) Card {
	pool := set.Colors()
	var back [consts.BackColors]color.Color
	for i := range back {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		back[i] = pool[i]
	}
	return Card{
		back:  back,
		front: back[rng.Intn(len(back))],
	}
}

func (c Card) Back() [consts.BackColors]color.Color {
	return c.back
}

func (c Card) Front() color.Color {
	return c.front
}

func BackString(back [consts.BackColors]color.Color) string {
	names := make([]string, 0, len(back))
	for _, c := range back {
		names = append(names, c.Painted())
	}
	return strings.Join(names, ", ")
}

func (c Card) String() string {
	return fmt.Sprintf("[%s] -> %s", BackString(c.back), c.front.Painted())
}
