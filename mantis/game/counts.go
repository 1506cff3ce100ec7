package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/mantis/mantis/color"
)

// Counts holds one nonnegative count per color of the closed enumeration.
type Counts [color.Count]int

func (c Counts) Get(target color.Color) int {
	return c[target]
}

func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Present lists the colors of set with a positive count, in set order.
func (c Counts) Present(set color.Set) []color.Color {
	present := make([]color.Color, 0)
	for _, member := range set.Colors() {
		if c[member] > 0 {
			present = append(present, member)
		}
	}
	return present
}

func (c Counts) Format(set color.Set) string {
	entries := make([]string, 0)
	for _, member := range c.Present(set) {
		entries = append(entries, fmt.Sprintf("%s: %d", member.Painted(), c[member]))
	}
	return "{" + strings.Join(entries, ", ") + "}"
}
