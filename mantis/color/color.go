package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/ratel-online/mantis/consts"
)

type Color int

const (
	Yellow Color = iota
	Red
	Green
	Purple
	Blue
	Orange
	Pink

	// Count is the size of the closed color enumeration.
	Count = int(Pink) + 1
)

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

var palette = [Count]colorStruct{
	Yellow: {name: "Yellow", colorFunction: color.New(color.FgHiYellow).SprintfFunc()},
	Red:    {name: "Red", colorFunction: color.New(color.FgHiRed).SprintfFunc()},
	Green:  {name: "Green", colorFunction: color.New(color.FgHiGreen).SprintfFunc()},
	Purple: {name: "Purple", colorFunction: color.New(color.FgMagenta).SprintfFunc()},
	Blue:   {name: "Blue", colorFunction: color.New(color.FgHiBlue).SprintfFunc()},
	Orange: {name: "Orange", colorFunction: color.New(color.FgYellow).SprintfFunc()},
	Pink:   {name: "Pink", colorFunction: color.New(color.FgHiMagenta).SprintfFunc()},
}

var Stdout io.Writer = color.Output

func (c Color) Valid() bool {
	return c >= 0 && int(c) < Count
}

func (c Color) Name() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return palette[c].name
}

func (c Color) String() string {
	return c.Name()
}

func (c Color) Paint(text string) string {
	if !c.Valid() {
		return text
	}
	return palette[c].colorFunction("%s", text)
}

// Painted is the color name painted in its own color.
func (c Color) Painted() string {
	return c.Paint(c.Name())
}

func ByName(name string) (Color, error) {
	for i, entry := range palette {
		if strings.EqualFold(entry.name, strings.TrimSpace(name)) {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("invalid color '%s'", name)
}

// Set is the ordered universe of colors in play for one game.
type Set struct {
	colors []Color
}

func NewSet(colors ...Color) (Set, error) {
	if len(colors) < consts.MinColors {
		return Set{}, consts.ErrorsInvalidConfiguration.With("need at least %d colors, got %d", consts.MinColors, len(colors))
	}
	var seen [Count]bool
	for _, c := range colors {
		if !c.Valid() {
			return Set{}, consts.ErrorsInvalidConfiguration.With("unknown color %d", int(c))
		}
		if seen[c] {
			return Set{}, consts.ErrorsInvalidConfiguration.With("duplicate color %s", c)
		}
		seen[c] = true
	}
	set := Set{colors: make([]Color, len(colors))}
	copy(set.colors, colors)
	return set, nil
}

// FirstN builds a set from the first n colors of the enumeration.
func FirstN(n int) (Set, error) {
	if n > Count {
		return Set{}, consts.ErrorsInvalidConfiguration.With("at most %d colors are available, got %d", Count, n)
	}
	if n < 0 {
		n = 0
	}
	colors := make([]Color, 0, n)
	for i := 0; i < n; i++ {
		colors = append(colors, Color(i))
	}
	return NewSet(colors...)
}

func DefaultSet() Set {
	set, _ := FirstN(consts.DefaultColors)
	return set
}

func (s Set) Colors() []Color {
	colors := make([]Color, len(s.colors))
	copy(colors, s.colors)
	return colors
}

func (s Set) Len() int {
	return len(s.colors)
}

func (s Set) At(i int) Color {
	return s.colors[i]
}

func (s Set) Contains(c Color) bool {
	for _, member := range s.colors {
		if member == c {
			return true
		}
	}
	return false
}

func (s Set) String() string {
	names := make([]string, 0, len(s.colors))
	for _, c := range s.colors {
		names = append(names, c.Name())
	}
	return strings.Join(names, ", ")
}
