package game

// Cycler walks a fixed, insertion-ordered list of names round after round.
type Cycler struct {
	elements []string
	current  int
}

func NewCycler(elements []string) *Cycler {
	ordered := make([]string, len(elements))
	copy(ordered, elements)
	return &Cycler{
		elements: ordered,
		current:  len(ordered) - 1,
	}
}

func (c *Cycler) Next() string {
	c.current = (c.current + 1) % len(c.elements)
	return c.elements[c.current]
}

// Last reports whether the current element closes a full pass.
func (c *Cycler) Last() bool {
	return c.current == len(c.elements)-1
}
