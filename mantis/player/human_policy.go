package player

import "github.com/ratel-online/mantis/mantis/game"

// humanPolicy forwards whatever the shell submitted for the current turn.
type humanPolicy struct {
	queued *game.Decision
}

func NewHumanPolicy() game.Policy {
	return &humanPolicy{}
}

func (p *humanPolicy) Decide(view game.View) (game.Decision, bool) {
	if p.queued == nil {
		return game.Decision{}, false
	}
	decision := *p.queued
	p.queued = nil
	return decision, true
}

func (p *humanPolicy) Offer(decision game.Decision) bool {
	p.queued = &decision
	return true
}
