package game

import (
	"github.com/ratel-online/mantis/consts"
	"github.com/ratel-online/mantis/mantis/color"
)

type Decision struct {
	Action consts.ActionID
	Target string
}

func Score() Decision {
	return Decision{Action: consts.ActionScore}
}

func StealFrom(target string) Decision {
	return Decision{Action: consts.ActionSteal, Target: target}
}

// View is what a participant may see before committing: the back of the card,
// never its front.
type View struct {
	Round     int
	Back      [consts.BackColors]color.Color
	Self      Snapshot
	Opponents []Snapshot
}

func (v View) OpponentNames() []string {
	names := make([]string, 0, len(v.Opponents))
	for _, opponent := range v.Opponents {
		names = append(names, opponent.Name)
	}
	return names
}

type Policy interface {
	// Decide returns false while the decision has to come from outside.
	Decide(view View) (Decision, bool)
	// Offer hands the policy an externally supplied, already validated decision.
	// It returns false if the policy never takes one.
	Offer(decision Decision) bool
}

type Participant struct {
	Name   string
	Policy Policy
	// State optionally replaces the randomly seeded starting state.
	State *PlayerState
}
