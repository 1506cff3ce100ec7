package player

import "github.com/ratel-online/mantis/mantis/game"

type basicPolicy struct{}

func (basicPolicy) Offer(decision game.Decision) bool {
	return false
}
