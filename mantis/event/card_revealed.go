package event

import (
	"github.com/ratel-online/mantis/consts"
	"github.com/ratel-online/mantis/mantis/color"
)

type CardRevealedPayload struct {
	PlayerName string
	Front      color.Color
	Action     consts.ActionID
	TargetName string
}

type CardRevealedListener interface {
	OnCardRevealed(CardRevealedPayload)
}

type cardRevealedEmitter struct {
	listeners []CardRevealedListener
}

func (e *cardRevealedEmitter) AddListener(listener CardRevealedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *cardRevealedEmitter) Emit(payload CardRevealedPayload) {
	for _, listener := range e.listeners {
		listener.OnCardRevealed(payload)
	}
}
