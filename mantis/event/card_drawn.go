package event

import (
	"github.com/ratel-online/mantis/consts"
	"github.com/ratel-online/mantis/mantis/color"
)

type CardDrawnPayload struct {
	PlayerName string
	Round      int
	Back       [consts.BackColors]color.Color
}

type CardDrawnListener interface {
	OnCardDrawn(CardDrawnPayload)
}

type cardDrawnEmitter struct {
	listeners []CardDrawnListener
}

func (e *cardDrawnEmitter) AddListener(listener CardDrawnListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *cardDrawnEmitter) Emit(payload CardDrawnPayload) {
	for _, listener := range e.listeners {
		listener.OnCardDrawn(payload)
	}
}
