package event

import "github.com/ratel-online/mantis/mantis/color"

type MovedToScorePilePayload struct {
	PlayerName string
	Color      color.Color
	Amount     int
}

type MovedToScorePileListener interface {
	OnMovedToScorePile(MovedToScorePilePayload)
}

type movedToScorePileEmitter struct {
	listeners []MovedToScorePileListener
}

func (e *movedToScorePileEmitter) AddListener(listener MovedToScorePileListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *movedToScorePileEmitter) Emit(payload MovedToScorePilePayload) {
	for _, listener := range e.listeners {
		listener.OnMovedToScorePile(payload)
	}
}
