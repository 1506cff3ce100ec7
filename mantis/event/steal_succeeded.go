package event

import "github.com/ratel-online/mantis/mantis/color"

type StealSucceededPayload struct {
	PlayerName string
	TargetName string
	Color      color.Color
	Amount     int
}

type StealSucceededListener interface {
	OnStealSucceeded(StealSucceededPayload)
}

type stealSucceededEmitter struct {
	listeners []StealSucceededListener
}

func (e *stealSucceededEmitter) AddListener(listener StealSucceededListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *stealSucceededEmitter) Emit(payload StealSucceededPayload) {
	for _, listener := range e.listeners {
		listener.OnStealSucceeded(payload)
	}
}
