package event

import "github.com/ratel-online/mantis/mantis/color"

type StealFailedPayload struct {
	PlayerName string
	TargetName string
	Color      color.Color
}

type StealFailedListener interface {
	OnStealFailed(StealFailedPayload)
}

type stealFailedEmitter struct {
	listeners []StealFailedListener
}

func (e *stealFailedEmitter) AddListener(listener StealFailedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *stealFailedEmitter) Emit(payload StealFailedPayload) {
	for _, listener := range e.listeners {
		listener.OnStealFailed(payload)
	}
}
