package event

import "github.com/ratel-online/mantis/mantis/color"

type AddedToTankPayload struct {
	PlayerName string
	Color      color.Color
}

type AddedToTankListener interface {
	OnAddedToTank(AddedToTankPayload)
}

type addedToTankEmitter struct {
	listeners []AddedToTankListener
}

func (e *addedToTankEmitter) AddListener(listener AddedToTankListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *addedToTankEmitter) Emit(payload AddedToTankPayload) {
	for _, listener := range e.listeners {
		listener.OnAddedToTank(payload)
	}
}
