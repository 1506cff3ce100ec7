package event

type RoundStartedPayload struct {
	Round int
}

type RoundStartedListener interface {
	OnRoundStarted(RoundStartedPayload)
}

type roundStartedEmitter struct {
	listeners []RoundStartedListener
}

func (e *roundStartedEmitter) AddListener(listener RoundStartedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *roundStartedEmitter) Emit(payload RoundStartedPayload) {
	for _, listener := range e.listeners {
		listener.OnRoundStarted(payload)
	}
}
