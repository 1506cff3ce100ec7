package event

type LeaderChangedPayload struct {
	PlayerName string
	Score      int
}

type LeaderChangedListener interface {
	OnLeaderChanged(LeaderChangedPayload)
}

type leaderChangedEmitter struct {
	listeners []LeaderChangedListener
}

func (e *leaderChangedEmitter) AddListener(listener LeaderChangedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *leaderChangedEmitter) Emit(payload LeaderChangedPayload) {
	for _, listener := range e.listeners {
		listener.OnLeaderChanged(payload)
	}
}
