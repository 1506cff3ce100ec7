package event

// Emitters bundles the emitters of a single game so that concurrent games never
// share listeners.
type Emitters struct {
	CardDrawn        *cardDrawnEmitter
	CardRevealed     *cardRevealedEmitter
	AddedToTank      *addedToTankEmitter
	MovedToScorePile *movedToScorePileEmitter
	StealSucceeded   *stealSucceededEmitter
	StealFailed      *stealFailedEmitter
	RoundStarted     *roundStartedEmitter
	LeaderChanged    *leaderChangedEmitter
	GameOver         *gameOverEmitter
}

func NewEmitters() *Emitters {
	return &Emitters{
		CardDrawn:        &cardDrawnEmitter{},
		CardRevealed:     &cardRevealedEmitter{},
		AddedToTank:      &addedToTankEmitter{},
		MovedToScorePile: &movedToScorePileEmitter{},
		StealSucceeded:   &stealSucceededEmitter{},
		StealFailed:      &stealFailedEmitter{},
		RoundStarted:     &roundStartedEmitter{},
		LeaderChanged:    &leaderChangedEmitter{},
		GameOver:         &gameOverEmitter{},
	}
}

// AddListener subscribes listener to every event whose listener interface it
// implements.
func (e *Emitters) AddListener(listener interface{}) {
	if l, ok := listener.(CardDrawnListener); ok {
		e.CardDrawn.AddListener(l)
	}
	if l, ok := listener.(CardRevealedListener); ok {
		e.CardRevealed.AddListener(l)
	}
	if l, ok := listener.(AddedToTankListener); ok {
		e.AddedToTank.AddListener(l)
	}
	if l, ok := listener.(MovedToScorePileListener); ok {
		e.MovedToScorePile.AddListener(l)
	}
	if l, ok := listener.(StealSucceededListener); ok {
		e.StealSucceeded.AddListener(l)
	}
	if l, ok := listener.(StealFailedListener); ok {
		e.StealFailed.AddListener(l)
	}
	if l, ok := listener.(RoundStartedListener); ok {
		e.RoundStarted.AddListener(l)
	}
	if l, ok := listener.(LeaderChangedListener); ok {
		e.LeaderChanged.AddListener(l)
	}
	if l, ok := listener.(GameOverListener); ok {
		e.GameOver.AddListener(l)
	}
}
