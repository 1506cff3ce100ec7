package ui

import (
	"github.com/ratel-online/mantis/mantis/event"
	"github.com/ratel-online/mantis/mantis/game"
	"github.com/ratel-online/mantis/mantis/msg"
	"github.com/ratel-online/mantis/render"
)

// ConsoleListener narrates a game on the console. It is called while the game
// is being advanced, so it reads the engine directly.
type ConsoleListener struct {
	game *game.Game
}

func NewConsoleListener(g *game.Game) *ConsoleListener {
	l := &ConsoleListener{game: g}
	g.Events().AddListener(l)
	return l
}

func (l *ConsoleListener) OnCardDrawn(payload event.CardDrawnPayload) {
	Print(msg.Message.PlayerDrewCard(payload.PlayerName))
	Print(msg.Message.CardBack(payload.Back))
}

func (l *ConsoleListener) OnCardRevealed(payload event.CardRevealedPayload) {
	Print(msg.Message.PlayerChose(payload.PlayerName, payload.Action, payload.TargetName))
	Print(msg.Message.CardFront(payload.Front))
}

func (l *ConsoleListener) OnAddedToTank(payload event.AddedToTankPayload) {
	Print(msg.Message.AddedToTank(payload.PlayerName, payload.Color))
}

func (l *ConsoleListener) OnMovedToScorePile(payload event.MovedToScorePilePayload) {
	Print(msg.Message.MovedToScorePile(payload.PlayerName, payload.Color, payload.Amount))
}

func (l *ConsoleListener) OnStealSucceeded(payload event.StealSucceededPayload) {
	Print(msg.Message.StealSucceeded(payload.PlayerName, payload.TargetName, payload.Color))
}

func (l *ConsoleListener) OnStealFailed(payload event.StealFailedPayload) {
	Print(msg.Message.StealFailed(payload.PlayerName, payload.TargetName, payload.Color))
}

func (l *ConsoleListener) OnRoundStarted(payload event.RoundStartedPayload) {
	leader, _ := l.game.Leader()
	Print(msg.Message.RoundStarted(payload.Round))
	Print(render.Standings(l.game.Set(), l.game.Snapshots(), leader))
}

func (l *ConsoleListener) OnLeaderChanged(payload event.LeaderChangedPayload) {
	Print(msg.Message.LeaderChanged(payload.PlayerName, payload.Score))
}

func (l *ConsoleListener) OnGameOver(payload event.GameOverPayload) {
	Print(msg.Message.WinnerFound(payload.WinnerName, payload.WinningScore))
	Print(render.Standings(l.game.Set(), l.game.Snapshots(), payload.WinnerName))
}
