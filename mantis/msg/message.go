package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/mantis/consts"
	"github.com/ratel-online/mantis/mantis/card"
	"github.com/ratel-online/mantis/mantis/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) AddedToTank(playerName string, c color.Color) string {
	return Sprintfln("%s is not in %s's tank, adding it...", c.Painted(), playerName)
}

func (m MessageWriter) CardBack(back [consts.BackColors]color.Color) string {
	return Sprintfln("The back colors are: %s", card.BackString(back))
}

func (m MessageWriter) CardFront(front color.Color) string {
	return Sprintfln("The front color is: %s", front.Painted())
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return Sprintfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) LeaderChanged(playerName string, score int) string {
	return Sprintfln("%s takes the lead with %d point(s)!", playerName, score)
}

func (m MessageWriter) MovedToScorePile(playerName string, c color.Color, amount int) string {
	return Sprintfln("%s is in %s's tank! Moving %d card(s) to the score pile...", c.Painted(), playerName, amount)
}

func (m MessageWriter) PlayerChose(playerName string, action consts.ActionID, targetName string) string {
	if action == consts.ActionSteal {
		return Sprintfln("%s tries to steal from %s!", playerName, targetName)
	}
	return Sprintfln("%s tries to score!", playerName)
}

func (m MessageWriter) PlayerDrewCard(playerName string) string {
	return Sprintfln("%s drew a card...", playerName)
}

func (m MessageWriter) RoundStarted(round int) string {
	return Sprintfln("Current Standings (Round %d):", round)
}

func (m MessageWriter) StealFailed(playerName string, targetName string, c color.Color) string {
	return Sprintfln("%s doesn't have %s in their tank. Steal failed :( moving to %s's tank...", targetName, c.Painted(), targetName)
}

func (m MessageWriter) StealSucceeded(playerName string, targetName string, c color.Color) string {
	return Sprintfln("%s has %s in their tank. Steal successful :) moving to %s's tank...", targetName, c.Painted(), playerName)
}

func (m MessageWriter) Greet(playerName string) string {
	return Sprintfln("Welcome, %s!", playerName)
}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s%s%s%s",
		color.Red.Paint("M"),
		color.Yellow.Paint("A"),
		color.Green.Paint("N"),
		color.Blue.Paint("T"),
		color.Purple.Paint("I"),
		color.Orange.Paint("S"),
	)
}

func (m MessageWriter) WinnerFound(playerName string, score int) string {
	return Sprintfln("Congratulations, %s, you win with %d point(s)!", playerName, score)
}

func (m MessageWriter) Rules(winningScore int) string {
	return Sprintlns([]string{
		"Each turn you draw a card showing three back colors.",
		"SCORE: a color already in your tank moves to your score pile, otherwise it enters your tank.",
		"STEAL: take an opponent's tank holding of the front color, or hand them one if they have none.",
		fmt.Sprintf("The first player to reach %d point(s) wins.", winningScore),
	})
}

func Sprintfln(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...) + "\n"
}

func Sprintlns(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}
