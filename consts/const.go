package consts

import (
	"fmt"
	"time"
)

type StateID int

const (
	_ StateID = iota
	StateSetup
	StateRoundInProgress
	StateGameOver
)

type ActionID int

const (
	_ ActionID = iota
	ActionScore
	ActionSteal
)

const (
	// DefaultColors is the size of the default color universe.
	DefaultColors       = 7
	MinColors           = 3
	DefaultWinningScore = 10
	DefaultHumans       = 1
	DefaultBots         = 1
	MaxHumans           = 10

	// InitialTankDraws is the number of picks, with replacement, that seed a tank.
	InitialTankDraws = 4
	BackColors       = 3

	GameIdleTimeout = 24 * time.Hour
	SweepInterval   = 1 * time.Minute
)

var (
	States = map[StateID]string{
		StateSetup:           "Setup",
		StateRoundInProgress: "Round in progress",
		StateGameOver:        "Game over",
	}
	Actions = map[ActionID]string{
		ActionScore: "SCORE",
		ActionSteal: "STEAL",
	}
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

// Is matches any error of the same code, so detailed copies made by With still
// satisfy errors.Is against the sentinel values below.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Code == e.Code
}

func (e Error) With(format string, args ...interface{}) Error {
	return Error{Code: e.Code, Exit: e.Exit, Msg: e.Msg + fmt.Sprintf(format, args...)}
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsInvalidDecision      = NewErr(1, false, "Invalid decision. ")
	ErrorsInvalidConfiguration = NewErr(2, true, "Invalid configuration. ")
	ErrorsUnknownParticipant   = NewErr(3, false, "Unknown participant. ")
	ErrorsGameOver             = NewErr(4, true, "Game over. ")
	ErrorsGameInvalid          = NewErr(5, true, "Game invalid. ")
	ErrorsInputInvalid         = NewErr(6, false, "Input invalid. ")
)
