package consts

import (
	"time"
)

const (
	SeatCount     = 4
	StartHandSize = 7
	DeckSize      = 108

	// MaxRewardsPerMatch bounds how many penalties the human may block with a reward.
	MaxRewardsPerMatch = 1
	RewardCooldown     = 3

	UnoPenalty       = 2
	ChallengePenalty = 2

	AutoCatchChance = 0.65
	AutoCatchDelay  = 1 * time.Second
)

// Think times before a computer seat moves.
const (
	EasyThinkTime   = 2300 * time.Millisecond
	MediumThinkTime = 1800 * time.Millisecond
	HardThinkTime   = 1500 * time.Millisecond
)

const (
	SessionSweepInterval = 1 * time.Minute
	SessionIdleTimeout   = 30 * time.Minute
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsConfigInvalid  = NewErr(2, true, "Config invalid. ")
	ErrorsSeatsInvalid   = NewErr(3, true, "Seats invalid. ")
	ErrorsSessionInvalid = NewErr(4, false, "Session invalid. ")
	ErrorsInputInvalid   = NewErr(5, false, "Input invalid. ")
)
