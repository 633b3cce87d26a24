package game

// Outcome tells the caller what a transition did and what the table waits for next.
type Outcome int

const (
	// OutcomeIgnored means a precondition failed and the state is untouched.
	OutcomeIgnored Outcome = iota
	OutcomeApplied
	OutcomeWon
	// OutcomeAwaitingChallenge: a wild-draw-four hit the human, who must challenge or accept.
	OutcomeAwaitingChallenge
	// OutcomeAwaitingReward: the human may block the effect with a reward.
	OutcomeAwaitingReward
	OutcomeAwaitingAd
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeWon:
		return "won"
	case OutcomeAwaitingChallenge:
		return "awaiting-challenge"
	case OutcomeAwaitingReward:
		return "awaiting-reward"
	case OutcomeAwaitingAd:
		return "awaiting-ad"
	default:
		return "ignored"
	}
}
