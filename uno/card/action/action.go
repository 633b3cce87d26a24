package action

// Action is one consequence of playing a card.
type Action interface{}

type DrawCardsAction struct {
	amount int
}

func NewDrawCardsAction(amount int) Action {
	return DrawCardsAction{amount: amount}
}

func (a DrawCardsAction) Amount() int {
	return a.amount
}

type ReverseTurnsAction struct{}

func NewReverseTurnsAction() Action {
	return ReverseTurnsAction{}
}

// SkipTurnAction targets the next seat; it is what turns a card into a pending effect.
type SkipTurnAction struct{}

func NewSkipTurnAction() Action {
	return SkipTurnAction{}
}

type PickColorAction struct{}

func NewPickColorAction() Action {
	return PickColorAction{}
}
