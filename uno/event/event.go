package event

import (
	"github.com/ratel-online/unotable/uno/card"
	"github.com/ratel-online/unotable/uno/card/color"
	"github.com/ratel-online/unotable/uno/game"
)

type Kind string

const (
	CardPlayed      Kind = "card_played"
	ColorPicked     Kind = "color_picked"
	ReversePlayed   Kind = "reverse_played"
	Wild4Played     Kind = "wild4_played"
	CardsDrawn      Kind = "cards_drawn"
	HandSizeReached Kind = "hand_size_reached"
	UnoCalled       Kind = "uno_called"
	EffectPending   Kind = "effect_pending"
	WinnerDeclared  Kind = "winner_declared"
)

// Event is something a transition did, as seen from the outside.
// PlayerID is the acting seat, except for CardsDrawn, HandSizeReached and
// EffectPending where it is the affected seat.
type Event struct {
	Kind     Kind            `json:"kind"`
	PlayerID string          `json:"playerId"`
	SourceID string          `json:"sourceId,omitempty"`
	Card     card.Card       `json:"card,omitempty"`
	Color    color.Color     `json:"color,omitempty"`
	Amount   int             `json:"amount,omitempty"`
	Effect   game.EffectType `json:"effect,omitempty"`
}
