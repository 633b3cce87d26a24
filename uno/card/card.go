package card

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ratel-online/unotable/uno/card/action"
	"github.com/ratel-online/unotable/uno/card/color"
)

type Type string

const (
	Number       Type = "number"
	Skip         Type = "skip"
	Reverse      Type = "reverse"
	DrawTwo      Type = "draw2"
	Wild         Type = "wild"
	WildDrawFour Type = "wild4"
)

// Card is an immutable value. Two cards may share color, type and value;
// only ID tells them apart.
type Card struct {
	ID    string      `json:"id"`
	Color color.Color `json:"color"`
	Type  Type        `json:"type"`
	Value int         `json:"value"`
}

func NewNumberCard(c color.Color, number int) Card {
	return Card{ID: uuid.NewString(), Color: c, Type: Number, Value: number}
}

func NewSkipCard(c color.Color) Card {
	return Card{ID: uuid.NewString(), Color: c, Type: Skip}
}

func NewReverseCard(c color.Color) Card {
	return Card{ID: uuid.NewString(), Color: c, Type: Reverse}
}

func NewDrawTwoCard(c color.Color) Card {
	return Card{ID: uuid.NewString(), Color: c, Type: DrawTwo}
}

func NewWildCard() Card {
	return Card{ID: uuid.NewString(), Color: color.Wild, Type: Wild}
}

func NewWildDrawFourCard() Card {
	return Card{ID: uuid.NewString(), Color: color.Wild, Type: WildDrawFour}
}

func (c Card) Actions() []action.Action {
	switch c.Type {
	case Skip:
		return []action.Action{action.NewSkipTurnAction()}
	case Reverse:
		return []action.Action{action.NewReverseTurnsAction()}
	case DrawTwo:
		return []action.Action{
			action.NewSkipTurnAction(),
			action.NewDrawCardsAction(2),
		}
	case Wild:
		return []action.Action{action.NewPickColorAction()}
	case WildDrawFour:
		return []action.Action{
			action.NewPickColorAction(),
			action.NewSkipTurnAction(),
			action.NewDrawCardsAction(4),
		}
	default:
		return []action.Action{}
	}
}

func (c Card) IsWild() bool {
	return c.Type == Wild || c.Type == WildDrawFour
}

// Points is the card's intrinsic value: face value for numbers, 50 for wilds, 20 otherwise.
func (c Card) Points() int {
	switch c.Type {
	case Number:
		return c.Value
	case Wild, WildDrawFour:
		return 50
	default:
		return 20
	}
}

func (c Card) Label() string {
	switch c.Type {
	case Number:
		return fmt.Sprintf("%d", c.Value)
	case DrawTwo:
		return "+2"
	case WildDrawFour:
		return "W+4"
	case Wild:
		return "W"
	default:
		return strings.ToUpper(string(c.Type))
	}
}

func (c Card) String() string {
	return c.Color.Paintf("[%s]", c.Label())
}
