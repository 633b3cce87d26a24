package game

import (
	"github.com/ratel-online/unotable/uno/card"
)

// Pile is the discard pile. The active card is the last element.
type Pile []card.Card

func (p *Pile) Add(c card.Card) {
	*p = append(*p, c)
}

func (p Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p))
	copy(cards, p)
	return cards
}

// Top returns the active card, or the zero Card when the pile is empty.
func (p Pile) Top() card.Card {
	if len(p) == 0 {
		return card.Card{}
	}
	return p[len(p)-1]
}

func (p Pile) Len() int {
	return len(p)
}

// Recycle removes every card under the top and returns them. The top card stays.
func (p *Pile) Recycle() []card.Card {
	if len(*p) <= 1 {
		return []card.Card{}
	}
	top := p.Top()
	recycled := make([]card.Card, len(*p)-1)
	copy(recycled, (*p)[:len(*p)-1])
	*p = Pile{top}
	return recycled
}
