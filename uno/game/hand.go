package game

import (
	"github.com/ratel-online/unotable/uno/card"
	"github.com/ratel-online/unotable/uno/card/color"
)

// Hand keeps cards in the order they were received. Order is for display only.
type Hand []card.Card

func (h *Hand) AddCards(cards []card.Card) {
	*h = append(*h, cards...)
}

func (h Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h))
	copy(cards, h)
	return cards
}

func (h Hand) Empty() bool {
	return len(h) == 0
}

// Index returns the position of the card with the given id, or -1.
func (h Hand) Index(cardID string) int {
	for index, c := range h {
		if c.ID == cardID {
			return index
		}
	}
	return -1
}

func (h Hand) Find(cardID string) (card.Card, bool) {
	index := h.Index(cardID)
	if index < 0 {
		return card.Card{}, false
	}
	return h[index], true
}

func (h Hand) PlayableCards(top card.Card, activeColor color.Color) []card.Card {
	return PlayableCards(h, top, activeColor)
}

// RemoveCard removes the card with the given id and keeps the order of the rest.
func (h *Hand) RemoveCard(cardID string) (card.Card, bool) {
	index := h.Index(cardID)
	if index < 0 {
		return card.Card{}, false
	}
	removed := (*h)[index]
	rest := make(Hand, 0, len(*h)-1)
	rest = append(rest, (*h)[:index]...)
	rest = append(rest, (*h)[index+1:]...)
	*h = rest
	return removed, true
}

func (h Hand) Size() int {
	return len(h)
}
