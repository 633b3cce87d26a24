package game

import (
	"github.com/ratel-online/unotable/uno/card"
	"github.com/ratel-online/unotable/uno/card/color"
)

// Rand is the source of randomness for shuffles. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Deck is the draw pile. The next card to be drawn is at index 0.
type Deck []card.Card

func NewDeck(rng Rand) Deck {
	cards := BuildDeck()
	Shuffle(cards, rng)
	return Deck(cards)
}

// Draw pops up to amount cards from the front. It returns fewer when the deck runs out.
func (d *Deck) Draw(amount int) []card.Card {
	if amount > len(*d) {
		amount = len(*d)
	}
	if amount <= 0 {
		return []card.Card{}
	}
	cards := make([]card.Card, amount)
	copy(cards, (*d)[:amount])
	*d = (*d)[amount:]
	return cards
}

func (d Deck) Len() int {
	return len(d)
}

// BuildDeck returns the 108 standard cards in a fixed order.
func BuildDeck() []card.Card {
	cards := make([]card.Card, 0, 108)
	for _, cardColor := range color.Priority {
		cards = append(cards, createColorCards(cardColor)...)
	}
	cards = append(cards, createBlackCards()...)
	return cards
}

func createColorCards(cardColor color.Color) []card.Card {
	cards := []card.Card{card.NewNumberCard(cardColor, 0)}
	for number := 1; number <= 9; number++ {
		cards = append(cards, card.NewNumberCard(cardColor, number), card.NewNumberCard(cardColor, number))
	}
	cards = append(cards,
		card.NewSkipCard(cardColor), card.NewSkipCard(cardColor),
		card.NewReverseCard(cardColor), card.NewReverseCard(cardColor),
		card.NewDrawTwoCard(cardColor), card.NewDrawTwoCard(cardColor),
	)
	return cards
}

func createBlackCards() []card.Card {
	cards := make([]card.Card, 0, 8)
	for i := 0; i < 4; i++ {
		cards = append(cards, card.NewWildCard(), card.NewWildDrawFourCard())
	}
	return cards
}

// Shuffle permutes cards in place with Fisher–Yates.
func Shuffle(cards []card.Card, rng Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
