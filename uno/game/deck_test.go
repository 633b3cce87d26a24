package game_test

import (
	"strings"
	"testing"

	"github.com/ratel-online/unotable/uno/card"
	"github.com/ratel-online/unotable/uno/card/color"
	"github.com/ratel-online/unotable/uno/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDeck(t *testing.T) {
	t.Run("returns_all_108_standard_uno_cards", func(t *testing.T) {
		cards := game.BuildDeck()
		require.Len(t, cards, 108)
		require.Equal(t, faces(standardDeckCards()), faces(cards))
	})

	t.Run("gives_every_card_its_own_id", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, c := range game.BuildDeck() {
			require.False(t, seen[c.ID], "duplicate id %s", c.ID)
			seen[c.ID] = true
		}
	})
}

func TestDraw(t *testing.T) {
	t.Run("pops_from_the_front", func(t *testing.T) {
		cards := filler(5)
		deck := game.Deck(cards)
		drawn := deck.Draw(2)
		require.Equal(t, ids(cards[:2]), ids(drawn))
		require.Equal(t, 3, deck.Len())
	})

	t.Run("returns_no_cards_when_argument_is_zero", func(t *testing.T) {
		deck := game.NewDeck(seeded(1))
		require.Empty(t, deck.Draw(0))
		require.Equal(t, 108, deck.Len())
	})

	t.Run("returns_fewer_cards_when_running_out", func(t *testing.T) {
		deck := game.Deck(filler(3))
		require.Len(t, deck.Draw(5), 3)
		require.Zero(t, deck.Len())
		require.Empty(t, deck.Draw(1))
	})

	t.Run("drawn_cards_do_not_alias_the_deck", func(t *testing.T) {
		deck := game.Deck(filler(4))
		hand := game.Hand(deck.Draw(1))
		rest := ids(deck)
		hand.AddCards(filler(2))
		require.Equal(t, rest, ids(deck))
	})
}

func TestShuffleIsUniform(t *testing.T) {
	cards := filler(4)
	rng := seeded(42)
	const rounds = 24000
	counts := make(map[string]int)
	for i := 0; i < rounds; i++ {
		deck := make([]card.Card, len(cards))
		copy(deck, cards)
		game.Shuffle(deck, rng)
		counts[strings.Join(ids(deck), ",")]++
	}

	require.Len(t, counts, 24)
	expected := float64(rounds) / 24
	chiSquare := 0.0
	for _, observed := range counts {
		diff := float64(observed) - expected
		chiSquare += diff * diff / expected
		assert.InDelta(t, expected, float64(observed), expected*0.15)
	}
	// 23 degrees of freedom, p = 0.001.
	require.Less(t, chiSquare, 49.73)
}

func TestShuffleKeepsCards(t *testing.T) {
	cards := game.BuildDeck()
	before := ids(cards)
	game.Shuffle(cards, seeded(3))
	require.ElementsMatch(t, before, ids(cards))
}

func standardDeckCards() []card.Card {
	var cards []card.Card
	for _, c := range []color.Color{color.Blue, color.Green, color.Red, color.Yellow} {
		cards = append(cards,
			card.NewDrawTwoCard(c), card.NewDrawTwoCard(c),
			card.NewReverseCard(c), card.NewReverseCard(c),
			card.NewSkipCard(c), card.NewSkipCard(c),
			card.NewNumberCard(c, 0),
		)
		for number := 1; number <= 9; number++ {
			cards = append(cards, card.NewNumberCard(c, number), card.NewNumberCard(c, number))
		}
	}
	for i := 0; i < 4; i++ {
		cards = append(cards, card.NewWildCard(), card.NewWildDrawFourCard())
	}
	return cards
}
