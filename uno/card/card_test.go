package card_test

import (
	"testing"

	"github.com/ratel-online/unotable/uno/card"
	"github.com/ratel-online/unotable/uno/card/action"
	"github.com/ratel-online/unotable/uno/card/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCardsHaveUniqueIDs(t *testing.T) {
	first := card.NewNumberCard(color.Red, 5)
	second := card.NewNumberCard(color.Red, 5)
	require.NotEqual(t, first.ID, second.ID)
	require.Equal(t, first.Label(), second.Label())
}

func TestPoints(t *testing.T) {
	assert.Equal(t, 0, card.NewNumberCard(color.Blue, 0).Points())
	assert.Equal(t, 9, card.NewNumberCard(color.Blue, 9).Points())
	assert.Equal(t, 20, card.NewSkipCard(color.Blue).Points())
	assert.Equal(t, 20, card.NewReverseCard(color.Blue).Points())
	assert.Equal(t, 20, card.NewDrawTwoCard(color.Blue).Points())
	assert.Equal(t, 50, card.NewWildCard().Points())
	assert.Equal(t, 50, card.NewWildDrawFourCard().Points())
}

func TestLabel(t *testing.T) {
	scenarios := []struct {
		description string
		card        card.Card
		expected    string
	}{
		{"number", card.NewNumberCard(color.Green, 7), "7"},
		{"draw_two", card.NewDrawTwoCard(color.Green), "+2"},
		{"wild_draw_four", card.NewWildDrawFourCard(), "W+4"},
		{"wild", card.NewWildCard(), "W"},
		{"skip", card.NewSkipCard(color.Red), "SKIP"},
		{"reverse", card.NewReverseCard(color.Red), "REVERSE"},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expected, scenario.card.Label())
		})
	}
}

func TestActions(t *testing.T) {
	require.Empty(t, card.NewNumberCard(color.Red, 1).Actions())
	require.Equal(t, []action.Action{action.NewSkipTurnAction()}, card.NewSkipCard(color.Red).Actions())
	require.Equal(t, []action.Action{action.NewReverseTurnsAction()}, card.NewReverseCard(color.Red).Actions())
	require.Equal(t, []action.Action{
		action.NewSkipTurnAction(),
		action.NewDrawCardsAction(2),
	}, card.NewDrawTwoCard(color.Red).Actions())
	require.Equal(t, []action.Action{action.NewPickColorAction()}, card.NewWildCard().Actions())
	require.Equal(t, []action.Action{
		action.NewPickColorAction(),
		action.NewSkipTurnAction(),
		action.NewDrawCardsAction(4),
	}, card.NewWildDrawFourCard().Actions())
}

func TestIsWild(t *testing.T) {
	require.True(t, card.NewWildCard().IsWild())
	require.True(t, card.NewWildDrawFourCard().IsWild())
	require.False(t, card.NewDrawTwoCard(color.Yellow).IsWild())
}
