package msg_test

import (
	"testing"

	"github.com/fatih/color"
	"github.com/ratel-online/unotable/uno/card"
	unocolor "github.com/ratel-online/unotable/uno/card/color"
	"github.com/ratel-online/unotable/uno/event"
	"github.com/ratel-online/unotable/uno/game"
	"github.com/ratel-online/unotable/uno/msg"
	"github.com/stretchr/testify/require"
)

func TestEvent(t *testing.T) {
	color.NoColor = true
	state := &game.State{Players: []game.Player{
		{ID: "human", Name: "You"},
		{ID: "npc-1", Name: "Tank"},
	}}

	scenarios := []struct {
		description  string
		event        event.Event
		expectedLine string
	}{
		{"card_played", event.Event{Kind: event.CardPlayed, PlayerID: "npc-1", Card: card.NewNumberCard(unocolor.Red, 7)}, "Tank played [7]!"},
		{"single_card_drawn", event.Event{Kind: event.CardsDrawn, PlayerID: "human", Amount: 1}, "You drew a card!"},
		{"several_cards_drawn", event.Event{Kind: event.CardsDrawn, PlayerID: "npc-1", Amount: 4}, "Tank drew 4 cards!"},
		{"one_card_left", event.Event{Kind: event.HandSizeReached, PlayerID: "npc-1", Amount: 1}, "Tank has one card left!"},
		{"draw_effect", event.Event{Kind: event.EffectPending, PlayerID: "human", SourceID: "npc-1", Effect: game.EffectDraw, Amount: 2}, "Tank wants You to draw 2 cards!"},
		{"skip_effect", event.Event{Kind: event.EffectPending, PlayerID: "human", SourceID: "npc-1", Effect: game.EffectSkip}, "Tank wants to skip You's turn!"},
		{"unknown_player_falls_back_to_id", event.Event{Kind: event.WinnerDeclared, PlayerID: "npc-9"}, "npc-9 wins!"},
		{"reverse", event.Event{Kind: event.ReversePlayed, PlayerID: "human"}, "Turn order has been reversed!"},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expectedLine, msg.Message.Event(scenario.event, state))
		})
	}
}
