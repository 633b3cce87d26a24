package game_test

import (
	"fmt"
	"math/rand"

	"github.com/ratel-online/unotable/uno/card"
	"github.com/ratel-online/unotable/uno/card/color"
	"github.com/ratel-online/unotable/uno/game"
)

const (
	humanID = "human"
	npcOne  = "npc-1"
	npcTwo  = "npc-2"
	npcFour = "npc-3"
)

func testSeats() []game.Seat {
	return []game.Seat{
		{ID: humanID, Kind: game.Human, Name: "You"},
		{ID: npcOne, Kind: game.Computer, Name: "Tank", Difficulty: game.Easy, NpcID: 1},
		{ID: npcTwo, Kind: game.Computer, Name: "Mimi", Difficulty: game.Medium, NpcID: 2},
		{ID: npcFour, Kind: game.Computer, Name: "Capybara", Difficulty: game.Hard, NpcID: 3},
	}
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// arranged builds a table with known hands. The human sits at seat 0 and moves first.
func arranged(hands [][]card.Card, top card.Card, activeColor color.Color, drawPile []card.Card) *game.Game {
	seats := testSeats()
	players := make([]game.Player, len(seats))
	for i, seat := range seats {
		players[i] = game.Player{
			ID:         seat.ID,
			Kind:       seat.Kind,
			Name:       seat.Name,
			Difficulty: seat.Difficulty,
			NpcID:      seat.NpcID,
			Hand:       game.Hand(hands[i]),
		}
	}
	return game.FromState(game.State{
		Players:      players,
		DrawPile:     game.Deck(drawPile),
		DiscardPile:  game.Pile{top},
		Direction:    game.Clockwise,
		CurrentColor: activeColor,
		TurnCount:    1,
		Settings:     game.DefaultSettings(),
	}, seeded(7))
}

func filler(amount int) []card.Card {
	cards := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		cards = append(cards, card.NewNumberCard(color.Yellow, i%10))
	}
	return cards
}

func faces(cards []card.Card) map[string]int {
	counts := make(map[string]int)
	for _, c := range cards {
		counts[fmt.Sprintf("%s/%s/%d", c.Color, c.Type, c.Value)]++
	}
	return counts
}

func ids(cards []card.Card) []string {
	result := make([]string, 0, len(cards))
	for _, c := range cards {
		result = append(result, c.ID)
	}
	return result
}
