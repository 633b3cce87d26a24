package player

import "github.com/ratel-online/unotable/uno/game"

// DefaultRoster is the fixed table: the human first, then one computer seat per difficulty.
func DefaultRoster(humanName string) []game.Seat {
	if humanName == "" {
		humanName = "You"
	}
	return []game.Seat{
		{ID: "human", Kind: game.Human, Name: humanName},
		{ID: "npc-1", Kind: game.Computer, Name: "Tank", Difficulty: game.Easy, NpcID: 1},
		{ID: "npc-2", Kind: game.Computer, Name: "Mimi", Difficulty: game.Medium, NpcID: 2},
		{ID: "npc-3", Kind: game.Computer, Name: "Capybara", Difficulty: game.Hard, NpcID: 3},
	}
}
