package player

import (
	"sort"

	"github.com/ratel-online/unotable/uno/card"
	"github.com/ratel-online/unotable/uno/card/color"
	"github.com/ratel-online/unotable/uno/game"
)

// goodPlayer plays the best scoring card. Medium and hard seats share it.
type goodPlayer struct{}

func (p goodPlayer) Play(playableCards []card.Card, in Input) card.Card {
	ranked := make([]card.Card, len(playableCards))
	copy(ranked, playableCards)
	sort.SliceStable(ranked, func(i, j int) bool {
		return Score(ranked[i], in) > Score(ranked[j], in)
	})
	return ranked[0]
}

// Score rates how much a seat wants to play c right now.
func Score(c card.Card, in Input) int {
	score := c.Points()
	switch c.Type {
	case card.WildDrawFour:
		score += 30
	case card.DrawTwo:
		score += 18
	case card.Skip, card.Reverse:
		score += 12
	}

	if pressesAdvantage(c) {
		switch {
		case in.HumanCardsLeft <= 2:
			score += 40
		case in.HumanCardsLeft <= 4:
			score += 20
		}
	}

	if c.Type == card.WildDrawFour && game.HasColorMatch(in.Self.Hand, in.ActiveColor) {
		score -= 40
	}
	if c.IsWild() && in.Self.Hand.Size() <= 3 {
		score += 20
	}
	return score
}

func pressesAdvantage(c card.Card) bool {
	return c.Type == card.DrawTwo || c.Type == card.Skip || c.Type == card.WildDrawFour
}

// PickColor names the most frequent non-wild color in cards, falling back to red.
func PickColor(cards []card.Card) color.Color {
	colorCounts := make(map[color.Color]int)
	for _, c := range cards {
		if !c.IsWild() {
			colorCounts[c.Color]++
		}
	}

	mostFrequentColor := color.Red
	mostFrequentColorAmount := 0
	for _, candidate := range color.Priority {
		if amount := colorCounts[candidate]; amount > mostFrequentColorAmount {
			mostFrequentColorAmount = amount
			mostFrequentColor = candidate
		}
	}
	return mostFrequentColor
}
