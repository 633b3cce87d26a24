package game

import (
	"github.com/ratel-online/unotable/uno/card"
	"github.com/ratel-online/unotable/uno/card/color"
)

// Playable reports whether candidate may be played on top while activeColor is in force.
func Playable(candidate card.Card, top card.Card, activeColor color.Color) bool {
	if candidate.IsWild() {
		return true
	}
	if candidate.Color == activeColor {
		return true
	}
	if top.Type == card.Number && candidate.Type == card.Number {
		return candidate.Value == top.Value
	}
	return candidate.Type == top.Type
}

func PlayableCards(cards []card.Card, top card.Card, activeColor color.Color) []card.Card {
	var playable []card.Card
	for _, candidate := range cards {
		if Playable(candidate, top, activeColor) {
			playable = append(playable, candidate)
		}
	}
	return playable
}

// HasColorMatch reports whether cards hold a non-wild card of the given color.
func HasColorMatch(cards []card.Card, c color.Color) bool {
	if c == color.Wild {
		return false
	}
	for _, candidate := range cards {
		if candidate.Color == c && !candidate.IsWild() {
			return true
		}
	}
	return false
}
