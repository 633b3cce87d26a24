package player

import (
	"github.com/ratel-online/unotable/uno/card"
	"github.com/ratel-online/unotable/uno/card/color"
	"github.com/ratel-online/unotable/uno/game"
)

// Input is everything a computer seat may look at before moving.
type Input struct {
	Self           game.Player
	Players        []game.Player
	Top            card.Card
	ActiveColor    color.Color
	HumanCardsLeft int
}

// Move is either a draw or a play of CardID. Color is set for every play.
type Move struct {
	Draw   bool
	CardID string
	Color  color.Color
}

type strategy interface {
	Play(playableCards []card.Card, in Input) card.Card
}

// InputFor snapshots what the current seat of state can see.
func InputFor(state *game.State) Input {
	in := Input{
		Self:        *state.Current(),
		Players:     state.Players,
		Top:         state.Top(),
		ActiveColor: state.CurrentColor,
	}
	if human := state.Human(); human != nil {
		in.HumanCardsLeft = human.Hand.Size()
	}
	return in
}

// Decide picks a move for in.Self. It never mutates its input.
func Decide(in Input, rng game.Rand) Move {
	playableCards := game.PlayableCards(in.Self.Hand, in.Top, in.ActiveColor)
	if len(playableCards) == 0 {
		return Move{Draw: true}
	}

	picked := strategyFor(in.Self.Difficulty, rng).Play(playableCards, in)
	move := Move{CardID: picked.ID, Color: picked.Color}
	if picked.IsWild() {
		move.Color = PickColor(in.Self.Hand)
	}
	return move
}

func strategyFor(difficulty game.Difficulty, rng game.Rand) strategy {
	switch difficulty {
	case game.Medium, game.Hard:
		return goodPlayer{}
	default:
		return naivePlayer{rng: rng}
	}
}
