package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/unotable/uno/card"
	"github.com/ratel-online/unotable/uno/card/color"
	"github.com/ratel-online/unotable/uno/event"
	"github.com/ratel-online/unotable/uno/game"
)

var Message = MessageWriter{}

// MessageWriter turns table activity into the lines shown to the human seat.
type MessageWriter struct{}

func (m MessageWriter) Welcome() string {
	return fmt.Sprintf(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) FirstCardPlayed(c card.Card) string {
	return fmt.Sprintf("First card is %s", c)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return fmt.Sprintf("It's your turn, %s!", playerName)
}

func (m MessageWriter) HumanPlayerHasNoMatchingCardsInHand(playerName string, lastPlayedCard card.Card) string {
	return fmt.Sprintf("%s, none of your cards match %s!", playerName, lastPlayedCard)
}

func (m MessageWriter) Hand(cards []card.Card) string {
	labels := make([]string, 0, len(cards))
	for _, c := range cards {
		labels = append(labels, c.String())
	}
	return "Your hand: " + strings.Join(labels, " ")
}

func (m MessageWriter) PlayerPlayedCard(playerName string, c card.Card) string {
	return fmt.Sprintf("%s played %s!", playerName, c)
}

func (m MessageWriter) PlayerPickedColor(playerName string, c color.Color) string {
	return fmt.Sprintf("%s picked color %s!", playerName, c.Paint(c.String()))
}

func (m MessageWriter) PlayerDrewCards(playerName string, amount int) string {
	if amount == 1 {
		return fmt.Sprintf("%s drew a card!", playerName)
	}
	return fmt.Sprintf("%s drew %d cards!", playerName, amount)
}

func (m MessageWriter) TurnOrderReversed() string {
	return "Turn order has been reversed!"
}

func (m MessageWriter) WildDrawFourPlayed(playerName string) string {
	return fmt.Sprintf("%s slammed down a wild draw four!", playerName)
}

func (m MessageWriter) PlayerHasCardsLeft(playerName string, amount int) string {
	if amount == 1 {
		return fmt.Sprintf("%s has one card left!", playerName)
	}
	return fmt.Sprintf("%s is down to %d cards!", playerName, amount)
}

func (m MessageWriter) PlayerCalledUno(playerName string) string {
	return fmt.Sprintf("%s calls UNO!", playerName)
}

func (m MessageWriter) PlayerCaught(playerName string) string {
	return fmt.Sprintf("%s forgot to call UNO and got caught!", playerName)
}

func (m MessageWriter) EffectPending(targetName, sourceName string, effect game.EffectType, amount int) string {
	if effect == game.EffectSkip {
		return fmt.Sprintf("%s wants to skip %s's turn!", sourceName, targetName)
	}
	return fmt.Sprintf("%s wants %s to draw %d cards!", sourceName, targetName, amount)
}

func (m MessageWriter) RewardOffered() string {
	return "Watch an ad to block the penalty? (one use per match)"
}

func (m MessageWriter) ChallengeOffered(sourceName string) string {
	return fmt.Sprintf("Challenge %s's wild draw four?", sourceName)
}

func (m MessageWriter) PenaltyBlocked() string {
	return "Penalty blocked!"
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return fmt.Sprintf("%s wins!", playerName)
}

func (m MessageWriter) Stats(stats game.Stats) string {
	return fmt.Sprintf("Games played: %d, won: %d", stats.GamesPlayed, stats.HumanWins)
}

// Event renders ev using the seat names found in state. It returns "" for
// events that have no line of their own.
func (m MessageWriter) Event(ev event.Event, state *game.State) string {
	name := nameOf(state, ev.PlayerID)
	switch ev.Kind {
	case event.CardPlayed:
		return m.PlayerPlayedCard(name, ev.Card)
	case event.ColorPicked:
		return m.PlayerPickedColor(name, ev.Color)
	case event.ReversePlayed:
		return m.TurnOrderReversed()
	case event.Wild4Played:
		return m.WildDrawFourPlayed(name)
	case event.CardsDrawn:
		return m.PlayerDrewCards(name, ev.Amount)
	case event.HandSizeReached:
		return m.PlayerHasCardsLeft(name, ev.Amount)
	case event.UnoCalled:
		return m.PlayerCalledUno(name)
	case event.EffectPending:
		return m.EffectPending(name, nameOf(state, ev.SourceID), ev.Effect, ev.Amount)
	case event.WinnerDeclared:
		return m.WinnerFound(name)
	}
	return ""
}

func nameOf(state *game.State, playerID string) string {
	if player := state.PlayerByID(playerID); player != nil {
		return player.Name
	}
	return playerID
}
