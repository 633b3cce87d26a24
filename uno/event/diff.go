package event

import (
	"github.com/ratel-online/unotable/uno/card"
	"github.com/ratel-online/unotable/uno/game"
)

// Diff derives the events implied by going from before to after.
// Both states must come from the same match.
func Diff(before, after game.State) []Event {
	var events []Event

	if top := after.Top(); top.ID != "" && top.ID != before.Top().ID {
		actor := before.Current().ID
		events = append(events, Event{Kind: CardPlayed, PlayerID: actor, Card: top})
		if top.IsWild() {
			events = append(events, Event{Kind: ColorPicked, PlayerID: actor, Color: after.CurrentColor})
		}
		switch top.Type {
		case card.Reverse:
			events = append(events, Event{Kind: ReversePlayed, PlayerID: actor, Card: top})
		case card.WildDrawFour:
			events = append(events, Event{Kind: Wild4Played, PlayerID: actor, Card: top})
		}
	}

	if len(before.Players) == len(after.Players) {
		for i, player := range after.Players {
			was, is := before.Players[i].Hand.Size(), player.Hand.Size()
			switch {
			case is > was:
				events = append(events, Event{Kind: CardsDrawn, PlayerID: player.ID, Amount: is - was})
			case is < was && (is == 1 || is == 2):
				events = append(events, Event{Kind: HandSizeReached, PlayerID: player.ID, Amount: is})
			}
			if player.SaidUno && !before.Players[i].SaidUno {
				events = append(events, Event{Kind: UnoCalled, PlayerID: player.ID})
			}
		}
	}

	if effect := after.PendingEffect; effect != nil && before.PendingEffect == nil {
		events = append(events, Event{
			Kind:     EffectPending,
			PlayerID: effect.TargetPlayerID,
			SourceID: effect.SourcePlayerID,
			Amount:   effect.Amount,
			Effect:   effect.Type,
		})
	}

	if after.WinnerID != "" && before.WinnerID == "" {
		events = append(events, Event{Kind: WinnerDeclared, PlayerID: after.WinnerID})
	}
	return events
}
