package event_test

import (
	"testing"

	"github.com/ratel-online/unotable/uno/card"
	"github.com/ratel-online/unotable/uno/card/color"
	"github.com/ratel-online/unotable/uno/event"
	"github.com/stretchr/testify/require"
)

func TestEmitter(t *testing.T) {
	emitter := event.NewEmitter()
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	emitter.AddListener(listenerOne)
	emitter.AddListener(listenerTwo)

	events := []event.Event{
		{Kind: event.CardPlayed, PlayerID: "Someone", Card: card.NewWildCard()},
		{Kind: event.ColorPicked, PlayerID: "Someone", Color: color.Yellow},
		{Kind: event.CardsDrawn, PlayerID: "Somebody", Amount: 2},
	}
	emitter.Emit(events...)

	require.Equal(t, events, listenerOne.Received())
	require.Equal(t, events, listenerTwo.Received())
}
