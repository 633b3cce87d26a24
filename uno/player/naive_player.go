package player

import (
	"github.com/ratel-online/unotable/uno/card"
	"github.com/ratel-online/unotable/uno/game"
)

// naivePlayer plays any playable card, uniformly at random.
type naivePlayer struct {
	rng game.Rand
}

func (p naivePlayer) Play(playableCards []card.Card, in Input) card.Card {
	randomIndex := p.rng.Intn(len(playableCards))
	return playableCards[randomIndex]
}
