package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/unotable/uno/card"
	"github.com/ratel-online/unotable/uno/card/color"
)

type Kind string

const (
	Human    Kind = "human"
	Computer Kind = "computer"
)

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	return d == Easy || d == Medium || d == Hard
}

// Seat describes who occupies a position for the whole match.
type Seat struct {
	ID         string
	Kind       Kind
	Name       string
	Difficulty Difficulty
	NpcID      int
}

type Player struct {
	ID         string     `json:"id"`
	Kind       Kind       `json:"kind"`
	Name       string     `json:"name"`
	Hand       Hand       `json:"hand"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	NpcID      int        `json:"npcId,omitempty"`
	SaidUno    bool       `json:"saidUno"`
}

func (p Player) Seat() Seat {
	return Seat{ID: p.ID, Kind: p.Kind, Name: p.Name, Difficulty: p.Difficulty, NpcID: p.NpcID}
}

type EffectType string

const (
	EffectDraw EffectType = "draw"
	EffectSkip EffectType = "skip"
)

// PendingEffect is an action card's consequence that still waits for resolution.
type PendingEffect struct {
	Type           EffectType `json:"type"`
	TargetPlayerID string     `json:"targetPlayerId"`
	Amount         int        `json:"amount"`
	SourceCardID   string     `json:"sourceCardId"`
	SourcePlayerID string     `json:"sourcePlayerId"`
	Challengeable  bool       `json:"challengeable"`
	// IllegalWild4 is set when the source still held a card of the active color.
	IllegalWild4 bool `json:"illegalWild4"`
}

type Stats struct {
	GamesPlayed int `json:"gamesPlayed"`
	HumanWins   int `json:"humanWins"`
}

type Settings struct {
	Sound   bool `json:"sound"`
	Music   bool `json:"music"`
	Haptics bool `json:"haptics"`
}

func DefaultSettings() Settings {
	return Settings{Sound: true, Music: true, Haptics: true}
}

type Phase int

const (
	PhaseNormal Phase = iota
	PhaseEffectPending
	PhaseResolved
)

func (p Phase) String() string {
	switch p {
	case PhaseEffectPending:
		return "effect-pending"
	case PhaseResolved:
		return "resolved"
	default:
		return "normal"
	}
}

type State struct {
	Players                 []Player       `json:"players"`
	DrawPile                Deck           `json:"drawPile"`
	DiscardPile             Pile           `json:"discardPile"`
	CurrentPlayerIndex      int            `json:"currentPlayerIndex"`
	Direction               Direction      `json:"direction"`
	CurrentColor            color.Color    `json:"currentColor"`
	WinnerID                string         `json:"winnerId"`
	TurnCount               int            `json:"turnCount"`
	PendingEffect           *PendingEffect `json:"pendingEffect"`
	Wild4ChallengeWindow    bool           `json:"wild4ChallengeWindow"`
	LastWild4CardID         string         `json:"lastWild4CardId"`
	RewardCooldownUntilTurn int            `json:"rewardCooldownUntilTurn"`
	RewardUsedCount         int            `json:"rewardUsedCount"`
	RewardModalVisible      bool           `json:"rewardModalVisible"`
	AdModalVisible          bool           `json:"adModalVisible"`
	Stats                   Stats          `json:"stats"`
	Settings                Settings       `json:"settings"`
}

func (s *State) Phase() Phase {
	if s.WinnerID != "" {
		return PhaseResolved
	}
	if s.PendingEffect != nil {
		return PhaseEffectPending
	}
	return PhaseNormal
}

func (s *State) Top() card.Card {
	return s.DiscardPile.Top()
}

func (s *State) Current() *Player {
	return &s.Players[s.CurrentPlayerIndex]
}

func (s *State) PlayerByID(id string) *Player {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i]
		}
	}
	return nil
}

func (s *State) Human() *Player {
	for i := range s.Players {
		if s.Players[i].Kind == Human {
			return &s.Players[i]
		}
	}
	return nil
}

// CardCount is the number of cards across the draw pile, the discard pile and every hand.
func (s *State) CardCount() int {
	count := s.DrawPile.Len() + s.DiscardPile.Len()
	for _, player := range s.Players {
		count += player.Hand.Size()
	}
	return count
}

// Clone returns a deep copy that shares no slices with s.
func (s State) Clone() State {
	clone := s
	clone.Players = make([]Player, len(s.Players))
	for i, player := range s.Players {
		player.Hand = Hand(player.Hand.Cards())
		clone.Players[i] = player
	}
	clone.DrawPile = Deck(Pile(s.DrawPile).Cards())
	clone.DiscardPile = Pile(s.DiscardPile.Cards())
	if s.PendingEffect != nil {
		effect := *s.PendingEffect
		clone.PendingEffect = &effect
	}
	return clone
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s (active color %s)", s.Top(), s.CurrentColor.Paint(s.CurrentColor.String())))

	var playerStatuses []string
	for index, player := range s.Players {
		playerStatus := fmt.Sprintf("%s (%d card(s))", player.Name, player.Hand.Size())
		if index == s.CurrentPlayerIndex {
			playerStatus = "> " + playerStatus
		}
		playerStatuses = append(playerStatuses, playerStatus)
	}
	order := "clockwise"
	if s.Direction == CounterClockwise {
		order = "counter-clockwise"
	}
	lines = append(lines, fmt.Sprintf("Turn order (%s): %s", order, strings.Join(playerStatuses, ", ")))
	lines = append(lines, fmt.Sprintf("Draw pile: %d card(s), turn %d", s.DrawPile.Len(), s.TurnCount))

	if effect := s.PendingEffect; effect != nil {
		lines = append(lines, fmt.Sprintf("Pending %s effect on %s", effect.Type, effect.TargetPlayerID))
	}

	return strings.Join(lines, "\n")
}
