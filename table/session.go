package table

import (
	"math/rand"
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/unotable/consts"
	"github.com/ratel-online/unotable/uno/card/color"
	"github.com/ratel-online/unotable/uno/event"
	"github.com/ratel-online/unotable/uno/game"
	"github.com/ratel-online/unotable/uno/player"
)

// Session is one table. Every transition on its game goes through the session lock.
type Session struct {
	sync.Mutex
	ID              string
	Game            *game.Game
	seed            int64
	rng             *rand.Rand
	emitter         *event.Emitter
	autoCatchChance float64
	opened          time.Time
	touched         time.Time
}

func newSession(id string, seed int64, seats []game.Seat, autoCatchChance float64) (*Session, error) {
	rng := rand.New(rand.NewSource(seed))
	g, err := game.New(seats, rng)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &Session{
		ID:              id,
		Game:            g,
		seed:            seed,
		rng:             rng,
		emitter:         event.NewEmitter(),
		autoCatchChance: autoCatchChance,
		opened:          now,
		touched:         now,
	}, nil
}

func (s *Session) Seed() int64 {
	return s.seed
}

func (s *Session) AddListener(listener event.Listener) {
	s.Lock()
	defer s.Unlock()
	s.emitter.AddListener(listener)
}

func (s *Session) IdleFor() time.Duration {
	s.Lock()
	defer s.Unlock()
	return time.Since(s.touched)
}

// Apply runs transition under the lock and emits the events it caused.
func (s *Session) Apply(transition func(g *game.Game) game.Outcome) (game.Outcome, []event.Event) {
	s.Lock()
	defer s.Unlock()
	return s.apply(transition)
}

func (s *Session) apply(transition func(g *game.Game) game.Outcome) (game.Outcome, []event.Event) {
	s.touched = time.Now()
	before := s.Game.State.Clone()
	outcome := transition(s.Game)
	if outcome == game.OutcomeIgnored {
		return outcome, nil
	}
	events := event.Diff(before, s.Game.State.Clone())
	s.emitter.Emit(events...)
	if outcome == game.OutcomeWon {
		winner := s.Game.PlayerByID(s.Game.WinnerID)
		log.Infof("session %s: %s won on turn %d, %d/%d games won by the human\n",
			s.ID, winner.Name, s.Game.TurnCount, s.Game.Stats.HumanWins, s.Game.Stats.GamesPlayed)
	}
	return outcome, events
}

func (s *Session) Play(playerID, cardID string, chosenColor color.Color) (game.Outcome, []event.Event) {
	return s.Apply(func(g *game.Game) game.Outcome { return g.PlayCard(playerID, cardID, chosenColor) })
}

func (s *Session) Draw(playerID string) (game.Outcome, []event.Event) {
	return s.Apply(func(g *game.Game) game.Outcome { return g.DrawFor(playerID) })
}

func (s *Session) Challenge(challenge bool) (game.Outcome, []event.Event) {
	return s.Apply(func(g *game.Game) game.Outcome { return g.ResolveWild4Challenge(challenge) })
}

func (s *Session) AcceptPenalty() (game.Outcome, []event.Event) {
	return s.Apply(func(g *game.Game) game.Outcome { return g.AcceptPenalty() })
}

func (s *Session) BlockWithReward() (game.Outcome, []event.Event) {
	return s.Apply(func(g *game.Game) game.Outcome { return g.BlockPenaltyWithReward() })
}

func (s *Session) CompleteRewardAd() (game.Outcome, []event.Event) {
	return s.Apply(func(g *game.Game) game.Outcome { return g.CompleteRewardAd() })
}

func (s *Session) CallUno(playerID string) (game.Outcome, []event.Event) {
	return s.Apply(func(g *game.Game) game.Outcome { return g.CallUno(playerID) })
}

func (s *Session) ToggleSetting(name string) (game.Outcome, []event.Event) {
	return s.Apply(func(g *game.Game) game.Outcome { return g.ToggleSetting(name) })
}

// StepComputer lets the current seat move if it is a computer with nothing pending.
func (s *Session) StepComputer() (game.Outcome, []event.Event) {
	s.Lock()
	defer s.Unlock()
	g := s.Game
	if g.WinnerID != "" || g.PendingEffect != nil || g.Current().Kind != game.Computer {
		return game.OutcomeIgnored, nil
	}
	in := player.InputFor(&g.State)
	move := player.Decide(in, s.rng)
	if move.Draw {
		return s.apply(func(g *game.Game) game.Outcome { return g.DrawFor(in.Self.ID) })
	}
	return s.apply(func(g *game.Game) game.Outcome { return g.PlayCard(in.Self.ID, move.CardID, move.Color) })
}

// ThinkTime is how long the current seat pretends to think. Zero for the human.
func (s *Session) ThinkTime() time.Duration {
	s.Lock()
	defer s.Unlock()
	current := s.Game.Current()
	if current.Kind != game.Computer {
		return 0
	}
	switch current.Difficulty {
	case game.Hard:
		return consts.HardThinkTime
	case game.Medium:
		return consts.MediumThinkTime
	default:
		return consts.EasyThinkTime
	}
}

// AutoCatch gives the computers their chance to catch a human who forgot to call UNO.
// It rolls once per call and only while a computer seat has the turn, so every
// computer turn is a fresh chance.
func (s *Session) AutoCatch() (bool, []event.Event) {
	s.Lock()
	defer s.Unlock()
	human := s.Game.Human()
	if human == nil || human.Hand.Size() != 1 || human.SaidUno || s.Game.WinnerID != "" {
		return false, nil
	}
	if s.Game.PendingEffect != nil || s.Game.Current().Kind != game.Computer {
		return false, nil
	}
	if s.rng.Float64() >= s.autoCatchChance {
		return false, nil
	}
	outcome, events := s.apply(func(g *game.Game) game.Outcome { return g.CatchUno(human.ID) })
	return outcome == game.OutcomeApplied, events
}

// Rematch deals the next match at the same table.
func (s *Session) Rematch() error {
	s.Lock()
	defer s.Unlock()
	next, err := s.Game.Rematch()
	if err != nil {
		return err
	}
	s.Game = next
	s.touched = time.Now()
	log.Infof("session %s: rematch %d\n", s.ID, next.Stats.GamesPlayed+1)
	return nil
}

func (s *Session) Snapshot() game.State {
	s.Lock()
	defer s.Unlock()
	return s.Game.State.Clone()
}

// Dump is the JSON form of the current state.
func (s *Session) Dump() []byte {
	return json.Marshal(s.Snapshot())
}
