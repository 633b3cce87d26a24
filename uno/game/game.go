package game

import (
	"github.com/ratel-online/unotable/consts"
	"github.com/ratel-online/unotable/uno/card"
	"github.com/ratel-online/unotable/uno/card/action"
	"github.com/ratel-online/unotable/uno/card/color"
)

// Game owns the authoritative state of one match. Callers must serialize
// transitions; nothing in here is safe for concurrent use.
type Game struct {
	State
	rng Rand
}

// New deals a fresh match over the given seats.
func New(seats []Seat, rng Rand) (*Game, error) {
	if len(seats) != consts.SeatCount {
		return nil, consts.ErrorsSeatsInvalid
	}
	players := make([]Player, 0, len(seats))
	for _, seat := range seats {
		players = append(players, Player{
			ID:         seat.ID,
			Kind:       seat.Kind,
			Name:       seat.Name,
			Difficulty: seat.Difficulty,
			NpcID:      seat.NpcID,
			Hand:       Hand{},
		})
	}

	deck := NewDeck(rng)
	for i := range players {
		players[i].Hand.AddCards(deck.Draw(consts.StartHandSize))
	}

	first := deck.Draw(1)[0]
	for first.Type == card.WildDrawFour {
		deck = append(deck, first)
		Shuffle(deck, rng)
		first = deck.Draw(1)[0]
	}

	activeColor := first.Color
	if first.IsWild() {
		activeColor = color.Red
	}

	return &Game{
		State: State{
			Players:      players,
			DrawPile:     deck,
			DiscardPile:  Pile{first},
			Direction:    Clockwise,
			CurrentColor: activeColor,
			TurnCount:    1,
			Settings:     DefaultSettings(),
		},
		rng: rng,
	}, nil
}

// FromState wraps an existing state, typically one arranged by hand.
func FromState(state State, rng Rand) *Game {
	return &Game{State: state, rng: rng}
}

// Rematch starts a new match over the same seats, carrying stats and settings forward.
func (g *Game) Rematch() (*Game, error) {
	seats := make([]Seat, 0, len(g.Players))
	for _, player := range g.Players {
		seats = append(seats, player.Seat())
	}
	next, err := New(seats, g.rng)
	if err != nil {
		return nil, err
	}
	next.Stats = g.Stats
	next.Settings = g.Settings
	return next, nil
}

// PlayCard plays cardID from the current seat. chosenColor only matters for wild cards.
func (g *Game) PlayCard(playerID, cardID string, chosenColor color.Color) Outcome {
	if !g.awaitingMove() {
		return OutcomeIgnored
	}
	player := g.Current()
	if player.ID != playerID {
		return OutcomeIgnored
	}
	played, held := player.Hand.Find(cardID)
	if !held || !Playable(played, g.Top(), g.CurrentColor) {
		return OutcomeIgnored
	}
	colorMatchInHand := HasColorMatch(player.Hand, g.CurrentColor)

	player.Hand.RemoveCard(cardID)
	if player.Hand.Size() != 1 {
		player.SaidUno = false
	}
	g.DiscardPile.Add(played)
	g.CurrentColor = played.Color
	if played.IsWild() {
		g.CurrentColor = color.Red
		if chosenColor.Playable() {
			g.CurrentColor = chosenColor
		}
	}
	g.LastWild4CardID = ""
	if played.Type == card.WildDrawFour {
		g.LastWild4CardID = played.ID
	}

	if player.Hand.Empty() {
		g.declareWinner(player)
		return OutcomeWon
	}

	targeted, amount := false, 0
	for _, cardAction := range played.Actions() {
		switch cardAction := cardAction.(type) {
		case action.ReverseTurnsAction:
			g.Direction = g.Direction.Reverse()
		case action.SkipTurnAction:
			targeted = true
		case action.DrawCardsAction:
			amount = cardAction.Amount()
		}
	}
	if !targeted {
		g.advance()
		return OutcomeApplied
	}
	return g.aimEffect(player, played, amount, colorMatchInHand)
}

// aimEffect either parks the effect for the human to answer or applies it at once.
func (g *Game) aimEffect(source *Player, played card.Card, amount int, colorMatchInHand bool) Outcome {
	targetIndex := g.nextSeat()
	target := &g.Players[targetIndex]
	effectType := EffectDraw
	if amount == 0 {
		effectType = EffectSkip
	}
	wildDrawFour := played.Type == card.WildDrawFour

	rewardEligible := target.Kind == Human &&
		g.RewardUsedCount < consts.MaxRewardsPerMatch &&
		g.TurnCount >= g.RewardCooldownUntilTurn

	if rewardEligible || (wildDrawFour && target.Kind == Human) {
		g.CurrentPlayerIndex = targetIndex
		g.PendingEffect = &PendingEffect{
			Type:           effectType,
			TargetPlayerID: target.ID,
			Amount:         amount,
			SourceCardID:   played.ID,
			SourcePlayerID: source.ID,
			Challengeable:  wildDrawFour,
			IllegalWild4:   wildDrawFour && colorMatchInHand,
		}
		g.Wild4ChallengeWindow = wildDrawFour
		g.RewardModalVisible = rewardEligible
		if rewardEligible {
			return OutcomeAwaitingReward
		}
		return OutcomeAwaitingChallenge
	}

	if effectType == EffectDraw {
		g.give(target, amount)
	}
	// Lands on the target seat itself, unlike the human path which advances past it on resolution.
	g.advance()
	return OutcomeApplied
}

// DrawForCurrentPlayer draws one card for the seat whose turn it is and passes the turn.
func (g *Game) DrawForCurrentPlayer() Outcome {
	if !g.awaitingMove() {
		return OutcomeIgnored
	}
	player := g.Current()
	g.give(player, 1)
	player.SaidUno = false
	g.advance()
	return OutcomeApplied
}

// DrawFor is DrawForCurrentPlayer with a turn ownership check.
func (g *Game) DrawFor(playerID string) Outcome {
	if g.Current().ID != playerID {
		return OutcomeIgnored
	}
	return g.DrawForCurrentPlayer()
}

func (g *Game) ResolveWild4Challenge(challenge bool) Outcome {
	pending := g.PendingEffect
	if pending == nil || !pending.Challengeable || pending.SourcePlayerID == "" {
		return OutcomeIgnored
	}
	target := g.PlayerByID(pending.TargetPlayerID)
	source := g.PlayerByID(pending.SourcePlayerID)
	if target == nil || source == nil {
		return OutcomeIgnored
	}

	g.Wild4ChallengeWindow = false
	switch {
	case !challenge:
		g.give(target, pending.Amount)
	case pending.IllegalWild4:
		g.give(source, pending.Amount)
	default:
		g.give(target, pending.Amount+consts.ChallengePenalty)
	}

	g.PendingEffect = nil
	g.RewardModalVisible = false
	g.advance()
	return OutcomeApplied
}

func (g *Game) AcceptPenalty() Outcome {
	pending := g.PendingEffect
	if pending == nil {
		return OutcomeIgnored
	}
	target := g.PlayerByID(pending.TargetPlayerID)
	if target == nil {
		return OutcomeIgnored
	}

	if pending.Type == EffectDraw {
		g.give(target, pending.Amount)
	}
	g.PendingEffect = nil
	g.RewardModalVisible = false
	g.Wild4ChallengeWindow = false
	g.advance()
	return OutcomeApplied
}

// BlockPenaltyWithReward moves from the reward offer to the ad. Hands and turn order stay as they are.
func (g *Game) BlockPenaltyWithReward() Outcome {
	if g.PendingEffect == nil || !g.RewardModalVisible {
		return OutcomeIgnored
	}
	g.AdModalVisible = true
	g.RewardModalVisible = false
	return OutcomeAwaitingAd
}

// CompleteRewardAd cancels the pending effect without any draw.
func (g *Game) CompleteRewardAd() Outcome {
	if g.PendingEffect == nil {
		return OutcomeIgnored
	}
	g.PendingEffect = nil
	g.AdModalVisible = false
	g.RewardModalVisible = false
	g.Wild4ChallengeWindow = false
	g.RewardUsedCount++
	g.RewardCooldownUntilTurn = g.TurnCount + consts.RewardCooldown
	g.advance()
	return OutcomeApplied
}

func (g *Game) CallUno(playerID string) Outcome {
	player := g.PlayerByID(playerID)
	if player == nil || player.Hand.Size() != 1 {
		return OutcomeIgnored
	}
	player.SaidUno = true
	return OutcomeApplied
}

// CatchUno punishes a player holding one card who did not call UNO. Anyone may call it at any time.
func (g *Game) CatchUno(playerID string) Outcome {
	player := g.PlayerByID(playerID)
	if player == nil || player.Hand.Size() != 1 || player.SaidUno {
		return OutcomeIgnored
	}
	g.give(player, consts.UnoPenalty)
	player.SaidUno = false
	return OutcomeApplied
}

func (g *Game) ToggleSetting(name string) Outcome {
	switch name {
	case "sound":
		g.Settings.Sound = !g.Settings.Sound
	case "music":
		g.Settings.Music = !g.Settings.Music
	case "haptics":
		g.Settings.Haptics = !g.Settings.Haptics
	default:
		return OutcomeIgnored
	}
	return OutcomeApplied
}

func (g *Game) awaitingMove() bool {
	return g.WinnerID == "" && !g.RewardModalVisible && g.PendingEffect == nil
}

func (g *Game) nextSeat() int {
	return NextSeat(g.CurrentPlayerIndex, g.Direction, len(g.Players))
}

func (g *Game) advance() {
	g.CurrentPlayerIndex = g.nextSeat()
	g.TurnCount++
}

func (g *Game) declareWinner(player *Player) {
	g.WinnerID = player.ID
	g.Stats.GamesPlayed++
	if player.Kind == Human {
		g.Stats.HumanWins++
	}
}

func (g *Game) give(player *Player, amount int) int {
	cards := g.draw(amount)
	player.Hand.AddCards(cards)
	return len(cards)
}

// draw pops cards from the draw pile, recycling the discard pile under its top
// card whenever the draw pile runs dry. It may return fewer than amount.
func (g *Game) draw(amount int) []card.Card {
	cards := make([]card.Card, 0, amount)
	for len(cards) < amount {
		if g.DrawPile.Len() == 0 {
			recycled := g.DiscardPile.Recycle()
			Shuffle(recycled, g.rng)
			g.DrawPile = Deck(recycled)
		}
		drawn := g.DrawPile.Draw(1)
		if len(drawn) == 0 {
			break
		}
		cards = append(cards, drawn...)
	}
	return cards
}
