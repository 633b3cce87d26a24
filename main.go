package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/unotable/config"
	"github.com/ratel-online/unotable/consts"
	"github.com/ratel-online/unotable/table"
	"github.com/ratel-online/unotable/uno/card"
	"github.com/ratel-online/unotable/uno/card/action"
	"github.com/ratel-online/unotable/uno/event"
	"github.com/ratel-online/unotable/uno/game"
	"github.com/ratel-online/unotable/uno/msg"
	"github.com/ratel-online/unotable/uno/ui"
)

var (
	configPath = flag.String("config", "", "table configuration file (YAML)")
	dump       = flag.Bool("dump", false, "print the table state as JSON after every match")
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	pause := time.Second
	if cfg.Fast {
		pause = 0
	}
	console := ui.Stdio(pause)

	session, err := table.Open(cfg)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	defer table.Close(session.ID)

	if err := play(session, console, cfg.Fast); err != nil {
		log.Error(err)
	}
}

// narrator prints every table event to the console.
type narrator struct {
	console *ui.Console
	seats   game.State
}

func (n *narrator) OnEvent(ev event.Event) {
	if line := msg.Message.Event(ev, &n.seats); line != "" {
		n.console.Println(line)
	}
}

func play(session *table.Session, console *ui.Console, fast bool) error {
	console.Println(msg.Message.Welcome())
	session.AddListener(&narrator{console: console, seats: session.Snapshot()})

	for {
		state := session.Snapshot()
		console.Println(msg.Message.FirstCardPlayed(state.Top()))
		if err := playMatch(session, console, fast); err != nil {
			return err
		}

		state = session.Snapshot()
		console.Println(msg.Message.Stats(state.Stats))
		if *dump {
			console.Println(string(session.Dump()))
		}
		again, err := console.PromptYesNo("Play again?")
		if err != nil || !again {
			return err
		}
		if err := session.Rematch(); err != nil {
			return err
		}
	}
}

func playMatch(session *table.Session, console *ui.Console, fast bool) error {
	for {
		state := session.Snapshot()
		if state.WinnerID != "" {
			return nil
		}
		switch {
		case state.PendingEffect != nil:
			if err := answerEffect(session, console, state, fast); err != nil {
				return err
			}
		case state.Current().Kind == game.Human:
			if err := humanTurn(session, console, state); err != nil {
				return err
			}
		default:
			if err := computerTurn(session, console, fast); err != nil {
				return err
			}
		}
	}
}

func answerEffect(session *table.Session, console *ui.Console, state game.State, fast bool) error {
	effect := state.PendingEffect
	if state.RewardModalVisible {
		block, err := console.PromptYesNo(msg.Message.RewardOffered())
		if err != nil {
			return err
		}
		if block {
			session.BlockWithReward()
			console.Println("Watching ad...")
			if !fast {
				time.Sleep(3 * time.Second)
			}
			session.CompleteRewardAd()
			console.Println(msg.Message.PenaltyBlocked())
			return nil
		}
	}
	if effect.Challengeable {
		source := state.PlayerByID(effect.SourcePlayerID)
		challenge, err := console.PromptYesNo(msg.Message.ChallengeOffered(source.Name))
		if err != nil {
			return err
		}
		session.Challenge(challenge)
		return nil
	}
	session.AcceptPenalty()
	return nil
}

func humanTurn(session *table.Session, console *ui.Console, state game.State) error {
	me := state.Current()
	console.Printlns([]string{
		msg.Message.HumanPlayerTurnStarted(me.Name),
		state.String(),
		msg.Message.Hand(me.Hand),
	})

	playable := me.Hand.PlayableCards(state.Top(), state.CurrentColor)
	if len(playable) == 0 {
		console.Println(msg.Message.HumanPlayerHasNoMatchingCardsInHand(me.Name, state.Top()))
		session.Draw(me.ID)
		return nil
	}

	selected, drawn, err := console.PromptCardSelection(playable)
	if err != nil {
		return err
	}
	if drawn {
		session.Draw(me.ID)
		return nil
	}
	chosenColor := selected.Color
	if picksColor(selected) {
		if chosenColor, err = console.PromptColor(); err != nil {
			return err
		}
	}
	session.Play(me.ID, selected.ID, chosenColor)
	return nil
}

// computerTurn runs one computer seat's turn. While the human sits on one
// undeclared card, every such turn opens a window to call UNO and, once it
// closes, gives the computers a chance to catch them.
func computerTurn(session *table.Session, console *ui.Console, fast bool) error {
	thinkTime := session.ThinkTime()
	state := session.Snapshot()
	if human := state.Human(); human != nil && human.Hand.Size() == 1 && !human.SaidUno {
		started := time.Now()
		callUno, inTime, err := console.PromptYesNoWithin("Call UNO?", consts.AutoCatchDelay)
		if err != nil {
			return err
		}
		if callUno && (inTime || fast) {
			session.CallUno(human.ID)
		} else {
			if wait := consts.AutoCatchDelay - time.Since(started); !fast && wait > 0 {
				time.Sleep(wait)
			}
			thinkTime -= time.Since(started)
			if caught, _ := session.AutoCatch(); caught {
				console.Println(msg.Message.PlayerCaught(human.Name))
			}
		}
	}
	if !fast && thinkTime > 0 {
		time.Sleep(thinkTime)
	}
	session.StepComputer()
	return nil
}

func picksColor(c card.Card) bool {
	for _, cardAction := range c.Actions() {
		if _, ok := cardAction.(action.PickColorAction); ok {
			return true
		}
	}
	return false
}
