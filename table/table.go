package table

import (
	"sort"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/unotable/config"
	"github.com/ratel-online/unotable/consts"
)

var sessions = hashmap.New()

func init() {
	async.Async(func() {
		for {
			time.Sleep(consts.SessionSweepInterval)
			sessions.Foreach(func(e *hashmap.Entry) {
				session := e.Value().(*Session)
				if session.IdleFor() > consts.SessionIdleTimeout {
					Close(session.ID)
					log.Infof("session %s is not living, removed.\n", session.ID)
				}
			})
		}
	})
}

// Open deals a new match for cfg and registers it. A zero seed is replaced by the clock.
func Open(cfg config.Table) (*Session, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session, err := newSession(uuid.NewString(), seed, cfg.GameSeats(), cfg.AutoCatchChance)
	if err != nil {
		return nil, err
	}
	sessions.Set(session.ID, session)
	log.Infof("session %s opened, seed %d\n", session.ID, seed)
	return session, nil
}

func Get(id string) (*Session, error) {
	if v, ok := sessions.Get(id); ok {
		return v.(*Session), nil
	}
	return nil, consts.ErrorsSessionInvalid
}

func Close(id string) {
	if _, ok := sessions.Get(id); ok {
		sessions.Del(id)
		log.Infof("session %s closed\n", id)
	}
}

// List returns the open sessions, oldest first.
func List() []*Session {
	list := make([]*Session, 0)
	sessions.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Session))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].opened.Before(list[j].opened)
	})
	return list
}
