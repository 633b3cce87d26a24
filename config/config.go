package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/ratel-online/unotable/consts"
	"github.com/ratel-online/unotable/uno/game"
	"github.com/ratel-online/unotable/uno/player"
	"gopkg.in/yaml.v3"
)

type Seat struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Kind       string `yaml:"kind"`
	Difficulty string `yaml:"difficulty"`
	NpcID      int    `yaml:"npc_id"`
}

// Table is the configuration of one table. Environment variables win over the file.
type Table struct {
	Seats           []Seat  `yaml:"seats"`
	HandSize        int     `yaml:"hand_size"`
	Seed            int64   `yaml:"seed" env:"UNO_SEED"`
	Fast            bool    `yaml:"fast" env:"UNO_FAST"`
	HumanName       string  `yaml:"human_name" env:"UNO_HUMAN_NAME"`
	AutoCatchChance float64 `yaml:"auto_catch_chance" env:"UNO_AUTO_CATCH_CHANCE"`
}

func Default() Table {
	roster := player.DefaultRoster("")
	seats := make([]Seat, 0, len(roster))
	for _, seat := range roster {
		seats = append(seats, Seat{
			ID:         seat.ID,
			Name:       seat.Name,
			Kind:       string(seat.Kind),
			Difficulty: string(seat.Difficulty),
			NpcID:      seat.NpcID,
		})
	}
	return Table{
		Seats:           seats,
		HandSize:        consts.StartHandSize,
		AutoCatchChance: consts.AutoCatchChance,
	}
}

// Load reads path on top of Default, applies environment overrides and validates.
// An empty path skips the file.
func Load(path string) (Table, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Table{}, fmt.Errorf("read table config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Table{}, fmt.Errorf("parse table YAML: %w", err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Table{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.HumanName != "" {
		for i := range cfg.Seats {
			if cfg.Seats[i].Kind == string(game.Human) {
				cfg.Seats[i].Name = cfg.HumanName
			}
		}
	}
	if err := cfg.Validate(); err != nil {
		return Table{}, err
	}
	return cfg, nil
}

func (t Table) Validate() error {
	if len(t.Seats) != consts.SeatCount {
		return fmt.Errorf("%w%d seats configured, want %d", consts.ErrorsConfigInvalid, len(t.Seats), consts.SeatCount)
	}
	if t.HandSize != consts.StartHandSize {
		return fmt.Errorf("%whand size must be %d", consts.ErrorsConfigInvalid, consts.StartHandSize)
	}
	if t.AutoCatchChance < 0 || t.AutoCatchChance > 1 {
		return fmt.Errorf("%wauto catch chance %v out of [0, 1]", consts.ErrorsConfigInvalid, t.AutoCatchChance)
	}

	humans := 0
	ids := make(map[string]bool)
	for _, seat := range t.Seats {
		if seat.ID == "" || ids[seat.ID] {
			return fmt.Errorf("%wseat id '%s' is empty or repeated", consts.ErrorsConfigInvalid, seat.ID)
		}
		ids[seat.ID] = true

		switch game.Kind(seat.Kind) {
		case game.Human:
			humans++
		case game.Computer:
			if !game.Difficulty(seat.Difficulty).Valid() {
				return fmt.Errorf("%wseat '%s' has unknown difficulty '%s'", consts.ErrorsConfigInvalid, seat.ID, seat.Difficulty)
			}
		default:
			return fmt.Errorf("%wseat '%s' has unknown kind '%s'", consts.ErrorsConfigInvalid, seat.ID, seat.Kind)
		}
	}
	if humans != 1 {
		return fmt.Errorf("%w%d human seats, want 1", consts.ErrorsConfigInvalid, humans)
	}
	return nil
}

// GameSeats converts the configured seats for game.New.
func (t Table) GameSeats() []game.Seat {
	seats := make([]game.Seat, 0, len(t.Seats))
	for _, seat := range t.Seats {
		seats = append(seats, game.Seat{
			ID:         seat.ID,
			Kind:       game.Kind(seat.Kind),
			Name:       seat.Name,
			Difficulty: game.Difficulty(seat.Difficulty),
			NpcID:      seat.NpcID,
		})
	}
	return seats
}
