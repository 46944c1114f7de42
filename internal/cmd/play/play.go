// Package play parses play command flags and drives a scripted simulation.
package play

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/louisbranch/tycoon-engine/internal/core/dice"
	"github.com/louisbranch/tycoon-engine/internal/engine"
	"github.com/louisbranch/tycoon-engine/internal/journal"
	journalsqlite "github.com/louisbranch/tycoon-engine/internal/journal/sqlite"
	"github.com/louisbranch/tycoon-engine/internal/platform/config"
)

// Config holds play command configuration.
type Config struct {
	BoardPath     string `env:"TYCOON_BOARD" envDefault:"examples/board.yaml"`
	ActionPath    string `env:"TYCOON_ACTION_SCRIPT" envDefault:"examples/scripts/action.lua"`
	CyclePath     string `env:"TYCOON_CYCLE_SCRIPT" envDefault:"examples/scripts/cycle.lua"`
	Players       int    `env:"TYCOON_PLAYERS" envDefault:"2"`
	Turns         int    `env:"TYCOON_TURNS" envDefault:"12"`
	Seed          int64  `env:"TYCOON_SEED" envDefault:"1"`
	StartingMoney int64  `env:"TYCOON_STARTING_MONEY" envDefault:"2000000"`
	JournalPath   string `env:"TYCOON_JOURNAL"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.BoardPath, "board", cfg.BoardPath, "Path to the board descriptor")
	fs.StringVar(&cfg.ActionPath, "action", cfg.ActionPath, "Path to the action script")
	fs.StringVar(&cfg.CyclePath, "cycle", cfg.CyclePath, "Path to the cycle script")
	fs.IntVar(&cfg.Players, "players", cfg.Players, "Number of players")
	fs.IntVar(&cfg.Turns, "turns", cfg.Turns, "Number of turns to simulate")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Dice roller seed")
	fs.Int64Var(&cfg.StartingMoney, "money", cfg.StartingMoney, "Starting money per player")
	fs.StringVar(&cfg.JournalPath, "journal", cfg.JournalPath, "SQLite path for the turn journal (empty disables)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run simulates cfg.Turns turns and prints the final snapshot to stdout.
func Run(ctx context.Context, cfg Config) error {
	descriptor, err := os.ReadFile(cfg.BoardPath)
	if err != nil {
		return fmt.Errorf("read board descriptor: %w", err)
	}
	action, err := os.ReadFile(cfg.ActionPath)
	if err != nil {
		return fmt.Errorf("read action script: %w", err)
	}
	var cycle []byte
	if cfg.CyclePath != "" {
		cycle, err = os.ReadFile(cfg.CyclePath)
		if err != nil {
			return fmt.Errorf("read cycle script: %w", err)
		}
	}

	eng, err := engine.New(engine.Config{
		Descriptor:    string(descriptor),
		PlayerCount:   cfg.Players,
		StartingMoney: cfg.StartingMoney,
	})
	if err != nil {
		return fmt.Errorf("construct engine: %w", err)
	}

	var store *journalsqlite.Store
	if cfg.JournalPath != "" {
		store, err = journalsqlite.Open(cfg.JournalPath)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close journal: %v", err)
			}
		}()
	}

	roller := dice.NewRoller(cfg.Seed)
	for turnNo := 1; turnNo <= cfg.Turns; turnNo++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		pair, err := roller.RollPair(6)
		if err != nil {
			return fmt.Errorf("roll dice: %w", err)
		}
		playerIdx := eng.CurrentTurn()
		log.Printf("turn %d: player %d rolled %d+%d", turnNo, playerIdx, pair.A, pair.B)

		if err := eng.RunTurnScript(string(action), string(cycle), pair.Total()); err != nil {
			return fmt.Errorf("turn %d: run turn script: %w", turnNo, err)
		}

		if store != nil {
			snapshot, err := eng.StateJSON()
			if err != nil {
				return fmt.Errorf("turn %d: snapshot: %w", turnNo, err)
			}
			entry := journal.Entry{
				Turn:      turnNo,
				PlayerID:  playerIdx,
				Dice:      pair.Total(),
				Snapshot:  snapshot,
				CreatedAt: time.Now().UTC(),
			}
			if err := store.Append(ctx, entry); err != nil {
				return fmt.Errorf("turn %d: journal: %w", turnNo, err)
			}
		}

		if err := eng.EndTurn(); err != nil {
			return fmt.Errorf("turn %d: end turn: %w", turnNo, err)
		}
	}

	snapshot, err := eng.StateJSON()
	if err != nil {
		return fmt.Errorf("final snapshot: %w", err)
	}
	fmt.Println(string(snapshot))
	return nil
}
