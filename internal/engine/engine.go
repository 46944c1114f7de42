// Package engine wires the board, game state, script runtime and turn
// controller into the externally consumed simulation surface.
//
// An Engine is an explicitly owned instance with no process-wide state;
// independent instances share nothing. All methods are synchronous and run
// to completion before returning. No method is safe to call concurrently
// against the same instance: a multi-threaded host must serialize access
// behind a single writer.
package engine

import (
	"github.com/louisbranch/tycoon-engine/internal/board"
	"github.com/louisbranch/tycoon-engine/internal/game"
	"github.com/louisbranch/tycoon-engine/internal/script"
	"github.com/louisbranch/tycoon-engine/internal/snapshot"
	"github.com/louisbranch/tycoon-engine/internal/turn"
)

// Config describes how to construct an engine instance.
type Config struct {
	// Descriptor is the board descriptor document (see board.Parse).
	Descriptor string
	// PlayerCount is the number of players; at least one.
	PlayerCount int
	// StartingMoney is each player's money at construction.
	StartingMoney int64
	// MaxScriptSteps bounds script execution; zero selects the runtime
	// default, negative disables the bound.
	MaxScriptSteps int
}

// Engine is one simulation instance.
type Engine struct {
	board   *board.Board
	state   *game.State
	runtime *script.Runtime
	turns   *turn.Controller
}

// New constructs an engine from a board descriptor and a player count.
// Descriptor violations surface as parse-kind errors and invalid
// construction parameters as config-kind errors (see the errors package).
func New(cfg Config) (*Engine, error) {
	b, err := board.Parse(cfg.Descriptor)
	if err != nil {
		return nil, err
	}
	state, err := game.NewState(b, cfg.PlayerCount, cfg.StartingMoney)
	if err != nil {
		return nil, err
	}
	runtime := script.NewRuntime(state, cfg.MaxScriptSteps)
	return &Engine{
		board:   b,
		state:   state,
		runtime: runtime,
		turns:   turn.NewController(state, runtime),
	}, nil
}

// RunTurnScript resolves the current player's roll: the action script runs
// with the dice value bound, then the cycle script runs once per lap the
// action completed. Fails with a script-kind error on a compile or runtime
// fault (the roll is not consumed and may be retried) or an
// invalid-state-kind error when the turn's action is already resolved.
//
// Host-call mutations apply immediately; a failing script retains the
// mutations it already made. See script.Runtime.Execute.
func (e *Engine) RunTurnScript(action, cycle string, dice int) error {
	return e.turns.RunTurnScript(action, cycle, dice)
}

// EndTurn advances to the next player. Fails with an invalid-state-kind
// error before a successful RunTurnScript in the turn.
func (e *Engine) EndTurn() error {
	return e.turns.EndTurn()
}

// StateJSON returns a deterministic JSON snapshot of the game state. It
// never fails for a constructed engine and never mutates state.
func (e *Engine) StateJSON() ([]byte, error) {
	return snapshot.Marshal(e.state)
}

// Phase reports where the current turn stands.
func (e *Engine) Phase() turn.Phase {
	return e.turns.Phase()
}

// CurrentTurn returns the turn-order index of the acting player.
func (e *Engine) CurrentTurn() int {
	return e.state.CurrentTurn
}

// PlayerCount returns the fixed number of players.
func (e *Engine) PlayerCount() int {
	return len(e.state.Players)
}
