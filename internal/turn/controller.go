// Package turn enforces the per-turn state machine: roll, resolve, end.
package turn

import (
	apperrors "github.com/louisbranch/tycoon-engine/internal/errors"
	"github.com/louisbranch/tycoon-engine/internal/game"
)

// Phase describes where the current turn stands in the state machine.
type Phase int

const (
	// PhaseAwaitingRoll indicates the turn is waiting for a dice roll and
	// its action script. Initial phase, entered again after EndTurn.
	PhaseAwaitingRoll Phase = iota
	// PhaseActionResolved indicates the action script ran successfully
	// and the turn is waiting for EndTurn.
	PhaseActionResolved
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingRoll:
		return "awaiting_roll"
	case PhaseActionResolved:
		return "action_resolved"
	default:
		return "unknown"
	}
}

var (
	// ErrActionAlreadyResolved indicates RunTurnScript called when the
	// turn's action was already resolved.
	ErrActionAlreadyResolved = apperrors.New(apperrors.CodeTurnInvalidState, "turn action already resolved; call EndTurn")
	// ErrActionNotResolved indicates EndTurn called before a successful
	// RunTurnScript in the turn.
	ErrActionNotResolved = apperrors.New(apperrors.CodeTurnInvalidState, "no resolved action to end; call RunTurnScript")
)

// Runner executes the action and cycle scripts for one roll on behalf of
// an acting player.
type Runner interface {
	ExecuteTurn(action, cycle string, dice, playerIdx int) error
}

// Controller cycles a game through its turns for the lifetime of the
// engine instance; there is no terminal phase.
type Controller struct {
	state  *game.State
	runner Runner
	phase  Phase
}

// NewController builds a controller in PhaseAwaitingRoll.
func NewController(state *game.State, runner Runner) *Controller {
	return &Controller{state: state, runner: runner}
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// RunTurnScript resolves the current player's roll by delegating both
// scripts to the runner. Valid only in PhaseAwaitingRoll.
//
// On a runner error the phase stays PhaseAwaitingRoll: the roll is not
// consumed and the call may be retried with the same or corrected input.
func (c *Controller) RunTurnScript(action, cycle string, dice int) error {
	if c.phase != PhaseAwaitingRoll {
		return ErrActionAlreadyResolved
	}
	if err := c.runner.ExecuteTurn(action, cycle, dice, c.state.CurrentTurn); err != nil {
		return err
	}
	c.phase = PhaseActionResolved
	return nil
}

// EndTurn hands the turn to the next player. Valid only in
// PhaseActionResolved.
func (c *Controller) EndTurn() error {
	if c.phase != PhaseActionResolved {
		return ErrActionNotResolved
	}
	c.state.AdvanceTurn()
	c.phase = PhaseAwaitingRoll
	return nil
}
