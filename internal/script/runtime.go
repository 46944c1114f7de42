// Package script executes externally supplied Lua source against game
// state through a fixed host API. It is the only path by which scripts may
// mutate state.
package script

import (
	"github.com/Shopify/go-lua"

	apperrors "github.com/louisbranch/tycoon-engine/internal/errors"
	"github.com/louisbranch/tycoon-engine/internal/game"
)

// HostAPIVersion identifies the host function catalog exposed to scripts.
// Scripts are authored against a specific version; bump on any change to
// the catalog in bindings.go.
const HostAPIVersion = 1

// DefaultMaxSteps is the execution-step ceiling applied when a runtime is
// built without an explicit limit. It aborts runaway scripts before they
// block the calling thread indefinitely.
const DefaultMaxSteps = 1_000_000

// Runtime executes script source against a single game state. Each
// invocation runs in a fresh interpreter state to completion or failure;
// nothing suspends across calls.
type Runtime struct {
	state    *game.State
	maxSteps int
}

// NewRuntime binds a runtime to the given game state. A maxSteps of zero
// selects DefaultMaxSteps; a negative value disables the step ceiling.
func NewRuntime(state *game.State, maxSteps int) *Runtime {
	if maxSteps == 0 {
		maxSteps = DefaultMaxSteps
	}
	return &Runtime{state: state, maxSteps: maxSteps}
}

// ExecuteTurn runs the action script for one roll, then runs the cycle
// script once per lap the action completed. The cycle script executes
// bound to the same acting player with a dice value of zero. An empty
// cycle source skips the cycle runs.
func (r *Runtime) ExecuteTurn(action, cycle string, dice, playerIdx int) error {
	laps, err := r.Execute(action, dice, playerIdx)
	if err != nil {
		return err
	}
	if cycle == "" {
		return nil
	}
	for i := 0; i < laps; i++ {
		if _, err := r.Execute(cycle, 0, playerIdx); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs one unit of script source with the dice value bound as the
// read-only global "dice" and host calls restricted to the player at
// playerIdx. It returns the number of laps the script completed.
//
// Host call effects apply immediately and are visible to subsequent host
// calls within the same execution. On failure, mutations already applied
// through host calls are retained; there is no rollback. The turn index
// and player count are never touched by host calls, so those invariants
// hold at every failure point.
func (r *Runtime) Execute(source string, dice, playerIdx int) (int, error) {
	if playerIdx < 0 || playerIdx >= len(r.state.Players) {
		return 0, apperrors.New(apperrors.CodeScriptInvalidPlayer, "acting player index is out of range")
	}

	l := lua.NewState()
	lua.OpenLibraries(l)
	sandbox(l)

	run := &execution{state: r.state, playerIdx: playerIdx}
	run.register(l)

	l.PushInteger(dice)
	l.SetGlobal("dice")
	l.PushInteger(r.state.Players[playerIdx].ID)
	l.SetGlobal("player_id")

	if r.maxSteps > 0 {
		limitSteps(l, run, r.maxSteps)
	}

	if err := lua.LoadBuffer(l, source, "script", ""); err != nil {
		return run.laps, apperrors.Wrap(apperrors.CodeScriptCompile, "compile script", err)
	}
	if err := l.ProtectedCall(0, 0, 0); err != nil {
		code := apperrors.CodeScriptRuntime
		if run.stepLimited {
			code = apperrors.CodeScriptStepLimit
		}
		return run.laps, apperrors.Wrap(code, "run script", err)
	}
	return run.laps, nil
}

// sandbox removes interpreter facilities game scripts must not reach:
// process and file access, code loading, and raw stdout.
func sandbox(l *lua.State) {
	for _, name := range []string{"io", "os", "debug", "package", "dofile", "loadfile", "load", "loadstring", "require", "print"} {
		l.PushNil()
		l.SetGlobal(name)
	}
}

// limitSteps aborts execution with a Lua error once the instruction count
// exceeds maxSteps.
func limitSteps(l *lua.State, run *execution, maxSteps int) {
	lua.SetDebugHook(l, func(state *lua.State, _ lua.Debug) {
		run.stepLimited = true
		lua.Errorf(state, "script exceeded %d execution steps", maxSteps)
	}, lua.MaskCount, maxSteps)
}
