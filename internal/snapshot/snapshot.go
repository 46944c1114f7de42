// Package snapshot renders deterministic JSON snapshots of game state for
// external consumption.
package snapshot

import (
	"encoding/json"

	"github.com/louisbranch/tycoon-engine/internal/board"
	"github.com/louisbranch/tycoon-engine/internal/game"
)

// The snapshot document shape is a stable contract: board tiles in board
// order, players in turn order, the turn index, and the full game log.
// Field names are snake_case.
type view struct {
	Board          []board.Tile `json:"board"`
	Players        []playerView `json:"players"`
	CurrentTurnIdx int          `json:"current_turn_idx"`
	Log            []string     `json:"log"`
}

type playerView struct {
	ID       int              `json:"id"`
	Position int              `json:"position"`
	Money    int64            `json:"money"`
	Cycles   int              `json:"cycles"`
	Counters map[string]int64 `json:"counters,omitempty"`
}

// Marshal encodes the state as JSON. It is side-effect free, callable at
// any point in the turn cycle, and deterministic: identical state yields
// identical bytes.
func Marshal(state *game.State) ([]byte, error) {
	players := make([]playerView, len(state.Players))
	for i, player := range state.Players {
		players[i] = playerView{
			ID:       player.ID,
			Position: player.Position,
			Money:    player.Money,
			Cycles:   player.Cycles,
			Counters: player.Counters,
		}
	}

	log := state.Log
	if log == nil {
		log = []string{}
	}

	return json.Marshal(view{
		Board:          state.Board.Tiles(),
		Players:        players,
		CurrentTurnIdx: state.CurrentTurn,
		Log:            log,
	})
}
