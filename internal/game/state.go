// Package game holds the mutable runtime state of a simulation instance:
// players, the current turn index, and the append-only game log.
//
// State is mutated only through its methods. Scripts reach those methods
// through the host API in the script package; the turn package owns the
// turn index advance.
package game

import (
	"fmt"

	"github.com/louisbranch/tycoon-engine/internal/board"
	apperrors "github.com/louisbranch/tycoon-engine/internal/errors"
)

var (
	// ErrInvalidPlayerCount indicates a player count below one.
	ErrInvalidPlayerCount = apperrors.New(apperrors.CodeConfigInvalidPlayerCount, "player count must be at least one")
	// ErrMissingBoard indicates state construction without a board.
	ErrMissingBoard = apperrors.New(apperrors.CodeConfigMissingBoard, "board is required")
	// ErrPositionOutOfRange indicates an absolute move outside the board.
	ErrPositionOutOfRange = apperrors.New(apperrors.CodePositionOutOfRange, "position is outside the board")
	// ErrResourceReadOnly indicates an adjust on a resource the engine owns.
	ErrResourceReadOnly = apperrors.New(apperrors.CodeResourceReadOnly, "resource is read-only")
)

// Resource names with engine-mandated backing fields. Any other name
// passed to AdjustResource lands in the player's counter map.
const (
	ResourceMoney  = "money"
	ResourceCycles = "cycles"
)

// Player is a participant with a position on the board and mutable
// resource state. Players are created once at state construction and are
// never destroyed; only mutated.
type Player struct {
	ID       int
	Position int
	Money    int64
	Cycles   int
	Counters map[string]int64
}

// State is the mutable runtime state of one simulation instance. It owns
// the players and the log, and holds a non-owning reference to the
// immutable board.
type State struct {
	Board       *board.Board
	Players     []Player
	Log         []string
	CurrentTurn int
}

// NewState allocates runtime state for playerCount players, all placed on
// tile zero with the given starting money. Player identifiers are stable
// and zero-indexed; slice order is turn order.
func NewState(b *board.Board, playerCount int, startingMoney int64) (*State, error) {
	if b == nil {
		return nil, ErrMissingBoard
	}
	if playerCount < 1 {
		return nil, ErrInvalidPlayerCount
	}

	players := make([]Player, playerCount)
	for i := range players {
		players[i] = Player{ID: i, Money: startingMoney}
	}

	return &State{
		Board:   b,
		Players: players,
	}, nil
}

// Player returns the player record at the given turn-order index.
func (s *State) Player(idx int) *Player {
	return &s.Players[idx]
}

// AppendLog appends one entry to the game log. Entries are never removed
// or reordered.
func (s *State) AppendLog(entry string) {
	s.Log = append(s.Log, entry)
}

// MovePlayer moves a player by delta tiles with modulo wraparound and
// returns the new position along with the number of laps completed by the
// move. Completed laps are credited to the player's cycle count. The move
// is recorded in the game log.
func (s *State) MovePlayer(idx, delta int) (int, int) {
	player := &s.Players[idx]
	size := s.Board.Size()

	raw := player.Position + delta
	newPos := ((raw % size) + size) % size
	laps := 0
	if delta > 0 {
		laps = (player.Position + delta) / size
	}

	player.Position = newPos
	player.Cycles += laps

	tile, _ := s.Board.Tile(newPos)
	s.AppendLog(fmt.Sprintf("Player %d moved to %s.", player.ID, tile.Name))
	if laps > 0 {
		s.AppendLog(fmt.Sprintf("Player %d completed a lap.", player.ID))
	}
	return newPos, laps
}

// WarpPlayer places a player on an absolute position without crediting a
// lap. The move is recorded in the game log.
func (s *State) WarpPlayer(idx, pos int) error {
	if pos < 0 || pos >= s.Board.Size() {
		return ErrPositionOutOfRange
	}
	player := &s.Players[idx]
	player.Position = pos

	tile, _ := s.Board.Tile(pos)
	s.AppendLog(fmt.Sprintf("Player %d warped to %s.", player.ID, tile.Name))
	return nil
}

// AdjustResource adds delta to a named resource on a player and returns
// the new value. ResourceMoney adjusts the money field; ResourceCycles is
// engine-owned and read-only; any other name adjusts a counter, creating
// it at zero on first use.
func (s *State) AdjustResource(idx int, name string, delta int64) (int64, error) {
	player := &s.Players[idx]
	switch name {
	case ResourceMoney:
		player.Money += delta
		return player.Money, nil
	case ResourceCycles:
		return 0, ErrResourceReadOnly
	default:
		if player.Counters == nil {
			player.Counters = make(map[string]int64)
		}
		player.Counters[name] += delta
		return player.Counters[name], nil
	}
}

// Resource returns the value of a named resource on a player. Unknown
// counter names read as zero.
func (s *State) Resource(idx int, name string) int64 {
	player := &s.Players[idx]
	switch name {
	case ResourceMoney:
		return player.Money
	case ResourceCycles:
		return int64(player.Cycles)
	default:
		return player.Counters[name]
	}
}

// AdvanceTurn moves the turn index to the next player in turn order,
// wrapping after the last player, and records the handoff in the log.
func (s *State) AdvanceTurn() {
	s.CurrentTurn = (s.CurrentTurn + 1) % len(s.Players)
	s.AppendLog("--- End of Turn ---")
	s.AppendLog(fmt.Sprintf("It is now Player %d's turn.", s.Players[s.CurrentTurn].ID))
}
