package script

import (
	"github.com/Shopify/go-lua"

	"github.com/louisbranch/tycoon-engine/internal/board"
	"github.com/louisbranch/tycoon-engine/internal/game"
)

// execution carries the per-invocation binding between the interpreter and
// the game state: the acting player, laps completed so far, and whether
// the step ceiling fired.
type execution struct {
	state       *game.State
	playerIdx   int
	laps        int
	stepLimited bool
}

// register installs the host API as the global "game" table. This is the
// closed catalog of operations a script may call; host calls operate on
// the acting player only.
func (run *execution) register(l *lua.State) {
	l.NewTable()
	lua.SetFunctions(l, []lua.RegistryFunction{
		{Name: "position", Function: run.position},
		{Name: "move", Function: run.move},
		{Name: "warp", Function: run.warp},
		{Name: "adjust", Function: run.adjust},
		{Name: "resource", Function: run.resource},
		{Name: "log", Function: run.log},
		{Name: "tile", Function: run.tile},
		{Name: "current_tile", Function: run.currentTile},
		{Name: "find_next", Function: run.findNext},
		{Name: "coastal_tiles", Function: run.coastalTiles},
		{Name: "player_count", Function: run.playerCount},
		{Name: "board_size", Function: run.boardSize},
	}, 0)
	l.SetGlobal("game")
}

// position returns the acting player's current tile index.
func (run *execution) position(l *lua.State) int {
	l.PushInteger(run.state.Player(run.playerIdx).Position)
	return 1
}

// move moves the acting player by a relative delta and returns the new
// position. Completed laps accumulate for the cycle-script trigger.
func (run *execution) move(l *lua.State) int {
	delta := lua.CheckInteger(l, 1)
	pos, laps := run.state.MovePlayer(run.playerIdx, delta)
	run.laps += laps
	l.PushInteger(pos)
	return 1
}

// warp places the acting player on an absolute position without lap
// credit.
func (run *execution) warp(l *lua.State) int {
	pos := lua.CheckInteger(l, 1)
	if err := run.state.WarpPlayer(run.playerIdx, pos); err != nil {
		lua.Errorf(l, "warp: position %d is outside the board", pos)
		return 0
	}
	l.PushInteger(pos)
	return 1
}

// adjust adds a delta to a named resource on the acting player and
// returns the new value.
func (run *execution) adjust(l *lua.State) int {
	name := lua.CheckString(l, 1)
	delta := lua.CheckInteger(l, 2)
	value, err := run.state.AdjustResource(run.playerIdx, name, int64(delta))
	if err != nil {
		lua.Errorf(l, "adjust: resource %q is read-only", name)
		return 0
	}
	l.PushInteger(int(value))
	return 1
}

// resource reads a named resource on the acting player.
func (run *execution) resource(l *lua.State) int {
	name := lua.CheckString(l, 1)
	l.PushInteger(int(run.state.Resource(run.playerIdx, name)))
	return 1
}

// log appends one entry to the game log.
func (run *execution) log(l *lua.State) int {
	run.state.AppendLog(lua.CheckString(l, 1))
	return 0
}

// tile returns the tile at an index as a table.
func (run *execution) tile(l *lua.State) int {
	pos := lua.CheckInteger(l, 1)
	tile, ok := run.state.Board.Tile(pos)
	if !ok {
		lua.Errorf(l, "tile: position %d is outside the board", pos)
		return 0
	}
	pushTile(l, tile)
	return 1
}

// currentTile returns the tile under the acting player.
func (run *execution) currentTile(l *lua.State) int {
	tile, _ := run.state.Board.Tile(run.state.Player(run.playerIdx).Position)
	pushTile(l, tile)
	return 1
}

// findNext returns the index of the next tile of a type after the acting
// player's position, scanning circularly.
func (run *execution) findNext(l *lua.State) int {
	tileType := lua.CheckString(l, 1)
	l.PushInteger(run.state.Board.NextOfType(run.state.Player(run.playerIdx).Position, tileType))
	return 1
}

// coastalTiles returns the names of coastal tiles as an array table.
func (run *execution) coastalTiles(l *lua.State) int {
	names := run.state.Board.CoastalTiles()
	l.NewTable()
	for i, name := range names {
		l.PushString(name)
		l.RawSetInt(-2, i+1)
	}
	return 1
}

// playerCount returns the number of players in the simulation.
func (run *execution) playerCount(l *lua.State) int {
	l.PushInteger(len(run.state.Players))
	return 1
}

// boardSize returns the number of tiles on the board.
func (run *execution) boardSize(l *lua.State) int {
	l.PushInteger(run.state.Board.Size())
	return 1
}

func pushTile(l *lua.State, tile board.Tile) {
	l.NewTable()
	l.PushString(tile.Name)
	l.SetField(-2, "name")
	l.PushString(tile.Type)
	l.SetField(-2, "type")
	l.PushInteger(int(tile.Price))
	l.SetField(-2, "price")
	l.PushInteger(int(tile.Amount))
	l.SetField(-2, "amount")
	l.PushBoolean(tile.IsCoastal)
	l.SetField(-2, "is_coastal")
	l.PushBoolean(tile.IsMegacity)
	l.SetField(-2, "is_megacity")
}
