// Package board parses and holds the immutable board layout.
package board

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/louisbranch/tycoon-engine/internal/errors"
)

var (
	// ErrEmptyBoard indicates a descriptor with no tiles.
	ErrEmptyBoard = apperrors.New(apperrors.CodeBoardEmpty, "board descriptor has no tiles")
)

// Tile is a single addressable position on the board. The effect fields
// beyond Name and Type are opaque to the engine; scripts interpret them.
type Tile struct {
	Name       string `yaml:"name" json:"name"`
	Type       string `yaml:"type" json:"type"`
	Price      int64  `yaml:"price" json:"price"`
	Amount     int64  `yaml:"amount" json:"amount"`
	IsCoastal  bool   `yaml:"is_coastal" json:"is_coastal"`
	IsMegacity bool   `yaml:"is_megacity" json:"is_megacity"`
}

// Board is an ordered, non-empty, conceptually circular sequence of tiles.
// Immutable after Parse.
type Board struct {
	tiles []Tile
}

// Parse decodes a board descriptor into a Board.
//
// The descriptor is a YAML sequence of tiles (JSON documents also decode,
// YAML being a superset). Constraints: at least one tile, unique names,
// non-empty name and type per tile. Parse is a pure function of its input.
func Parse(descriptor string) (*Board, error) {
	var tiles []Tile
	if err := yaml.Unmarshal([]byte(descriptor), &tiles); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeBoardInvalidDescriptor, "decode board descriptor", err)
	}
	if len(tiles) == 0 {
		return nil, ErrEmptyBoard
	}

	seen := make(map[string]struct{}, len(tiles))
	for i, tile := range tiles {
		name := strings.TrimSpace(tile.Name)
		if name == "" {
			return nil, apperrors.New(apperrors.CodeBoardTileMissingName, fmt.Sprintf("tile at index %d has no name", i))
		}
		if strings.TrimSpace(tile.Type) == "" {
			return nil, apperrors.New(apperrors.CodeBoardTileMissingType, fmt.Sprintf("tile %q has no type", name))
		}
		if _, dup := seen[name]; dup {
			return nil, apperrors.New(apperrors.CodeBoardDuplicateTile, fmt.Sprintf("duplicate tile name %q", name))
		}
		seen[name] = struct{}{}
		tiles[i].Name = name
		tiles[i].Type = strings.TrimSpace(tile.Type)
	}

	return &Board{tiles: tiles}, nil
}

// Size returns the number of tiles on the board.
func (b *Board) Size() int {
	return len(b.tiles)
}

// Tile returns the tile at the given position.
func (b *Board) Tile(pos int) (Tile, bool) {
	if pos < 0 || pos >= len(b.tiles) {
		return Tile{}, false
	}
	return b.tiles[pos], true
}

// Tiles returns a copy of the tile list in board order.
func (b *Board) Tiles() []Tile {
	return slices.Clone(b.tiles)
}

// NextOfType returns the index of the first tile of the given type after
// from, scanning circularly and skipping from itself. When no other tile
// matches, from is returned unchanged.
func (b *Board) NextOfType(from int, tileType string) int {
	n := len(b.tiles)
	for step := 1; step < n; step++ {
		idx := (from + step) % n
		if b.tiles[idx].Type == tileType {
			return idx
		}
	}
	return from
}

// CoastalTiles returns the names of coastal tiles in board order.
func (b *Board) CoastalTiles() []string {
	var names []string
	for _, tile := range b.tiles {
		if tile.IsCoastal {
			names = append(names, tile.Name)
		}
	}
	return names
}
