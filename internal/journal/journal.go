// Package journal records per-turn engine snapshots for later inspection.
// The engine core holds no storage; journaling is a driver-level concern.
package journal

import (
	"context"
	"time"
)

// Entry is one recorded turn: who rolled what, and the snapshot the
// engine produced after the action resolved.
type Entry struct {
	// Turn is the sequential turn number, starting at 1.
	Turn int
	// PlayerID is the acting player's identifier.
	PlayerID int
	// Dice is the dice value the caller supplied for the roll.
	Dice int
	// Snapshot is the JSON snapshot taken after the action resolved.
	Snapshot []byte
	// CreatedAt is when the entry was recorded.
	CreatedAt time.Time
}

// Store persists turn entries in append order.
type Store interface {
	Append(ctx context.Context, entry Entry) error
	List(ctx context.Context) ([]Entry, error)
}
