package snapshot

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/louisbranch/tycoon-engine/internal/board"
	"github.com/louisbranch/tycoon-engine/internal/game"
)

func testState(t *testing.T) *game.State {
	t.Helper()
	b, err := board.Parse(`
- name: Start
  type: Start
- name: Taipei
  type: Property
  price: 500000
  is_coastal: true
- name: Tax Office
  type: Tax
  amount: 300000
`)
	if err != nil {
		t.Fatalf("parse board: %v", err)
	}
	state, err := game.NewState(b, 2, 1000000)
	if err != nil {
		t.Fatalf("new state: %v", err)
	}
	return state
}

type decoded struct {
	Board []struct {
		Name      string `json:"name"`
		Type      string `json:"type"`
		Price     int64  `json:"price"`
		IsCoastal bool   `json:"is_coastal"`
	} `json:"board"`
	Players []struct {
		ID       int              `json:"id"`
		Position int              `json:"position"`
		Money    int64            `json:"money"`
		Cycles   int              `json:"cycles"`
		Counters map[string]int64 `json:"counters"`
	} `json:"players"`
	CurrentTurnIdx int      `json:"current_turn_idx"`
	Log            []string `json:"log"`
}

func TestMarshalShape(t *testing.T) {
	state := testState(t)
	state.Player(1).Position = 2
	if _, err := state.AdjustResource(1, "deeds", 3); err != nil {
		t.Fatalf("adjust: %v", err)
	}
	state.AppendLog("first")
	state.AppendLog("second")
	state.AdvanceTurn()

	raw, err := Marshal(state)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}

	var got decoded
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("snapshot does not decode: %v", err)
	}

	if len(got.Board) != 3 || got.Board[1].Name != "Taipei" || !got.Board[1].IsCoastal {
		t.Fatalf("board = %+v", got.Board)
	}
	if len(got.Players) != 2 {
		t.Fatalf("player count = %d, want 2", len(got.Players))
	}
	if got.Players[0].ID != 0 || got.Players[1].ID != 1 {
		t.Fatalf("player ids = %d, %d", got.Players[0].ID, got.Players[1].ID)
	}
	if got.Players[1].Position != 2 {
		t.Fatalf("player 1 position = %d, want 2", got.Players[1].Position)
	}
	if got.Players[1].Counters["deeds"] != 3 {
		t.Fatalf("player 1 counters = %v", got.Players[1].Counters)
	}
	if got.CurrentTurnIdx != 1 {
		t.Fatalf("current_turn_idx = %d, want 1", got.CurrentTurnIdx)
	}
	if len(got.Log) < 2 || got.Log[0] != "first" || got.Log[1] != "second" {
		t.Fatalf("log = %v", got.Log)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	state := testState(t)
	if _, err := state.AdjustResource(0, "deeds", 1); err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if _, err := state.AdjustResource(0, "tickets", 2); err != nil {
		t.Fatalf("adjust: %v", err)
	}

	first, err := Marshal(state)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	second, err := Marshal(state)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("snapshots differ:\n%s\n%s", first, second)
	}
}

func TestMarshalDoesNotMutate(t *testing.T) {
	state := testState(t)

	before, err := Marshal(state)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	if len(state.Log) != 0 {
		t.Fatalf("Marshal() appended to log: %v", state.Log)
	}
	after, err := Marshal(state)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	if !bytes.Equal(before, after) {
		t.Fatal("Marshal() must not alter state")
	}
}

func TestMarshalEmptyLogIsArray(t *testing.T) {
	state := testState(t)

	raw, err := Marshal(state)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	if !bytes.Contains(raw, []byte(`"log":[]`)) {
		t.Fatalf("empty log should encode as []: %s", raw)
	}
}
