package migrations

import (
	"io/fs"
	"testing"
)

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(FS, ".")
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("expected migrations to be embedded")
	}
	if entries[0].Name() != "0001_create_turn_journal.sql" {
		t.Fatalf("first migration = %s, want 0001_create_turn_journal.sql", entries[0].Name())
	}
}
