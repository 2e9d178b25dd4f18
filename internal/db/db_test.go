// SPDX-License-Identifier: MIT
package db

import (
	"path/filepath"
	"testing"

	"github.com/thatcatcamp/huewheel/internal/models"
)

func TestInitDBSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "library.db")

	if err := InitDB("sqlite", path); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	defer SetDB(nil)

	if GetDB() == nil {
		t.Fatal("expected DB to be set")
	}
	if !GetDB().Migrator().HasTable(&models.SavedPalette{}) {
		t.Error("saved_palettes table not created")
	}
	if !GetDB().Migrator().HasColumn(&models.SavedEntry{}, "position") {
		t.Error("position column not found in saved_entries table")
	}
}

func TestInitDBUnsupported(t *testing.T) {
	if err := InitDB("postgres", "whatever"); err == nil {
		t.Error("expected error for unsupported database type")
	}
}
