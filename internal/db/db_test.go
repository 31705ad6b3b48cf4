package db

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenCreatesDatabase(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestMigrationsApplied(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer func() { _ = db.Close() }()

	tables := []string{"schema_migrations", "api_keys", "parameter_definitions", "bound_values", "type_config"}
	for _, table := range tables {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s not found: %v", table, err)
		}
	}
}

func TestForeignKeysEnabled(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer func() { _ = db.Close() }()

	var fkEnabled int
	err = db.QueryRow("PRAGMA foreign_keys").Scan(&fkEnabled)
	if err != nil {
		t.Fatalf("PRAGMA foreign_keys failed: %v", err)
	}
	if fkEnabled != 1 {
		t.Error("foreign keys not enabled")
	}
}

func TestCascadeDelete(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer func() { _ = db.Close() }()

	defID, err := CreateDefinition(db, "RELEASE_TAG", "randomstring", nil, nil)
	if err != nil {
		t.Fatalf("create definition: %v", err)
	}

	if _, err := CreateBoundValue(db, defID, "run-1", "ABCDEFGH1234", true); err != nil {
		t.Fatalf("create bound value: %v", err)
	}

	if err := DeleteDefinition(db, "RELEASE_TAG"); err != nil {
		t.Fatalf("delete definition: %v", err)
	}

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM bound_values WHERE definition_id = ?", defID).Scan(&count)
	if err != nil {
		t.Fatalf("count bound values: %v", err)
	}
	if count != 0 {
		t.Errorf("bound values not cascaded, %d remain", count)
	}
}
