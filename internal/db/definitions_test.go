package db

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestCreateAndGetDefinition(t *testing.T) {
	db := openTestDB(t)

	desc := "random build label"
	msg := "value is too short"
	id, err := CreateDefinition(db, "BUILD_LABEL", "randomstring", &desc, &msg)
	if err != nil {
		t.Fatalf("CreateDefinition failed: %v", err)
	}
	if id == 0 {
		t.Error("expected non-zero definition ID")
	}

	def, err := GetDefinitionByName(db, "BUILD_LABEL")
	if err != nil {
		t.Fatalf("GetDefinitionByName failed: %v", err)
	}
	if def == nil {
		t.Fatal("definition not found")
	}
	if def.Type != "randomstring" {
		t.Errorf("type = %q, want %q", def.Type, "randomstring")
	}
	if def.Description == nil || *def.Description != desc {
		t.Errorf("description = %v, want %q", def.Description, desc)
	}
	if def.FailedValidationMessage == nil || *def.FailedValidationMessage != msg {
		t.Errorf("failed validation message = %v, want %q", def.FailedValidationMessage, msg)
	}
}

func TestGetDefinitionByNameMissing(t *testing.T) {
	db := openTestDB(t)

	def, err := GetDefinitionByName(db, "NO_SUCH_PARAM")
	if err != nil {
		t.Fatalf("GetDefinitionByName failed: %v", err)
	}
	if def != nil {
		t.Errorf("expected nil, got %+v", def)
	}
}

func TestCreateDefinitionDuplicateName(t *testing.T) {
	db := openTestDB(t)

	if _, err := CreateDefinition(db, "BUILD_LABEL", "randomstring", nil, nil); err != nil {
		t.Fatalf("CreateDefinition failed: %v", err)
	}
	if _, err := CreateDefinition(db, "BUILD_LABEL", "randomstring", nil, nil); err == nil {
		t.Error("expected error for duplicate definition name")
	}
}

func TestListDefinitionsWithCounts(t *testing.T) {
	db := openTestDB(t)

	idA, err := CreateDefinition(db, "PARAM_A", "randomstring", nil, nil)
	if err != nil {
		t.Fatalf("create PARAM_A: %v", err)
	}
	if _, err := CreateDefinition(db, "PARAM_B", "randomstring", nil, nil); err != nil {
		t.Fatalf("create PARAM_B: %v", err)
	}

	for i, v := range []string{"AAAA1111BBBB", "CCCC2222DDDD"} {
		if _, err := CreateBoundValue(db, idA, "run-"+string(rune('a'+i)), v, true); err != nil {
			t.Fatalf("create bound value: %v", err)
		}
	}

	defs, err := ListDefinitions(db)
	if err != nil {
		t.Fatalf("ListDefinitions failed: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("got %d definitions, want 2", len(defs))
	}

	counts := make(map[string]int, len(defs))
	for _, d := range defs {
		counts[d.Name] = d.ValueCount
	}
	if counts["PARAM_A"] != 2 {
		t.Errorf("PARAM_A value count = %d, want 2", counts["PARAM_A"])
	}
	if counts["PARAM_B"] != 0 {
		t.Errorf("PARAM_B value count = %d, want 0", counts["PARAM_B"])
	}
}

func TestListBoundValues(t *testing.T) {
	db := openTestDB(t)

	id, err := CreateDefinition(db, "BUILD_LABEL", "randomstring", nil, nil)
	if err != nil {
		t.Fatalf("CreateDefinition failed: %v", err)
	}

	if _, err := CreateBoundValue(db, id, "run-1", "AAAA1111BBBB", true); err != nil {
		t.Fatalf("create bound value: %v", err)
	}
	if _, err := CreateBoundValue(db, id, "run-2", "custom-value", false); err != nil {
		t.Fatalf("create bound value: %v", err)
	}

	values, err := ListBoundValues(db, id)
	if err != nil {
		t.Fatalf("ListBoundValues failed: %v", err)
	}
	if len(values) != 2 {
		t.Fatalf("got %d values, want 2", len(values))
	}

	byRun := make(map[string]bool, len(values))
	for _, v := range values {
		byRun[v.RunID] = v.Generated
	}
	if !byRun["run-1"] {
		t.Error("run-1 should be marked generated")
	}
	if byRun["run-2"] {
		t.Error("run-2 should not be marked generated")
	}
}
