package db

import (
	"database/sql"
	"time"

	"github.com/forgeci/randparam/internal/models"
)

// CreateDefinition inserts a new parameter definition and returns its ID.
func CreateDefinition(d *sql.DB, name, typeID string, description, failedValidationMessage *string) (int64, error) {
	result, err := d.Exec(
		"INSERT INTO parameter_definitions (name, type, description, failed_validation_message, created_at) VALUES (?, ?, ?, ?, ?)",
		name, typeID, description, failedValidationMessage, time.Now().Unix(),
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetDefinitionByName retrieves a parameter definition by its name.
func GetDefinitionByName(d *sql.DB, name string) (*models.Definition, error) {
	row := d.QueryRow(
		"SELECT id, name, type, description, failed_validation_message, created_at FROM parameter_definitions WHERE name = ?",
		name,
	)
	var def models.Definition
	err := row.Scan(&def.ID, &def.Name, &def.Type, &def.Description, &def.FailedValidationMessage, &def.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &def, nil
}

// DeleteDefinition removes a parameter definition by name. Bound values
// cascade.
func DeleteDefinition(d *sql.DB, name string) error {
	_, err := d.Exec("DELETE FROM parameter_definitions WHERE name = ?", name)
	return err
}

type DefinitionWithCount struct {
	models.Definition
	ValueCount int
}

// ListDefinitions returns all parameter definitions with their bound value
// counts, newest first.
func ListDefinitions(d *sql.DB) ([]DefinitionWithCount, error) {
	rows, err := d.Query(`
		SELECT p.id, p.name, p.type, p.description, p.failed_validation_message, p.created_at, COUNT(v.id) as value_count
		FROM parameter_definitions p
		LEFT JOIN bound_values v ON v.definition_id = p.id
		GROUP BY p.id
		ORDER BY p.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var defs []DefinitionWithCount
	for rows.Next() {
		var def DefinitionWithCount
		if err := rows.Scan(&def.ID, &def.Name, &def.Type, &def.Description, &def.FailedValidationMessage, &def.CreatedAt, &def.ValueCount); err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, rows.Err()
}
