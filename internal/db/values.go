package db

import (
	"database/sql"
	"time"

	"github.com/forgeci/randparam/internal/models"
)

// CreateBoundValue records a parameter value bound for one build run and
// returns its ID.
func CreateBoundValue(d *sql.DB, definitionID int64, runID, value string, generated bool) (int64, error) {
	gen := 0
	if generated {
		gen = 1
	}
	result, err := d.Exec(
		"INSERT INTO bound_values (definition_id, run_id, value, generated, bound_at) VALUES (?, ?, ?, ?, ?)",
		definitionID, runID, value, gen, time.Now().Unix(),
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// ListBoundValues returns the values bound for a definition, newest first.
func ListBoundValues(d *sql.DB, definitionID int64) ([]models.BoundValue, error) {
	rows, err := d.Query(
		"SELECT id, definition_id, run_id, value, generated, bound_at FROM bound_values WHERE definition_id = ? ORDER BY bound_at DESC, id DESC",
		definitionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []models.BoundValue
	for rows.Next() {
		var v models.BoundValue
		var gen int
		if err := rows.Scan(&v.ID, &v.DefinitionID, &v.RunID, &v.Value, &gen, &v.BoundAt); err != nil {
			return nil, err
		}
		v.Generated = gen != 0
		values = append(values, v)
	}
	return values, rows.Err()
}
