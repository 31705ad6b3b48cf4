package paramtypes

import (
	"context"
	"database/sql"

	"github.com/forgeci/randparam/internal/db"
	"github.com/forgeci/randparam/internal/models"
)

// SQLiteStore implements the Store and TypeConfigView interfaces using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLiteStore with the given database connection.
func NewSQLiteStore(database *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: database}
}

// ResolveDefinition looks up a parameter definition by name.
func (s *SQLiteStore) ResolveDefinition(_ context.Context, name string) (*models.Definition, bool, error) {
	def, err := db.GetDefinitionByName(s.db, name)
	if err != nil {
		return nil, false, err
	}
	if def == nil {
		return nil, false, nil
	}
	return def, true, nil
}

// RecordValue persists a bound parameter value and returns its ID.
func (s *SQLiteStore) RecordValue(_ context.Context, definitionID int64, runID, value string, generated bool) (int64, error) {
	return db.CreateBoundValue(s.db, definitionID, runID, value, generated)
}

// Get retrieves operator configuration for a parameter type.
func (s *SQLiteStore) Get(_ context.Context, typeID string, out any) (bool, error) {
	return db.GetTypeConfig(s.db, typeID, out)
}
