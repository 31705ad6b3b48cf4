// Package models defines the database entity types.
package models

// APIKey represents an API key record in the database.
type APIKey struct {
	ID        int64
	KeyPrefix string
	KeyHash   []byte
	CreatedAt int64
	RevokedAt *int64
}

// Definition represents a build parameter definition record.
type Definition struct {
	ID                      int64
	Name                    string
	Type                    string
	Description             *string
	FailedValidationMessage *string
	CreatedAt               int64
}

// BoundValue represents a parameter value bound for one build run.
type BoundValue struct {
	ID           int64
	DefinitionID int64
	RunID        string
	Value        string
	Generated    bool
	BoundAt      int64
}
