package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// SetTypeConfig stores operator configuration for a parameter type.
// The config value is JSON-encoded before storage.
func SetTypeConfig(d *sql.DB, typeID string, config any) error {
	encoded, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	_, err = d.Exec(`
		INSERT INTO type_config (type_id, config)
		VALUES (?, ?)
		ON CONFLICT (type_id) DO UPDATE SET config = excluded.config
	`, typeID, string(encoded))
	if err != nil {
		return fmt.Errorf("upsert type config: %w", err)
	}

	return nil
}

// GetTypeConfig retrieves operator configuration for a parameter type.
// Returns (true, nil) if found and successfully decoded into out.
// Returns (false, nil) if no configuration exists.
func GetTypeConfig(d *sql.DB, typeID string, out any) (bool, error) {
	var config string
	err := d.QueryRow(
		"SELECT config FROM type_config WHERE type_id = ?",
		typeID,
	).Scan(&config)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query type config: %w", err)
	}

	if err := json.Unmarshal([]byte(config), out); err != nil {
		return false, fmt.Errorf("decode config: %w", err)
	}

	return true, nil
}

// DeleteTypeConfig removes operator configuration for a parameter type.
func DeleteTypeConfig(d *sql.DB, typeID string) error {
	_, err := d.Exec("DELETE FROM type_config WHERE type_id = ?", typeID)
	if err != nil {
		return fmt.Errorf("delete type config: %w", err)
	}

	return nil
}
