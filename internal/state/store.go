// Package state persists application records as a flat key to JSON-blob
// namespace inside the sqlite database. Every record the app owns lives under
// exactly one key; there are no cross-key references at the storage level.
package state

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// Persisted keys. LogKey derives the per-date daily log key.
const (
	KeyAuth       = "auth"
	KeyTheme      = "theme"
	KeyProfile    = "profile"
	KeyGoals      = "goals"
	KeyMedication = "medication"
	KeyHistory    = "history"
	KeyFasting    = "fasting"
	KeyShopping   = "shopping"
	KeyGeminiKey  = "config:gemini_api_key"

	logKeyPrefix = "log:"
)

func LogKey(date string) string {
	return logKeyPrefix + date
}

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Get(key string) (string, bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, fmt.Errorf("state key is required")
	}
	var value string
	err := s.db.QueryRow(`SELECT value FROM app_state WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get state %q: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) Set(key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("state key is required")
	}
	_, err := s.db.Exec(`
INSERT INTO app_state(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, value)
	if err != nil {
		return fmt.Errorf("set state %q: %w", key, err)
	}
	return nil
}

func (s *Store) Remove(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("state key is required")
	}
	if _, err := s.db.Exec(`DELETE FROM app_state WHERE key = ?`, key); err != nil {
		return fmt.Errorf("remove state %q: %w", key, err)
	}
	return nil
}

// Clear wipes the whole namespace. Logout semantics.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM app_state`); err != nil {
		return fmt.Errorf("clear state: %w", err)
	}
	return nil
}

// GetJSON unmarshals the value stored under key into dst. A missing key
// reports found=false. A stored value that no longer parses is treated the
// same way: the caller falls back to defaults instead of failing the load.
func (s *Store) GetJSON(key string, dst any) (bool, error) {
	raw, found, err := s.Get(key)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return false, fmt.Errorf("get state %q: destination must be a non-nil pointer", key)
	}
	// Unmarshal fills its destination field by field before reporting a type
	// error; decode into a scratch value so a corrupt record leaves dst
	// untouched.
	tmp := reflect.New(v.Elem().Type())
	if err := json.Unmarshal([]byte(raw), tmp.Interface()); err != nil {
		return false, nil
	}
	v.Elem().Set(tmp.Elem())
	return true, nil
}

func (s *Store) SetJSON(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal state %q: %w", key, err)
	}
	return s.Set(key, string(raw))
}
