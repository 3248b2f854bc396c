package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ssoksound/surveywizard/internal/model"
)

// SaveDraft upserts the snapshot for a session key, last write wins.
func (s *Store) SaveDraft(key string, snap model.DraftSnapshot) error {
	state, err := json.Marshal(snap.State)
	if err != nil {
		return fmt.Errorf("marshal draft state: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO drafts (session_key, format_version, saved_at, state)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(session_key) DO UPDATE SET format_version = ?, saved_at = ?, state = ?`,
		key, snap.FormatVersion, snap.SavedAt, string(state),
		snap.FormatVersion, snap.SavedAt, string(state),
	)
	return err
}

// LoadDraft returns the snapshot for a session key, or nil when no
// honored draft exists. A stale or version-mismatched row is deleted on
// the spot so it is never offered again.
func (s *Store) LoadDraft(key string) (*model.DraftSnapshot, error) {
	var snap model.DraftSnapshot
	var state string
	err := s.db.QueryRow(
		`SELECT format_version, saved_at, state FROM drafts WHERE session_key = ?`, key,
	).Scan(&snap.FormatVersion, &snap.SavedAt, &state)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !snap.Fresh(time.Now()) {
		_ = s.DeleteDraft(key)
		return nil, nil
	}
	if err := json.Unmarshal([]byte(state), &snap.State); err != nil {
		_ = s.DeleteDraft(key)
		return nil, fmt.Errorf("unmarshal draft state: %w", err)
	}
	return &snap, nil
}

// HasValidDraft probes freshness without deserializing the state blob.
func (s *Store) HasValidDraft(key string) (bool, error) {
	var version string
	var savedAt time.Time
	err := s.db.QueryRow(
		`SELECT format_version, saved_at FROM drafts WHERE session_key = ?`, key,
	).Scan(&version, &savedAt)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	snap := model.DraftSnapshot{FormatVersion: version, SavedAt: savedAt}
	return snap.Fresh(time.Now()), nil
}

// DeleteDraft removes the draft row for a session key.
func (s *Store) DeleteDraft(key string) error {
	_, err := s.db.Exec(`DELETE FROM drafts WHERE session_key = ?`, key)
	return err
}

// CleanupExpiredDrafts removes all drafts past their validity window.
func (s *Store) CleanupExpiredDrafts() error {
	_, err := s.db.Exec(`DELETE FROM drafts WHERE saved_at < ?`, time.Now().Add(-model.DraftTTL))
	return err
}
