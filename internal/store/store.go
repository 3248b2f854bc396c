package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ssoksound/surveywizard/internal/model"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS drafts (
		session_key TEXT PRIMARY KEY,
		format_version TEXT NOT NULL,
		saved_at DATETIME NOT NULL,
		state TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS submissions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_key TEXT NOT NULL,
		brand_name TEXT NOT NULL,
		industry TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		service TEXT NOT NULL,
		payload TEXT NOT NULL,
		forwarded INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		display_name TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS auth_sessions (
		id TEXT PRIMARY KEY,
		user_id INTEGER NOT NULL,
		created_at DATETIME NOT NULL,
		expires_at DATETIME NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// InsertSubmission records a completed survey locally before forwarding.
func (s *Store) InsertSubmission(sub model.Submission) (int64, error) {
	payload, err := json.Marshal(sub.Payload)
	if err != nil {
		return 0, fmt.Errorf("marshal payload: %w", err)
	}
	res, err := s.db.Exec(
		`INSERT INTO submissions (session_key, brand_name, industry, email, service, payload, forwarded, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.SessionKey, sub.Profile.BrandName, sub.Profile.Industry, sub.Profile.Email,
		sub.Service, string(payload), sub.Forwarded, time.Now(),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// MarkSubmissionForwarded records a successful forward.
func (s *Store) MarkSubmissionForwarded(id int64) error {
	_, err := s.db.Exec(`UPDATE submissions SET forwarded = 1 WHERE id = ?`, id)
	return err
}

// GetSubmission returns a submission by ID, or nil if not found.
func (s *Store) GetSubmission(id int64) (*model.Submission, error) {
	var sub model.Submission
	var payload string
	err := s.db.QueryRow(
		`SELECT id, session_key, brand_name, industry, email, service, payload, forwarded, created_at
		 FROM submissions WHERE id = ?`, id,
	).Scan(&sub.ID, &sub.SessionKey, &sub.Profile.BrandName, &sub.Profile.Industry,
		&sub.Profile.Email, &sub.Service, &payload, &sub.Forwarded, &sub.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(payload), &sub.Payload); err != nil {
		return nil, fmt.Errorf("unmarshal payload: %w", err)
	}
	return &sub, nil
}

// ListSubmissions returns all submissions, newest first.
func (s *Store) ListSubmissions() ([]model.Submission, error) {
	rows, err := s.db.Query(
		`SELECT id, session_key, brand_name, industry, email, service, payload, forwarded, created_at
		 FROM submissions ORDER BY id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var subs []model.Submission
	for rows.Next() {
		var sub model.Submission
		var payload string
		if err := rows.Scan(&sub.ID, &sub.SessionKey, &sub.Profile.BrandName, &sub.Profile.Industry,
			&sub.Profile.Email, &sub.Service, &payload, &sub.Forwarded, &sub.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(payload), &sub.Payload); err != nil {
			return nil, fmt.Errorf("unmarshal payload: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}
