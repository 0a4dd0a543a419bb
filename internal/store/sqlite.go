// Package store provides durable implementations of the repository interfaces.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/rmncha/health-assistant/backend/internal/model/directory"
	"github.com/rmncha/health-assistant/backend/internal/model/registration"
)

// SQLiteStore implements registration.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (and if needed creates) the database at dbPath.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS registrations (
		id TEXT PRIMARY KEY,
		seq INTEGER NOT NULL,
		name TEXT NOT NULL,
		age INTEGER NOT NULL,
		phone TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL,
		district TEXT NOT NULL,
		state TEXT NOT NULL,
		conceive_date TEXT NOT NULL,
		additional_info TEXT NOT NULL DEFAULT '',
		preferred_language TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_registrations_seq ON registrations(seq);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save inserts a registration.
func (s *SQLiteStore) Save(ctx context.Context, r registration.Registration) error {
	query := `
		INSERT INTO registrations (
			id, seq, name, age, phone, email, address, district, state,
			conceive_date, additional_info, preferred_language, created_at
		) VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM registrations), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		r.ID, r.Name, r.Age, r.Phone, r.Email, r.Address, r.District, r.State,
		r.ConceiveDate.UTC().Format(time.RFC3339Nano), r.AdditionalInfo, r.PreferredLanguage,
		r.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert registration: %w", err)
	}
	return nil
}

const selectColumns = `
	SELECT id, name, age, phone, email, address, district, state,
	       conceive_date, additional_info, preferred_language, created_at
	FROM registrations`

// List returns registrations in submission order.
func (s *SQLiteStore) List(ctx context.Context) ([]registration.Registration, error) {
	rows, err := s.db.QueryContext(ctx, selectColumns+` ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query registrations: %w", err)
	}
	defer rows.Close()

	out := make([]registration.Registration, 0)
	for rows.Next() {
		r, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate registrations: %w", err)
	}
	return out, nil
}

// FindByID retrieves a registration by id.
func (s *SQLiteStore) FindByID(ctx context.Context, id string) (registration.Registration, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	r, err := scanRegistration(row)
	if errors.Is(err, sql.ErrNoRows) {
		return registration.Registration{}, directory.ErrNotFound
	}
	return r, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRegistration(row scanner) (registration.Registration, error) {
	var r registration.Registration
	var conceived, created string

	err := row.Scan(
		&r.ID, &r.Name, &r.Age, &r.Phone, &r.Email, &r.Address, &r.District, &r.State,
		&conceived, &r.AdditionalInfo, &r.PreferredLanguage, &created,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("scan registration row: %w", err)
	}

	if r.ConceiveDate, err = time.Parse(time.RFC3339Nano, conceived); err != nil {
		return r, fmt.Errorf("parse conceive_date: %w", err)
	}
	if r.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return r, fmt.Errorf("parse created_at: %w", err)
	}
	return r, nil
}
