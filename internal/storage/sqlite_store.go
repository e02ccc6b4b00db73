package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"wayfarer/internal/models"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS trips (
	id          TEXT PRIMARY KEY,
	destination TEXT NOT NULL,
	start_date  TEXT NOT NULL,
	end_date    TEXT NOT NULL,
	pace        TEXT NOT NULL,
	spent       REAL NOT NULL,
	fingerprint TEXT NOT NULL,
	created_at  TEXT NOT NULL,
	payload     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_trips_destination ON trips (destination);
CREATE INDEX IF NOT EXISTS idx_trips_start_date ON trips (start_date);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'wayfarer init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) SaveItinerary(it models.Itinerary) error {
	if it.ID == "" {
		return fmt.Errorf("cannot save an itinerary without an id")
	}

	payload, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("failed to marshal itinerary: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO trips (
			id, destination, start_date, end_date, pace, spent, fingerprint, created_at, payload
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		it.ID, it.Destination, it.StartDate, it.EndDate, it.Pace, it.Spent,
		fmt.Sprintf("%d", it.Fingerprint), it.CreatedAt, string(payload),
	)
	return err
}

func (s *SQLiteStore) GetItinerary(id string) (models.Itinerary, error) {
	var payload string
	err := s.db.QueryRow("SELECT payload FROM trips WHERE id = ?", id).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Itinerary{}, fmt.Errorf("trip with id %s not found", id)
		}
		return models.Itinerary{}, err
	}
	return unmarshalItinerary(payload)
}

func (s *SQLiteStore) GetAllItineraries() ([]models.Itinerary, error) {
	rows, err := s.db.Query("SELECT payload FROM trips ORDER BY start_date, created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []models.Itinerary
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		it, err := unmarshalItinerary(payload)
		if err != nil {
			return nil, err
		}
		trips = append(trips, it)
	}
	return trips, rows.Err()
}

func (s *SQLiteStore) DeleteItinerary(id string) error {
	result, err := s.db.Exec("DELETE FROM trips WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("trip with id %s not found", id)
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func unmarshalItinerary(payload string) (models.Itinerary, error) {
	var it models.Itinerary
	if err := json.Unmarshal([]byte(payload), &it); err != nil {
		return models.Itinerary{}, fmt.Errorf("failed to unmarshal itinerary: %w", err)
	}
	return it, nil
}
