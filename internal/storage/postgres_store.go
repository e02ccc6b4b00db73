package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"

	"wayfarer/internal/models"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS trips (
	id          TEXT PRIMARY KEY,
	destination TEXT NOT NULL,
	start_date  TEXT NOT NULL,
	end_date    TEXT NOT NULL,
	pace        TEXT NOT NULL,
	spent       DOUBLE PRECISION NOT NULL,
	fingerprint TEXT NOT NULL,
	created_at  TEXT NOT NULL,
	payload     JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_trips_destination ON trips (destination);
CREATE INDEX IF NOT EXISTS idx_trips_start_date ON trips (start_date);
`

type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		connStr: connStr,
	}
}

func (s *PostgresStore) Init() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := s.db.Exec(postgresSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *PostgresStore) Load() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return nil
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) SaveItinerary(it models.Itinerary) error {
	if it.ID == "" {
		return fmt.Errorf("cannot save an itinerary without an id")
	}

	payload, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("failed to marshal itinerary: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO trips (
			id, destination, start_date, end_date, pace, spent, fingerprint, created_at, payload
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			destination = EXCLUDED.destination,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			pace = EXCLUDED.pace,
			spent = EXCLUDED.spent,
			fingerprint = EXCLUDED.fingerprint,
			created_at = EXCLUDED.created_at,
			payload = EXCLUDED.payload`,
		it.ID, it.Destination, it.StartDate, it.EndDate, it.Pace, it.Spent,
		fmt.Sprintf("%d", it.Fingerprint), it.CreatedAt, string(payload),
	)
	return err
}

func (s *PostgresStore) GetItinerary(id string) (models.Itinerary, error) {
	var payload string
	err := s.db.QueryRow("SELECT payload FROM trips WHERE id = $1", id).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Itinerary{}, fmt.Errorf("trip with id %s not found", id)
		}
		return models.Itinerary{}, err
	}
	return unmarshalItinerary(payload)
}

func (s *PostgresStore) GetAllItineraries() ([]models.Itinerary, error) {
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

func (s *PostgresStore) DeleteItinerary(id string) error {
	result, err := s.db.Exec("DELETE FROM trips WHERE id = $1", id)
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

func (s *PostgresStore) GetConfigPath() string {
	return s.connStr
}
