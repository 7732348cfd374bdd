package storage

import (
	"fmt"
	"time"
)

// Voyage is one finished run in the voyage log.
type Voyage struct {
	ID        int64
	GameID    string
	SeaState  string
	Player    string // SSH username, empty for local play
	Score     int
	Collected int
	Distance  float64 // world units sailed
	Duration  float64 // seconds
	CreatedAt time.Time
}

// VoyageTotals aggregates the voyage log of one game mode.
type VoyageTotals struct {
	GameID    string
	Voyages   int
	Collected int
	Distance  float64
	Duration  float64
	BestScore int
}

// SaveVoyage appends a voyage to the log.
// Returns the ID of the inserted record.
func (s *Store) SaveVoyage(v Voyage) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO voyages
		 (game_id, sea_state, player, score, collected, distance, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		v.GameID, v.SeaState, v.Player, v.Score, v.Collected, v.Distance, v.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save voyage: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentVoyages returns the latest voyages, newest first. An empty gameID
// returns voyages of every mode.
func (s *Store) RecentVoyages(gameID string, limit int) ([]Voyage, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, sea_state, player, score, collected, distance, duration_secs, created_at
		 FROM voyages
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query voyages: %w", err)
	}
	defer rows.Close()

	var voyages []Voyage
	for rows.Next() {
		var v Voyage
		var createdAt any
		if err := rows.Scan(&v.ID, &v.GameID, &v.SeaState, &v.Player, &v.Score,
			&v.Collected, &v.Distance, &v.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		v.CreatedAt = parseTime(createdAt)
		voyages = append(voyages, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return voyages, nil
}

// VoyageTotals sums the voyage log for a game mode.
func (s *Store) VoyageTotals(gameID string) (VoyageTotals, error) {
	t := VoyageTotals{GameID: gameID}
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(collected), 0), COALESCE(SUM(distance), 0),
		        COALESCE(SUM(duration_secs), 0), COALESCE(MAX(score), 0)
		 FROM voyages WHERE game_id = ?`,
		gameID,
	).Scan(&t.Voyages, &t.Collected, &t.Distance, &t.Duration, &t.BestScore)
	if err != nil {
		return t, fmt.Errorf("storage: cannot sum voyages: %w", err)
	}
	return t, nil
}
