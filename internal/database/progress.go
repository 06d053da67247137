// internal/database/progress.go
package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/royalehaus/royalehaus/internal/progress"
)

// LoadProgress returns the stored snapshot for the user, or a zero
// snapshot if none exists yet.
func LoadProgress(ctx context.Context, userID uuid.UUID) (progress.Snapshot, error) {
	var raw []byte
	q := `SELECT snapshot FROM progress_snapshots WHERE user_id=$1`
	err := DB.QueryRow(ctx, q, userID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return progress.Snapshot{}, nil
	}
	if err != nil {
		return progress.Snapshot{}, fmt.Errorf("failed to load progress for %s: %w", userID, err)
	}

	var snap progress.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return progress.Snapshot{}, fmt.Errorf("stored progress for %s is corrupt: %w", userID, err)
	}
	return snap, nil
}

// MergeProgress merges the client snapshot into the stored one and
// persists the result, all inside a transaction holding a row lock on
// the user's document so concurrent syncs from two devices serialize.
// The merged snapshot is returned for the client to replace its cache
// with.
func MergeProgress(ctx context.Context, userID uuid.UUID, client progress.Snapshot) (progress.Snapshot, error) {
	var merged progress.Snapshot
	err := pgx.BeginTxFunc(ctx, DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		var server progress.Snapshot
		var raw []byte
		q := `SELECT snapshot FROM progress_snapshots WHERE user_id=$1 FOR UPDATE`
		err := tx.QueryRow(ctx, q, userID).Scan(&raw)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			// first sync for this user
		case err != nil:
			return err
		default:
			if err := json.Unmarshal(raw, &server); err != nil {
				return fmt.Errorf("stored progress is corrupt: %w", err)
			}
		}

		merged = progress.Merge(server, client)
		data, err := json.Marshal(merged)
		if err != nil {
			return err
		}

		upsert := `
			INSERT INTO progress_snapshots (user_id, snapshot, updated_at)
			VALUES ($1, $2, now())
			ON CONFLICT (user_id)
			DO UPDATE SET snapshot=$2, updated_at=now()
		`
		_, err = tx.Exec(ctx, upsert, userID, data)
		return err
	})
	if err != nil {
		return progress.Snapshot{}, fmt.Errorf("failed to merge progress for %s: %w", userID, err)
	}
	return merged, nil
}

// LeaderboardRow is one user's best recorded score for a game.
type LeaderboardRow struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Score    float64   `json:"score"`
}

// Leaderboard ranks users by the given highScores field, pulled out of
// the stored jsonb documents. asc selects ascending order (fewer
// attempts) vs descending (longer streak).
func Leaderboard(ctx context.Context, gameType, field string, asc bool, limit int) ([]LeaderboardRow, error) {
	order := "DESC"
	if asc {
		order = "ASC"
	}
	q := fmt.Sprintf(`
		SELECT p.user_id, u.username, (p.snapshot->'highScores'->$1->>$2)::float8 AS score
		FROM progress_snapshots p
		JOIN users u ON u.id = p.user_id
		WHERE p.snapshot->'highScores'->$1->>$2 IS NOT NULL
		ORDER BY score %s
		LIMIT $3
	`, order)

	rows, err := DB.Query(ctx, q, gameType, field, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var out []LeaderboardRow
	for rows.Next() {
		var r LeaderboardRow
		if err := rows.Scan(&r.UserID, &r.Username, &r.Score); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
