// internal/database/rotation.go
package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/royalehaus/royalehaus/internal/rotation"
)

// DailyStore persists rotation state and daily selections in Postgres.
// It satisfies daily.Store.
type DailyStore struct{}

// GetSelection returns the already-recorded card for (day, gameType),
// if any.
func (DailyStore) GetSelection(ctx context.Context, day, gameType string) (int64, bool, error) {
	var cardID int64
	q := `SELECT card_id FROM daily_selections WHERE day=$1 AND game_type=$2`
	err := DB.QueryRow(ctx, q, day, gameType).Scan(&cardID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read daily selection: %w", err)
	}
	return cardID, true, nil
}

// DrawSelection records the card of the day for (day, gameType),
// advancing the rotation bag, and returns it. The whole
// check-then-create runs in one transaction holding a row lock on the
// game's rotation state, so two simultaneous first-of-the-day calls
// serialize: the second finds the selection the first inserted and
// returns it without drawing again.
func (DailyStore) DrawSelection(ctx context.Context, day, gameType string) (int64, error) {
	var cardID int64
	err := pgx.BeginTxFunc(ctx, DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		// make sure the rotation row exists so FOR UPDATE has a row to lock
		seedRow := `
			INSERT INTO rotation_states (game_type, remaining_ids, used_ids, epoch_seed)
			VALUES ($1, '{}', '{}', 0)
			ON CONFLICT (game_type) DO NOTHING
		`
		if _, err := tx.Exec(ctx, seedRow, gameType); err != nil {
			return err
		}

		var st rotation.State
		lockQ := `
			SELECT remaining_ids, used_ids, epoch_seed
			FROM rotation_states
			WHERE game_type=$1
			FOR UPDATE
		`
		if err := tx.QueryRow(ctx, lockQ, gameType).Scan(&st.RemainingIDs, &st.UsedIDs, &st.EpochSeed); err != nil {
			return err
		}

		// re-check under the lock: a concurrent caller may have drawn already
		selQ := `SELECT card_id FROM daily_selections WHERE day=$1 AND game_type=$2`
		err := tx.QueryRow(ctx, selQ, day, gameType).Scan(&cardID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		eligibleRows, err := tx.Query(ctx, `SELECT id FROM cards WHERE is_eligible_for_rotation`)
		if err != nil {
			return err
		}
		eligible := make(map[int64]bool)
		for eligibleRows.Next() {
			var id int64
			if err := eligibleRows.Scan(&id); err != nil {
				eligibleRows.Close()
				return err
			}
			eligible[id] = true
		}
		eligibleRows.Close()
		if err := eligibleRows.Err(); err != nil {
			return err
		}

		id, next, err := rotation.Draw(st, eligible, rotation.Seed(gameType, day))
		if err != nil {
			return err
		}

		updQ := `
			UPDATE rotation_states
			SET remaining_ids=$1, used_ids=$2, epoch_seed=$3
			WHERE game_type=$4
		`
		if _, err := tx.Exec(ctx, updQ, next.RemainingIDs, next.UsedIDs, next.EpochSeed, gameType); err != nil {
			return err
		}

		insQ := `INSERT INTO daily_selections (day, game_type, card_id) VALUES ($1, $2, $3)`
		if _, err := tx.Exec(ctx, insQ, day, gameType, id); err != nil {
			return err
		}
		cardID = id
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to draw daily card for %s/%s: %w", gameType, day, err)
	}
	return cardID, nil
}
