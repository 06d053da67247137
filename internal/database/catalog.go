// internal/database/catalog.go
package database

import (
	"context"
	"fmt"

	"github.com/royalehaus/royalehaus/internal/models"
)

// ListCards returns the full wiki catalog ordered by id.
func ListCards(ctx context.Context) ([]models.Card, error) {
	q := `
	SELECT id, name, elixir, rarity, is_eligible_for_rotation
	FROM cards
	ORDER BY id
	`
	rows, err := DB.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards: %w", err)
	}
	defer rows.Close()

	var cards []models.Card
	for rows.Next() {
		var c models.Card
		if err := rows.Scan(&c.ID, &c.Name, &c.Elixir, &c.Rarity, &c.EligibleForRotation); err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

// ListEligibleCardIDs returns the ids allowed into the daily rotation.
func ListEligibleCardIDs(ctx context.Context) ([]int64, error) {
	q := `SELECT id FROM cards WHERE is_eligible_for_rotation ORDER BY id`
	rows, err := DB.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query eligible card ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
