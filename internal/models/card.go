package models

// Card is one catalog entry from the card wiki. The daily rotation only
// cares about ID and EligibleForRotation; the remaining fields feed the
// wiki listing.
type Card struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Elixir int    `json:"elixir"`
	Rarity string `json:"rarity"`

	// EligibleForRotation is false for variant/evolution entries that
	// must never be picked as a daily card.
	EligibleForRotation bool `json:"is_eligible_for_rotation"`
}
