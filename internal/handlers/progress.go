// internal/handlers/progress.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/royalehaus/royalehaus/internal/database"
	"github.com/royalehaus/royalehaus/internal/metrics"
	"github.com/royalehaus/royalehaus/internal/progress"
)

// ProgressStore persists merged snapshots. The default implementation
// is the Postgres-backed database.MergeProgress.
type ProgressStore interface {
	Merge(ctx context.Context, userID uuid.UUID, client progress.Snapshot) (progress.Snapshot, error)
}

// DBProgressStore is the production ProgressStore.
type DBProgressStore struct{}

func (DBProgressStore) Merge(ctx context.Context, userID uuid.UUID, client progress.Snapshot) (progress.Snapshot, error) {
	return database.MergeProgress(ctx, userID, client)
}

// ProgressSyncHandler serves POST /progress/sync. The body is the
// client's full local snapshot; the response is the merged snapshot the
// client should replace its cache with. Guests get an ephemeral user
// minted on first contact, so offline progress survives account
// claiming later.
func ProgressSyncHandler(store ProgressStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		userID, err := EnsureEphemeralUser(w, r)
		if err != nil {
			http.Error(w, "failed to resolve user", http.StatusInternalServerError)
			return
		}

		var client progress.Snapshot
		if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
			http.Error(w, "invalid snapshot payload", http.StatusBadRequest)
			return
		}

		merged, err := store.Merge(r.Context(), userID, client)
		if err != nil {
			http.Error(w, "failed to merge progress", http.StatusInternalServerError)
			return
		}
		metrics.ProgressMerges.Inc()

		writeJSON(w, http.StatusOK, merged)
	}
}

// ProgressGetHandler serves GET /progress: the stored snapshot without
// merging, for a fresh device picking up existing progress.
func ProgressGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		userID, err := EnsureEphemeralUser(w, r)
		if err != nil {
			http.Error(w, "failed to resolve user", http.StatusInternalServerError)
			return
		}

		snap, err := database.LoadProgress(r.Context(), userID)
		if err != nil {
			http.Error(w, "failed to load progress", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, snap)
	}
}
