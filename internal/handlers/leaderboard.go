// internal/handlers/leaderboard.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/royalehaus/royalehaus/internal/database"
	"github.com/royalehaus/royalehaus/internal/models"
	"github.com/royalehaus/royalehaus/internal/progress"
)

type leaderboardResponse struct {
	Game string                    `json:"game"`
	Top  []database.LeaderboardRow `json:"top"`
}

// LeaderboardHandler serves GET /leaderboard?game=royaledle&limit=20,
// ranking users by the game's best-score metric from their stored
// progress snapshots.
func LeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	game := r.URL.Query().Get("game")
	if !models.ValidGameType(game) {
		http.Error(w, "unknown game type", http.StatusBadRequest)
		return
	}
	field, asc, ok := progress.LeaderboardMetric(game)
	if !ok {
		http.Error(w, "game has no leaderboard", http.StatusBadRequest)
		return
	}

	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 100 {
			http.Error(w, "limit must be 1-100", http.StatusBadRequest)
			return
		}
		limit = n
	}

	rows, err := database.Leaderboard(r.Context(), game, field, asc, limit)
	if err != nil {
		http.Error(w, "failed to query leaderboard", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, leaderboardResponse{Game: game, Top: rows})
}
