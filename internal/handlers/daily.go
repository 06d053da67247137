// internal/handlers/daily.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/royalehaus/royalehaus/internal/daily"
	"github.com/royalehaus/royalehaus/internal/rotation"
)

type dailyCardResponse struct {
	Date   string `json:"date"`
	Game   string `json:"game"`
	CardID int64  `json:"cardId"`
}

// DailyCardHandler serves GET /daily/card?game=royaledle&date=2024-01-01.
// date defaults to today (UTC). Every caller on the same (date, game)
// pair sees the same card id.
func DailyCardHandler(svc *daily.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		game := r.URL.Query().Get("game")
		date := r.URL.Query().Get("date")
		if date == "" {
			date = daily.Today()
		}

		cardID, err := svc.GetDailyCard(r.Context(), date, game)
		if err != nil {
			switch {
			case errors.Is(err, daily.ErrBadInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, rotation.ErrNoEligibleCards):
				http.Error(w, "no cards available for rotation", http.StatusInternalServerError)
			default:
				http.Error(w, "failed to resolve daily card", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, dailyCardResponse{Date: date, Game: game, CardID: cardID})
	}
}
