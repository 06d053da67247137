// internal/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/royalehaus/royalehaus/internal/database"
)

// ListCardsHandler serves GET /cards: the full wiki catalog.
func ListCardsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	cards, err := database.ListCards(r.Context())
	if err != nil {
		http.Error(w, "failed to list cards", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}
