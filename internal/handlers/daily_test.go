// internal/handlers/daily_test.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royalehaus/royalehaus/internal/daily"
)

// fakeDailyStore hands out card ids from a fixed queue, one per
// (day, game) pair, atomically.
type fakeDailyStore struct {
	mu         sync.Mutex
	queue      []int64
	selections map[string]int64
}

func newFakeDailyStore(queue ...int64) *fakeDailyStore {
	return &fakeDailyStore{queue: queue, selections: make(map[string]int64)}
}

func (f *fakeDailyStore) GetSelection(_ context.Context, day, game string) (int64, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.selections[day+"|"+game]
	return id, ok, nil
}

func (f *fakeDailyStore) DrawSelection(_ context.Context, day, game string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id, ok := f.selections[day+"|"+game]; ok {
		return id, nil
	}
	id := f.queue[0]
	f.queue = f.queue[1:]
	f.selections[day+"|"+game] = id
	return id, nil
}

func TestDailyCardHandler(t *testing.T) {
	svc := daily.NewService(newFakeDailyStore(26), nil)
	h := DailyCardHandler(svc)

	req := httptest.NewRequest("GET", "/daily/card?game=royaledle&date=2024-05-01", nil)
	w := httptest.NewRecorder()
	h(w, req)
	require.Equal(t, http.StatusOK, w.Code, "body=%s", w.Body.String())

	var resp dailyCardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(26), resp.CardID)
	assert.Equal(t, "2024-05-01", resp.Date)
	assert.Equal(t, "royaledle", resp.Game)

	// same pair replays the recorded selection
	w2 := httptest.NewRecorder()
	h(w2, httptest.NewRequest("GET", "/daily/card?game=royaledle&date=2024-05-01", nil))
	require.Equal(t, http.StatusOK, w2.Code)
	var resp2 dailyCardResponse
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &resp2))
	assert.Equal(t, resp.CardID, resp2.CardID)
}

func TestDailyCardHandlerDefaultsToToday(t *testing.T) {
	svc := daily.NewService(newFakeDailyStore(3), nil)
	h := DailyCardHandler(svc)

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest("GET", "/daily/card?game=impostor", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp dailyCardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, daily.Today(), resp.Date)
}

func TestDailyCardHandlerRejectsBadInput(t *testing.T) {
	svc := daily.NewService(newFakeDailyStore(1), nil)
	h := DailyCardHandler(svc)

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest("GET", "/daily/card?game=chess", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	h(w, httptest.NewRequest("GET", "/daily/card?game=royaledle&date=yesterday", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	h(w, httptest.NewRequest("POST", "/daily/card?game=royaledle", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
