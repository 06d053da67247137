// internal/handlers/progress_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royalehaus/royalehaus/internal/auth"
	"github.com/royalehaus/royalehaus/internal/progress"
)

// fakeProgressStore merges against an in-memory document per user.
type fakeProgressStore struct {
	docs map[uuid.UUID]progress.Snapshot
}

func (f *fakeProgressStore) Merge(_ context.Context, userID uuid.UUID, client progress.Snapshot) (progress.Snapshot, error) {
	if f.docs == nil {
		f.docs = make(map[uuid.UUID]progress.Snapshot)
	}
	merged := progress.Merge(f.docs[userID], client)
	f.docs[userID] = merged
	return merged, nil
}

func sessionCookie(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	require.NoError(t, auth.Init("72h"))
	token, err := auth.CreateJWT(userID.String())
	require.NoError(t, err)
	return auth.SessionCookieName + "=" + token
}

func TestProgressSyncHandlerMergesAndReturns(t *testing.T) {
	store := &fakeProgressStore{}
	h := ProgressSyncHandler(store)
	userID := uuid.New()
	cookie := sessionCookie(t, userID)

	// first sync from device A
	snapA := progress.Snapshot{
		Calendar:   []string{"2024-01-01"},
		HighScores: map[string]progress.HighScore{"royaledle": {"bestWinAttempts": 4}},
		Stats:      progress.Stats{GamesPlayedTotal: 1},
	}
	body, _ := json.Marshal(snapA)
	req := httptest.NewRequest("POST", "/progress/sync", bytes.NewReader(body))
	req.Header.Set("Cookie", cookie)
	w := httptest.NewRecorder()
	h(w, req)
	require.Equal(t, http.StatusOK, w.Code, "body=%s", w.Body.String())

	// later sync from device B with a better score and a new day
	snapB := progress.Snapshot{
		Calendar:   []string{"2024-01-02"},
		HighScores: map[string]progress.HighScore{"royaledle": {"bestWinAttempts": 2}},
		Stats:      progress.Stats{GamesPlayedTotal: 1},
	}
	body, _ = json.Marshal(snapB)
	req = httptest.NewRequest("POST", "/progress/sync", bytes.NewReader(body))
	req.Header.Set("Cookie", cookie)
	w = httptest.NewRecorder()
	h(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var merged progress.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &merged))
	assert.Equal(t, []string{"2024-01-01", "2024-01-02"}, merged.Calendar)
	assert.Equal(t, float64(2), merged.HighScores["royaledle"]["bestWinAttempts"])
	assert.Equal(t, 1, merged.Stats.GamesPlayedTotal)
}

func TestProgressSyncHandlerRejectsMalformedBody(t *testing.T) {
	h := ProgressSyncHandler(&fakeProgressStore{})
	req := httptest.NewRequest("POST", "/progress/sync", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Cookie", sessionCookie(t, uuid.New()))
	w := httptest.NewRecorder()
	h(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProgressSyncHandlerMethodNotAllowed(t *testing.T) {
	h := ProgressSyncHandler(&fakeProgressStore{})
	w := httptest.NewRecorder()
	h(w, httptest.NewRequest("GET", "/progress/sync", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
