// internal/progress/snapshot.go
package progress

// Stats aggregates play counts across games.
type Stats struct {
	GamesPlayedTotal int            `json:"gamesPlayedTotal"`
	GamesPlayedByID  map[string]int `json:"gamesPlayedById,omitempty"`
}

// HighScore is one game's best-result record. The shape is
// game-specific (royaledle stores bestWinAttempts, the streak games
// store bestStreak), so it stays a loose numeric map; JSON numbers
// arrive as float64 either way.
type HighScore map[string]float64

// Snapshot is a complete (not incremental) picture of one user's
// progress. The client keeps a cached copy for offline play; the server
// holds the authoritative one. After a merge the client copy is
// discarded and replaced wholesale.
type Snapshot struct {
	// Calendar lists the YYYY-MM-DD days with at least one game played,
	// sorted ascending. Streaks are derived from it client-side.
	Calendar []string `json:"calendar,omitempty"`

	Stats Stats `json:"stats"`

	HighScores map[string]HighScore `json:"highScores,omitempty"`

	// Unlocked cosmetics. Stickers are slug ids, Cards are catalog ids.
	Stickers []string `json:"stickers,omitempty"`
	Cards    []int64  `json:"cards,omitempty"`

	// Meta is a free-form extension bag.
	Meta map[string]any `json:"meta,omitempty"`

	// Version tags the snapshot schema for future migrations.
	Version int `json:"version"`
}
