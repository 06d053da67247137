package models

// Game type identifiers. These double as keys in progress snapshots
// (stats.gamesPlayedById, highScores) and as rotation-state keys.
const (
	GameRoyaledle   = "royaledle"
	GameHigherLower = "higherlower"
	GameImpostor    = "impostor"
)

// GameTypes is the closed set of games the site runs.
var GameTypes = []string{GameRoyaledle, GameHigherLower, GameImpostor}

// ValidGameType reports whether g names a known game.
func ValidGameType(g string) bool {
	for _, known := range GameTypes {
		if g == known {
			return true
		}
	}
	return false
}
