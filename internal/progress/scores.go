// internal/progress/scores.go
package progress

import "github.com/royalehaus/royalehaus/internal/models"

// comparator reports whether score a beats score b for one game.
type comparator func(a, b HighScore) bool

// Per-game "better" rules. Royaledle counts guesses, so fewer is
// better; the streak games count consecutive wins, so higher is better.
var comparators = map[string]comparator{
	models.GameRoyaledle:   lowerIsBetter("bestWinAttempts"),
	models.GameHigherLower: higherIsBetter("bestStreak"),
	models.GameImpostor:    higherIsBetter("bestStreak"),
}

// Better reports whether a beats b for the given game. A side with no
// recorded value for the game's metric never wins. Games without a
// registered comparator fall back to keeping the incumbent (b), which
// during a merge means the server's record stands.
func Better(game string, a, b HighScore) bool {
	cmp, ok := comparators[game]
	if !ok {
		return false
	}
	return cmp(a, b)
}

// LeaderboardMetric returns the score field to rank a game's
// leaderboard on and whether ascending order is winning order.
func LeaderboardMetric(game string) (field string, asc bool, ok bool) {
	switch game {
	case models.GameRoyaledle:
		return "bestWinAttempts", true, true
	case models.GameHigherLower, models.GameImpostor:
		return "bestStreak", false, true
	default:
		return "", false, false
	}
}

func lowerIsBetter(field string) comparator {
	return func(a, b HighScore) bool {
		av, aok := a[field]
		bv, bok := b[field]
		if !aok {
			return false
		}
		if !bok {
			return true
		}
		return av < bv
	}
}

func higherIsBetter(field string) comparator {
	return func(a, b HighScore) bool {
		av, aok := a[field]
		bv, bok := b[field]
		if !aok {
			return false
		}
		if !bok {
			return true
		}
		return av > bv
	}
}
