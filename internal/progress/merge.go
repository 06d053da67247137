// internal/progress/merge.go
package progress

import "sort"

// Merge reconciles the server-authoritative snapshot with a
// client-submitted one. The result never regresses a recorded
// achievement no matter which side is newer by wall clock: calendars
// and cosmetics union, counters take the max (the client sends full
// replacement state, not a delta, so adding would double-count), and
// high scores keep whichever side is objectively better for that game.
//
// Merge(A, A) == A, and every union/max field is commutative. The one
// asymmetric rule is the free-form meta bag: keys union shallowly and
// the server's value wins on conflict. That is a policy choice, not an
// observed guarantee; there are no per-key timestamps to do true
// last-write-wins with.
func Merge(server, client Snapshot) Snapshot {
	return Snapshot{
		Calendar: unionStrings(server.Calendar, client.Calendar),
		Stats: Stats{
			GamesPlayedTotal: maxInt(server.Stats.GamesPlayedTotal, client.Stats.GamesPlayedTotal),
			GamesPlayedByID:  maxCounts(server.Stats.GamesPlayedByID, client.Stats.GamesPlayedByID),
		},
		HighScores: mergeHighScores(server.HighScores, client.HighScores),
		Stickers:   unionStrings(server.Stickers, client.Stickers),
		Cards:      unionInt64s(server.Cards, client.Cards),
		Meta:       mergeMeta(server.Meta, client.Meta),
		Version:    maxInt(server.Version, client.Version),
	}
}

func unionStrings(a, b []string) []string {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	set := make(map[string]bool, len(a)+len(b))
	for _, v := range a {
		set[v] = true
	}
	for _, v := range b {
		set[v] = true
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func unionInt64s(a, b []int64) []int64 {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	set := make(map[int64]bool, len(a)+len(b))
	for _, v := range a {
		set[v] = true
	}
	for _, v := range b {
		set[v] = true
	}
	out := make([]int64, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func maxCounts(a, b map[string]int) map[string]int {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]int, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		if v > out[k] {
			out[k] = v
		}
	}
	return out
}

func mergeHighScores(server, client map[string]HighScore) map[string]HighScore {
	if len(server) == 0 && len(client) == 0 {
		return nil
	}
	out := make(map[string]HighScore, len(server)+len(client))
	for game, sc := range server {
		out[game] = sc
	}
	for game, cl := range client {
		sv, ok := out[game]
		if !ok {
			out[game] = cl
			continue
		}
		if Better(game, cl, sv) {
			out[game] = cl
		}
	}
	return out
}

// mergeMeta unions keys shallowly; on conflict the server entry is
// kept.
func mergeMeta(server, client map[string]any) map[string]any {
	if len(server) == 0 && len(client) == 0 {
		return nil
	}
	out := make(map[string]any, len(server)+len(client))
	for k, v := range client {
		out[k] = v
	}
	for k, v := range server {
		out[k] = v
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
