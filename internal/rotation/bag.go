// internal/rotation/bag.go
//
// Package rotation implements the shuffle bag behind the daily card:
// every eligible card id is drawn exactly once per epoch, in an order
// fixed by a date-derived seed, before any id can repeat.
package rotation

import (
	"errors"
	"hash/fnv"
	"math/rand"
	"sort"
)

// ErrNoEligibleCards is returned when the catalog has no rotation-eligible
// cards at all. There is no valid daily card in that case.
var ErrNoEligibleCards = errors.New("rotation: no eligible cards in catalog")

// State is the persisted bag for one game type. RemainingIDs is ordered
// (the head is the next pick); UsedIDs holds everything already shown
// this epoch. The two never overlap.
type State struct {
	RemainingIDs []int64
	UsedIDs      []int64
	EpochSeed    int64
}

// Exhausted reports whether the current epoch has no picks left.
func (s State) Exhausted() bool {
	return len(s.RemainingIDs) == 0
}

// Seed derives the shuffle seed for an epoch beginning on the given
// date. The date is folded in so successive reshuffles of the same game
// produce different permutations; the game type is folded in so two
// games reshuffling on the same day diverge.
func Seed(gameType, date string) int64 {
	h := fnv.New64a()
	h.Write([]byte(gameType))
	h.Write([]byte{'|'})
	h.Write([]byte(date))
	return int64(h.Sum64())
}

// NewEpoch builds a freshly shuffled bag over the eligible ids. The ids
// are sorted before shuffling so the permutation depends only on the
// seed and the id set, not on input order.
func NewEpoch(eligible []int64, seed int64) State {
	ids := make([]int64, len(eligible))
	copy(ids, eligible)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
	return State{RemainingIDs: ids, UsedIDs: []int64{}, EpochSeed: seed}
}

// Draw pops the next card id from the bag and returns the successor
// state, which supersedes the input; the caller persists it.
//
// Ids that have dropped out of the eligible set since the epoch was
// shuffled are treated as already consumed and skipped. If the bag runs
// dry (including by skipping), a new epoch is shuffled with epochSeed
// over the current eligible set, which is also how newly added cards
// enter the rotation.
func Draw(s State, eligible map[int64]bool, epochSeed int64) (int64, State, error) {
	if len(eligible) == 0 {
		return 0, s, ErrNoEligibleCards
	}
	for {
		if s.Exhausted() {
			ids := make([]int64, 0, len(eligible))
			for id := range eligible {
				ids = append(ids, id)
			}
			s = NewEpoch(ids, epochSeed)
		}
		id := s.RemainingIDs[0]
		s.RemainingIDs = s.RemainingIDs[1:]
		if !eligible[id] {
			continue
		}
		used := make([]int64, len(s.UsedIDs), len(s.UsedIDs)+1)
		copy(used, s.UsedIDs)
		s.UsedIDs = append(used, id)
		return id, s, nil
	}
}
