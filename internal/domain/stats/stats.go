// Package stats derives historical training statistics from a collection of
// sessions. All functions are pure: they hold no state and recompute their
// result from the supplied sessions on every call.
package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/okorolev/liftlog_backend/internal/domain/volume"
	"github.com/okorolev/liftlog_backend/internal/domain/workout"
)

// OverallPersonalRecordByWeight returns the set with the strictly greatest
// weight across all sessions, or nil if there is none. Comparison is strict,
// so the first-encountered set wins on exact ties.
func OverallPersonalRecordByWeight(sessions []*workout.Session) *workout.SetEntry {
	var record *workout.SetEntry
	for _, s := range sessions {
		if s == nil {
			continue
		}
		for _, entry := range s.Sets() {
			if entry == nil {
				continue
			}
			if record == nil || entry.WeightKg() > record.WeightKg() {
				record = entry
			}
		}
	}
	return record
}

// VolumeSince sums the total volume of every session that started at or
// after from.
func VolumeSince(sessions []*workout.Session, from time.Time) volume.Volume {
	total := volume.New(0)
	for _, s := range sessions {
		if s == nil || s.StartedAt().Before(from) {
			continue
		}
		total = total.Add(s.TotalVolume())
	}
	return total
}

// MusclesSince collects the distinct primary muscle names trained in
// sessions starting at or after from. Deduplication is case-insensitive and
// keeps the first-seen casing; the result is sorted ascending,
// case-insensitively.
func MusclesSince(sessions []*workout.Session, from time.Time) []string {
	seen := make(map[string]struct{})
	muscles := make([]string, 0)
	for _, s := range sessions {
		if s == nil || s.StartedAt().Before(from) {
			continue
		}
		for _, entry := range s.Sets() {
			if entry == nil {
				continue
			}
			for _, m := range entry.Exercise().Muscles {
				key := strings.ToLower(m)
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				muscles = append(muscles, m)
			}
		}
	}
	sort.Slice(muscles, func(i, j int) bool {
		return strings.ToLower(muscles[i]) < strings.ToLower(muscles[j])
	})
	return muscles
}
