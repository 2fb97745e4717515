package achievement

import (
	"slices"
	"time"
)

// maxStreakGap is the largest gap between two consecutive completion dates
// that still continues a streak. The boundary is inclusive: a gap of exactly
// seven days keeps the streak alive.
const maxStreakGap = 7 * 24 * time.Hour

// HasStreak reports whether dates contain a run of at least requiredLength
// completions in which every consecutive gap is at most seven days.
//
// Dates are sorted ascending with a stable sort (relative order of equal
// dates is preserved; only the gaps matter). A requiredLength below one, or
// fewer than requiredLength dates, yields false.
func HasStreak(dates []time.Time, requiredLength int) bool {
	if requiredLength < 1 || len(dates) < requiredLength {
		return false
	}

	sorted := slices.Clone(dates)
	slices.SortStableFunc(sorted, func(a, b time.Time) int { return a.Compare(b) })

	streak := 1
	if streak >= requiredLength {
		return true
	}

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Sub(sorted[i-1]) <= maxStreakGap {
			streak++
			if streak >= requiredLength {
				return true
			}
		} else {
			streak = 1
		}
	}

	return false
}

// HasWeeklyConsistency reports whether every one of the last requiredWeeks
// whole weeks before now contains at least one of the given dates.
//
// Week index 0 is the most recent week [now-7d, now], index 1 the week
// before, and so on up to requiredWeeks-1. Dates outside [now - requiredWeeks
// weeks, now] are ignored. The window rolls with now: the same dates can
// stop qualifying as time passes.
func HasWeeklyConsistency(dates []time.Time, requiredWeeks int, now time.Time) bool {
	if requiredWeeks < 1 || len(dates) == 0 {
		return false
	}

	windowStart := now.AddDate(0, 0, -7*requiredWeeks)

	touched := make(map[int]struct{}, requiredWeeks)
	for _, d := range dates {
		if d.Before(windowStart) || d.After(now) {
			continue
		}
		week := int(now.Sub(d) / (7 * 24 * time.Hour))
		if week >= 0 && week < requiredWeeks {
			touched[week] = struct{}{}
		}
	}

	return len(touched) >= requiredWeeks
}
