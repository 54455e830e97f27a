// Package activity derives posting rhythm signals from timestamped events:
// daily posting streaks and favored hours of the day
package activity

import (
	"math"
	"time"
)

// StreakDays is the size of the rolling daily window
const StreakDays = 30

// Streak is a rolling window of daily posting activity
// slot StreakDays-1 is today, slot 0 is StreakDays-1 days ago
type Streak struct {
	// Days holds the post count per day
	Days [StreakDays]int

	// Current counts consecutive active days ending today
	Current int
	// Active counts distinct active days across the window
	Active int
}

// BuildStreak fills the window from event timestamps interpreted in loc
// events outside the window are ignored
func BuildStreak(now time.Time, loc *time.Location, events []time.Time) Streak {
	if loc == nil {
		loc = time.UTC
	}
	today := midnight(now.In(loc))

	var s Streak
	for _, ev := range events {
		day := midnight(ev.In(loc))
		// round instead of truncate so DST-shortened days land on the right slot
		offset := int(math.Round(today.Sub(day).Hours() / 24))
		if offset < 0 || offset >= StreakDays {
			continue
		}
		slot := StreakDays - 1 - offset
		if s.Days[slot] == 0 {
			s.Active++
		}
		s.Days[slot]++
	}
	for i := StreakDays - 1; i >= 0 && s.Days[i] > 0; i-- {
		s.Current++
	}
	return s
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
