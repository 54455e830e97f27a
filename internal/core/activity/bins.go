package activity

import (
	"math"
	"sort"
	"time"
)

// HourBins is the number of hour-of-day buckets
const HourBins = 24

// TopBinCount is how many favored hours are reported
const TopBinCount = 3

// Bin is one favored hour of the day
type Bin struct {
	// Hour of day 0..23 in the requested location
	Hour int
	// Minute is the mean minute within the hour, floored to a 10 minute mark,
	// so the pair reads as a natural "around 14:30" timestamp
	Minute int
	Count  int
	// Pct is this bin's share of all events, rounded to a whole percent
	Pct int
}

// At renders the bin as a clock time on the given day
func (b Bin) At(day time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := day.In(loc).Date()
	return time.Date(y, m, d, b.Hour, b.Minute, 0, 0, loc)
}

// TopHours buckets events by hour of day in loc and returns the busiest
// n bins, most active first, with ties favoring the earlier hour
// returns an empty slice when there are no events
func TopHours(events []time.Time, loc *time.Location, n int) []Bin {
	if loc == nil {
		loc = time.UTC
	}
	out := []Bin{}
	if len(events) == 0 {
		return out
	}

	var counts [HourBins]int
	var minuteSum [HourBins]int
	for _, ev := range events {
		local := ev.In(loc)
		h := local.Hour()
		counts[h]++
		minuteSum[h] += local.Minute()
	}

	for h := 0; h < HourBins; h++ {
		if counts[h] == 0 {
			continue
		}
		mean := minuteSum[h] / counts[h]
		out = append(out, Bin{
			Hour:   h,
			Minute: mean / 10 * 10,
			Count:  counts[h],
			Pct:    int(math.Round(float64(counts[h]) / float64(len(events)) * 100)),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
