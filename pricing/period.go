package pricing

import "time"

// PricePeriod is a date-bounded nightly rate for a room. Periods may overlap
// in the catalog; resolution picks the most recently started match.
type PricePeriod struct {
	Start   time.Time
	End     time.Time
	Nightly Money
}

// ResolveNightlyRate selects the nightly rate applicable to the check-in date.
// A period matches when the check-in falls inside its inclusive range, with
// the start normalized to local midnight and the end to local end-of-day.
// Among overlapping matches the period with the latest start wins. No match
// means no rate is published for those dates and resolves to 0, not an error.
func ResolveNightlyRate(periods []PricePeriod, checkIn time.Time) Money {
	var best *PricePeriod
	for i := range periods {
		p := &periods[i]
		start := startOfDay(p.Start)
		end := endOfDay(p.End)
		if checkIn.Before(start) || checkIn.After(end) {
			continue
		}
		if best == nil || p.Start.After(best.Start) {
			best = p
		}
	}
	if best == nil {
		return 0
	}
	return best.Nightly
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
