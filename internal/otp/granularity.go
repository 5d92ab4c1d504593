package otp

import "time"

// Granularity identifies one of the seven fixed time-window sizes a code is
// derived for. The zero value is Monthly.
type Granularity int

const (
	Monthly Granularity = iota
	Biweekly
	Weekly
	Daily
	Hourly
	HalfHourly
	Minutely
)

// windowMillis holds each window size in milliseconds. The values are fixed
// by the derivation scheme and deliberately not configurable.
var windowMillis = [...]int64{
	Monthly:    2_592_000_000, // ~30 days
	Biweekly:   1_209_600_000,
	Weekly:     604_800_000,
	Daily:      86_400_000,
	Hourly:     3_600_000,
	HalfHourly: 1_800_000,
	Minutely:   60_000,
}

var labels = [...]string{
	Monthly:    "monthly",
	Biweekly:   "biweekly",
	Weekly:     "weekly",
	Daily:      "daily",
	Hourly:     "hourly",
	HalfHourly: "half-hourly",
	Minutely:   "minutely",
}

// Granularities returns all granularities in display order, coarsest first.
// Matching walks the same order, so coarser windows win ties.
func Granularities() []Granularity {
	return []Granularity{Monthly, Biweekly, Weekly, Daily, Hourly, HalfHourly, Minutely}
}

// WindowMillis returns the window size in milliseconds.
func (g Granularity) WindowMillis() int64 {
	if g < Monthly || g > Minutely {
		return 0
	}
	return windowMillis[g]
}

// String returns the human-readable label shown next to the code.
func (g Granularity) String() string {
	if g < Monthly || g > Minutely {
		return "unknown"
	}
	return labels[g]
}

// Counter buckets the given instant into this granularity's window counter:
// floor(unix milliseconds / window milliseconds).
func (g Granularity) Counter(at time.Time) int64 {
	return at.UnixMilli() / g.WindowMillis()
}

// GranularityFromLabel resolves a display label back to its granularity.
func GranularityFromLabel(label string) (Granularity, bool) {
	for _, g := range Granularities() {
		if labels[g] == label {
			return g, true
		}
	}
	return 0, false
}
