package timetable

import "fmt"

// DefaultWeek is the teaching week used when the configuration leaves Days
// empty. Classes meet three afternoons a week.
var DefaultWeek = []Day{Monday, Wednesday, Friday}

// allDays lists the recognised day names in week order.
var allDays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

const (
	// MinRound and MaxRound bound the valid round numbers.
	MinRound = 1
	MaxRound = 4

	// MinPeriod and MaxPeriod bound the period numbers the week covers.
	MinPeriod = Period(1)
	MaxPeriod = Period(8)
)

// Periods start at 14:00 on a 45-minute pitch: 40 minutes of teaching
// followed by a 5-minute break.
const (
	dayStartMinutes = 14 * 60
	periodPitch     = 45
	periodLength    = 40
)

// RoundPeriods returns the two consecutive periods owned by a round:
// round r covers periods 2r-1 and 2r.
func RoundPeriods(round int) (Period, Period) {
	return Period(2*round - 1), Period(2 * round)
}

// TimeLabel renders the clock range for a period. Fractional periods label
// the break between the surrounding two periods.
func TimeLabel(p Period) string {
	if p.Whole() {
		start := dayStartMinutes + (int(p)-1)*periodPitch
		return fmt.Sprintf("%s-%s", clock(start), clock(start+periodLength))
	}
	// Break after period floor(p): from its end to the next period's start.
	prevEnd := dayStartMinutes + (int(p)-1)*periodPitch + periodLength
	return fmt.Sprintf("%s-%s", clock(prevEnd), clock(prevEnd+periodPitch-periodLength))
}

// ExamAnchorLabel is the fixed label used when a round's exam falls back to
// its first-period anchor instead of configured markers.
func ExamAnchorLabel(round int) string {
	first, _ := RoundPeriods(round)
	start := dayStartMinutes + (int(first)-1)*periodPitch
	return fmt.Sprintf("%s TEST", clock(start))
}

// TimeLabels returns the label table for all whole periods of the week.
func TimeLabels() map[Period]string {
	labels := make(map[Period]string, int(MaxPeriod))
	for p := MinPeriod; p <= MaxPeriod; p++ {
		labels[p] = TimeLabel(p)
	}
	return labels
}

func clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func validDay(d Day) bool {
	for _, known := range allDays {
		if d == known {
			return true
		}
	}
	return false
}
