package timetable

import "sort"

type conflictKey struct {
	day     Day
	period  Period
	teacher Teacher
}

// conflictTracker records which (day, period, teacher) triples are taken
// within one run. Callers must check can before occupy.
type conflictTracker struct {
	occupied map[conflictKey]struct{}
}

func newConflictTracker() *conflictTracker {
	return &conflictTracker{occupied: make(map[conflictKey]struct{})}
}

func (t *conflictTracker) can(day Day, period Period, teacher Teacher) bool {
	_, taken := t.occupied[conflictKey{day: day, period: period, teacher: teacher}]
	return !taken
}

// occupy marks the triple as taken. Idempotent.
func (t *conflictTracker) occupy(day Day, period Period, teacher Teacher) {
	t.occupied[conflictKey{day: day, period: period, teacher: teacher}] = struct{}{}
}

// busyTeachers returns the teachers already booked at the slot, sorted by
// name. Diagnostics only.
func (t *conflictTracker) busyTeachers(day Day, period Period) []Teacher {
	var busy []Teacher
	for key := range t.occupied {
		if key.day == day && key.period == period {
			busy = append(busy, key.teacher)
		}
	}
	sort.Slice(busy, func(i, j int) bool { return busy[i] < busy[j] })
	return busy
}
