package timetable

import "time"

// runMetrics gathers the observational counters of one generation pass.
// Purely diagnostic; never affects assignment decisions.
type runMetrics struct {
	start      time.Time
	attempted  int
	assigned   int
	unassigned int
	exams      int
}

func newRunMetrics() *runMetrics {
	return &runMetrics{start: time.Now()}
}

func (m *runMetrics) snapshot(agg *aggregator, avail *availabilityIndex) RunMetrics {
	var ratio float64
	if total := avail.hits + avail.misses; total > 0 {
		ratio = float64(avail.hits) / float64(total)
	}
	return RunMetrics{
		DurationMs:         time.Since(m.start).Milliseconds(),
		Attempted:          m.attempted,
		Assigned:           m.assigned,
		Unassigned:         m.unassigned,
		ExamAssignments:    m.exams,
		SortOps:            agg.sortOps,
		AvailabilityHits:   avail.hits,
		AvailabilityMisses: avail.misses,
		AvailabilityRatio:  ratio,
	}
}
