package timetable

type availKey struct {
	teacher Teacher
	day     Day
	period  Period
}

// availabilityIndex answers whether a teacher declared the slot unavailable.
// Lookups are memoised per run; hit/miss counts feed RunMetrics.
type availabilityIndex struct {
	blocked map[Teacher]map[Slot]struct{}
	memo    map[availKey]bool
	hits    int
	misses  int
}

func newAvailabilityIndex(constraints map[Teacher]TeacherConstraints) *availabilityIndex {
	blocked := make(map[Teacher]map[Slot]struct{}, len(constraints))
	for teacher, tc := range constraints {
		if len(tc.Unavailable) == 0 {
			continue
		}
		slots := make(map[Slot]struct{}, len(tc.Unavailable))
		for _, slot := range tc.Unavailable {
			slots[slot] = struct{}{}
		}
		blocked[teacher] = slots
	}
	return &availabilityIndex{
		blocked: blocked,
		memo:    make(map[availKey]bool),
	}
}

func (a *availabilityIndex) available(teacher Teacher, day Day, period Period) bool {
	key := availKey{teacher: teacher, day: day, period: period}
	if cached, ok := a.memo[key]; ok {
		a.hits++
		return cached
	}
	a.misses++
	free := true
	if slots, ok := a.blocked[teacher]; ok {
		_, declared := slots[Slot{Day: day, Period: period}]
		free = !declared
	}
	a.memo[key] = free
	return free
}
