package timetable

import "sort"

// selectHomeroom resolves a homeroom-role slot. The only candidate is the
// class's own owner; if the owner is unavailable or already booked the slot
// stays empty rather than substituting another teacher.
func (r *run) selectHomeroom(owner Teacher, day Day, period Period) (Teacher, bool) {
	if owner == TeacherUnassigned {
		return TeacherUnassigned, false
	}
	if !r.avail.available(owner, day, period) || !r.tracker.can(day, period, owner) {
		return TeacherUnassigned, false
	}
	return owner, true
}

// selectKorean resolves a Korean-role slot. Candidates are homeroom-pool
// members who own no class; with the inclusion flag set, owners of other
// classes join. The class's own owner is excluded unconditionally.
func (r *run) selectKorean(classID string, day Day, period Period) (Teacher, bool) {
	candidates := make([]Teacher, 0, len(r.cfg.HomeroomPool))
	for _, teacher := range r.cfg.HomeroomPool {
		if r.homerooms.owns(teacher, classID) {
			continue
		}
		if len(r.homerooms.ownedBy[teacher]) > 0 && !r.cfg.Options.IncludeHomeroomOwnersInKorean {
			continue
		}
		candidates = append(candidates, teacher)
	}
	return r.pick(candidates, day, period)
}

// selectForeign resolves a foreign-role slot from the foreign pool. The
// engine never invokes it for round 4.
func (r *run) selectForeign(day Day, period Period) (Teacher, bool) {
	return r.pick(r.cfg.ForeignPool, day, period)
}

// pick filters candidates through availability and the conflict tracker,
// then takes the least-loaded survivor, ties broken by name.
func (r *run) pick(candidates []Teacher, day Day, period Period) (Teacher, bool) {
	survivors := make([]Teacher, 0, len(candidates))
	for _, teacher := range candidates {
		if !r.avail.available(teacher, day, period) {
			continue
		}
		if !r.tracker.can(day, period, teacher) {
			continue
		}
		survivors = append(survivors, teacher)
	}
	if len(survivors) == 0 {
		return TeacherUnassigned, false
	}
	sort.SliceStable(survivors, func(i, j int) bool {
		if r.loads[survivors[i]] != r.loads[survivors[j]] {
			return r.loads[survivors[i]] < r.loads[survivors[j]]
		}
		return survivors[i] < survivors[j]
	})
	return survivors[0], true
}
