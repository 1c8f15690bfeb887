package timetable

import "sort"

// homeroomPlan is the resolved class ownership for one run.
type homeroomPlan struct {
	// owners maps every class of the run to its homeroom teacher, or
	// TeacherUnassigned when no eligible teacher existed.
	owners map[string]Teacher
	// ownedBy is the reverse view; sorted class IDs per teacher.
	ownedBy map[Teacher][]string
}

func (p *homeroomPlan) owner(classID string) Teacher {
	return p.owners[classID]
}

// owns reports whether the teacher owns the given class.
func (p *homeroomPlan) owns(teacher Teacher, classID string) bool {
	for _, id := range p.ownedBy[teacher] {
		if id == classID {
			return true
		}
	}
	return false
}

// assignHomerooms resolves homeroom ownership for every class of the run.
// Fixed overrides apply verbatim; remaining classes go to the eligible
// teacher with the fewest owned classes, ties broken by name. Classes that
// no teacher can take keep TeacherUnassigned as owner and raise a warning.
func assignHomerooms(cfg *SlotConfig, warn func(format string, args ...any)) *homeroomPlan {
	plan := &homeroomPlan{
		owners:  make(map[string]Teacher),
		ownedBy: make(map[Teacher][]string),
	}
	counts := make(map[Teacher]int, len(cfg.HomeroomPool))

	fixed := make(map[string]Teacher, len(cfg.FixedHomerooms))
	for _, teacher := range sortedTeacherKeys(cfg.FixedHomerooms) {
		fixed[cfg.FixedHomerooms[teacher]] = teacher
	}

	take := func(classID string, teacher Teacher) {
		plan.owners[classID] = teacher
		plan.ownedBy[teacher] = append(plan.ownedBy[teacher], classID)
		counts[teacher]++
	}

	for _, round := range cfg.rounds() {
		for _, classID := range cfg.classIDs(round) {
			if teacher, ok := fixed[classID]; ok {
				take(classID, teacher)
				continue
			}
			teacher, ok := pickHomeroomOwner(cfg, counts)
			if !ok {
				plan.owners[classID] = TeacherUnassigned
				warn("no eligible homeroom teacher for class %s", classID)
				continue
			}
			take(classID, teacher)
		}
	}

	for teacher := range plan.ownedBy {
		sort.Strings(plan.ownedBy[teacher])
	}
	return plan
}

// pickHomeroomOwner returns the least-loaded eligible teacher from the
// homeroom pool, ties broken by lexicographic name.
func pickHomeroomOwner(cfg *SlotConfig, counts map[Teacher]int) (Teacher, bool) {
	var best Teacher
	found := false
	for _, teacher := range cfg.HomeroomPool {
		tc := cfg.Constraints[teacher]
		if tc.HomeroomDisabled {
			continue
		}
		if tc.MaxHomerooms != nil && counts[teacher] >= *tc.MaxHomerooms {
			continue
		}
		if !found || counts[teacher] < counts[best] || (counts[teacher] == counts[best] && teacher < best) {
			best = teacher
			found = true
		}
	}
	return best, found
}
