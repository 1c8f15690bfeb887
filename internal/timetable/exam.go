package timetable

// placeExams emits the exam overlay for one (round, day, class). Rounds
// other than the first only. The proctor is always the class's homeroom
// owner; availability and the conflict tracker are deliberately not
// consulted (homeroom proctoring takes priority over other bookings), and
// exam duty does not count toward fairness load.
func (r *run) placeExams(round int, day Day, classID string, owner Teacher) {
	if round == MinRound {
		return
	}
	markers := r.cfg.Options.ExamPeriods[day]
	if len(markers) == 0 {
		first, _ := RoundPeriods(round)
		r.emitExam(Assignment{
			ClassID:   classID,
			Round:     round,
			Day:       day,
			Period:    first,
			TimeLabel: ExamAnchorLabel(round),
			Role:      RoleExam,
			Teacher:   owner,
		})
		return
	}
	for _, marker := range markers {
		r.emitExam(Assignment{
			ClassID:   classID,
			Round:     round,
			Day:       day,
			Period:    marker,
			TimeLabel: TimeLabel(marker),
			Role:      RoleExam,
			Teacher:   owner,
		})
	}
}

func (r *run) emitExam(a Assignment) {
	r.agg.add(a)
	r.metrics.exams++
}
