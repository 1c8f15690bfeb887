package dto

import (
	"github.com/harin-dev/academy-timetable-api/internal/timetable"
)

// TeacherConstraintRequest carries per-teacher restrictions. Unavailability
// slots arrive as "DAY-PERIOD" strings, e.g. "MONDAY-3".
type TeacherConstraintRequest struct {
	Unavailable      []string `json:"unavailable" validate:"omitempty,dive,required"`
	HomeroomDisabled bool     `json:"homeroomDisabled"`
	MaxHomerooms     *int     `json:"maxHomerooms" validate:"omitempty,min=0"`
}

// GenerateTimetableRequest is the full slot configuration for one run.
// Round counts are string-keyed ("1"-"4") to match the JSON object shape
// the clients send.
type GenerateTimetableRequest struct {
	HomeroomPool                  []string                            `json:"homeroomPool" validate:"required,min=1,dive,required"`
	ForeignPool                   []string                            `json:"foreignPool" validate:"omitempty,dive,required"`
	Constraints                   map[string]TeacherConstraintRequest `json:"constraints" validate:"omitempty,dive"`
	FixedHomerooms                map[string]string                   `json:"fixedHomerooms"`
	RoundClassCounts              map[string]int                      `json:"roundClassCounts" validate:"required,min=1"`
	ExamPeriods                   map[string][]float64                `json:"examPeriods"`
	IncludeHomeroomOwnersInKorean bool                                `json:"includeHomeroomOwnersInKorean"`
	Days                          []string                            `json:"days" validate:"omitempty,min=1,dive,required"`
}

// GenerateTimetableResponse wraps one generated schedule.
type GenerateTimetableResponse struct {
	RunID    string                    `json:"runId"`
	Schedule *timetable.ScheduleResult `json:"schedule"`
}

// DiffTimetableRequest compares two schedule snapshots.
type DiffTimetableRequest struct {
	Base   *timetable.ScheduleResult `json:"base" validate:"required"`
	Target *timetable.ScheduleResult `json:"target" validate:"required"`
}

// AssignmentChange pairs the before/after state of one changed slot.
type AssignmentChange struct {
	Before timetable.Assignment `json:"before"`
	After  timetable.Assignment `json:"after"`
}

// DiffTimetableResponse lists slot-level differences keyed by
// (class, day, period, role).
type DiffTimetableResponse struct {
	Added   []timetable.Assignment `json:"added"`
	Removed []timetable.Assignment `json:"removed"`
	Changed []AssignmentChange     `json:"changed"`
}

// RoundPeriodsResponse describes the two periods a round owns.
type RoundPeriodsResponse struct {
	First  timetable.Period `json:"first"`
	Second timetable.Period `json:"second"`
}

// TimetableOptionsResponse exposes the static slot-configuration defaults a
// client needs to build a request.
type TimetableOptionsResponse struct {
	Days       []timetable.Day                 `json:"days"`
	Rounds     map[string]RoundPeriodsResponse `json:"rounds"`
	TimeLabels map[timetable.Period]string     `json:"timeLabels"`
	Roles      []timetable.Role                `json:"roles"`
	ExamLabels map[string]string               `json:"examLabels"`
}
