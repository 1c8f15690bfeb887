package timetable

import (
	"strconv"
)

// Teacher identifies a staff member by display name.
type Teacher string

// TeacherUnassigned is the sentinel used when no eligible teacher survives
// filtering for a slot. It is a valid value everywhere a Teacher appears.
const TeacherUnassigned Teacher = "UNASSIGNED"

// Role is the closed set of duties a slot can carry.
type Role string

const (
	RoleHomeroom Role = "HOMEROOM"
	RoleKorean   Role = "KOREAN"
	RoleForeign  Role = "FOREIGN"
	RoleExam     Role = "EXAM"
)

// Day names a weekday in upper-case form, matching the wire format used by
// the calling layer.
type Day string

const (
	Monday    Day = "MONDAY"
	Tuesday   Day = "TUESDAY"
	Wednesday Day = "WEDNESDAY"
	Thursday  Day = "THURSDAY"
	Friday    Day = "FRIDAY"
	Saturday  Day = "SATURDAY"
	Sunday    Day = "SUNDAY"
)

// Period is a teaching period number. Whole values are regular periods;
// half values (2.5) mark the break between two periods and are used for
// exam placement. Text marshalling keeps fractional periods usable as JSON
// map keys.
type Period float64

// String renders the period without a trailing fraction for whole values.
func (p Period) String() string {
	return strconv.FormatFloat(float64(p), 'f', -1, 64)
}

// MarshalText implements encoding.TextMarshaler.
func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Period) UnmarshalText(text []byte) error {
	v, err := strconv.ParseFloat(string(text), 64)
	if err != nil {
		return err
	}
	*p = Period(v)
	return nil
}

// Whole reports whether the period is a regular (non-break) period.
func (p Period) Whole() bool {
	return p == Period(int(p))
}

// Slot keys one (day, period) cell of the weekly grid.
type Slot struct {
	Day    Day    `json:"day"`
	Period Period `json:"period"`
}

// Assignment binds one (class, day, period) cell to a role and a teacher.
// Immutable once created.
type Assignment struct {
	ClassID   string  `json:"classId"`
	Round     int     `json:"round"`
	Day       Day     `json:"day"`
	Period    Period  `json:"period"`
	TimeLabel string  `json:"timeLabel"`
	Role      Role    `json:"role"`
	Teacher   Teacher `json:"teacher"`
}

// Assigned reports whether the assignment resolved to a real teacher.
func (a Assignment) Assigned() bool {
	return a.Teacher != TeacherUnassigned && a.Teacher != ""
}

// RunMetrics summarises one generation pass.
type RunMetrics struct {
	DurationMs         int64   `json:"durationMs"`
	Attempted          int     `json:"attempted"`
	Assigned           int     `json:"assigned"`
	Unassigned         int     `json:"unassigned"`
	ExamAssignments    int     `json:"examAssignments"`
	SortOps            int     `json:"sortOps"`
	AvailabilityHits   int     `json:"availabilityHits"`
	AvailabilityMisses int     `json:"availabilityMisses"`
	AvailabilityRatio  float64 `json:"availabilityHitRatio"`
}

// ScheduleResult is the complete output of one generation run. Ownership is
// exclusive to the caller; the engine retains no reference after returning.
type ScheduleResult struct {
	ClassSummary   map[string]map[Day][]Assignment  `json:"classSummary"`
	TeacherSummary map[Teacher]map[Day][]Assignment `json:"teacherSummary"`
	DayGrid        map[Day]map[Period][]Assignment  `json:"dayGrid"`
	Homerooms      map[string]Teacher               `json:"homerooms"`
	Warnings       []string                         `json:"warnings"`
	Metrics        RunMetrics                       `json:"metrics"`
}
