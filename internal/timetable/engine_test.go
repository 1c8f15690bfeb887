package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func collectAssignments(result *ScheduleResult) []Assignment {
	var all []Assignment
	for _, byPeriod := range result.DayGrid {
		for _, list := range byPeriod {
			all = append(all, list...)
		}
	}
	return all
}

func TestGenerateSmallAcademyWeek(t *testing.T) {
	engine := New()
	result, err := engine.Generate(SlotConfig{
		HomeroomPool: []Teacher{"H1", "H2"},
		ForeignPool:  []Teacher{"F1"},
		Options: GlobalOptions{
			RoundClassCounts:              map[int]int{1: 2},
			IncludeHomeroomOwnersInKorean: true,
		},
	})
	require.NoError(t, err)

	// Balanced ownership: one class each.
	owners := map[Teacher]int{}
	for _, owner := range result.Homerooms {
		owners[owner]++
	}
	assert.Equal(t, map[Teacher]int{"H1": 1, "H2": 1}, owners)

	// 2 classes x 2 periods x 3 days.
	all := collectAssignments(result)
	assert.Len(t, all, 12)
	assert.Equal(t, 12, result.Metrics.Attempted)
	assert.Equal(t, 10, result.Metrics.Assigned)
	assert.Equal(t, 2, result.Metrics.Unassigned)
	assert.Equal(t, 0, result.Metrics.ExamAssignments)

	// One foreign teacher cannot cover two simultaneous classes: the
	// shortage surfaces as warnings plus sentinels, never a failure.
	require.Len(t, result.Warnings, 2)
	for _, warning := range result.Warnings {
		assert.Contains(t, warning, "FOREIGN")
	}
	unassigned := 0
	for _, asg := range all {
		if !asg.Assigned() {
			unassigned++
			assert.Equal(t, RoleForeign, asg.Role)
		}
	}
	assert.Equal(t, 2, unassigned)
}

func TestGenerateNoDoubleBooking(t *testing.T) {
	result := generateLargeWeek(t)

	type booking struct {
		day     Day
		period  Period
		teacher Teacher
	}
	seen := map[booking]string{}
	for _, asg := range collectAssignments(result) {
		if asg.Role == RoleExam || !asg.Assigned() {
			continue
		}
		key := booking{day: asg.Day, period: asg.Period, teacher: asg.Teacher}
		if prev, dup := seen[key]; dup {
			t.Fatalf("%s booked twice at %s period %s (classes %s and %s)", asg.Teacher, asg.Day, asg.Period, prev, asg.ClassID)
		}
		seen[key] = asg.ClassID
	}
}

func TestGenerateKoreanSelfExclusion(t *testing.T) {
	result := generateLargeWeek(t)
	for _, asg := range collectAssignments(result) {
		if asg.Role != RoleKorean || !asg.Assigned() {
			continue
		}
		assert.NotEqual(t, result.Homerooms[asg.ClassID], asg.Teacher,
			"class %s Korean slot filled by its own homeroom owner", asg.ClassID)
	}
}

func TestGenerateRound4NeverForeign(t *testing.T) {
	result := generateLargeWeek(t)
	for _, asg := range collectAssignments(result) {
		if asg.Round == 4 {
			assert.NotEqual(t, RoleForeign, asg.Role)
		}
	}
}

func TestGenerateExamProctorIsHomeroomOwner(t *testing.T) {
	result := generateLargeWeek(t)
	examCount := 0
	for _, asg := range collectAssignments(result) {
		if asg.Role != RoleExam {
			continue
		}
		examCount++
		assert.NotEqual(t, 1, asg.Round, "round 1 must not hold exams")
		assert.Equal(t, result.Homerooms[asg.ClassID], asg.Teacher)
	}
	assert.Greater(t, examCount, 0)
	assert.Equal(t, examCount, result.Metrics.ExamAssignments)
}

func TestGenerateCoveragePerRoundAndDay(t *testing.T) {
	result := generateLargeWeek(t)
	counts := map[int]map[Day]int{}
	for _, asg := range collectAssignments(result) {
		if asg.Role == RoleExam {
			continue
		}
		if counts[asg.Round] == nil {
			counts[asg.Round] = map[Day]int{}
		}
		counts[asg.Round][asg.Day]++
	}
	for round, classes := range map[int]int{1: 2, 2: 2, 4: 3} {
		require.Contains(t, counts, round)
		for _, day := range DefaultWeek {
			assert.Equal(t, 2*classes, counts[round][day], "round %d on %s", round, day)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	engine := New()
	cfg := largeWeekConfig()

	first, err := engine.Generate(cfg)
	require.NoError(t, err)
	second, err := engine.Generate(cfg)
	require.NoError(t, err)

	first.Metrics.DurationMs = 0
	second.Metrics.DurationMs = 0
	assert.Equal(t, first, second)
}

func TestGenerateHonoursMaxHomeroomsZero(t *testing.T) {
	engine := New()
	result, err := engine.Generate(SlotConfig{
		HomeroomPool: []Teacher{"H1", "H2"},
		Constraints: map[Teacher]TeacherConstraints{
			"H1": {MaxHomerooms: intPtr(0)},
		},
		Options: GlobalOptions{
			RoundClassCounts: map[int]int{1: 2},
		},
	})
	require.NoError(t, err)
	for classID, owner := range result.Homerooms {
		assert.Equal(t, Teacher("H2"), owner, "class %s", classID)
	}
}

func TestGenerateHonoursUnavailability(t *testing.T) {
	engine := New()
	result, err := engine.Generate(SlotConfig{
		HomeroomPool: []Teacher{"H1"},
		ForeignPool:  []Teacher{"F1"},
		Constraints: map[Teacher]TeacherConstraints{
			"F1": {Unavailable: []Slot{{Day: Monday, Period: 1}, {Day: Monday, Period: 2}}},
		},
		Options: GlobalOptions{
			RoundClassCounts: map[int]int{1: 1},
		},
	})
	require.NoError(t, err)
	for _, asg := range collectAssignments(result) {
		if asg.Teacher == "F1" {
			assert.False(t, asg.Day == Monday && (asg.Period == 1 || asg.Period == 2),
				"F1 assigned during declared unavailability")
		}
	}
	assert.Greater(t, result.Metrics.AvailabilityMisses, 0)
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	engine := New()
	_, err := engine.Generate(SlotConfig{
		HomeroomPool: []Teacher{"H1"},
		Options: GlobalOptions{
			RoundClassCounts: map[int]int{5: 1},
		},
	})
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "roundClassCounts", cfgErr.Field)
}

func TestGenerateConcurrentRunsAreIsolated(t *testing.T) {
	engine := New()
	cfg := largeWeekConfig()

	baseline, err := engine.Generate(cfg)
	require.NoError(t, err)
	baseline.Metrics.DurationMs = 0

	type outcome struct {
		result *ScheduleResult
		err    error
	}
	results := make(chan outcome, 4)
	for i := 0; i < 4; i++ {
		go func() {
			result, genErr := engine.Generate(cfg)
			results <- outcome{result: result, err: genErr}
		}()
	}
	for i := 0; i < 4; i++ {
		out := <-results
		require.NoError(t, out.err)
		out.result.Metrics.DurationMs = 0
		assert.Equal(t, baseline, out.result)
	}
}

func largeWeekConfig() SlotConfig {
	return SlotConfig{
		HomeroomPool: []Teacher{"Hana", "Jisoo", "Minho"},
		ForeignPool:  []Teacher{"Alice", "Brian"},
		Constraints: map[Teacher]TeacherConstraints{
			"Minho": {Unavailable: []Slot{{Day: Friday, Period: 7}}},
			"Alice": {Unavailable: []Slot{{Day: Wednesday, Period: 3}}},
		},
		FixedHomerooms: map[Teacher]string{"Jisoo": "R2C1"},
		Options: GlobalOptions{
			RoundClassCounts:              map[int]int{1: 2, 2: 2, 4: 3},
			ExamPeriods:                   map[Day][]Period{Wednesday: {2.5, 4.5}},
			IncludeHomeroomOwnersInKorean: true,
		},
	}
}

func generateLargeWeek(t *testing.T) *ScheduleResult {
	t.Helper()
	result, err := New().Generate(largeWeekConfig())
	require.NoError(t, err)
	return result
}
