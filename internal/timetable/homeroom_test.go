package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planFor(t *testing.T, cfg SlotConfig) (*homeroomPlan, []string) {
	t.Helper()
	var warnings []string
	plan := assignHomerooms(&cfg, func(format string, args ...any) {
		warnings = append(warnings, format)
	})
	return plan, warnings
}

func TestAssignHomeroomsBalancesLoad(t *testing.T) {
	plan, warnings := planFor(t, SlotConfig{
		HomeroomPool: []Teacher{"Hana", "Jisoo"},
		Options:      GlobalOptions{RoundClassCounts: map[int]int{1: 2, 2: 2}},
	})
	require.Empty(t, warnings)

	counts := map[Teacher]int{}
	for _, owner := range plan.owners {
		counts[owner]++
	}
	assert.Equal(t, map[Teacher]int{"Hana": 2, "Jisoo": 2}, counts)

	// Lexicographic tie-break: the first class of each balanced pair goes
	// to the alphabetically smaller name.
	assert.Equal(t, Teacher("Hana"), plan.owner("R1C1"))
	assert.Equal(t, Teacher("Jisoo"), plan.owner("R1C2"))
}

func TestAssignHomeroomsFixedOverridesApplyVerbatim(t *testing.T) {
	plan, warnings := planFor(t, SlotConfig{
		HomeroomPool: []Teacher{"Hana", "Jisoo"},
		Constraints: map[Teacher]TeacherConstraints{
			// Overrides win even over a disabled flag.
			"Jisoo": {HomeroomDisabled: true},
		},
		FixedHomerooms: map[Teacher]string{"Jisoo": "R1C1"},
		Options:        GlobalOptions{RoundClassCounts: map[int]int{1: 2}},
	})
	require.Empty(t, warnings)
	assert.Equal(t, Teacher("Jisoo"), plan.owner("R1C1"))
	assert.Equal(t, Teacher("Hana"), plan.owner("R1C2"))
	assert.True(t, plan.owns("Jisoo", "R1C1"))
}

func TestAssignHomeroomsFixedCountsTowardBalance(t *testing.T) {
	plan, _ := planFor(t, SlotConfig{
		HomeroomPool:   []Teacher{"Hana", "Jisoo"},
		FixedHomerooms: map[Teacher]string{"Hana": "R1C1"},
		Options:        GlobalOptions{RoundClassCounts: map[int]int{1: 3}},
	})
	// Hana holds R1C1 already, so R1C2 goes to Jisoo before Hana takes a
	// second class.
	assert.Equal(t, Teacher("Jisoo"), plan.owner("R1C2"))
	assert.Equal(t, Teacher("Hana"), plan.owner("R1C3"))
}

func TestAssignHomeroomsSkipsDisabledTeachers(t *testing.T) {
	plan, warnings := planFor(t, SlotConfig{
		HomeroomPool: []Teacher{"Hana", "Jisoo"},
		Constraints: map[Teacher]TeacherConstraints{
			"Hana": {HomeroomDisabled: true},
		},
		Options: GlobalOptions{RoundClassCounts: map[int]int{1: 2}},
	})
	require.Empty(t, warnings)
	assert.Equal(t, Teacher("Jisoo"), plan.owner("R1C1"))
	assert.Equal(t, Teacher("Jisoo"), plan.owner("R1C2"))
}

func TestAssignHomeroomsRespectsMaxHomerooms(t *testing.T) {
	plan, warnings := planFor(t, SlotConfig{
		HomeroomPool: []Teacher{"Hana", "Jisoo"},
		Constraints: map[Teacher]TeacherConstraints{
			"Hana":  {MaxHomerooms: intPtr(1)},
			"Jisoo": {MaxHomerooms: intPtr(1)},
		},
		Options: GlobalOptions{RoundClassCounts: map[int]int{1: 3}},
	})
	require.Len(t, warnings, 1)
	assert.Equal(t, Teacher("Hana"), plan.owner("R1C1"))
	assert.Equal(t, Teacher("Jisoo"), plan.owner("R1C2"))
	assert.Equal(t, TeacherUnassigned, plan.owner("R1C3"))
}

func TestAssignHomeroomsFallbackWhenPoolIsExhausted(t *testing.T) {
	plan, warnings := planFor(t, SlotConfig{
		HomeroomPool: []Teacher{"Hana"},
		Constraints: map[Teacher]TeacherConstraints{
			"Hana": {HomeroomDisabled: true},
		},
		Options: GlobalOptions{RoundClassCounts: map[int]int{1: 1}},
	})
	assert.Len(t, warnings, 1)
	assert.Equal(t, TeacherUnassigned, plan.owner("R1C1"))
}
