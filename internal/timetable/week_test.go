package timetable

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundPeriods(t *testing.T) {
	first, second := RoundPeriods(1)
	assert.Equal(t, Period(1), first)
	assert.Equal(t, Period(2), second)

	first, second = RoundPeriods(4)
	assert.Equal(t, Period(7), first)
	assert.Equal(t, Period(8), second)
}

func TestTimeLabels(t *testing.T) {
	assert.Equal(t, "14:00-14:40", TimeLabel(1))
	assert.Equal(t, "14:45-15:25", TimeLabel(2))
	assert.Equal(t, "19:15-19:55", TimeLabel(8))

	// Fractional periods label the break after the floor period.
	assert.Equal(t, "14:40-14:45", TimeLabel(1.5))
	assert.Equal(t, "15:25-15:30", TimeLabel(2.5))

	labels := TimeLabels()
	assert.Len(t, labels, 8)
	assert.Equal(t, "15:30-16:10", labels[3])
}

func TestExamAnchorLabel(t *testing.T) {
	assert.Equal(t, "15:30 TEST", ExamAnchorLabel(2))
	assert.Equal(t, "17:00 TEST", ExamAnchorLabel(3))
	assert.Equal(t, "18:30 TEST", ExamAnchorLabel(4))
}

func TestPeriodTextMarshalling(t *testing.T) {
	grid := map[Period]string{2.5: "break", 3: "class"}
	raw, err := json.Marshal(grid)
	require.NoError(t, err)
	assert.JSONEq(t, `{"2.5":"break","3":"class"}`, string(raw))

	var decoded map[Period]string
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, grid, decoded)
}
