package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() SlotConfig {
	return SlotConfig{
		HomeroomPool: []Teacher{"Hana", "Jisoo"},
		ForeignPool:  []Teacher{"Alice"},
		Options: GlobalOptions{
			RoundClassCounts: map[int]int{1: 2},
		},
	}
}

func TestValidateAcceptsValidConfig(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SlotConfig)
		field  string
	}{
		{
			name:   "empty homeroom pool",
			mutate: func(c *SlotConfig) { c.HomeroomPool = nil },
			field:  "homeroomPool",
		},
		{
			name:   "empty teacher name",
			mutate: func(c *SlotConfig) { c.HomeroomPool = append(c.HomeroomPool, "") },
			field:  "homeroomPool",
		},
		{
			name:   "reserved teacher name",
			mutate: func(c *SlotConfig) { c.ForeignPool = append(c.ForeignPool, TeacherUnassigned) },
			field:  "foreignPool",
		},
		{
			name:   "duplicate within pool",
			mutate: func(c *SlotConfig) { c.HomeroomPool = append(c.HomeroomPool, "Hana") },
			field:  "homeroomPool",
		},
		{
			name:   "overlapping pools",
			mutate: func(c *SlotConfig) { c.ForeignPool = append(c.ForeignPool, "Hana") },
			field:  "foreignPool",
		},
		{
			name:   "round out of range",
			mutate: func(c *SlotConfig) { c.Options.RoundClassCounts[5] = 1 },
			field:  "roundClassCounts",
		},
		{
			name:   "negative class count",
			mutate: func(c *SlotConfig) { c.Options.RoundClassCounts[2] = -1 },
			field:  "roundClassCounts",
		},
		{
			name:   "unknown day",
			mutate: func(c *SlotConfig) { c.Options.Days = []Day{"FUNDAY"} },
			field:  "days",
		},
		{
			name:   "duplicate day",
			mutate: func(c *SlotConfig) { c.Options.Days = []Day{Monday, Monday} },
			field:  "days",
		},
		{
			name:   "fixed homeroom outside pool",
			mutate: func(c *SlotConfig) { c.FixedHomerooms = map[Teacher]string{"Alice": "R1C1"} },
			field:  "fixedHomerooms",
		},
		{
			name:   "fixed homeroom unknown class",
			mutate: func(c *SlotConfig) { c.FixedHomerooms = map[Teacher]string{"Hana": "R3C1"} },
			field:  "fixedHomerooms",
		},
		{
			name: "two teachers claim one class",
			mutate: func(c *SlotConfig) {
				c.FixedHomerooms = map[Teacher]string{"Hana": "R1C1", "Jisoo": "R1C1"}
			},
			field: "fixedHomerooms",
		},
		{
			name: "constraint for unknown teacher",
			mutate: func(c *SlotConfig) {
				c.Constraints = map[Teacher]TeacherConstraints{"Ghost": {}}
			},
			field: "constraints",
		},
		{
			name: "negative max homerooms",
			mutate: func(c *SlotConfig) {
				c.Constraints = map[Teacher]TeacherConstraints{"Hana": {MaxHomerooms: intPtr(-1)}}
			},
			field: "constraints",
		},
		{
			name: "unavailability on unknown day",
			mutate: func(c *SlotConfig) {
				c.Constraints = map[Teacher]TeacherConstraints{
					"Hana": {Unavailable: []Slot{{Day: "NODAY", Period: 1}}},
				}
			},
			field: "constraints",
		},
		{
			name: "fractional unavailability period",
			mutate: func(c *SlotConfig) {
				c.Constraints = map[Teacher]TeacherConstraints{
					"Hana": {Unavailable: []Slot{{Day: Monday, Period: 2.5}}},
				}
			},
			field: "constraints",
		},
		{
			name: "unavailability period out of range",
			mutate: func(c *SlotConfig) {
				c.Constraints = map[Teacher]TeacherConstraints{
					"Hana": {Unavailable: []Slot{{Day: Monday, Period: 9}}},
				}
			},
			field: "constraints",
		},
		{
			name: "exam marker on unknown day",
			mutate: func(c *SlotConfig) {
				c.Options.ExamPeriods = map[Day][]Period{"NODAY": {2.5}}
			},
			field: "examPeriods",
		},
		{
			name: "exam marker out of range",
			mutate: func(c *SlotConfig) {
				c.Options.ExamPeriods = map[Day][]Period{Monday: {9.5}}
			},
			field: "examPeriods",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tc.field, cfgErr.Field)
			assert.NotEmpty(t, cfgErr.Error())
		})
	}
}

func TestConfigWeekDefaults(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, DefaultWeek, cfg.week())

	cfg.Options.Days = []Day{Tuesday, Thursday}
	assert.Equal(t, []Day{Tuesday, Thursday}, cfg.week())
}

func TestConfigClassIDs(t *testing.T) {
	cfg := validConfig()
	cfg.Options.RoundClassCounts = map[int]int{2: 3, 1: 1, 3: 0}
	assert.Equal(t, []int{1, 2}, cfg.rounds())
	assert.Equal(t, []string{"R2C1", "R2C2", "R2C3"}, cfg.classIDs(2))
}
