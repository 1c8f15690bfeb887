package timetable

import (
	"fmt"
	"sort"
)

// TeacherConstraints captures per-teacher restrictions for one run.
type TeacherConstraints struct {
	Unavailable      []Slot `json:"unavailable,omitempty"`
	HomeroomDisabled bool   `json:"homeroomDisabled,omitempty"`
	MaxHomerooms     *int   `json:"maxHomerooms,omitempty"`
}

// GlobalOptions tunes the shape of the generated week.
type GlobalOptions struct {
	// RoundClassCounts maps round number (1-4) to how many classes run in it.
	RoundClassCounts map[int]int `json:"roundClassCounts"`
	// ExamPeriods maps a day to fractional period markers; when present,
	// exams for that day land on the markers instead of the round anchor.
	ExamPeriods map[Day][]Period `json:"examPeriods,omitempty"`
	// IncludeHomeroomOwnersInKorean lets owners of other classes fill
	// Korean-role slots. A class's own owner is excluded regardless.
	IncludeHomeroomOwnersInKorean bool `json:"includeHomeroomOwnersInKorean,omitempty"`
	// Days overrides the default teaching week.
	Days []Day `json:"days,omitempty"`
}

// SlotConfig is the complete input of one generation run.
type SlotConfig struct {
	HomeroomPool   []Teacher                      `json:"homeroomPool"`
	ForeignPool    []Teacher                      `json:"foreignPool,omitempty"`
	Constraints    map[Teacher]TeacherConstraints `json:"constraints,omitempty"`
	FixedHomerooms map[Teacher]string             `json:"fixedHomerooms,omitempty"`
	Options        GlobalOptions                  `json:"options"`
}

// ConfigError describes a structurally invalid configuration. Generation
// rejects the input before any assignment work begins.
type ConfigError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid slot configuration: %s: %s", e.Field, e.Reason)
}

// week returns the configured teaching days, defaulting to DefaultWeek.
func (c *SlotConfig) week() []Day {
	if len(c.Options.Days) > 0 {
		return c.Options.Days
	}
	return DefaultWeek
}

// rounds returns the configured round numbers in ascending order, skipping
// rounds with zero classes.
func (c *SlotConfig) rounds() []int {
	rounds := make([]int, 0, len(c.Options.RoundClassCounts))
	for round, count := range c.Options.RoundClassCounts {
		if count > 0 {
			rounds = append(rounds, round)
		}
	}
	sort.Ints(rounds)
	return rounds
}

// classIDs lists the class identifiers of one round: R<round>C1..C<count>.
func (c *SlotConfig) classIDs(round int) []string {
	count := c.Options.RoundClassCounts[round]
	ids := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		ids = append(ids, fmt.Sprintf("R%dC%d", round, i))
	}
	return ids
}

// Validate checks the configuration for structural problems and returns the
// first one found as a *ConfigError. Iteration over map-shaped input is
// sorted so the reported error is stable for a given input.
func (c *SlotConfig) Validate() error {
	if len(c.HomeroomPool) == 0 {
		return &ConfigError{Field: "homeroomPool", Reason: "must contain at least one teacher"}
	}

	seen := make(map[Teacher]string, len(c.HomeroomPool)+len(c.ForeignPool))
	for _, pool := range []struct {
		name     string
		teachers []Teacher
	}{
		{"homeroomPool", c.HomeroomPool},
		{"foreignPool", c.ForeignPool},
	} {
		for _, t := range pool.teachers {
			if t == "" {
				return &ConfigError{Field: pool.name, Reason: "teacher name must not be empty"}
			}
			if t == TeacherUnassigned {
				return &ConfigError{Field: pool.name, Reason: fmt.Sprintf("teacher name %q is reserved", TeacherUnassigned)}
			}
			if prev, ok := seen[t]; ok {
				if prev == pool.name {
					return &ConfigError{Field: pool.name, Reason: fmt.Sprintf("teacher %q listed twice", t)}
				}
				return &ConfigError{Field: pool.name, Reason: fmt.Sprintf("teacher %q belongs to both pools", t)}
			}
			seen[t] = pool.name
		}
	}

	for _, round := range sortedIntKeys(c.Options.RoundClassCounts) {
		count := c.Options.RoundClassCounts[round]
		if round < MinRound || round > MaxRound {
			return &ConfigError{Field: "roundClassCounts", Reason: fmt.Sprintf("round %d is outside %d-%d", round, MinRound, MaxRound)}
		}
		if count < 0 {
			return &ConfigError{Field: "roundClassCounts", Reason: fmt.Sprintf("round %d has negative class count %d", round, count)}
		}
	}

	if err := c.validateDays(); err != nil {
		return err
	}
	if err := c.validateFixedHomerooms(); err != nil {
		return err
	}
	if err := c.validateConstraints(); err != nil {
		return err
	}
	return c.validateExamPeriods()
}

func (c *SlotConfig) validateDays() error {
	seen := make(map[Day]bool, len(c.Options.Days))
	for _, d := range c.Options.Days {
		if !validDay(d) {
			return &ConfigError{Field: "days", Reason: fmt.Sprintf("unknown day %q", d)}
		}
		if seen[d] {
			return &ConfigError{Field: "days", Reason: fmt.Sprintf("day %q listed twice", d)}
		}
		seen[d] = true
	}
	return nil
}

func (c *SlotConfig) validateFixedHomerooms() error {
	homeroom := make(map[Teacher]bool, len(c.HomeroomPool))
	for _, t := range c.HomeroomPool {
		homeroom[t] = true
	}
	known := make(map[string]bool)
	for _, round := range c.rounds() {
		for _, id := range c.classIDs(round) {
			known[id] = true
		}
	}

	claimed := make(map[string]Teacher, len(c.FixedHomerooms))
	for _, t := range sortedTeacherKeys(c.FixedHomerooms) {
		classID := c.FixedHomerooms[t]
		if t == "" || !homeroom[t] {
			return &ConfigError{Field: "fixedHomerooms", Reason: fmt.Sprintf("teacher %q is not in the homeroom pool", t)}
		}
		if !known[classID] {
			return &ConfigError{Field: "fixedHomerooms", Reason: fmt.Sprintf("class %q is not produced by any round", classID)}
		}
		if other, ok := claimed[classID]; ok {
			return &ConfigError{Field: "fixedHomerooms", Reason: fmt.Sprintf("class %q claimed by both %q and %q", classID, other, t)}
		}
		claimed[classID] = t
	}
	return nil
}

func (c *SlotConfig) validateConstraints() error {
	pooled := make(map[Teacher]bool, len(c.HomeroomPool)+len(c.ForeignPool))
	for _, t := range c.HomeroomPool {
		pooled[t] = true
	}
	for _, t := range c.ForeignPool {
		pooled[t] = true
	}

	for _, t := range sortedTeacherKeys(c.Constraints) {
		tc := c.Constraints[t]
		if !pooled[t] {
			return &ConfigError{Field: "constraints", Reason: fmt.Sprintf("teacher %q is not in any pool", t)}
		}
		if tc.MaxHomerooms != nil && *tc.MaxHomerooms < 0 {
			return &ConfigError{Field: "constraints", Reason: fmt.Sprintf("teacher %q has negative maxHomerooms", t)}
		}
		for _, slot := range tc.Unavailable {
			if !validDay(slot.Day) {
				return &ConfigError{Field: "constraints", Reason: fmt.Sprintf("teacher %q has unavailability on unknown day %q", t, slot.Day)}
			}
			if !slot.Period.Whole() || slot.Period < MinPeriod || slot.Period > MaxPeriod {
				return &ConfigError{Field: "constraints", Reason: fmt.Sprintf("teacher %q has unavailability at invalid period %s", t, slot.Period)}
			}
		}
	}
	return nil
}

func (c *SlotConfig) validateExamPeriods() error {
	for _, d := range sortedDayKeys(c.Options.ExamPeriods) {
		if !validDay(d) {
			return &ConfigError{Field: "examPeriods", Reason: fmt.Sprintf("unknown day %q", d)}
		}
		for _, marker := range c.Options.ExamPeriods[d] {
			if marker < MinPeriod || marker > MaxPeriod {
				return &ConfigError{Field: "examPeriods", Reason: fmt.Sprintf("marker %s on %s is outside %s-%s", marker, d, MinPeriod, MaxPeriod)}
			}
		}
	}
	return nil
}

func sortedIntKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func sortedTeacherKeys[V any](m map[Teacher]V) []Teacher {
	keys := make([]Teacher, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func sortedDayKeys[V any](m map[Day]V) []Day {
	keys := make([]Day, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
