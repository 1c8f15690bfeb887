package timetable

import (
	"go.uber.org/zap"
)

// Engine generates weekly timetables. It holds no mutable state of its own;
// everything a run touches lives in a per-call run value, so one Engine may
// serve concurrent Generate calls.
type Engine struct {
	logger *zap.Logger
}

// Option customises an Engine.
type Option func(*Engine)

// WithLogger attaches a structured logger for per-slot diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New constructs an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// run carries all mutable state of one generation call.
type run struct {
	cfg       *SlotConfig
	homerooms *homeroomPlan
	tracker   *conflictTracker
	avail     *availabilityIndex
	loads     map[Teacher]int
	agg       *aggregator
	metrics   *runMetrics
	logger    *zap.Logger
}

// Generate produces a complete schedule for the configuration. Invalid
// configuration is rejected with a *ConfigError before any assignment work;
// unmet demand during the pass surfaces as warnings plus TeacherUnassigned
// entries, never as an error.
func (e *Engine) Generate(cfg SlotConfig) (*ScheduleResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &run{
		cfg:     &cfg,
		tracker: newConflictTracker(),
		avail:   newAvailabilityIndex(cfg.Constraints),
		loads:   make(map[Teacher]int),
		agg:     newAggregator(),
		metrics: newRunMetrics(),
		logger:  e.logger,
	}
	r.homerooms = assignHomerooms(&cfg, r.agg.warn)

	week := cfg.week()
	for _, round := range cfg.rounds() {
		capacity := staggerCapacity(&cfg, round)
		first, second := RoundPeriods(round)
		for dayIdx, day := range week {
			for classIdx, classID := range cfg.classIDs(round) {
				roleA, roleB := staggerRoles(round, dayIdx, classIdx, capacity)
				owner := r.homerooms.owner(classID)
				r.assign(round, day, first, classID, roleA, owner)
				r.assign(round, day, second, classID, roleB, owner)
				r.placeExams(round, day, classID, owner)
			}
		}
	}

	r.agg.finish()

	result := &ScheduleResult{
		ClassSummary:   r.agg.classSummary,
		TeacherSummary: r.agg.teacherSummary,
		DayGrid:        r.agg.dayGrid,
		Homerooms:      r.homerooms.owners,
		Warnings:       r.agg.warnings,
		Metrics:        r.metrics.snapshot(r.agg, r.avail),
	}
	e.logger.Info("timetable generated",
		zap.Int("attempted", result.Metrics.Attempted),
		zap.Int("assigned", result.Metrics.Assigned),
		zap.Int("unassigned", result.Metrics.Unassigned),
		zap.Int("warnings", len(result.Warnings)),
		zap.Int64("duration_ms", result.Metrics.DurationMs),
	)
	return result, nil
}

// assign resolves one non-exam slot and folds it into the views. A failed
// selection records a warning and keeps the slot with the sentinel teacher.
func (r *run) assign(round int, day Day, period Period, classID string, role Role, owner Teacher) {
	r.metrics.attempted++

	var teacher Teacher
	var ok bool
	switch role {
	case RoleHomeroom:
		teacher, ok = r.selectHomeroom(owner, day, period)
	case RoleKorean:
		teacher, ok = r.selectKorean(classID, day, period)
	case RoleForeign:
		teacher, ok = r.selectForeign(day, period)
	}

	asg := Assignment{
		ClassID:   classID,
		Round:     round,
		Day:       day,
		Period:    period,
		TimeLabel: TimeLabel(period),
		Role:      role,
		Teacher:   TeacherUnassigned,
	}
	if ok {
		asg.Teacher = teacher
		r.tracker.occupy(day, period, teacher)
		r.loads[teacher]++
		r.metrics.assigned++
	} else {
		r.metrics.unassigned++
		r.agg.warn("no available teacher for %s role at %s period %s (class %s, round %d)", role, day, period, classID, round)
		r.logger.Debug("slot left unassigned",
			zap.String("class", classID),
			zap.String("day", string(day)),
			zap.String("period", period.String()),
			zap.String("role", string(role)),
			zap.Strings("busy", teacherNames(r.tracker.busyTeachers(day, period))),
		)
	}
	r.agg.add(asg)
}

func teacherNames(teachers []Teacher) []string {
	names := make([]string, len(teachers))
	for i, t := range teachers {
		names[i] = string(t)
	}
	return names
}
