package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/zeebo/xxh3"
	"go.uber.org/zap"

	"github.com/harin-dev/academy-timetable-api/internal/dto"
	"github.com/harin-dev/academy-timetable-api/internal/timetable"
	appErrors "github.com/harin-dev/academy-timetable-api/pkg/errors"
)

const resultCachePrefix = "timetable:result:"

// timetableEngine is the single boundary to the assignment engine.
type timetableEngine interface {
	Generate(cfg timetable.SlotConfig) (*timetable.ScheduleResult, error)
}

// TimetableService validates generation requests, maps them to engine
// configuration, and fronts the engine with a deterministic result cache.
// Generation is pure, so identical configurations can safely share a cached
// result keyed by the configuration fingerprint.
type TimetableService struct {
	engine    timetableEngine
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// TimetableConfig governs service behaviour.
type TimetableConfig struct {
	CacheTTL time.Duration
}

// NewTimetableService wires the generation dependencies.
func NewTimetableService(
	engine timetableEngine,
	cache *CacheService,
	metrics *MetricsService,
	validate *validator.Validate,
	logger *zap.Logger,
	cfg TimetableConfig,
) *TimetableService {
	if engine == nil {
		engine = timetable.New()
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Hour
	}
	return &TimetableService{
		engine:    engine,
		cache:     cache,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		cacheTTL:  cfg.CacheTTL,
	}
}

// Generate runs one full generation pass. The returned bool reports whether
// the response came from the result cache.
func (s *TimetableService) Generate(ctx context.Context, req dto.GenerateTimetableRequest) (*dto.GenerateTimetableResponse, bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid timetable generation payload")
	}

	cfg, err := mapSlotConfig(req)
	if err != nil {
		return nil, false, err
	}

	key, err := configFingerprint(cfg)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fingerprint configuration")
	}

	cached := &dto.GenerateTimetableResponse{}
	if hit, cacheErr := s.cache.Get(ctx, key, cached); cacheErr == nil && hit {
		return cached, true, nil
	}

	start := time.Now()
	result, err := s.engine.Generate(cfg)
	if err != nil {
		var cfgErr *timetable.ConfigError
		if errors.As(err, &cfgErr) {
			return nil, false, appErrors.Wrap(cfgErr, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, cfgErr.Error())
		}
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "timetable generation failed")
	}
	if s.metrics != nil {
		s.metrics.RecordGeneration(time.Since(start), result.Metrics.Assigned, result.Metrics.Unassigned, len(result.Warnings))
	}

	resp := &dto.GenerateTimetableResponse{
		RunID:    uuid.NewString(),
		Schedule: result,
	}
	if err := s.cache.Set(ctx, key, resp, s.cacheTTL); err != nil {
		s.logger.Warn("failed to cache timetable result", zap.String("key", key), zap.Error(err))
	}
	return resp, false, nil
}

// Options returns the static slot-configuration defaults.
func (s *TimetableService) Options() *dto.TimetableOptionsResponse {
	rounds := make(map[string]dto.RoundPeriodsResponse, timetable.MaxRound)
	examLabels := make(map[string]string, timetable.MaxRound-1)
	for round := timetable.MinRound; round <= timetable.MaxRound; round++ {
		first, second := timetable.RoundPeriods(round)
		rounds[strconv.Itoa(round)] = dto.RoundPeriodsResponse{First: first, Second: second}
		if round > timetable.MinRound {
			examLabels[strconv.Itoa(round)] = timetable.ExamAnchorLabel(round)
		}
	}
	return &dto.TimetableOptionsResponse{
		Days:       timetable.DefaultWeek,
		Rounds:     rounds,
		TimeLabels: timetable.TimeLabels(),
		Roles:      []timetable.Role{timetable.RoleHomeroom, timetable.RoleKorean, timetable.RoleForeign, timetable.RoleExam},
		ExamLabels: examLabels,
	}
}

// mapSlotConfig converts the wire payload into engine configuration.
// Malformed values are reported as validation errors before the engine runs.
func mapSlotConfig(req dto.GenerateTimetableRequest) (timetable.SlotConfig, error) {
	cfg := timetable.SlotConfig{
		HomeroomPool: toTeachers(req.HomeroomPool),
		ForeignPool:  toTeachers(req.ForeignPool),
	}

	if len(req.Constraints) > 0 {
		cfg.Constraints = make(map[timetable.Teacher]timetable.TeacherConstraints, len(req.Constraints))
		for name, raw := range req.Constraints {
			slots := make([]timetable.Slot, 0, len(raw.Unavailable))
			for _, key := range raw.Unavailable {
				slot, err := parseSlotKey(key)
				if err != nil {
					return timetable.SlotConfig{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("teacher %s: %v", name, err))
				}
				slots = append(slots, slot)
			}
			cfg.Constraints[timetable.Teacher(name)] = timetable.TeacherConstraints{
				Unavailable:      slots,
				HomeroomDisabled: raw.HomeroomDisabled,
				MaxHomerooms:     raw.MaxHomerooms,
			}
		}
	}

	if len(req.FixedHomerooms) > 0 {
		cfg.FixedHomerooms = make(map[timetable.Teacher]string, len(req.FixedHomerooms))
		for name, classID := range req.FixedHomerooms {
			cfg.FixedHomerooms[timetable.Teacher(name)] = classID
		}
	}

	cfg.Options.RoundClassCounts = make(map[int]int, len(req.RoundClassCounts))
	for key, count := range req.RoundClassCounts {
		round, err := strconv.Atoi(key)
		if err != nil {
			return timetable.SlotConfig{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("roundClassCounts key %q is not a round number", key))
		}
		cfg.Options.RoundClassCounts[round] = count
	}

	if len(req.ExamPeriods) > 0 {
		cfg.Options.ExamPeriods = make(map[timetable.Day][]timetable.Period, len(req.ExamPeriods))
		for day, markers := range req.ExamPeriods {
			periods := make([]timetable.Period, 0, len(markers))
			for _, marker := range markers {
				periods = append(periods, timetable.Period(marker))
			}
			cfg.Options.ExamPeriods[timetable.Day(strings.ToUpper(day))] = periods
		}
	}

	cfg.Options.IncludeHomeroomOwnersInKorean = req.IncludeHomeroomOwnersInKorean
	for _, day := range req.Days {
		cfg.Options.Days = append(cfg.Options.Days, timetable.Day(strings.ToUpper(day)))
	}
	return cfg, nil
}

// parseSlotKey parses "MONDAY-3" into a Slot.
func parseSlotKey(key string) (timetable.Slot, error) {
	day, period, found := strings.Cut(strings.TrimSpace(key), "-")
	if !found {
		return timetable.Slot{}, fmt.Errorf("malformed slot key %q, want DAY-PERIOD", key)
	}
	value, err := strconv.ParseFloat(period, 64)
	if err != nil {
		return timetable.Slot{}, fmt.Errorf("malformed period in slot key %q", key)
	}
	return timetable.Slot{
		Day:    timetable.Day(strings.ToUpper(strings.TrimSpace(day))),
		Period: timetable.Period(value),
	}, nil
}

// configFingerprint hashes the canonical JSON form of the configuration.
// encoding/json sorts map keys, so equal configurations share a fingerprint.
func configFingerprint(cfg timetable.SlotConfig) (string, error) {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%016x", resultCachePrefix, xxh3.Hash(payload)), nil
}

func toTeachers(names []string) []timetable.Teacher {
	if len(names) == 0 {
		return nil
	}
	teachers := make([]timetable.Teacher, len(names))
	for i, name := range names {
		teachers[i] = timetable.Teacher(name)
	}
	return teachers
}
