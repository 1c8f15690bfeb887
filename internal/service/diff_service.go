package service

import (
	"sort"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/harin-dev/academy-timetable-api/internal/dto"
	"github.com/harin-dev/academy-timetable-api/internal/timetable"
	appErrors "github.com/harin-dev/academy-timetable-api/pkg/errors"
)

// DiffService compares two schedule snapshots slot by slot.
type DiffService struct {
	validator *validator.Validate
	logger    *zap.Logger
}

// NewDiffService constructs a diff service.
func NewDiffService(validate *validator.Validate, logger *zap.Logger) *DiffService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DiffService{validator: validate, logger: logger}
}

// slotIdentity keys one logical slot across two snapshots.
type slotIdentity struct {
	ClassID string
	Day     timetable.Day
	Period  timetable.Period
	Role    timetable.Role
}

// Compare classifies every slot as added, removed, or changed between the
// base and target snapshots. Slots present in both with the same teacher
// are omitted. Output ordering is stable: class, then day, then period.
func (s *DiffService) Compare(req dto.DiffTimetableRequest) (*dto.DiffTimetableResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid timetable diff payload")
	}

	base := flattenSchedule(req.Base)
	target := flattenSchedule(req.Target)

	resp := &dto.DiffTimetableResponse{
		Added:   []timetable.Assignment{},
		Removed: []timetable.Assignment{},
		Changed: []dto.AssignmentChange{},
	}

	for key, after := range target {
		before, existed := base[key]
		if !existed {
			resp.Added = append(resp.Added, after)
			continue
		}
		if before.Teacher != after.Teacher || before.TimeLabel != after.TimeLabel {
			resp.Changed = append(resp.Changed, dto.AssignmentChange{Before: before, After: after})
		}
	}
	for key, before := range base {
		if _, still := target[key]; !still {
			resp.Removed = append(resp.Removed, before)
		}
	}

	sortAssignments(resp.Added)
	sortAssignments(resp.Removed)
	sort.SliceStable(resp.Changed, func(i, j int) bool {
		return assignmentLess(resp.Changed[i].After, resp.Changed[j].After)
	})
	return resp, nil
}

func flattenSchedule(result *timetable.ScheduleResult) map[slotIdentity]timetable.Assignment {
	flat := make(map[slotIdentity]timetable.Assignment)
	for _, byPeriod := range result.DayGrid {
		for _, list := range byPeriod {
			for _, asg := range list {
				flat[slotIdentity{
					ClassID: asg.ClassID,
					Day:     asg.Day,
					Period:  asg.Period,
					Role:    asg.Role,
				}] = asg
			}
		}
	}
	return flat
}

func sortAssignments(list []timetable.Assignment) {
	sort.SliceStable(list, func(i, j int) bool { return assignmentLess(list[i], list[j]) })
}

func assignmentLess(a, b timetable.Assignment) bool {
	if a.ClassID != b.ClassID {
		return a.ClassID < b.ClassID
	}
	if a.Day != b.Day {
		return a.Day < b.Day
	}
	if a.Period != b.Period {
		return a.Period < b.Period
	}
	return a.Role < b.Role
}
