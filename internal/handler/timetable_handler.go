package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harin-dev/academy-timetable-api/internal/dto"
	internalmiddleware "github.com/harin-dev/academy-timetable-api/internal/middleware"
	appErrors "github.com/harin-dev/academy-timetable-api/pkg/errors"
	"github.com/harin-dev/academy-timetable-api/pkg/response"
)

const maxPoolSize = 256

type timetableGenerator interface {
	Generate(ctx context.Context, req dto.GenerateTimetableRequest) (*dto.GenerateTimetableResponse, bool, error)
	Options() *dto.TimetableOptionsResponse
}

type timetableDiffer interface {
	Compare(req dto.DiffTimetableRequest) (*dto.DiffTimetableResponse, error)
}

// TimetableHandler exposes the timetable endpoints.
type TimetableHandler struct {
	generator timetableGenerator
	differ    timetableDiffer
}

// NewTimetableHandler constructs the handler.
func NewTimetableHandler(generator timetableGenerator, differ timetableDiffer) *TimetableHandler {
	return &TimetableHandler{generator: generator, differ: differ}
}

// Generate godoc
// @Summary Generate a weekly timetable
// @Description Runs one greedy assignment pass over the supplied slot configuration. Unmet demand is reported in the warnings list, not as an error.
// @Tags Timetables
// @Accept json
// @Produce json
// @Param payload body dto.GenerateTimetableRequest true "Slot configuration"
// @Success 200 {object} response.Envelope
// @Router /timetables/generate [post]
func (h *TimetableHandler) Generate(c *gin.Context) {
	var req dto.GenerateTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid generate payload"))
		return
	}
	if len(req.HomeroomPool)+len(req.ForeignPool) > maxPoolSize {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "teacher pools exceed supported size"))
		return
	}
	result, cacheHit, err := h.generator.Generate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	internalmiddleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, result, internalmiddleware.ExtractMeta(c))
}

// Diff godoc
// @Summary Compare two timetable snapshots
// @Description Classifies every (class, day, period, role) slot as added, removed, or changed between two stored schedules.
// @Tags Timetables
// @Accept json
// @Produce json
// @Param payload body dto.DiffTimetableRequest true "Base and target schedules"
// @Success 200 {object} response.Envelope
// @Router /timetables/diff [post]
func (h *TimetableHandler) Diff(c *gin.Context) {
	var req dto.DiffTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid diff payload"))
		return
	}
	result, err := h.differ.Compare(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Options godoc
// @Summary Slot configuration defaults
// @Description Returns the teaching week, round period pairs, time labels, and roles a client needs to build a generation request.
// @Tags Timetables
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /timetables/options [get]
func (h *TimetableHandler) Options(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.generator.Options(), nil)
}
