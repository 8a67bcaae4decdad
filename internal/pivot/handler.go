package pivot

import (
	"errors"
	"net/http"
	"time"

	httperr "github.com/aevon-lab/project-tally/internal/core/errors"
	"github.com/gin-gonic/gin"
)

// Handler exposes ad-hoc pivots and the configured presets.
type Handler struct {
	engine  *Engine
	presets *PresetRepository
	nowFn   func() time.Time
}

// NewHandler creates a pivot handler. presets may be nil.
func NewHandler(engine *Engine, presets *PresetRepository) *Handler {
	if presets == nil {
		presets = &PresetRepository{presets: map[string]Preset{}}
	}
	return &Handler{
		engine:  engine,
		presets: presets,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// RegisterRoutes registers the pivot routes on the given router.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/pivot", h.HandlePivot)
	r.GET("/v1/pivot/presets", h.HandleListPresets)
	r.GET("/v1/pivot/presets/:name", h.HandleRunPreset)
}

// HandlePivot handles POST /v1/pivot with a JSON Query body.
func (h *Handler) HandlePivot(c *gin.Context) {
	var q Query
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidJsonError,
			Message:   "Invalid pivot query",
			Details:   err.Error(),
		})
		return
	}

	h.run(c, q)
}

// HandleListPresets handles GET /v1/pivot/presets
func (h *Handler) HandleListPresets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"presets": h.presets.List()})
}

// HandleRunPreset handles GET /v1/pivot/presets/:name
// Query parameters: end (RFC3339, optional; defaults to now)
func (h *Handler) HandleRunPreset(c *gin.Context) {
	preset, err := h.presets.Get(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, httperr.ErrorResponse{
			ErrorType: httperr.HttpNotFoundError,
			Message:   "Unknown pivot preset",
			Details:   err.Error(),
		})
		return
	}

	var query struct {
		End time.Time `form:"end" time_format:"2006-01-02T15:04:05Z07:00"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}

	end := query.End
	if end.IsZero() {
		end = h.nowFn()
	}
	h.run(c, preset.Query(end))
}

func (h *Handler) run(c *gin.Context, q Query) {
	result, err := h.engine.Run(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, ErrInvalidQuery) {
			c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
				ErrorType: httperr.HttpInvalidQueryError,
				Message:   "Invalid pivot query",
				Details:   err.Error(),
			})
			return
		}

		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Pivot query failed",
			Details:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
