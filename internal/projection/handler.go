package projection

import (
	"errors"
	"net/http"

	coreagg "github.com/aevon-lab/project-tally/internal/core/aggregation"
	httperr "github.com/aevon-lab/project-tally/internal/core/errors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all rollup read routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/rollups/daily", s.HandleDailyTotals)
	r.GET("/v1/rollups/daily/range", s.HandleDailyTotalsRange)
	r.GET("/v1/rollups/breakdown/:kind", s.HandleBreakdown)
}

// HandleDailyTotals handles GET /v1/rollups/daily
// Query parameters: days (optional, clamped to [1, 366])
func (s *Service) HandleDailyTotals(c *gin.Context) {
	var query struct {
		Days int `form:"days"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		writeBindError(c, err)
		return
	}

	days, err := s.DailyTotals(c.Request.Context(), query.Days)
	if err != nil {
		writeQueryError(c, err, "Failed to read daily totals")
		return
	}

	c.JSON(http.StatusOK, DailySeriesResponse{Days: days})
}

// HandleDailyTotalsRange handles GET /v1/rollups/daily/range
// Query parameters: start, end (YYYY-MM-DD)
func (s *Service) HandleDailyTotalsRange(c *gin.Context) {
	var query struct {
		Start string `form:"start"`
		End   string `form:"end"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		writeBindError(c, err)
		return
	}

	days, err := s.DailyTotalsRange(c.Request.Context(), query.Start, query.End)
	if err != nil {
		writeQueryError(c, err, "Failed to read daily totals")
		return
	}

	c.JSON(http.StatusOK, DailySeriesResponse{Days: days})
}

// HandleBreakdown handles GET /v1/rollups/breakdown/:kind
// Query parameters: start, end (YYYY-MM-DD), top
func (s *Service) HandleBreakdown(c *gin.Context) {
	var query struct {
		Start string `form:"start"`
		End   string `form:"end"`
		Top   int    `form:"top"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := s.Breakdown(c.Request.Context(), BreakdownRequest{
		Kind:     coreagg.DimensionKind(c.Param("kind")),
		StartDay: query.Start,
		EndDay:   query.End,
		TopN:     query.Top,
	})
	if err != nil {
		writeQueryError(c, err, "Failed to read breakdown")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
		ErrorType: httperr.HttpInvalidQueryError,
		Message:   "Invalid query parameters",
		Details:   err.Error(),
	})
}

func writeQueryError(c *gin.Context, err error, message string) {
	if errors.Is(err, ErrInvalidQuery) {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid rollup query",
			Details:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
		ErrorType: httperr.HttpInternalError,
		Message:   message,
		Details:   err.Error(),
	})
}
