package aggregation

import (
	"context"
	"errors"
	"net/http"

	coreagg "github.com/aevon-lab/project-tally/internal/core/aggregation"
	httperr "github.com/aevon-lab/project-tally/internal/core/errors"
	"github.com/aevon-lab/project-tally/internal/core/storage"
	"github.com/gin-gonic/gin"
)

// SyncService is the synchronizer surface exposed over HTTP.
type SyncService interface {
	Syncer
	Cursor(ctx context.Context) (coreagg.SyncCursor, error)
}

// Handler exposes the operator "sync now" trigger and the cursor status.
type Handler struct {
	service SyncService
	opts    SyncOptions
}

// NewHandler creates a handler. defaults fill in omitted query parameters.
func NewHandler(service SyncService, defaults SyncOptions) *Handler {
	return &Handler{service: service, opts: defaults}
}

// RegisterRoutes registers the rollup sync routes on the given router.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/rollups/sync", h.HandleSync)
	r.GET("/v1/rollups/cursor", h.HandleCursor)
}

type cursorResponse struct {
	LastProcessedAt *string `json:"last_processed_at"`
	LastEventID     string  `json:"last_event_id,omitempty"`
	TotalProcessed  int64   `json:"total_processed"`
	UpdatedAt       *string `json:"updated_at,omitempty"`
}

// HandleSync handles POST /v1/rollups/sync
// Query parameters: batch_size, max_batches (clamped, optional)
func (h *Handler) HandleSync(c *gin.Context) {
	var query struct {
		BatchSize  int `form:"batch_size"`
		MaxBatches int `form:"max_batches"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}

	opts := h.opts
	if query.BatchSize != 0 {
		opts.BatchSize = query.BatchSize
	}
	if query.MaxBatches != 0 {
		opts.MaxBatches = query.MaxBatches
	}

	result, err := h.service.Sync(c.Request.Context(), opts)
	if err != nil {
		if errors.Is(err, ErrSyncInProgress) || errors.Is(err, storage.ErrLeaseHeld) {
			c.JSON(http.StatusConflict, httperr.ErrorResponse{
				ErrorType: httperr.HttpSyncConflictError,
				Message:   "Another rollup sync is running",
				Details:   err.Error(),
			})
			return
		}

		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Rollup sync failed",
			Details:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleCursor handles GET /v1/rollups/cursor
func (h *Handler) HandleCursor(c *gin.Context) {
	cursor, err := h.service.Cursor(c.Request.Context())
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusOK, cursorResponse{})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Failed to read sync cursor",
			Details:   err.Error(),
		})
		return
	}

	processedAt := cursor.LastProcessedAt.UTC().Format(timeLayout)
	resp := cursorResponse{
		LastProcessedAt: &processedAt,
		LastEventID:     cursor.LastEventID,
		TotalProcessed:  cursor.TotalProcessed,
	}
	if !cursor.UpdatedAt.IsZero() {
		updatedAt := cursor.UpdatedAt.UTC().Format(timeLayout)
		resp.UpdatedAt = &updatedAt
	}
	c.JSON(http.StatusOK, resp)
}

const timeLayout = "2006-01-02T15:04:05.000Z07:00"
