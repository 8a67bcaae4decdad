package ingestion

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	v1 "github.com/aevon-lab/project-tally/internal/api/v1"
	httperr "github.com/aevon-lab/project-tally/internal/core/errors"
	"github.com/aevon-lab/project-tally/internal/core/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgReadBodyFailed = "Failed to read request body"
	msgInvalidJSON    = "Invalid JSON body"
	msgPersistFailed  = "Failed to persist event"
	msgDuplicateEvent = "Event already exists"
)

// ingestionError carries the structured HTTP error shape from a helper back to the orchestrator.
// Helpers return this instead of writing to gin.Context directly, keeping them decoupled from HTTP.
type ingestionError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *ingestionError) Error() string {
	return e.message
}

// IngestHandler handles POST /v1/events
func (s *Service) IngestHandler(c *gin.Context) {
	evt, payloadSize, err := s.parseEvent(c)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := validateEvent(evt); err != nil {
		writeError(c, err)
		return
	}

	if evt.ID == "" {
		evt.ID = uuid.NewString()
	}

	slog.Info("[Ingestion] Received event",
		"event_id", evt.ID,
		"actor_id", evt.ActorID,
		"occurred_at", evt.OccurredAt,
		"payload_size", payloadSize)

	if err := s.persistEvent(c.Request.Context(), evt); err != nil {
		writeError(c, err)
		return
	}

	// The rollup synchronizer picks the event up on its next run.
	c.JSON(http.StatusAccepted, gin.H{"status": "accepted", "id": evt.ID})
}

// parseEvent reads the raw request body and binds it into a ConsumptionEvent.
// Returns the parsed event and the raw payload size (used for structured logging upstream).
func (s *Service) parseEvent(c *gin.Context) (*v1.ConsumptionEvent, int, *ingestionError) {
	maxBytes := int64(s.maxBodySizeBytes)
	limitedBody := io.LimitReader(c.Request.Body, maxBytes+1) // +1 to detect oversized requests

	bodyBytes, err := io.ReadAll(limitedBody)
	if err != nil {
		slog.Error("[Ingestion] Failed to read request body", "error", err)
		return nil, 0, &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgReadBodyFailed,
		}
	}

	if int64(len(bodyBytes)) > maxBytes {
		slog.Warn("[Ingestion] Request body exceeds maximum size", "size", len(bodyBytes), "max", maxBytes)
		return nil, len(bodyBytes), &ingestionError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpInvalidJsonError,
			message:    "Request body exceeds maximum allowed size",
			details: map[string]interface{}{
				"max_size_mb": maxBytes / (1024 * 1024),
			},
		}
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	var evt v1.ConsumptionEvent
	if err := c.ShouldBindJSON(&evt); err != nil {
		slog.Warn("[Ingestion] Invalid JSON body received", "error", err, "payload_size", len(bodyBytes))
		return nil, len(bodyBytes), &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    msgInvalidJSON,
		}
	}

	return &evt, len(bodyBytes), nil
}

func validateEvent(evt *v1.ConsumptionEvent) *ingestionError {
	if err := evt.Validate(); err != nil {
		slog.Warn("[Ingestion] Event validation failed", "error", err, "event_id", evt.ID)
		return &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpValidationError,
			message:    err.Error(),
		}
	}
	return nil
}

// persistEvent appends the event to the log.
func (s *Service) persistEvent(ctx context.Context, evt *v1.ConsumptionEvent) *ingestionError {
	if err := s.store.Append(ctx, evt); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			slog.Info("[Ingestion] Duplicate event rejected", "event_id", evt.ID, "actor_id", evt.ActorID)
			return &ingestionError{
				statusCode: http.StatusConflict,
				errorType:  httperr.HttpDuplicateEventError,
				message:    msgDuplicateEvent,
			}
		}

		slog.Error("[Ingestion] Failed to persist event", "error", err, "event_id", evt.ID)
		return &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgPersistFailed,
		}
	}

	return nil
}

type listEventsResponse struct {
	Events []v1.ConsumptionEvent `json:"events"`
	Next   *pageToken            `json:"next,omitempty"`
}

type pageToken struct {
	OccurredAt time.Time `json:"occurred_at"`
	ID         string    `json:"id"`
}

// ListEventsHandler handles GET /v1/events
// Query parameters: start, end (RFC3339, required), limit, after_time + after_id (page token)
func (s *Service) ListEventsHandler(c *gin.Context) {
	var query struct {
		Start     time.Time `form:"start" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
		End       time.Time `form:"end" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
		Limit     int       `form:"limit"`
		AfterTime time.Time `form:"after_time" time_format:"2006-01-02T15:04:05Z07:00"`
		AfterID   string    `form:"after_id"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidQueryError,
			message:    "Invalid query parameters",
			details:    err.Error(),
		})
		return
	}
	if !query.End.After(query.Start) {
		writeError(c, &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidQueryError,
			message:    "end must be after start",
		})
		return
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	rq := storage.RangeQuery{Start: query.Start, End: query.End, Limit: limit}
	if !query.AfterTime.IsZero() {
		rq.After = &storage.Position{OccurredAt: query.AfterTime, EventID: query.AfterID}
	}

	page, err := s.store.FetchRange(c.Request.Context(), rq)
	if err != nil {
		slog.Error("[Ingestion] Failed to list events", "error", err)
		writeError(c, &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    "Failed to list events",
		})
		return
	}

	resp := listEventsResponse{Events: page.Events}
	if resp.Events == nil {
		resp.Events = []v1.ConsumptionEvent{}
	}
	if page.Next != nil {
		resp.Next = &pageToken{OccurredAt: page.Next.OccurredAt, ID: page.Next.EventID}
	}
	c.JSON(http.StatusOK, resp)
}

// writeError serializes an ingestionError as the JSON HTTP response.
func writeError(c *gin.Context, err *ingestionError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
