package errors

const (
	HttpInternalError       = "internal_error"
	HttpInvalidJsonError    = "invalid_json"
	HttpValidationError     = "validation_failed"
	HttpInvalidQueryError   = "invalid_query"
	HttpNotFoundError       = "not_found"
	HttpDuplicateEventError = "duplicate_event"
	HttpSyncConflictError   = "sync_in_progress"
)

// ErrorResponse is the error response body shared by every HTTP handler.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
