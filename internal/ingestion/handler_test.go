package ingestion

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	v1 "github.com/aevon-lab/project-tally/internal/api/v1"
	httperr "github.com/aevon-lab/project-tally/internal/core/errors"
	"github.com/aevon-lab/project-tally/internal/core/storage"
	"github.com/aevon-lab/project-tally/internal/core/storage/memory"
	storagemocks "github.com/aevon-lab/project-tally/internal/mocks/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIngestHandler_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	evt := &v1.ConsumptionEvent{
		ID:         "evt-001",
		ActorID:    "user-1",
		Product:    "Flower",
		Device:     "Joint",
		OccurredAt: time.Now().UTC(),
	}

	body, _ := json.Marshal(evt)

	mockStore := storagemocks.NewEventStore(t)
	mockStore.EXPECT().
		Append(mock.Anything, mock.MatchedBy(func(e *v1.ConsumptionEvent) bool {
			return e.ID == "evt-001" && e.Product == "Flower"
		})).
		Return(nil).
		Once()

	svc := NewService(mockStore, 1)

	r := gin.New()
	svc.RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodPost, "/v1/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusAccepted, resp.Code)
	var result map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.Equal(t, "accepted", result["status"])
	require.Equal(t, "evt-001", result["id"])
}

func TestIngestHandler_AssignsID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	svc := NewService(store, 1)

	r := gin.New()
	svc.RegisterRoutes(r)

	body := []byte(`{"actor_id":"user-1","product":"Hash","occurred_at":"2024-01-01T10:00:00Z"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusAccepted, resp.Code)

	var result map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.Len(t, result["id"], 36)

	stored, err := store.FetchAfter(req.Context(), storage.Position{}, 10)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Equal(t, result["id"], stored[0].ID)
}

func TestIngestHandler_InvalidJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockStore := storagemocks.NewEventStore(t)
	svc := NewService(mockStore, 1)

	r := gin.New()
	svc.RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodPost, "/v1/events", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)

	var errResp httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &errResp))
	require.Equal(t, httperr.HttpInvalidJsonError, errResp.ErrorType)
}

func TestIngestHandler_ValidationFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing actor", body: `{"product":"Flower","occurred_at":"2024-01-01T10:00:00Z"}`},
		{name: "missing timestamp", body: `{"actor_id":"user-1","product":"Flower"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockStore := storagemocks.NewEventStore(t)
			svc := NewService(mockStore, 1)

			r := gin.New()
			svc.RegisterRoutes(r)

			req := httptest.NewRequest(http.MethodPost, "/v1/events", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			r.ServeHTTP(resp, req)

			require.Equal(t, http.StatusBadRequest, resp.Code)

			var errResp httperr.ErrorResponse
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &errResp))
			require.Equal(t, httperr.HttpValidationError, errResp.ErrorType)
		})
	}
}

func TestIngestHandler_DuplicateEvent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	evt := &v1.ConsumptionEvent{
		ID:         "evt-001",
		ActorID:    "user-1",
		OccurredAt: time.Now().UTC(),
	}

	body, _ := json.Marshal(evt)

	mockStore := storagemocks.NewEventStore(t)
	mockStore.EXPECT().
		Append(mock.Anything, mock.Anything).
		Return(storage.ErrDuplicate).
		Once()

	svc := NewService(mockStore, 1)

	r := gin.New()
	svc.RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodPost, "/v1/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusConflict, resp.Code)

	var errResp httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &errResp))
	require.Equal(t, httperr.HttpDuplicateEventError, errResp.ErrorType)
}

func TestIngestHandler_StorageError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	evt := &v1.ConsumptionEvent{
		ID:         "evt-001",
		ActorID:    "user-1",
		OccurredAt: time.Now().UTC(),
	}

	body, _ := json.Marshal(evt)

	mockStore := storagemocks.NewEventStore(t)
	mockStore.EXPECT().
		Append(mock.Anything, mock.Anything).
		Return(errors.New("database connection failed")).
		Once()

	svc := NewService(mockStore, 1)

	r := gin.New()
	svc.RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodPost, "/v1/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusInternalServerError, resp.Code)

	var errResp httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &errResp))
	require.Equal(t, httperr.HttpInternalError, errResp.ErrorType)
}

func TestIngestHandler_BodySizeLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockStore := storagemocks.NewEventStore(t)
	svc := NewService(mockStore, 0)
	svc.maxBodySizeBytes = 10

	r := gin.New()
	svc.RegisterRoutes(r)

	body := []byte(`{"actor_id":"this is definitely more than 10 bytes of content"}`)

	req := httptest.NewRequest(http.MethodPost, "/v1/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, resp.Code)

	var errResp httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &errResp))
	require.Equal(t, httperr.HttpInvalidJsonError, errResp.ErrorType)
	require.Contains(t, errResp.Message, "maximum allowed size")
}

func TestListEventsHandler_PagesWithToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	start := time.Date(2026, 2, 8, 10, 0, 0, 0, time.UTC)
	store := memory.NewStore()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.Append(t.Context(), &v1.ConsumptionEvent{ID: id, ActorID: "user-1", OccurredAt: start}))
	}

	r := gin.New()
	NewService(store, 1).RegisterRoutes(r)

	params := url.Values{}
	params.Set("start", start.Format(time.RFC3339))
	params.Set("end", start.Add(time.Minute).Format(time.RFC3339))
	params.Set("limit", "2")

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/v1/events?"+params.Encode(), nil))
	require.Equal(t, http.StatusOK, resp.Code)

	var first listEventsResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &first))
	require.Len(t, first.Events, 2)
	require.NotNil(t, first.Next)
	require.Equal(t, "b", first.Next.ID)

	params.Set("after_time", first.Next.OccurredAt.Format(time.RFC3339Nano))
	params.Set("after_id", first.Next.ID)

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/v1/events?"+params.Encode(), nil))
	require.Equal(t, http.StatusOK, resp.Code)

	var second listEventsResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &second))
	require.Len(t, second.Events, 1)
	require.Equal(t, "c", second.Events[0].ID)
	require.Nil(t, second.Next)
}

func TestListEventsHandler_InvalidQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockStore := storagemocks.NewEventStore(t)
	svc := NewService(mockStore, 1)

	r := gin.New()
	svc.RegisterRoutes(r)

	start := time.Date(2026, 2, 8, 10, 0, 0, 0, time.UTC)
	end := start.Add(-1 * time.Minute)
	req := httptest.NewRequest(
		http.MethodGet,
		"/v1/events?start="+start.Format(time.RFC3339)+"&end="+end.Format(time.RFC3339),
		nil,
	)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestListEventsHandler_StoreError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	start := time.Date(2026, 2, 8, 10, 0, 0, 0, time.UTC)
	end := start.Add(10 * time.Minute)

	mockStore := storagemocks.NewEventStore(t)
	mockStore.EXPECT().
		FetchRange(mock.Anything, storage.RangeQuery{Start: start, End: end, Limit: 100}).
		Return(storage.EventPage{}, errors.New("db failure")).
		Once()

	svc := NewService(mockStore, 1)

	r := gin.New()
	svc.RegisterRoutes(r)

	req := httptest.NewRequest(
		http.MethodGet,
		"/v1/events?start="+start.Format(time.RFC3339)+"&end="+end.Format(time.RFC3339)+"&limit=100",
		nil,
	)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusInternalServerError, resp.Code)
}
