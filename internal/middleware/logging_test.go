package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRequest_GeneratesRequestID(t *testing.T) {
	var seenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = RequestID(r.Context())
	})

	rr := httptest.NewRecorder()
	LogRequest()(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/goals", nil))

	headerID := rr.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(headerID)
	require.NoError(t, err)
	assert.Equal(t, headerID, seenID)
}

func TestLogRequest_KeepsValidClientID(t *testing.T) {
	clientID := uuid.NewString()
	var seenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = RequestID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/goals", nil)
	req.Header.Set(RequestIDHeader, clientID)
	rr := httptest.NewRecorder()
	LogRequest()(next).ServeHTTP(rr, req)

	assert.Equal(t, clientID, seenID)
	assert.Equal(t, clientID, rr.Header().Get(RequestIDHeader))
}

func TestLogRequest_ReplacesGarbageClientID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/goals", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	rr := httptest.NewRecorder()
	LogRequest()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rr, req)

	assert.NotEqual(t, "not-a-uuid", rr.Header().Get(RequestIDHeader))
	_, err := uuid.Parse(rr.Header().Get(RequestIDHeader))
	assert.NoError(t, err)
}

func TestRequestID_Missing(t *testing.T) {
	assert.Empty(t, RequestID(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}
