package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	v1 "featureboard/pkg/api/v1"
	"featureboard/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger("test")
}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL, WithRetry(2, time.Millisecond))
}

func TestListFeaturesSendsState(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/features", r.URL.Path)
		assert.Equal(t, "login", r.URL.Query().Get("search"))
		assert.Equal(t, "name:asc", r.URL.Query().Get("sort"))
		w.Write([]byte(`{"rows":[{"id":"a","cells":{"name":"Login flow"}}],"pagination":{"page":1,"page_count":1,"total":3,"filtered":1},"toolbar":{"search":"login","filtered":true}}`))
	})

	table, err := c.ListFeatures(context.Background(), url.Values{"search": {"login"}, "sort": {"name:asc"}})
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "a", table.Rows[0].ID)
	assert.Equal(t, "Login flow", table.Rows[0].Cells["name"])
	assert.Equal(t, 3, table.Pagination.Total)
	assert.Equal(t, 1, table.Pagination.Filtered)
	assert.True(t, table.Toolbar.Filtered)
}

func TestUpdateFeatureBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/v1/features/f-1", r.URL.Path)
		var body v1.EditFeature
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Login v2", body.Name)
		assert.Equal(t, "", body.TeamID)
		w.Write([]byte(`{"message":"Feature updated successfully!"}`))
	})

	require.NoError(t, c.UpdateFeature(context.Background(), "f-1", v1.EditFeature{Name: "Login v2"}))
}

func TestErrorDecoding(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"validation failed","fields":{"name":"Feature Name Required"}}`))
	})

	err := c.UpdateFeature(context.Background(), "f-1", v1.EditFeature{})
	var apiErr *v1.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "Feature Name Required", apiErr.Fields["name"])
}

func TestIsNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Feature not found."}`))
	})

	_, err := c.GetFeature(context.Background(), "missing")
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "Feature not found.")
}

func TestRetriesRateLimited(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":"Too Many Requests"}`))
			return
		}
		w.Write([]byte(`{"message":"Feature deleted successfully!"}`))
	})

	require.NoError(t, c.DeleteFeature(context.Background(), "f-1"))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestRetryGivesUp(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	err := c.DeleteFeature(context.Background(), "f-1")
	var apiErr *v1.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, http.StatusText(http.StatusServiceUnavailable), apiErr.Message)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestCreateIsNotRetried(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.CreateFeature(context.Background(), v1.CreateFeature{Name: "Audit log"})
	assert.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestServerErrorIsNotRetried(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Failed to update feature."}`))
	})

	err := c.UpdateFeature(context.Background(), "f-1", v1.EditFeature{Name: "x"})
	assert.EqualError(t, err, "featureboard: 500 Failed to update feature.")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
