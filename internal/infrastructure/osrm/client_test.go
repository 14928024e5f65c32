package osrm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DRSN-tech/food-delivery/internal/cfg"
	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return NewClient(&cfg.DeliveryCfg{OSRMURL: srv.URL, Timeout: time.Second})
}

func TestRoadDistanceKm(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/route/v1/driving/69.24,41.31;69.28,41.33", r.URL.Path)
		assert.Equal(t, "false", r.URL.Query().Get("overview"))
		_, _ = w.Write([]byte(`{"code":"Ok","routes":[{"distance":4256.0},{"distance":9000}]}`))
	})

	km, err := c.RoadDistanceKm(context.Background(),
		domain.Coordinates{Lat: 41.31, Lng: 69.24},
		domain.Coordinates{Lat: 41.33, Lng: 69.28},
	)
	require.NoError(t, err)
	assert.InDelta(t, 4.256, km, 1e-9)
}

func TestRoadDistanceKm_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "no route", status: http.StatusOK, body: `{"code":"NoRoute","routes":[]}`},
		{name: "empty routes", status: http.StatusOK, body: `{"code":"Ok","routes":[]}`},
		{name: "server error", status: http.StatusInternalServerError, body: `{}`},
		{name: "garbage", status: http.StatusOK, body: `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.RoadDistanceKm(context.Background(), domain.Coordinates{}, domain.Coordinates{Lat: 1, Lng: 1})
			assert.Error(t, err)
		})
	}
}
