package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/stretchr/testify/assert"
)

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"missing fields", fmt.Errorf("op: %w", e.ErrMissingFields), http.StatusBadRequest, e.ErrMissingFields.Error()},
		{"out of stock", e.Wrap("op", e.ErrOutOfStock), http.StatusBadRequest, e.ErrOutOfStock.Error()},
		{"not found", e.Wrap("op", e.ErrCategoryNotFound), http.StatusNotFound, e.ErrCategoryNotFound.Error()},
		{"conflict", e.ErrRestaurantNotSelected, http.StatusConflict, e.ErrRestaurantNotSelected.Error()},
		{"backend", e.NewAPIError(503, "down"), http.StatusBadGateway, e.ErrBackendUnavailable.Error()},
		{"unknown", errors.New("pq: relation does not exist"), http.StatusInternalServerError, e.ErrInternalServerError.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg, field := ToHTTPResponse(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.msg, msg)
			assert.Empty(t, field)
		})
	}
}

func TestToHTTPResponse_NotFoundFromBackend(t *testing.T) {
	// 404 от API заказов приходит как ErrRestaurantNotFound поверх ErrBackendUnavailable.
	err := errors.Join(e.ErrRestaurantNotFound, e.NewAPIError(404, "not found"))

	status, _, _ := ToHTTPResponse(err)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDecodeJSON_BodyLimit(t *testing.T) {
	body := `{"quantity":` + strings.Repeat("1", maxJSONBodySize+1) + `}`
	r := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	var dst UpdateCartItemRequest
	err := decodeJSON(w, r, &dst)

	assert.ErrorIs(t, err, e.ErrStatusBadRequest)
}

func TestSessionMiddleware_RejectsOversizedID(t *testing.T) {
	var seen string
	h := sessionMiddleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = sessionFromCtx(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(SessionHeader, strings.Repeat("x", maxSessionIDLen+1))
	w := httptest.NewRecorder()

	h.ServeHTTP(w, r)

	assert.Len(t, seen, 36)
	assert.Equal(t, seen, w.Header().Get(SessionHeader))
}
