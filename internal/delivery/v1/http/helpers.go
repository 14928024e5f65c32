package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const maxJSONBodySize = 1 << 20

// ErrorResponse — тело любого ответа с ошибкой. Поле error дублирует message:
// по нему клиент API заказов достаёт текст для пользователя.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
}

func NewErrorResponse(code int, message, field string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
		Error:   message,
		Field:   field,
	}
}

var badRequestErrs = []error{
	e.ErrStatusBadRequest,
	e.ErrMissingFields,
	e.ErrInvalidPrice,
	e.ErrInvalidQuantity,
	e.ErrInvalidCoordinates,
	e.ErrInvalidDeliveryTime,
	e.ErrSessionRequired,
	e.ErrOutOfStock,
	e.ErrCartEmpty,
	e.ErrPhoneRequired,
	e.ErrAddressRequired,
}

var notFoundErrs = []error{
	e.ErrProductNotFound,
	e.ErrCategoryNotFound,
	e.ErrRestaurantNotFound,
	e.ErrOrderNotFound,
}

var conflictErrs = []error{
	e.ErrRestaurantNotSelected,
	e.ErrSubmitInProgress,
}

// ToHTTPResponse переводит ошибку usecase в статус и сообщение для клиента.
// Внутренние подробности наружу не попадают: на неизвестную ошибку всегда 500.
func ToHTTPResponse(err error) (int, string, string) {
	var submitErr *e.SubmitError
	if errors.As(err, &submitErr) {
		return http.StatusBadGateway, submitErr.Message, ""
	}

	var validationErr *e.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Err.Error(), validationErr.Field
	}

	if target, ok := matchAny(err, badRequestErrs); ok {
		return http.StatusBadRequest, target.Error(), ""
	}
	if target, ok := matchAny(err, notFoundErrs); ok {
		return http.StatusNotFound, target.Error(), ""
	}
	if target, ok := matchAny(err, conflictErrs); ok {
		return http.StatusConflict, target.Error(), ""
	}
	if errors.Is(err, e.ErrBackendUnavailable) {
		return http.StatusBadGateway, e.ErrBackendUnavailable.Error(), ""
	}

	return http.StatusInternalServerError, e.ErrInternalServerError.Error(), ""
}

func matchAny(err error, targets []error) (error, bool) {
	for _, t := range targets {
		if errors.Is(err, t) {
			return t, true
		}
	}

	return nil, false
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg, field := ToHTTPResponse(err)
	WriteSuccess(w, code, NewErrorResponse(code, msg, field))
}

func WriteSuccess(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// decodeJSON читает тело запроса, неизвестные поля не допускаются.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodySize)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return e.Wrap(whereami.WhereAmI(), errors.Join(e.ErrStatusBadRequest, err))
	}

	return nil
}

func parseIDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, e.NewValidationError(name, e.ErrStatusBadRequest)
	}

	return id, nil
}

// parseOptionalID: отсутствующий параметр запроса даёт nil.
func parseOptionalID(r *http.Request, name string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, e.NewValidationError(name, e.ErrStatusBadRequest)
	}

	return &id, nil
}
