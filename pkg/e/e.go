package e

import (
	"errors"
	"fmt"
)

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")

	// 400 Bad Request
	ErrStatusBadRequest    = fmt.Errorf("bad request")
	ErrMissingFields       = fmt.Errorf("missing required fields")
	ErrInvalidPrice        = fmt.Errorf("invalid price")
	ErrInvalidQuantity     = fmt.Errorf("quantity must be positive")
	ErrInvalidCoordinates  = fmt.Errorf("invalid coordinates")
	ErrInvalidDeliveryTime = fmt.Errorf("delivery time is not available")
	ErrSessionRequired     = fmt.Errorf("session id is required")
	ErrOutOfStock          = fmt.Errorf("product is out of stock")

	// Ошибки оформления заказа (проверяются до обращения к сети)
	ErrCartEmpty       = fmt.Errorf("cart is empty")
	ErrPhoneRequired   = fmt.Errorf("customer phone is required")
	ErrAddressRequired = fmt.Errorf("delivery address or location is required")

	// 404 Not Found
	ErrProductNotFound    = fmt.Errorf("product not found")
	ErrCategoryNotFound   = fmt.Errorf("category not found")
	ErrRestaurantNotFound = fmt.Errorf("restaurant not found")
	ErrOrderNotFound      = fmt.Errorf("order not found")

	// 409 Conflict
	ErrRestaurantNotSelected = fmt.Errorf("restaurant is not selected")
	ErrSubmitInProgress      = fmt.Errorf("order submission is already in progress")

	// 502 Bad Gateway
	ErrBackendUnavailable = fmt.Errorf("backend unavailable")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// ValidationError указывает, какое поле формы не прошло проверку.
type ValidationError struct {
	Field string
	Err   error
}

func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

func (v *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", v.Field, v.Err)
}

func (v *ValidationError) Unwrap() error {
	return v.Err
}

// APIError описывает не-2xx ответ внешнего API.
// Message заполняется из поля error тела ответа, если оно было.
type APIError struct {
	Status  int
	Message string
}

func NewAPIError(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

func (a *APIError) Error() string {
	if a.Message == "" {
		return fmt.Sprintf("backend responded with status %d", a.Status)
	}

	return fmt.Sprintf("backend responded with status %d: %s", a.Status, a.Message)
}

func (a *APIError) Unwrap() error {
	return ErrBackendUnavailable
}

// SubmitError — единственное сообщение для пользователя о неудачной отправке заказа.
type SubmitError struct {
	Message string
	Err     error
}

func NewSubmitError(message string, err error) *SubmitError {
	return &SubmitError{Message: message, Err: err}
}

func (s *SubmitError) Error() string {
	return s.Message
}

func (s *SubmitError) Unwrap() error {
	return s.Err
}

// UserMessage достаёт сообщение бэкенда из цепочки ошибок или возвращает fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	return fallback
}
