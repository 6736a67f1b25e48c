package client

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	ErrServiceUnavailable = errors.New("orders service unavailable")
	ErrInvalidResponse    = errors.New("invalid response body")
)

// APIError - неуспешный HTTP-статус удалённого сервиса.
// Message заполняется из полей error/message тела ответа, если они есть.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("orders service responded %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("orders service responded %d", e.StatusCode)
}

type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded"
}

func NewRateLimitError(headers http.Header) *RateLimitError {
	return &RateLimitError{
		RetryAfter: ParseRetryAfter(headers),
	}
}

// IsServiceFault - ошибка говорит о неисправности сервиса (сеть, 5xx),
// а не об отказе в конкретном запросе
func IsServiceFault(err error) bool {
	if err == nil {
		return false
	}
	var rateErr *RateLimitError
	if errors.As(err, &rateErr) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError
	}
	return !errors.Is(err, ErrInvalidResponse)
}
