package helpers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/denmor86/orderdesk/internal/logger"
)

var ErrUndefinedUsername = errors.New("undefined username")

// GetUsername - извлекает логин сотрудника из контекста JWT токена
func GetUsername(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", err
	}
	login, ok := claims["username"].(string)
	if !ok || login == "" {
		logger.Warn("Undefined username from token")
		return "", ErrUndefinedUsername
	}
	return login, nil
}

// WriteJSON - ответ в формате JSON с заданным статусом
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorw("Failed to encode JSON response", "error", err)
	}
}
