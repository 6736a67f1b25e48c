package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/denmor86/orderdesk/internal/logger"
	"github.com/denmor86/orderdesk/internal/models"
	"github.com/denmor86/orderdesk/internal/services"
)

// AuthenticateUserHandle - вход сотрудника, токен возвращается в заголовке Authorization
func AuthenticateUserHandle(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var user models.UserRequest
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			logger.Warnw("Failed to decode request", "error", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if user.Login == "" || user.Password == "" {
			http.Error(w, "Login and password required", http.StatusBadRequest)
			return
		}

		if err := i.AuthenticateUser(user); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				http.Error(w, "Invalid login/password", http.StatusUnauthorized)
			case errors.Is(err, services.ErrLoginDisabled):
				http.Error(w, "Login disabled", http.StatusServiceUnavailable)
			default:
				logger.Errorw("Error authenticate user", "error", err)
				http.Error(w, "Server error", http.StatusInternalServerError)
			}
			return
		}

		token, err := i.GenerateJWT(user.Login)
		if err != nil {
			logger.Errorw("Failed to generate token", "error", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}

		logger.Infow("User authenticated", "login", user.Login)
		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	})
}
