package handlers

import (
	"errors"
	"net/http"

	"github.com/denmor86/orderdesk/internal/helpers"
	"github.com/denmor86/orderdesk/internal/logger"
	"github.com/denmor86/orderdesk/internal/services"
	"github.com/denmor86/orderdesk/internal/validators"
)

// GetNoticeHandler - текущее уведомление, 204 если его нет
func GetNoticeHandler(s services.WorkstationService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n, ok := s.Notice()
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		helpers.WriteJSON(w, http.StatusOK, n)
	})
}

// GetActionsHandler - журнал действий сотрудников
func GetActionsHandler(s services.WorkstationService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseLimit(r.URL.Query().Get("limit"))
		if errors.Is(err, validators.ErrInvalidLimit) {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		records, err := s.Actions(r.Context(), limit)
		if err != nil {
			logger.Errorw("Failed to get actions", "error", err)
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		helpers.WriteJSON(w, http.StatusOK, records)
	})
}
