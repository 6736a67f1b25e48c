package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/denmor86/orderdesk/internal/helpers"
	"github.com/denmor86/orderdesk/internal/logger"
	"github.com/denmor86/orderdesk/internal/notice"
	"github.com/denmor86/orderdesk/internal/projection"
	"github.com/denmor86/orderdesk/internal/services"
	"github.com/denmor86/orderdesk/internal/validators"
)

// ErrorResponse - тело ответа при неудачном действии
type ErrorResponse struct {
	Error  string         `json:"error"`
	Notice *notice.Notice `json:"notice,omitempty"`
}

// GetOrdersHandler - таблица заказов с поиском и фильтрами
func GetOrdersHandler(s services.WorkstationService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		statuses, err := validators.ParseStatuses(query.Get("status"))
		if err != nil {
			http.Error(w, "Invalid status filter", http.StatusBadRequest)
			return
		}
		hideDeclined, err := validators.ParseFlag(query.Get("hide_declined"))
		if err != nil {
			http.Error(w, "Invalid hide_declined flag", http.StatusBadRequest)
			return
		}

		filter := projection.Filter{Query: query.Get("q"), Statuses: statuses}
		if query.Has("hide_declined") {
			filter.Mode = projection.ModeHideDeclined
			filter.HideDeclined = hideDeclined
		}

		helpers.WriteJSON(w, http.StatusOK, s.Orders(filter))
	})
}

// RefreshOrdersHandler - повторная загрузка заказов с сервера
func RefreshOrdersHandler(s services.WorkstationService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if err := s.Refresh(r.Context(), username); err != nil {
			status := statusForError(err)
			helpers.WriteJSON(w, status, ErrorResponse{Error: services.FetchErrorMessage(err)})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func AcceptOrderHandler(s services.WorkstationService) http.HandlerFunc {
	return orderActionHandler(func(r *http.Request, actor, id string) (services.Outcome, error) {
		return s.Accept(r.Context(), actor, id)
	})
}

func DeclineOrderHandler(s services.WorkstationService) http.HandlerFunc {
	return orderActionHandler(func(r *http.Request, actor, id string) (services.Outcome, error) {
		return s.Decline(r.Context(), actor, id)
	})
}

func CompleteOrderHandler(s services.WorkstationService) http.HandlerFunc {
	return orderActionHandler(func(r *http.Request, actor, id string) (services.Outcome, error) {
		return s.Complete(r.Context(), actor, id)
	})
}

func orderActionHandler(do func(r *http.Request, actor, id string) (services.Outcome, error)) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		orderID := chi.URLParam(r, "id")
		if !validators.CheckOrderID(orderID) {
			http.Error(w, "Invalid order id", http.StatusBadRequest)
			return
		}

		out, err := do(r, username, orderID)
		if err != nil {
			status := statusForError(err)
			if status == http.StatusInternalServerError {
				logger.Errorw("Order action failed", "order", orderID, "error", err)
			}
			helpers.WriteJSON(w, status, ErrorResponse{Error: err.Error(), Notice: out.Notice})
			return
		}
		helpers.WriteJSON(w, http.StatusOK, out)
	})
}

// statusForError - HTTP-статус для ошибки рабочего места
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrActionInProgress),
		errors.Is(err, services.ErrAlreadyDeclined),
		errors.Is(err, services.ErrAlreadyDecided),
		errors.Is(err, services.ErrNotAccepted),
		errors.Is(err, services.ErrOrderCompleted):
		return http.StatusConflict
	case errors.Is(err, services.ErrRemote):
		return http.StatusBadGateway
	case errors.Is(err, services.ErrClosed):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
