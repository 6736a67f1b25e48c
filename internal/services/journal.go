package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/denmor86/orderdesk/internal/logger"
	"github.com/denmor86/orderdesk/internal/models"
	"github.com/denmor86/orderdesk/internal/storage"
)

const (
	DefaultActionsLimit = 50
	MaxActionsLimit     = 500
)

// Journal - журнал действий сотрудников над заказами
type Journal struct {
	Storage storage.ActionsStorage
	now     func() time.Time
}

func NewJournal(storage storage.ActionsStorage) *Journal {
	return &Journal{Storage: storage, now: time.Now}
}

// Record - записывает действие. Ошибка записи журнала не прерывает действие.
func (j *Journal) Record(ctx context.Context, actor string, orderID string, action string, details string, actionErr error) {
	result := models.ActionResultOK
	if actionErr != nil {
		result = models.ActionResultFailed
		if details == "" {
			details = actionErr.Error()
		}
	}
	entry := models.ActionData{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		Action:    action,
		Actor:     actor,
		Result:    result,
		Details:   details,
		CreatedAt: j.now().UTC(),
	}
	if err := j.Storage.AddAction(context.WithoutCancel(ctx), entry); err != nil {
		logger.Errorw("Failed to record action", "order", orderID, "action", action, "error", err)
	}
}

// Recent - последние записи журнала, новые первыми
func (j *Journal) Recent(ctx context.Context, limit int) ([]models.ActionRecord, error) {
	if limit <= 0 {
		limit = DefaultActionsLimit
	}
	limit = min(limit, MaxActionsLimit)

	actions, err := j.Storage.GetActions(ctx, limit)
	if err != nil {
		logger.Errorw("Failed to get actions", "error", err)
		return nil, err
	}
	records := make([]models.ActionRecord, 0, len(actions))
	for _, a := range actions {
		records = append(records, models.ActionRecord{
			OrderID:   a.OrderID,
			Action:    a.Action,
			Actor:     a.Actor,
			Result:    a.Result,
			Details:   a.Details,
			CreatedAt: a.CreatedAt.Format(time.RFC3339),
		})
	}
	return records, nil
}
