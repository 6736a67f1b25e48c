package storage

//go:generate mockgen -source=storage.go -destination=mocks/storage_mock.go -package=mocks

import (
	"context"
	"errors"

	"github.com/denmor86/orderdesk/internal/models"
)

// ActionsStorage - журнал действий сотрудников над заказами
type ActionsStorage interface {
	AddAction(ctx context.Context, action models.ActionData) error
	GetActions(ctx context.Context, limit int) ([]models.ActionData, error)
}

type IStorage interface {
	ActionsStorage
	Close() error
}

type Storage struct {
	Actions ActionsStorage
	closer  func() error
}

// Создание хранилища поверх БД
func NewStorage(db *Database) Storage {
	return Storage{Actions: NewActionsStorage(db), closer: db.Close}
}

// Создание хранилища в памяти, когда БД не задана
func NewMemStorage(capacity int) Storage {
	return Storage{Actions: NewMemActions(capacity), closer: func() error { return nil }}
}

func (s Storage) AddAction(ctx context.Context, action models.ActionData) error {
	return s.Actions.AddAction(ctx, action)
}

func (s Storage) GetActions(ctx context.Context, limit int) ([]models.ActionData, error) {
	return s.Actions.GetActions(ctx, limit)
}

func (s Storage) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}

var (
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidLimit  = errors.New("invalid limit")
)
