package storage

import (
	"context"
	"sync"

	"github.com/denmor86/orderdesk/internal/models"
)

// DefaultMemCapacity - сколько последних записей журнала хранится в памяти
const DefaultMemCapacity = 1000

// MemActions - журнал действий в памяти, старые записи вытесняются
type MemActions struct {
	mu       sync.RWMutex
	actions  []models.ActionData
	ids      map[string]struct{}
	capacity int
}

func NewMemActions(capacity int) *MemActions {
	if capacity <= 0 {
		capacity = DefaultMemCapacity
	}
	return &MemActions{
		actions:  make([]models.ActionData, 0, capacity),
		ids:      make(map[string]struct{}, capacity),
		capacity: capacity,
	}
}

func (s *MemActions) AddAction(_ context.Context, action models.ActionData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[action.ID]; ok {
		return ErrAlreadyExists
	}
	if len(s.actions) == s.capacity {
		delete(s.ids, s.actions[0].ID)
		s.actions = append(s.actions[:0], s.actions[1:]...)
	}
	s.actions = append(s.actions, action)
	s.ids[action.ID] = struct{}{}
	return nil
}

// GetActions - последние записи, новые первыми
func (s *MemActions) GetActions(_ context.Context, limit int) ([]models.ActionData, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := min(limit, len(s.actions))
	result := make([]models.ActionData, 0, n)
	for i := len(s.actions) - 1; i >= 0 && len(result) < n; i-- {
		result = append(result, s.actions[i])
	}
	return result, nil
}
