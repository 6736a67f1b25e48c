package store

import (
	"maps"
	"strings"
	"sync"

	"github.com/denmor86/orderdesk/internal/models"
	"github.com/denmor86/orderdesk/internal/status"
)

// Event - событие, изменяющее состояние рабочего места
type Event interface {
	isEvent()
}

// Fetched - авторитетная загрузка заказов с сервера.
// Заменяет снимок целиком и сбрасывает локальный слой.
type Fetched struct {
	Orders []models.Order
}

// DecisionSaved - сервер подтвердил решение по заказу
type DecisionSaved struct {
	OrderID  string
	Decision string
}

// CompletionSaved - сервер подтвердил выполнение заказа
type CompletionSaved struct {
	OrderID  string
	Decision string
}

// CompletedLocally - выполнение без обращения к серверу
type CompletedLocally struct {
	OrderID string
}

func (Fetched) isEvent()          {}
func (DecisionSaved) isEvent()    {}
func (CompletionSaved) isEvent()  {}
func (CompletedLocally) isEvent() {}

// Store - двухслойное состояние: снимок сервера и локальный слой
// решений/завершений, плюс флаги сохранения по идентификатору заказа.
type Store struct {
	mu       sync.RWMutex
	orders   []models.Order
	index    map[string]int
	caches   status.Caches
	saving   map[string]bool
	fetchErr string
	closed   bool
}

// NewStore - пустое состояние
func NewStore() *Store {
	return &Store{
		index:  map[string]int{},
		caches: status.NewCaches(),
		saving: map[string]bool{},
	}
}

// Dispatch - применяет событие. Возвращает false, если событие не применено
// (хранилище закрыто или заказ неизвестен).
func (s *Store) Dispatch(ev Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}

	switch e := ev.(type) {
	case Fetched:
		s.replace(e.Orders)
		return true
	case DecisionSaved:
		idx, ok := s.index[e.OrderID]
		if !ok {
			return false
		}
		s.caches.Decisions[e.OrderID] = e.Decision
		s.orders[idx].DecisionStatus = e.Decision
		return true
	case CompletionSaved:
		idx, ok := s.index[e.OrderID]
		if !ok {
			return false
		}
		s.orders[idx].PaymentStatus = models.StatusCompleted
		s.orders[idx].FulfillStatus = models.StatusCompleted
		if e.Decision != "" {
			s.orders[idx].DecisionStatus = e.Decision
			s.caches.Decisions[e.OrderID] = e.Decision
		}
		s.caches.Done[e.OrderID] = true
		return true
	case CompletedLocally:
		if _, ok := s.index[e.OrderID]; !ok {
			return false
		}
		s.caches.Done[e.OrderID] = true
		return true
	}
	return false
}

func (s *Store) replace(orders []models.Order) {
	s.orders = make([]models.Order, len(orders))
	copy(s.orders, orders)
	s.index = make(map[string]int, len(orders))
	s.caches = status.NewCaches()
	s.fetchErr = ""
	for i, o := range s.orders {
		s.index[o.ID] = i
		if o.DecisionStatus != "" {
			s.caches.Decisions[o.ID] = o.DecisionStatus
		}
		if strings.EqualFold(strings.TrimSpace(o.FulfillStatus), models.FulfillCompleted) {
			s.caches.Done[o.ID] = true
		}
	}
}

// SetFetchError - текстовое состояние ошибки загрузки. Данные не трогает.
func (s *Store) SetFetchError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetchErr = msg
}

// Snapshot - копия заказов, локального слоя и ошибки загрузки
func (s *Store) Snapshot() ([]models.Order, status.Caches, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]models.Order, len(s.orders))
	copy(orders, s.orders)
	return orders, s.copyCaches(), s.fetchErr
}

// Order - заказ по идентификатору вместе с копией локального слоя
func (s *Store) Order(orderID string) (models.Order, status.Caches, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.index[orderID]
	if !ok {
		return models.Order{}, status.Caches{}, false
	}
	return s.orders[idx], s.copyCaches(), true
}

func (s *Store) copyCaches() status.Caches {
	return status.Caches{
		Decisions: maps.Clone(s.caches.Decisions),
		Done:      maps.Clone(s.caches.Done),
	}
}

// BeginSaving - выставляет флаг сохранения. false, если флаг уже стоит.
func (s *Store) BeginSaving(orderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saving[orderID] {
		return false
	}
	s.saving[orderID] = true
	return true
}

// EndSaving - снимает флаг сохранения
func (s *Store) EndSaving(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.saving, orderID)
}

// IsSaving - идёт ли сохранение по заказу
func (s *Store) IsSaving(orderID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saving[orderID]
}

// Close - после закрытия события не применяются
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}
