package projection

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/denmor86/orderdesk/internal/models"
	"github.com/denmor86/orderdesk/internal/status"
)

// Mode - вариант страницы заказов
type Mode int

const (
	// ModeStatusToggles - фильтр набором переключателей статусов
	ModeStatusToggles Mode = iota
	// ModeHideDeclined - один переключатель "скрыть отклонённые"
	ModeHideDeclined
)

var (
	togglesRank = map[string]int{
		models.StatusAccepted:  0,
		models.StatusPending:   1,
		models.StatusDeclined:  2,
		models.StatusCompleted: 3,
	}
	hideDeclinedRank = map[string]int{
		models.StatusCompleted: -1,
		models.StatusAccepted:  0,
		models.StatusPending:   1,
		models.StatusDeclined:  2,
	}
	unknownRank = 4
)

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Filter - состояние фильтров интерфейса
type Filter struct {
	Query        string
	Mode         Mode
	Statuses     map[string]bool
	HideDeclined bool
}

// AllStatuses - все переключатели статусов включены
func AllStatuses() map[string]bool {
	return map[string]bool{
		models.StatusAccepted:  true,
		models.StatusPending:   true,
		models.StatusDeclined:  true,
		models.StatusCompleted: true,
	}
}

type row struct {
	order   models.Order
	rank    int
	created int64
}

// Project - видимое упорядоченное подмножество заказов.
// Входной срез не изменяется; порядок равных элементов сохраняется.
func Project(orders []models.Order, overlay status.Overlay, f Filter) []models.Order {
	query := strings.ToLower(f.Query)
	statuses := f.Statuses
	if statuses == nil {
		statuses = AllStatuses()
	}

	rows := make([]row, 0, len(orders))
	for _, order := range orders {
		if !Matches(order, query) {
			continue
		}
		effective := status.EffectiveStatus(order, overlay)
		switch f.Mode {
		case ModeHideDeclined:
			if f.HideDeclined && status.Decision(order, overlay) == models.DecisionDeclined {
				continue
			}
		default:
			if !statuses[effective] {
				continue
			}
		}
		rows = append(rows, row{
			order:   order,
			rank:    Rank(f.Mode, effective),
			created: CreatedAt(order).UnixMilli(),
		})
	}

	slices.SortStableFunc(rows, func(a, b row) int {
		if c := cmp.Compare(a.rank, b.rank); c != 0 {
			return c
		}
		return cmp.Compare(b.created, a.created)
	})

	result := make([]models.Order, len(rows))
	for i, r := range rows {
		result[i] = r.order
	}
	return result
}

// Matches - регистронезависимый поиск подстроки по id, email, статусу оплаты
// и названиям товаров. Запрос ожидается в нижнем регистре.
func Matches(order models.Order, query string) bool {
	if query == "" {
		return true
	}
	if contains(order.ID, query) || contains(order.Email, query) || contains(order.PaymentStatus, query) {
		return true
	}
	for _, it := range order.Items {
		if contains(it.ProductName, query) {
			return true
		}
	}
	return false
}

func contains(s, query string) bool {
	return strings.Contains(strings.ToLower(s), query)
}

// Rank - первичный ключ сортировки
func Rank(mode Mode, effective string) int {
	ranks := togglesRank
	if mode == ModeHideDeclined {
		ranks = hideDeclinedRank
	}
	if r, ok := ranks[effective]; ok {
		return r
	}
	return unknownRank
}

// CreatedAt - время создания заказа; отсутствующее или нечитаемое значение - начало эпохи
func CreatedAt(order models.Order) time.Time {
	if t, ok := ParseCreatedAt(order); ok {
		return t
	}
	return time.Unix(0, 0)
}

// ParseCreatedAt - разбор created_at по поддерживаемым форматам
func ParseCreatedAt(order models.Order) (time.Time, bool) {
	s := strings.TrimSpace(order.CreatedAt)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
