package status

import (
	"strings"

	"github.com/denmor86/orderdesk/internal/models"
)

// Подписи для вывода
const (
	LabelCompleted         = "Order completed"
	PaymentPlaceholder     = "—"
	PaymentCompletedStatus = models.StatusCompleted
)

// Overlay - локальный слой решений и завершений поверх данных сервера
type Overlay interface {
	Decision(orderID string) (string, bool)
	Completed(orderID string) bool
}

// Caches - кэши решений и завершений, ключ - идентификатор заказа
type Caches struct {
	Decisions map[string]string
	Done      map[string]bool
}

// NewCaches - пустые кэши
func NewCaches() Caches {
	return Caches{Decisions: map[string]string{}, Done: map[string]bool{}}
}

func (c Caches) Decision(orderID string) (string, bool) {
	d, ok := c.Decisions[orderID]
	return d, ok
}

func (c Caches) Completed(orderID string) bool {
	return c.Done[orderID]
}

// Decision - решение по заказу: локальный кэш, затем decision_status сервера, иначе Pending
func Decision(order models.Order, overlay Overlay) string {
	if overlay != nil {
		if d, ok := overlay.Decision(order.ID); ok && d != "" {
			return d
		}
	}
	if order.DecisionStatus != "" {
		return order.DecisionStatus
	}
	return models.DecisionPending
}

// IsCompleted - заказ выполнен локально или по fulfill_status сервера
func IsCompleted(order models.Order, overlay Overlay) bool {
	if overlay != nil && overlay.Completed(order.ID) {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(order.FulfillStatus), models.FulfillCompleted)
}

// EffectiveStatus - единственный статус, показываемый пользователю.
// Завершение имеет приоритет над решением.
func EffectiveStatus(order models.Order, overlay Overlay) string {
	if IsCompleted(order, overlay) {
		return models.StatusCompleted
	}
	return Decision(order, overlay)
}

// Label - подпись статуса
func Label(effective string) string {
	if effective == models.StatusCompleted {
		return LabelCompleted
	}
	return effective
}

// PaymentDisplay - отображаемый статус оплаты
func PaymentDisplay(order models.Order, overlay Overlay) string {
	if IsCompleted(order, overlay) {
		return PaymentCompletedStatus
	}
	if order.PaymentStatus == "" {
		return PaymentPlaceholder
	}
	return order.PaymentStatus
}
