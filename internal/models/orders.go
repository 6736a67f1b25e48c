package models

import "encoding/json"

// Решения по заказу
const (
	DecisionAccepted = "Accepted"
	DecisionDeclined = "Declined"
	DecisionPending  = "Pending"
)

// Итоговые статусы заказа
const (
	StatusAccepted  = DecisionAccepted
	StatusDeclined  = DecisionDeclined
	StatusPending   = DecisionPending
	StatusCompleted = "Completed"
)

// FulfillCompleted - значение fulfill_status выполненного заказа (без учёта регистра)
const FulfillCompleted = "completed"

// Item - позиция заказа после нормализации
type Item struct {
	ProductName    string `json:"product_name"`
	ImageURL       string `json:"image_url"`
	Quantity       int    `json:"quantity"`
	UnitPriceMinor int64  `json:"unit_price_minor"`
}

// Order - заказ в каноническом виде
type Order struct {
	ID             string `json:"id"`
	CreatedAt      string `json:"created_at,omitempty"`
	Email          string `json:"email"`
	TotalAmount    int64  `json:"total_amount"`
	Currency       string `json:"currency"`
	PaymentStatus  string `json:"payment_status"`
	FulfillStatus  string `json:"fulfill_status"`
	DecisionStatus string `json:"decision_status,omitempty"`
	CustomerType   string `json:"customer_type,omitempty"`
	Address        string `json:"address,omitempty"`
	Items          []Item `json:"items"`
}

// DecisionRequest - тело запроса PUT /api/orders/{id}/decision
type DecisionRequest struct {
	Decision string `json:"decision"`
}

// ActionResponse - ответ удалённого сервиса на decision/complete
type ActionResponse struct {
	Order        json.RawMessage `json:"order,omitempty"`
	EmailSent    *bool           `json:"emailSent,omitempty"`
	WhatsappSent *bool           `json:"whatsappSent,omitempty"`
	Whatsapp     json.RawMessage `json:"whatsapp,omitempty"`
	EmailError   string          `json:"emailError,omitempty"`
	Error        string          `json:"error,omitempty"`
}
