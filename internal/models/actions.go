package models

import "time"

// Действия сотрудника над заказом
const (
	ActionAccept   = "accept"
	ActionDecline  = "decline"
	ActionComplete = "complete"
	ActionRefresh  = "refresh"
)

// Результаты действия
const (
	ActionResultOK     = "ok"
	ActionResultFailed = "failed"
)

// ActionData - запись журнала действий по заказам
type ActionData struct {
	ID        string
	OrderID   string
	Action    string
	Actor     string
	Result    string
	Details   string
	CreatedAt time.Time
}

// ActionRecord - запись журнала для выдачи
type ActionRecord struct {
	OrderID   string `json:"order_id,omitempty"`
	Action    string `json:"action"`
	Actor     string `json:"actor,omitempty"`
	Result    string `json:"result"`
	Details   string `json:"details,omitempty"`
	CreatedAt string `json:"created_at"`
}
