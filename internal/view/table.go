package view

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/denmor86/orderdesk/internal/models"
	"github.com/denmor86/orderdesk/internal/projection"
	"github.com/denmor86/orderdesk/internal/status"
)

const (
	NoItems      = "No items"
	NoOrders     = "No orders available"
	ItemCurrency = "₹"
	DateLayout   = "02.01.2006, 15:04:05"
)

// Доступные сотруднику действия над заказом
const (
	ActionAccept   = "accept"
	ActionDecline  = "decline"
	ActionComplete = "complete"
)

// Row - строка таблицы заказов. Поля заказа заполняются только
// в первой строке; остальные строки заказа несут лишь позицию.
type Row struct {
	OrderID     string   `json:"order_id"`
	Date        string   `json:"date"`
	Customer    string   `json:"customer"`
	Product     string   `json:"product"`
	ImageURL    string   `json:"image_url,omitempty"`
	Quantity    string   `json:"quantity"`
	ItemPrice   string   `json:"item_price"`
	OrderTotal  string   `json:"order_total"`
	Payment     string   `json:"payment"`
	Status      string   `json:"status,omitempty"`
	StatusLabel string   `json:"status_label,omitempty"`
	NoItems     bool     `json:"no_items,omitempty"`
	Saving      bool     `json:"saving,omitempty"`
	Actions     []string `json:"actions,omitempty"`
}

// Table - представление списка заказов
type Table struct {
	Rows        []Row  `json:"rows"`
	Orders      int    `json:"orders"`
	Placeholder string `json:"placeholder,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Build - строит таблицу по уже отфильтрованным и упорядоченным заказам
func Build(orders []models.Order, overlay status.Overlay, saving func(string) bool, fetchErr string) Table {
	table := Table{Rows: []Row{}, Orders: len(orders), Error: fetchErr}
	if len(orders) == 0 {
		table.Placeholder = NoOrders
		return table
	}
	for _, o := range orders {
		table.Rows = append(table.Rows, OrderRows(o, overlay, saving != nil && saving(o.ID))...)
	}
	return table
}

// OrderRows - строки одного заказа, не меньше одной
func OrderRows(o models.Order, overlay status.Overlay, saving bool) []Row {
	head := Row{
		OrderID:    o.ID,
		Date:       FormatDate(o),
		Customer:   o.Email,
		OrderTotal: Money(o.TotalAmount, o.Currency),
		Payment:    status.PaymentDisplay(o, overlay),
		Status:     status.EffectiveStatus(o, overlay),
		Saving:     saving,
		Actions:    Actions(o, overlay),
	}
	head.StatusLabel = status.Label(head.Status)

	if len(o.Items) == 0 {
		head.Product = NoItems
		head.NoItems = true
		return []Row{head}
	}

	rows := make([]Row, 0, len(o.Items))
	for i, it := range o.Items {
		row := Row{}
		if i == 0 {
			row = head
		}
		row.Product = it.ProductName
		row.ImageURL = it.ImageURL
		row.Quantity = strconv.Itoa(it.Quantity)
		row.ItemPrice = ItemPrice(it.UnitPriceMinor)
		rows = append(rows, row)
	}
	return rows
}

// Actions - переходы, которые предлагаются сотруднику:
// Pending -> Accepted/Declined, Accepted -> Completed.
func Actions(o models.Order, overlay status.Overlay) []string {
	if status.IsCompleted(o, overlay) {
		return nil
	}
	switch status.Decision(o, overlay) {
	case models.DecisionAccepted:
		return []string{ActionComplete}
	case models.DecisionDeclined:
		return nil
	}
	return []string{ActionAccept, ActionDecline}
}

// Money - сумма заказа в основных единицах с валютой: "12.50 INR"
func Money(minor int64, currency string) string {
	amount := decimal.New(minor, -2).StringFixed(2)
	return strings.TrimSpace(amount + " " + currency)
}

// ItemPrice - цена позиции: "₹12.50"
func ItemPrice(minor int64) string {
	return ItemCurrency + decimal.New(minor, -2).StringFixed(2)
}

// FormatDate - дата создания заказа; пустая, если её нет или она не разбирается
func FormatDate(o models.Order) string {
	t, ok := projection.ParseCreatedAt(o)
	if !ok {
		return ""
	}
	return t.Format(DateLayout)
}
