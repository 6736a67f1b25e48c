package normalizer

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"strings"

	"github.com/denmor86/orderdesk/internal/models"
	"github.com/shopspring/decimal"
)

var ErrInvalidPayload = errors.New("invalid orders payload")

// Пути-кандидаты полей заказа
var (
	orderIDFields       = Paths("id", "order_id")
	createdAtFields     = Paths("created_at", "createdAt")
	emailFields         = Paths("email", "customer_email")
	currencyFields      = Paths("currency")
	paymentFields       = Paths("payment_status")
	fulfillFields       = Paths("fulfill_status", "fulfillment_status")
	decisionFields      = Paths("decision_status", "decision")
	customerTypeFields  = Paths("customer_type", "customerType", "user_type")
	addressFields       = Paths("shipping_address", "address", "shipping.address")
	productNameFields   = Paths("product_name", "name")
	imageURLFields      = Paths("image_url", "image", "images.0")
	strictQtyFields     = []string{"quantity", "qty", "quantity_ordered"}
	coercibleQtyFields  = []string{"quantity", "qty"}
	minorPriceFields    = []string{"unit_price_minor", "price_minor"}
	roundingHalf        = decimal.New(5, -1)
	maxMinor            = decimal.NewFromInt(math.MaxInt64)
	minMinor            = decimal.NewFromInt(math.MinInt64)
	totalAmountFields   = Paths("total_amount")
	itemsField          = "items"
	ordersEnvelopeField = "orders"
)

// Orders - разбирает тело ответа GET /api/orders: массив заказов
// или объект с полем orders. Пустое тело даёт пустой список.
func Orders(body []byte) ([]models.Order, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return []models.Order{}, nil
	}
	data, err := decode(body)
	if err != nil {
		return nil, ErrInvalidPayload
	}

	var raw []any
	switch v := data.(type) {
	case []any:
		raw = v
	case map[string]any:
		raw, _ = v[ordersEnvelopeField].([]any)
	}

	orders := make([]models.Order, 0, len(raw))
	for _, r := range raw {
		obj, ok := r.(map[string]any)
		if !ok {
			continue
		}
		orders = append(orders, Order(obj))
	}
	return orders, nil
}

// Order - приводит один заказ к каноническому виду
func Order(obj map[string]any) models.Order {
	return models.Order{
		ID:             orderIDFields.String(obj),
		CreatedAt:      createdAtFields.String(obj),
		Email:          emailFields.String(obj),
		TotalAmount:    totalAmount(obj),
		Currency:       currencyFields.String(obj),
		PaymentStatus:  paymentFields.String(obj),
		FulfillStatus:  fulfillFields.String(obj),
		DecisionStatus: decisionFields.String(obj),
		CustomerType:   customerTypeFields.String(obj),
		Address:        addressFields.String(obj),
		Items:          Items(obj[itemsField]),
	}
}

// OrderFromJSON - заказ из ответа на decision/complete.
// ok=false, если заказа в ответе нет или это не объект.
func OrderFromJSON(raw json.RawMessage) (models.Order, bool) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return models.Order{}, false
	}
	data, err := decode(raw)
	if err != nil {
		return models.Order{}, false
	}
	obj, ok := data.(map[string]any)
	if !ok {
		return models.Order{}, false
	}
	return Order(obj), true
}

// Items - позиции заказа: массив как есть, JSON-строка разбирается,
// всё остальное (в т.ч. ошибка разбора) даёт пустой список.
func Items(v any) []models.Item {
	var raw []any
	switch val := v.(type) {
	case []any:
		raw = val
	case string:
		parsed, err := decode([]byte(val))
		if err == nil {
			raw, _ = parsed.([]any)
		}
	}

	items := make([]models.Item, 0, len(raw))
	for _, r := range raw {
		obj, _ := r.(map[string]any)
		items = append(items, Item(obj))
	}
	return items
}

// Item - приводит позицию заказа к каноническому виду
func Item(obj map[string]any) models.Item {
	return models.Item{
		ProductName:    productNameFields.String(obj),
		ImageURL:       imageURLFields.String(obj),
		Quantity:       quantity(obj),
		UnitPriceMinor: unitPriceMinor(obj),
	}
}

func quantity(obj map[string]any) int {
	for _, key := range strictQtyFields {
		if n, ok := obj[key].(json.Number); ok {
			f, err := n.Float64()
			if err != nil {
				return 0
			}
			return toCount(f)
		}
	}
	for _, key := range coercibleQtyFields {
		if f, ok := coerceNumber(obj[key]); ok && f != 0 {
			return toCount(f)
		}
	}
	return 0
}

func toCount(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f > math.MaxInt32 {
		return 0
	}
	return int(f)
}

func unitPriceMinor(obj map[string]any) int64 {
	for _, key := range minorPriceFields {
		if n, ok := obj[key].(json.Number); ok {
			return roundMinor(n.String(), 0)
		}
	}
	switch p := obj["price"].(type) {
	case json.Number:
		return roundMinor(p.String(), 2)
	case string:
		return roundMinor(strings.TrimSpace(p), 2)
	}
	return 0
}

func totalAmount(obj map[string]any) int64 {
	v, ok := totalAmountFields.Lookup(obj)
	if !ok {
		return 0
	}
	if n, ok := v.(json.Number); ok {
		return roundMinor(n.String(), 0)
	}
	if s, ok := v.(string); ok {
		return roundMinor(strings.TrimSpace(s), 0)
	}
	return 0
}

// roundMinor - сдвигает десятичное значение на shift разрядов и округляет
// половину вверх. Непарсящиеся и не помещающиеся в int64 значения дают 0.
func roundMinor(s string, shift int32) int64 {
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	d = d.Shift(shift).Add(roundingHalf).Floor()
	if d.GreaterThan(maxMinor) || d.LessThan(minMinor) {
		return 0
	}
	return d.IntPart()
}

func decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	// после значения допустим только конец ввода
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrInvalidPayload
	}
	return v, nil
}
