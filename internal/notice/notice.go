package notice

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/denmor86/orderdesk/internal/models"
)

// Kind - вид уведомления
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Тексты уведомлений
const (
	MsgBothSent       = "Email and WhatsApp notifications sent"
	MsgEmailSent      = "Email notification sent"
	MsgWhatsappSent   = "WhatsApp notification sent"
	MsgSendFailed     = "Failed to send notifications"
	MsgUpdateFailed   = "Failed to update order"
	MsgCompleteFailed = "Failed to complete order"
)

// DefaultTTL - задержка автоскрытия уведомления
const DefaultTTL = 3 * time.Second

// Notice - временное уведомление для интерфейса
type Notice struct {
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Delivery - сведения сервера о рассылке уведомлений клиенту
type Delivery struct {
	EmailAttempted    bool
	EmailSent         bool
	WhatsappAttempted bool
	WhatsappSent      bool
	Error             string
}

// таблица решений: отправлено по email × отправлено в WhatsApp
var deliveryTable = []struct {
	email    bool
	whatsapp bool
	message  string
}{
	{email: true, whatsapp: true, message: MsgBothSent},
	{email: true, whatsapp: false, message: MsgEmailSent},
	{email: false, whatsapp: true, message: MsgWhatsappSent},
}

// FromResponse - извлекает сведения о рассылке из ответа сервера
func FromResponse(resp models.ActionResponse) Delivery {
	d := Delivery{Error: resp.EmailError}
	if resp.EmailSent != nil {
		d.EmailAttempted = true
		d.EmailSent = *resp.EmailSent
	}
	if resp.EmailError != "" {
		d.EmailAttempted = true
	}
	if resp.WhatsappSent != nil {
		d.WhatsappAttempted = true
		d.WhatsappSent = *resp.WhatsappSent
	}
	if attempted, sent, errText := parseWhatsapp(resp.Whatsapp); attempted {
		d.WhatsappAttempted = true
		d.WhatsappSent = d.WhatsappSent || sent
		if d.Error == "" {
			d.Error = errText
		}
	}
	if d.Error == "" {
		d.Error = resp.Error
	}
	return d
}

func parseWhatsapp(raw json.RawMessage) (attempted, sent bool, errText string) {
	if len(raw) == 0 {
		return false, false, ""
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false, false, ""
	}
	switch val := v.(type) {
	case bool:
		return true, val, ""
	case string:
		return true, false, val
	case map[string]any:
		for _, key := range []string{"sent", "success", "ok"} {
			if b, ok := val[key].(bool); ok && b {
				sent = true
				break
			}
		}
		errText, _ = val["error"].(string)
		return true, sent, errText
	}
	return false, false, ""
}

// Summarize - выбирает текст уведомления по таблице решений.
// ok=false, если о рассылке сервер ничего не сообщил.
func Summarize(d Delivery) (Kind, string, bool) {
	for _, row := range deliveryTable {
		if d.EmailSent == row.email && d.WhatsappSent == row.whatsapp {
			return KindSuccess, row.message, true
		}
	}
	if d.EmailAttempted || d.WhatsappAttempted {
		if d.Error != "" {
			return KindError, MsgSendFailed + ": " + d.Error, true
		}
		return KindError, MsgSendFailed, true
	}
	return "", "", false
}

// Board - единственное текущее уведомление; новое сразу заменяет старое,
// истёкшее не выдаётся.
type Board struct {
	mu      sync.Mutex
	current *Notice
	ttl     time.Duration
	now     func() time.Time
}

// NewBoard - доска уведомлений с заданной задержкой автоскрытия
func NewBoard(ttl time.Duration) *Board {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Board{ttl: ttl, now: time.Now}
}

// Show - показывает уведомление, заменяя текущее
func (b *Board) Show(kind Kind, message string) Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := Notice{Kind: kind, Message: message, ExpiresAt: b.now().Add(b.ttl)}
	b.current = &n
	return n
}

// Current - текущее уведомление, если оно не истекло
func (b *Board) Current() (Notice, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil || !b.now().Before(b.current.ExpiresAt) {
		return Notice{}, false
	}
	return *b.current, true
}

// Sweep - убирает истёкшее уведомление, возвращает true если убрано
func (b *Board) Sweep() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current != nil && !b.now().Before(b.current.ExpiresAt) {
		b.current = nil
		return true
	}
	return false
}
