package validators

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/denmor86/orderdesk/internal/models"
)

const MaxOrderIDLength = 128

var (
	ErrUnknownStatus = errors.New("unknown status")
	ErrInvalidLimit  = errors.New("invalid limit")
)

var knownStatuses = map[string]string{
	strings.ToLower(models.StatusAccepted):  models.StatusAccepted,
	strings.ToLower(models.StatusPending):   models.StatusPending,
	strings.ToLower(models.StatusDeclined):  models.StatusDeclined,
	strings.ToLower(models.StatusCompleted): models.StatusCompleted,
}

// CheckOrderID - идентификатор заказа из пути запроса
func CheckOrderID(id string) bool {
	if id == "" || len(id) > MaxOrderIDLength || strings.TrimSpace(id) != id {
		return false
	}
	for _, r := range id {
		if unicode.IsControl(r) || r == '/' {
			return false
		}
	}
	return true
}

// ParseStatuses - список статусов через запятую, без учёта регистра.
// Пустая строка - все статусы (nil).
func ParseStatuses(s string) (map[string]bool, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	statuses := map[string]bool{}
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		canonical, ok := knownStatuses[part]
		if !ok {
			return nil, ErrUnknownStatus
		}
		statuses[canonical] = true
	}
	return statuses, nil
}

// ParseFlag - булев параметр запроса, пустой - false
func ParseFlag(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}

// ParseLimit - размер выборки; пустой - 0 (по умолчанию)
func ParseLimit(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, ErrInvalidLimit
	}
	return n, nil
}
