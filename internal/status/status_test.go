package status

import (
	"testing"

	"github.com/denmor86/orderdesk/internal/models"
)

func TestEffectiveStatus(t *testing.T) {
	testCases := []struct {
		Name     string
		Order    models.Order
		Caches   Caches
		Expected string
		Label    string
	}{
		{
			Name:     "Pending by default #1",
			Order:    models.Order{ID: "1"},
			Caches:   NewCaches(),
			Expected: models.StatusPending,
			Label:    "Pending",
		},
		{
			Name:     "Server decision #2",
			Order:    models.Order{ID: "1", DecisionStatus: "Declined"},
			Caches:   NewCaches(),
			Expected: models.StatusDeclined,
			Label:    "Declined",
		},
		{
			Name:     "Local decision overrides server #3",
			Order:    models.Order{ID: "1", DecisionStatus: "Pending"},
			Caches:   Caches{Decisions: map[string]string{"1": "Accepted"}, Done: map[string]bool{}},
			Expected: models.StatusAccepted,
			Label:    "Accepted",
		},
		{
			Name:     "Local completion beats any decision #4",
			Order:    models.Order{ID: "1", DecisionStatus: "Declined"},
			Caches:   Caches{Decisions: map[string]string{"1": "Declined"}, Done: map[string]bool{"1": true}},
			Expected: models.StatusCompleted,
			Label:    LabelCompleted,
		},
		{
			Name:     "Server fulfillment case-insensitive #5",
			Order:    models.Order{ID: "1", DecisionStatus: "Accepted", FulfillStatus: "COMPLETED"},
			Caches:   NewCaches(),
			Expected: models.StatusCompleted,
			Label:    LabelCompleted,
		},
		{
			Name:     "Cache of another order is ignored #6",
			Order:    models.Order{ID: "2"},
			Caches:   Caches{Decisions: map[string]string{"1": "Accepted"}, Done: map[string]bool{"1": true}},
			Expected: models.StatusPending,
			Label:    "Pending",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got := EffectiveStatus(tc.Order, tc.Caches)
			if got != tc.Expected {
				t.Errorf("Expected status '%s', got '%s'", tc.Expected, got)
			}
			if label := Label(got); label != tc.Label {
				t.Errorf("Expected label '%s', got '%s'", tc.Label, label)
			}
		})
	}
}

func TestDecision_NilOverlay(t *testing.T) {
	if got := Decision(models.Order{ID: "1"}, nil); got != models.DecisionPending {
		t.Errorf("Expected Pending, got '%s'", got)
	}
}

func TestPaymentDisplay(t *testing.T) {
	caches := Caches{Decisions: map[string]string{}, Done: map[string]bool{"3": true}}

	if got := PaymentDisplay(models.Order{ID: "1", PaymentStatus: "Paid"}, caches); got != "Paid" {
		t.Errorf("Expected 'Paid', got '%s'", got)
	}
	if got := PaymentDisplay(models.Order{ID: "2"}, caches); got != PaymentPlaceholder {
		t.Errorf("Expected placeholder, got '%s'", got)
	}
	if got := PaymentDisplay(models.Order{ID: "3", PaymentStatus: "Pending"}, caches); got != "Completed" {
		t.Errorf("Expected 'Completed', got '%s'", got)
	}
}
