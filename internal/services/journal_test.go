package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/mock/gomock"

	"github.com/denmor86/orderdesk/internal/config"
	"github.com/denmor86/orderdesk/internal/logger"
	"github.com/denmor86/orderdesk/internal/models"
	"github.com/denmor86/orderdesk/internal/storage/mocks"
)

func initLogger(t *testing.T) {
	t.Helper()
	cfg := config.DefaultConfig()
	if err := logger.Initialize(cfg.Server.LogLevel); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
}

func TestJournal_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockActionsStorage(ctrl)

	initLogger(t)

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	journal := NewJournal(mockStorage)
	journal.now = func() time.Time { return now }

	testCases := []struct {
		TestName string
		Details  string
		Err      error
		Expected models.ActionData
	}{
		{
			TestName: "Success. Ok result #1",
			Details:  "Email notification sent",
			Expected: models.ActionData{OrderID: "1", Action: models.ActionAccept, Actor: "admin", Result: models.ActionResultOK, Details: "Email notification sent", CreatedAt: now},
		},
		{
			TestName: "Success. Failed result keeps error text #2",
			Err:      errors.New("orders service responded 500"),
			Expected: models.ActionData{OrderID: "1", Action: models.ActionAccept, Actor: "admin", Result: models.ActionResultFailed, Details: "orders service responded 500", CreatedAt: now},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			mockStorage.EXPECT().AddAction(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a models.ActionData) error {
				if a.ID == "" {
					t.Errorf("Expected generated id")
				}
				if diff := cmp.Diff(tc.Expected, a, cmpopts.IgnoreFields(models.ActionData{}, "ID")); diff != "" {
					t.Errorf("action mismatch (-want +got):\n%s", diff)
				}
				return nil
			})
			journal.Record(context.Background(), "admin", "1", models.ActionAccept, tc.Details, tc.Err)
		})
	}

	t.Run("Storage error is not propagated #3", func(t *testing.T) {
		mockStorage.EXPECT().AddAction(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		journal.Record(context.Background(), "admin", "1", models.ActionDecline, "", nil)
	})
}

func TestJournal_Recent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockActionsStorage(ctrl)
	initLogger(t)

	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	journal := NewJournal(mockStorage)

	mockStorage.EXPECT().GetActions(gomock.Any(), DefaultActionsLimit).Return([]models.ActionData{
		{ID: "x", OrderID: "7", Action: models.ActionComplete, Actor: "admin", Result: models.ActionResultOK, CreatedAt: created},
	}, nil)
	records, err := journal.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	want := []models.ActionRecord{{OrderID: "7", Action: models.ActionComplete, Actor: "admin", Result: models.ActionResultOK, CreatedAt: "2024-05-01T10:00:00Z"}}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}

	mockStorage.EXPECT().GetActions(gomock.Any(), MaxActionsLimit).Return(nil, errors.New("db down"))
	if _, err := journal.Recent(context.Background(), 10000); err == nil {
		t.Errorf("Expected storage error")
	}
}
