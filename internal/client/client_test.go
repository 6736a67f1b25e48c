package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/denmor86/orderdesk/internal/client/mocks"
	"github.com/denmor86/orderdesk/internal/config"
	"github.com/denmor86/orderdesk/internal/logger"
	"github.com/denmor86/orderdesk/internal/models"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"
)

func response(status int, body string, header http.Header) *http.Response {
	if header == nil {
		header = make(http.Header)
	}
	return &http.Response{
		StatusCode:    status,
		Body:          io.NopCloser(bytes.NewBufferString(body)),
		ContentLength: int64(len(body)),
		Header:        header,
	}
}

func initLogger(t *testing.T) {
	t.Helper()
	cfg := config.DefaultConfig()
	if err := logger.Initialize(cfg.Server.LogLevel); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
}

func TestClient_FetchOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)

	testCases := []struct {
		TestName        string
		SetupMocks      func()
		ExpectedOrders  []models.Order
		ExpectedError   error
		ExpectedMessage string
	}{
		{
			TestName: "Success. Orders envelope #1",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
					if req.Method != http.MethodGet || req.URL.String() != "http://orders.local/api/orders" {
						t.Errorf("Unexpected request %s %s", req.Method, req.URL)
					}
					return response(http.StatusOK, `{"orders":[{"id":"A1","total_amount":1250,"items":[]}]}`, nil), nil
				})
			},
			ExpectedOrders: []models.Order{{ID: "A1", TotalAmount: 1250, Items: []models.Item{}}},
		},
		{
			TestName: "Success. Empty body #2",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(response(http.StatusOK, "", nil), nil)
			},
			ExpectedOrders: []models.Order{},
		},
		{
			TestName: "Error. Server message #3",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(response(http.StatusInternalServerError, `{"error":"database is down"}`, nil), nil)
			},
			ExpectedError:   &APIError{},
			ExpectedMessage: "database is down",
		},
		{
			TestName: "Error. Invalid JSON #4",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(response(http.StatusOK, `<html>`, nil), nil)
			},
			ExpectedError: ErrInvalidResponse,
		},
		{
			TestName: "Error. Transport failure #5",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			ExpectedError: errors.New("connection refused"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()
			c := NewClient("http://orders.local/", mockHTTPClient)

			orders, err := c.FetchOrders(context.Background())

			if tc.ExpectedError == nil {
				if err != nil {
					t.Fatalf("Expected no error, got '%v'", err)
				}
				if diff := cmp.Diff(tc.ExpectedOrders, orders); diff != "" {
					t.Errorf("orders mismatch (-want +got):\n%s", diff)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error '%v', got nil", tc.ExpectedError)
			}
			var apiErr *APIError
			if _, ok := tc.ExpectedError.(*APIError); ok {
				if !errors.As(err, &apiErr) || apiErr.Message != tc.ExpectedMessage {
					t.Errorf("Expected API error with message '%s', got '%v'", tc.ExpectedMessage, err)
				}
				return
			}
			if !errors.Is(err, tc.ExpectedError) && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestClient_SetDecision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)

	mockHTTPClient.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
		if req.Method != http.MethodPut {
			t.Errorf("Expected PUT, got %s", req.Method)
		}
		if req.URL.Path != "/api/orders/42/decision" {
			t.Errorf("Unexpected path '%s'", req.URL.Path)
		}
		if ct := req.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Unexpected content type '%s'", ct)
		}
		body, _ := io.ReadAll(req.Body)
		if string(body) != `{"decision":"Accepted"}` {
			t.Errorf("Unexpected body '%s'", body)
		}
		return response(http.StatusOK, `{"emailSent":true,"order":{"id":"42"}}`, nil), nil
	})

	c := NewClient("http://orders.local", mockHTTPClient)
	resp, err := c.SetDecision(context.Background(), "42", models.DecisionAccepted)
	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	if resp.EmailSent == nil || !*resp.EmailSent {
		t.Errorf("Expected emailSent=true, got %+v", resp)
	}
	if len(resp.Order) == 0 {
		t.Errorf("Expected echoed order in response")
	}
}

func TestClient_CompleteOrder_BrokenBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)

	mockHTTPClient.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/api/orders/42/complete" || req.Body != nil {
			t.Errorf("Unexpected request %s with body", req.URL.Path)
		}
		return response(http.StatusOK, `not json`, nil), nil
	})

	c := NewClient("http://orders.local", mockHTTPClient)
	resp, err := c.CompleteOrder(context.Background(), "42")
	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	if diff := cmp.Diff(&models.ActionResponse{}, resp); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)

	// второй запрос не должен дойти до сервиса
	mockHTTPClient.EXPECT().Do(gomock.Any()).Return(
		response(http.StatusTooManyRequests, "", http.Header{"Retry-After": []string{"120"}}), nil).Times(1)

	c := NewClient("http://orders.local", mockHTTPClient)

	var rateErr *RateLimitError
	_, err := c.FetchOrders(context.Background())
	if !errors.As(err, &rateErr) || rateErr.RetryAfter != 120*time.Second {
		t.Fatalf("Expected rate limit error with 120s, got '%v'", err)
	}
	_, err = c.FetchOrders(context.Background())
	if !errors.As(err, &rateErr) {
		t.Errorf("Expected blocked request to fail fast, got '%v'", err)
	}
}

func TestIsServiceFault(t *testing.T) {
	testCases := []struct {
		TestName string
		Err      error
		Expected bool
	}{
		{TestName: "Nil #1", Err: nil, Expected: false},
		{TestName: "Server error #2", Err: &APIError{StatusCode: 503}, Expected: true},
		{TestName: "Client error #3", Err: &APIError{StatusCode: 409}, Expected: false},
		{TestName: "Rate limit #4", Err: &RateLimitError{RetryAfter: time.Second}, Expected: false},
		{TestName: "Invalid body #5", Err: ErrInvalidResponse, Expected: false},
		{TestName: "Transport #6", Err: errors.New("dial tcp: refused"), Expected: true},
	}
	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			if got := IsServiceFault(tc.Err); got != tc.Expected {
				t.Errorf("Expected %v, got %v", tc.Expected, got)
			}
		})
	}
}

func TestBreakerClient(t *testing.T) {
	initLogger(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mocks.NewMockOrdersAPI(ctrl)

	b := NewBreakerClient(mockAPI, InitCircuitBreaker())

	// отказы по заказу не размыкают цепь
	mockAPI.EXPECT().SetDecision(gomock.Any(), "1", models.DecisionAccepted).
		Return(nil, &APIError{StatusCode: http.StatusConflict}).Times(6)
	for i := 0; i < 6; i++ {
		if _, err := b.SetDecision(context.Background(), "1", models.DecisionAccepted); errors.Is(err, ErrServiceUnavailable) {
			t.Fatalf("Breaker opened on client errors")
		}
	}

	mockAPI.EXPECT().FetchOrders(gomock.Any()).Return(nil, &APIError{StatusCode: http.StatusBadGateway}).Times(5)
	for i := 0; i < 5; i++ {
		if _, err := b.FetchOrders(context.Background()); err == nil {
			t.Fatalf("Expected error on attempt %d", i+1)
		}
	}

	_, err := b.FetchOrders(context.Background())
	if !errors.Is(err, ErrServiceUnavailable) {
		t.Errorf("Expected open breaker error, got '%v'", err)
	}
}
