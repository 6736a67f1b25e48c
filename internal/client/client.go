package client

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/denmor86/orderdesk/internal/models"
	"github.com/denmor86/orderdesk/internal/normalizer"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OrdersAPI - удалённый сервис заказов
type OrdersAPI interface {
	FetchOrders(ctx context.Context) ([]models.Order, error)
	SetDecision(ctx context.Context, orderID string, decision string) (*models.ActionResponse, error)
	CompleteOrder(ctx context.Context, orderID string) (*models.ActionResponse, error)
}

type Client struct {
	baseURL    string
	httpClient HTTPClient
	limiter    *RateLimiter
}

func NewClient(baseURL string, client HTTPClient) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
		limiter:    NewRateLimiter(),
	}
}

// FetchOrders - GET /api/orders, ответ приводится к каноническому виду
func (c *Client) FetchOrders(ctx context.Context) ([]models.Order, error) {
	body, err := c.do(ctx, http.MethodGet, c.baseURL+"/api/orders", nil)
	if err != nil {
		return nil, err
	}
	orders, err := normalizer.Orders(body)
	if err != nil {
		return nil, ErrInvalidResponse
	}
	return orders, nil
}

// SetDecision - PUT /api/orders/{id}/decision
func (c *Client) SetDecision(ctx context.Context, orderID string, decision string) (*models.ActionResponse, error) {
	payload, err := json.Marshal(models.DecisionRequest{Decision: decision})
	if err != nil {
		return nil, err
	}
	body, err := c.do(ctx, http.MethodPut, c.orderURL(orderID, "decision"), payload)
	if err != nil {
		return nil, err
	}
	return parseActionResponse(body), nil
}

// CompleteOrder - PUT /api/orders/{id}/complete
func (c *Client) CompleteOrder(ctx context.Context, orderID string) (*models.ActionResponse, error) {
	body, err := c.do(ctx, http.MethodPut, c.orderURL(orderID, "complete"), nil)
	if err != nil {
		return nil, err
	}
	return parseActionResponse(body), nil
}

func (c *Client) orderURL(orderID string, action string) string {
	return c.baseURL + "/api/orders/" + url.PathEscape(orderID) + "/" + action
}

func (c *Client) do(ctx context.Context, method string, target string, payload []byte) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err := HandleErrorResponse(resp, body)
		var rateErr *RateLimitError
		if errors.As(err, &rateErr) {
			c.limiter.BlockFor(rateErr.RetryAfter)
		}
		return nil, err
	}
	return body, nil
}

// HandleErrorResponse - преобразует неуспешный ответ в ошибку
func HandleErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode == http.StatusTooManyRequests {
		return NewRateLimitError(resp.Header)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
}

func errorMessage(body []byte) string {
	var data struct {
		Error   any `json:"error"`
		Message any `json:"message"`
	}
	if err := json.Unmarshal(body, &data); err != nil {
		return ""
	}
	for _, v := range []any{data.Error, data.Message} {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// битое или пустое тело ответа считается отсутствием данных
func parseActionResponse(body []byte) *models.ActionResponse {
	var result models.ActionResponse
	if len(bytes.TrimSpace(body)) == 0 {
		return &result
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return &models.ActionResponse{}
	}
	return &result
}
