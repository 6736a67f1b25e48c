package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"github.com/denmor86/orderdesk/internal/logger"
	"github.com/denmor86/orderdesk/internal/models"
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "orders-service",
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 подряд неудачных обращений к сервису
			return counts.ConsecutiveFailures >= 5
		},
		// отказ по конкретному заказу (4xx) не размыкает цепь
		IsSuccessful: func(err error) bool {
			return !IsServiceFault(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Infow("Circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})
}

// BreakerClient - OrdersAPI с защитой от каскадных отказов
type BreakerClient struct {
	api     OrdersAPI
	breaker *gobreaker.CircuitBreaker
}

func NewBreakerClient(api OrdersAPI, breaker *gobreaker.CircuitBreaker) *BreakerClient {
	return &BreakerClient{api: api, breaker: breaker}
}

func (b *BreakerClient) FetchOrders(ctx context.Context) ([]models.Order, error) {
	result, err := b.breaker.Execute(func() (interface{}, error) {
		return b.api.FetchOrders(ctx)
	})
	if err != nil {
		return nil, breakerError(err)
	}
	orders, _ := result.([]models.Order)
	return orders, nil
}

func (b *BreakerClient) SetDecision(ctx context.Context, orderID string, decision string) (*models.ActionResponse, error) {
	return b.action(func() (*models.ActionResponse, error) {
		return b.api.SetDecision(ctx, orderID, decision)
	})
}

func (b *BreakerClient) CompleteOrder(ctx context.Context, orderID string) (*models.ActionResponse, error) {
	return b.action(func() (*models.ActionResponse, error) {
		return b.api.CompleteOrder(ctx, orderID)
	})
}

func (b *BreakerClient) action(call func() (*models.ActionResponse, error)) (*models.ActionResponse, error) {
	result, err := b.breaker.Execute(func() (interface{}, error) {
		return call()
	})
	if err != nil {
		return nil, breakerError(err)
	}
	resp, _ := result.(*models.ActionResponse)
	if resp == nil {
		resp = &models.ActionResponse{}
	}
	return resp, nil
}

func breakerError(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	return err
}
