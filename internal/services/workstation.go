package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/denmor86/orderdesk/internal/client"
	"github.com/denmor86/orderdesk/internal/config"
	"github.com/denmor86/orderdesk/internal/logger"
	"github.com/denmor86/orderdesk/internal/models"
	"github.com/denmor86/orderdesk/internal/normalizer"
	"github.com/denmor86/orderdesk/internal/notice"
	"github.com/denmor86/orderdesk/internal/projection"
	"github.com/denmor86/orderdesk/internal/status"
	"github.com/denmor86/orderdesk/internal/store"
	"github.com/denmor86/orderdesk/internal/view"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrActionInProgress = errors.New("action already in progress")
	ErrAlreadyDeclined  = errors.New("order already declined")
	ErrAlreadyDecided   = errors.New("order decision already made")
	ErrNotAccepted      = errors.New("order is not accepted")
	ErrOrderCompleted   = errors.New("order already completed")
	ErrRemote           = errors.New("orders service request failed")
	ErrClosed           = errors.New("workstation closed")
)

// Текст ошибки загрузки списка заказов
const FetchFailed = "Failed to fetch orders"

// RemoteError - отказ удалённого сервиса заказов, errors.Is(err, ErrRemote)
type RemoteError struct {
	Err error
}

func (e *RemoteError) Error() string {
	return ErrRemote.Error() + ": " + e.Err.Error()
}

func (e *RemoteError) Unwrap() []error {
	return []error{ErrRemote, e.Err}
}

// Outcome - результат перехода по заказу
type Outcome struct {
	OrderID  string         `json:"order_id"`
	Decision string         `json:"decision"`
	Status   string         `json:"status"`
	Notice   *notice.Notice `json:"notice,omitempty"`
}

// Workstation - рабочее место проверки заказов: загрузка, решения,
// выполнение и уведомления о рассылке.
type Workstation struct {
	API          client.OrdersAPI
	Store        *store.Store
	Board        *notice.Board
	Journal      *Journal
	CompleteMode string
	closed       atomic.Bool
}

func NewWorkstation(api client.OrdersAPI, st *store.Store, board *notice.Board, journal *Journal, cfg config.OrdersConfig) *Workstation {
	mode := cfg.CompleteMode
	if mode != config.CompleteModeLocal {
		mode = config.CompleteModeServer
	}
	return &Workstation{API: api, Store: st, Board: board, Journal: journal, CompleteMode: mode}
}

// Refresh - загрузка заказов с сервера. При успехе снимок заменяется,
// локальный слой пересобирается по данным сервера.
func (w *Workstation) Refresh(ctx context.Context, actor string) error {
	if w.closed.Load() {
		return ErrClosed
	}
	orders, err := w.API.FetchOrders(ctx)
	if w.closed.Load() {
		return ErrClosed
	}
	if err != nil {
		msg := FetchErrorMessage(err)
		logger.Warnw("Failed to fetch orders", "error", err)
		w.Store.SetFetchError(msg)
		w.Journal.Record(ctx, actor, "", models.ActionRefresh, msg, err)
		return &RemoteError{Err: err}
	}
	if !w.Store.Dispatch(store.Fetched{Orders: orders}) {
		return ErrClosed
	}
	logger.Infow("Orders fetched", "count", len(orders))
	w.Journal.Record(ctx, actor, "", models.ActionRefresh, fmt.Sprintf("%d orders", len(orders)), nil)
	return nil
}

// FetchErrorMessage - текст ошибки загрузки для интерфейса
func FetchErrorMessage(err error) string {
	var remote *RemoteError
	if errors.As(err, &remote) {
		err = remote.Err
	}
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return FetchFailed
	case errors.Is(err, client.ErrInvalidResponse):
		return FetchFailed
	}
	var rateErr *client.RateLimitError
	if errors.As(err, &rateErr) {
		return FetchFailed
	}
	return FetchFailed + ": " + err.Error()
}

// Orders - таблица заказов после фильтрации и сортировки
func (w *Workstation) Orders(f projection.Filter) view.Table {
	orders, caches, fetchErr := w.Store.Snapshot()
	visible := projection.Project(orders, caches, f)
	return view.Build(visible, caches, w.Store.IsSaving, fetchErr)
}

// Notice - текущее уведомление
func (w *Workstation) Notice() (notice.Notice, bool) {
	return w.Board.Current()
}

func (w *Workstation) Accept(ctx context.Context, actor string, orderID string) (Outcome, error) {
	return w.decide(ctx, actor, orderID, models.DecisionAccepted)
}

func (w *Workstation) Decline(ctx context.Context, actor string, orderID string) (Outcome, error) {
	return w.decide(ctx, actor, orderID, models.DecisionDeclined)
}

func (w *Workstation) decide(ctx context.Context, actor string, orderID string, decision string) (Outcome, error) {
	action := models.ActionAccept
	if decision == models.DecisionDeclined {
		action = models.ActionDecline
	}

	order, caches, err := w.begin(orderID)
	if err != nil {
		return Outcome{}, err
	}
	defer w.Store.EndSaving(orderID)

	if status.IsCompleted(order, caches) {
		return Outcome{}, ErrOrderCompleted
	}
	// принятое или отклонённое решение не меняется
	switch status.Decision(order, caches) {
	case models.DecisionDeclined:
		if decision == models.DecisionDeclined {
			return Outcome{}, ErrAlreadyDeclined
		}
		return Outcome{}, ErrAlreadyDecided
	case models.DecisionAccepted:
		return Outcome{}, ErrAlreadyDecided
	}

	resp, err := w.API.SetDecision(ctx, orderID, decision)
	if w.closed.Load() {
		return Outcome{}, ErrClosed
	}
	if err != nil {
		logger.Errorw("Failed to update order", "order", orderID, "decision", decision, "error", err)
		n := w.Board.Show(notice.KindError, notice.MsgUpdateFailed)
		w.Journal.Record(ctx, actor, orderID, action, "", err)
		return Outcome{OrderID: orderID, Notice: &n}, &RemoteError{Err: err}
	}

	if !w.Store.Dispatch(store.DecisionSaved{OrderID: orderID, Decision: decision}) {
		logger.Warnw("Order state not updated", "order", orderID)
	}
	out := w.outcome(orderID)
	// о рассылке сообщаем только при принятии
	if decision == models.DecisionAccepted {
		out.Notice = w.showDelivery(resp)
	}
	w.Journal.Record(ctx, actor, orderID, action, noticeDetails(out.Notice), nil)
	return out, nil
}

// Complete - выполнение принятого заказа. В режиме server сервер
// подтверждает выполнение, в режиме local меняется только локальный слой.
func (w *Workstation) Complete(ctx context.Context, actor string, orderID string) (Outcome, error) {
	order, caches, err := w.begin(orderID)
	if err != nil {
		return Outcome{}, err
	}
	defer w.Store.EndSaving(orderID)

	if status.IsCompleted(order, caches) {
		return Outcome{}, ErrOrderCompleted
	}
	if status.Decision(order, caches) != models.DecisionAccepted {
		return Outcome{}, ErrNotAccepted
	}

	if w.CompleteMode == config.CompleteModeLocal {
		w.Store.Dispatch(store.CompletedLocally{OrderID: orderID})
		w.Journal.Record(ctx, actor, orderID, models.ActionComplete, config.CompleteModeLocal, nil)
		return w.outcome(orderID), nil
	}

	resp, err := w.API.CompleteOrder(ctx, orderID)
	if w.closed.Load() {
		return Outcome{}, ErrClosed
	}
	if err != nil {
		logger.Errorw("Failed to complete order", "order", orderID, "error", err)
		n := w.Board.Show(notice.KindError, notice.MsgCompleteFailed)
		w.Journal.Record(ctx, actor, orderID, models.ActionComplete, "", err)
		return Outcome{OrderID: orderID, Notice: &n}, &RemoteError{Err: err}
	}

	decision := models.DecisionAccepted
	if echoed, ok := normalizer.OrderFromJSON(resp.Order); ok && echoed.DecisionStatus != "" {
		decision = echoed.DecisionStatus
	}
	if !w.Store.Dispatch(store.CompletionSaved{OrderID: orderID, Decision: decision}) {
		logger.Warnw("Order state not updated", "order", orderID)
	}
	out := w.outcome(orderID)
	out.Notice = w.showDelivery(resp)
	w.Journal.Record(ctx, actor, orderID, models.ActionComplete, noticeDetails(out.Notice), nil)
	return out, nil
}

// Actions - последние записи журнала
func (w *Workstation) Actions(ctx context.Context, limit int) ([]models.ActionRecord, error) {
	return w.Journal.Recent(ctx, limit)
}

// Close - после закрытия завершающиеся запросы не меняют состояние
func (w *Workstation) Close() {
	w.closed.Store(true)
	w.Store.Close()
}

// begin - проверяет заказ и выставляет флаг сохранения. Состояние
// заказа перечитывается уже под флагом.
func (w *Workstation) begin(orderID string) (models.Order, status.Caches, error) {
	if w.closed.Load() {
		return models.Order{}, status.Caches{}, ErrClosed
	}
	if _, _, ok := w.Store.Order(orderID); !ok {
		return models.Order{}, status.Caches{}, ErrOrderNotFound
	}
	if !w.Store.BeginSaving(orderID) {
		return models.Order{}, status.Caches{}, ErrActionInProgress
	}
	order, caches, ok := w.Store.Order(orderID)
	if !ok {
		w.Store.EndSaving(orderID)
		return models.Order{}, status.Caches{}, ErrOrderNotFound
	}
	return order, caches, nil
}

func (w *Workstation) outcome(orderID string) Outcome {
	out := Outcome{OrderID: orderID}
	if order, caches, ok := w.Store.Order(orderID); ok {
		out.Decision = status.Decision(order, caches)
		out.Status = status.EffectiveStatus(order, caches)
	}
	return out
}

func (w *Workstation) showDelivery(resp *models.ActionResponse) *notice.Notice {
	if resp == nil {
		return nil
	}
	kind, msg, ok := notice.Summarize(notice.FromResponse(*resp))
	if !ok {
		return nil
	}
	n := w.Board.Show(kind, msg)
	return &n
}

func noticeDetails(n *notice.Notice) string {
	if n == nil {
		return ""
	}
	return n.Message
}
