package worker

import (
	"sync"
	"time"

	"github.com/denmor86/orderdesk/internal/logger"
)

// Sweeper - то, что периодически очищается от устаревших данных
type Sweeper interface {
	Sweep() bool
}

// NoticeSweeper - фоновый воркер, убирающий истёкшие уведомления
type NoticeSweeper struct {
	Board        Sweeper
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
	PollInterval time.Duration
	stopOnce     sync.Once
}

// NewNoticeSweeper - конструктор воркера
func NewNoticeSweeper(board Sweeper, interval time.Duration) *NoticeSweeper {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	return &NoticeSweeper{
		Board:        board,
		QuitChan:     make(chan struct{}),
		PollInterval: interval,
	}
}

// Start - запускает воркер в фоне
func (w *NoticeSweeper) Start() {
	w.WaitGroup.Add(1)
	go w.Run()
}

// Stop - корректно останавливает воркер
func (w *NoticeSweeper) Stop() {
	w.stopOnce.Do(func() { close(w.QuitChan) })
	w.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (w *NoticeSweeper) Run() {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("NoticeSweeper signal stop")
			return
		case <-ticker.C:
			if w.Board.Sweep() {
				logger.Debug("Expired notice dismissed")
			}
		}
	}
}
