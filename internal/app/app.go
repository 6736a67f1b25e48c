package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denmor86/orderdesk/internal/client"
	"github.com/denmor86/orderdesk/internal/config"
	"github.com/denmor86/orderdesk/internal/logger"
	"github.com/denmor86/orderdesk/internal/network/router"
	"github.com/denmor86/orderdesk/internal/notice"
	"github.com/denmor86/orderdesk/internal/services"
	"github.com/denmor86/orderdesk/internal/storage"
	"github.com/denmor86/orderdesk/internal/store"
	"github.com/denmor86/orderdesk/internal/worker"
)

// SystemActor - автор действий, выполняемых сервисом без сотрудника
const SystemActor = "system"

// NewStorage - журнал в PostgreSQL, если задан DSN, иначе в памяти
func NewStorage(ctx context.Context, cfg config.ServerConfig) (storage.IStorage, error) {
	if cfg.DatabaseDSN == "" {
		logger.Info("DATABASE_DSN is empty, action journal is kept in memory")
		return storage.NewMemStorage(storage.DefaultMemCapacity), nil
	}
	db, err := storage.NewDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	if err := db.Initialize(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return storage.NewStorage(db), nil
}

// NewWorkstation - сборка рабочего места поверх удалённого сервиса заказов
func NewWorkstation(cfg config.OrdersConfig, actions storage.ActionsStorage, board *notice.Board) *services.Workstation {
	api := client.NewBreakerClient(
		client.NewClient(cfg.OrdersAPIAddr, &http.Client{}),
		client.InitCircuitBreaker(),
	)
	return services.NewWorkstation(api, store.NewStore(), board, services.NewJournal(actions), cfg)
}

func Run(cfg config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := NewStorage(ctx, cfg.Server)
	if err != nil {
		return err
	}
	defer st.Close()

	board := notice.NewBoard(cfg.Orders.NoticeTTL)
	workstation := NewWorkstation(cfg.Orders, st, board)
	defer workstation.Close()

	// однократная загрузка при старте; ошибка видна в таблице заказов
	if err := workstation.Refresh(ctx, SystemActor); err != nil {
		logger.Warnw("Initial orders fetch failed", "error", err)
	}

	r := router.NewRouter(services.NewIdentity(cfg.Server), workstation)
	server := &http.Server{
		Addr:              cfg.Server.ListenAddr,
		Handler:           r.HandleRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	sweeper := worker.NewNoticeSweeper(board, cfg.Orders.NoticeTTL/4)
	sweeper.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Infow("Starting server",
			"address", cfg.Server.ListenAddr,
			"orders_api", cfg.Orders.OrdersAPIAddr,
			"complete_mode", cfg.Orders.CompleteMode,
			"notice_ttl", cfg.Orders.NoticeTTL,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorw("error listen server", "error", err)
			stop <- syscall.SIGTERM
		}
	}()

	<-stop
	logger.Info("Shutdown server")
	sweeper.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("error shutdown server", "error", err)
	}
	logger.Info("Server stopped")
	return nil
}
