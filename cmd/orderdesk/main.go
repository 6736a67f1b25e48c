package main

import (
	"fmt"

	"github.com/denmor86/orderdesk/internal/app"
	"github.com/denmor86/orderdesk/internal/config"
	"github.com/denmor86/orderdesk/internal/logger"
)

func main() {
	// загрузка конфига
	cfg := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(cfg.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()

	if err := app.Run(cfg); err != nil {
		logger.Errorw("Service stopped with error", "error", err)
	}
}
