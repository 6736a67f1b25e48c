package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

// Режимы завершения заказа
const (
	CompleteModeServer = "server"
	CompleteModeLocal  = "local"
)

type Arguments struct {
	ListenAddr        string        `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN       string        `env:"DATABASE_DSN" envDefault:""`
	JWTSecret         string        `env:"JWT_SECRET" envDefault:"secret"`
	OrdersAPIAddr     string        `env:"ORDERS_API_ADDRESS" envDefault:"https://mahaveerbe.vercel.app"`
	AdminLogin        string        `env:"ADMIN_LOGIN" envDefault:"admin"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH" envDefault:""`
	NoticeTTL         time.Duration `env:"NOTICE_TTL" envDefault:"3s"`
	CompleteMode      string        `env:"COMPLETE_MODE" envDefault:"server"`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr        string
	LogLevel          string
	JWTSecret         string
	DatabaseDSN       string
	AdminLogin        string
	AdminPasswordHash string
}

// OrdersConfig модель настроек работы с удалённым сервисом заказов
type OrdersConfig struct {
	OrdersAPIAddr string
	NoticeTTL     time.Duration
	CompleteMode  string
}

// Config модель настроек сервиса
type Config struct {
	Server ServerConfig
	Orders OrdersConfig
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server    = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel  = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN       = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN for the action journal")
		secret    = pflag.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
		orders    = pflag.StringP("orders", "r", args.OrdersAPIAddr, "Base URL of the remote orders API.")
		login     = pflag.String("admin", args.AdminLogin, "Admin login")
		hash      = pflag.String("admin_hash", args.AdminPasswordHash, "Admin password bcrypt hash")
		noticeTTL = pflag.DurationP("notice_ttl", "n", args.NoticeTTL, "Notice auto-dismiss delay")
		complete  = pflag.StringP("complete_mode", "c", args.CompleteMode, "Order completion mode: server or local")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:        *server,
			LogLevel:          *logLevel,
			DatabaseDSN:       *DSN,
			JWTSecret:         *secret,
			AdminLogin:        *login,
			AdminPasswordHash: *hash,
		},
		Orders: OrdersConfig{
			OrdersAPIAddr: *orders,
			NoticeTTL:     *noticeTTL,
			CompleteMode:  *complete,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:  "localhost:8080",
			LogLevel:    "info",
			DatabaseDSN: "",
			JWTSecret:   "secret",
			AdminLogin:  "admin",
		},
		Orders: OrdersConfig{
			OrdersAPIAddr: "http://localhost:8081",
			NoticeTTL:     3 * time.Second,
			CompleteMode:  CompleteModeServer,
		},
	}
}
