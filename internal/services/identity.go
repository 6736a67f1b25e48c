package services

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/denmor86/orderdesk/internal/config"
	"github.com/denmor86/orderdesk/internal/logger"
	"github.com/denmor86/orderdesk/internal/models"
)

type Identity struct {
	JWTAuth      *jwtauth.JWTAuth
	Login        string
	PasswordHash []byte
}

var (
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrLoginDisabled      = errors.New("admin password hash is not configured")
)

const (
	TokenSecterAlgo     = "HS256"
	TokenExpirationTime = 24 * time.Hour
)

// Создание сервиса
func NewIdentity(cfg config.ServerConfig) *Identity {
	tokenAuth := jwtauth.New(TokenSecterAlgo, []byte(cfg.JWTSecret), nil)
	return &Identity{JWTAuth: tokenAuth, Login: cfg.AdminLogin, PasswordHash: []byte(cfg.AdminPasswordHash)}
}

// Аутентификация сотрудника по логину и bcrypt-хэшу из настроек
func (i *Identity) AuthenticateUser(user models.UserRequest) error {
	logger.Infow("Authenticate user", "login", user.Login)

	if len(i.PasswordHash) == 0 {
		logger.Warn("Login attempt while admin password hash is empty")
		return ErrLoginDisabled
	}
	// хэш сравнивается при любом логине
	hashErr := bcrypt.CompareHashAndPassword(i.PasswordHash, []byte(user.Password))
	loginOK := subtle.ConstantTimeCompare([]byte(user.Login), []byte(i.Login)) == 1
	if hashErr != nil || !loginOK {
		logger.Warnw("Invalid credentials", "login", user.Login)
		return ErrInvalidCredentials
	}

	logger.Infow("User authenticated", "login", user.Login)
	return nil
}

// Создание строки JWT токена
func (i *Identity) GenerateJWT(username string) (string, error) {
	expirationTime := time.Now().Add(TokenExpirationTime)

	_, tokenString, err := i.JWTAuth.Encode(map[string]interface{}{
		"username": username,
		"exp":      expirationTime,
	})
	return tokenString, err
}

// Возвращаем указатель на JWTAuth (chi)
func (i *Identity) GetTokenAuth() *jwtauth.JWTAuth {
	return i.JWTAuth
}
