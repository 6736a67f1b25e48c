package services

//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mocks

import (
	"context"

	"github.com/go-chi/jwtauth/v5"

	"github.com/denmor86/orderdesk/internal/models"
	"github.com/denmor86/orderdesk/internal/notice"
	"github.com/denmor86/orderdesk/internal/projection"
	"github.com/denmor86/orderdesk/internal/view"
)

type IdentityService interface {
	AuthenticateUser(user models.UserRequest) error
	GenerateJWT(username string) (string, error)
	GetTokenAuth() *jwtauth.JWTAuth
}

type WorkstationService interface {
	Refresh(ctx context.Context, actor string) error
	Orders(f projection.Filter) view.Table
	Notice() (notice.Notice, bool)
	Accept(ctx context.Context, actor string, orderID string) (Outcome, error)
	Decline(ctx context.Context, actor string, orderID string) (Outcome, error)
	Complete(ctx context.Context, actor string, orderID string) (Outcome, error)
	Actions(ctx context.Context, limit int) ([]models.ActionRecord, error)
}
