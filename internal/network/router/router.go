package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"

	"github.com/denmor86/orderdesk/internal/network/handlers"
	"github.com/denmor86/orderdesk/internal/network/middleware"
	"github.com/denmor86/orderdesk/internal/services"
)

type Router struct {
	Indentity   services.IdentityService
	Workstation services.WorkstationService
}

func NewRouter(identity services.IdentityService, workstation services.WorkstationService) *Router {
	return &Router{
		Indentity:   identity,
		Workstation: workstation,
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Indentity.GetTokenAuth()
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Post("/login", handlers.AuthenticateUserHandle(router.Indentity))
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(ja))
			r.Use(jwtauth.Authenticator(ja))
			r.Get("/orders", handlers.GetOrdersHandler(router.Workstation))
			r.Post("/orders/refresh", handlers.RefreshOrdersHandler(router.Workstation))
			r.Post("/orders/{id}/accept", handlers.AcceptOrderHandler(router.Workstation))
			r.Post("/orders/{id}/decline", handlers.DeclineOrderHandler(router.Workstation))
			r.Post("/orders/{id}/complete", handlers.CompleteOrderHandler(router.Workstation))
			r.Get("/notice", handlers.GetNoticeHandler(router.Workstation))
			r.Get("/actions", handlers.GetActionsHandler(router.Workstation))
		})
	})
	return r
}
