package router

import (
	"fauget/internal/handlers/attendance"
	"fauget/internal/handlers/auth"
	"fauget/internal/handlers/booking"
	"fauget/internal/handlers/dashboard"
	"fauget/internal/handlers/health"
	"fauget/internal/handlers/payment"
	"fauget/internal/handlers/settings"
	"fauget/internal/handlers/subscription"
	"fauget/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Health       health.Handler
	Auth         auth.Handler
	User         user.Handler
	Booking      booking.Handler
	Subscription subscription.Handler
	Payment      payment.Handler
	Attendance   attendance.Handler
	Dashboard    dashboard.Handler
	Settings     settings.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Health.Router(routerGroup)
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Subscription.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Attendance.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
		r.DomainHandlers.Settings.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
