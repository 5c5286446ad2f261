//go:build wireinject
// +build wireinject

package di

import (
	"fauget/config"
	"fauget/infras/jwt"
	"fauget/infras/kafka"
	"fauget/infras/mercadopago"
	"fauget/infras/otel"
	"fauget/infras/postgres"
	"fauget/infras/redis"
	"fauget/infras/s3"
	"fauget/permissions"
	"fauget/shared/cache"
	"fauget/transport/http"
	"fauget/transport/http/middleware"
	"fauget/transport/http/router"

	"github.com/google/wire"

	authService "fauget/internal/domains/auth/service"
	userRepository "fauget/internal/domains/user/repository"
	userService "fauget/internal/domains/user/service"

	bookingRepository "fauget/internal/domains/booking/repository"
	bookingService "fauget/internal/domains/booking/service"

	subscriptionRepository "fauget/internal/domains/subscription/repository"
	subscriptionService "fauget/internal/domains/subscription/service"

	paymentRepository "fauget/internal/domains/payment/repository"
	paymentService "fauget/internal/domains/payment/service"

	attendanceRepository "fauget/internal/domains/attendance/repository"
	attendanceService "fauget/internal/domains/attendance/service"

	dashboardService "fauget/internal/domains/dashboard/service"

	settingsRepository "fauget/internal/domains/settings/repository"
	settingsService "fauget/internal/domains/settings/service"

	attendanceHandler "fauget/internal/handlers/attendance"
	authHandler "fauget/internal/handlers/auth"
	bookingHandler "fauget/internal/handlers/booking"
	dashboardHandler "fauget/internal/handlers/dashboard"
	healthHandler "fauget/internal/handlers/health"
	paymentHandler "fauget/internal/handlers/payment"
	settingsHandler "fauget/internal/handlers/settings"
	subscriptionHandler "fauget/internal/handlers/subscription"
	userHandler "fauget/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
	mercadopago.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	authService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var subscriptionDomain = wire.NewSet(
	subscriptionRepository.New,
	subscriptionService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var attendanceDomain = wire.NewSet(
	attendanceRepository.New,
	attendanceService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardService.New,
)

var settingsDomain = wire.NewSet(
	settingsRepository.NewSettings,
	settingsRepository.NewHoliday,
	settingsService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	bookingDomain,
	subscriptionDomain,
	paymentDomain,
	attendanceDomain,
	dashboardDomain,
	settingsDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	authHandler.New,
	userHandler.New,
	bookingHandler.New,
	subscriptionHandler.New,
	paymentHandler.New,
	attendanceHandler.New,
	dashboardHandler.New,
	settingsHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
