package service

import (
	"context"

	"fauget/infras/otel"
	attendanceService "fauget/internal/domains/attendance/service"
	bookingService "fauget/internal/domains/booking/service"
	"fauget/internal/domains/dashboard/model/dto"
	paymentService "fauget/internal/domains/payment/service"
	subscriptionService "fauget/internal/domains/subscription/service"
	"fauget/shared/constant"

	"github.com/rs/zerolog/log"
)

const upcomingBookingsLimit = 5

type Dashboard interface {
	Overview(ctx context.Context, userID string) (dto.DashboardResponse, error)
	Stats(ctx context.Context, userID string) (dto.StatsResponse, error)
}

type serviceImpl struct {
	booking      bookingService.Booking
	subscription subscriptionService.Subscription
	payment      paymentService.Payment
	attendance   attendanceService.Attendance
	otel         otel.Otel
}

func New(
	booking bookingService.Booking,
	subscription subscriptionService.Subscription,
	payment paymentService.Payment,
	attendance attendanceService.Attendance,
	otel otel.Otel,
) Dashboard {
	return &serviceImpl{
		booking:      booking,
		subscription: subscription,
		payment:      payment,
		attendance:   attendance,
		otel:         otel,
	}
}

// Overview aggregates the user's subscription, weekly activity, upcoming
// bookings, and payment state into a single response.
func (s *serviceImpl) Overview(ctx context.Context, userID string) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Overview")
	defer scope.End()
	defer scope.TraceIfError(err)

	subscription, err := s.subscription.GetMyPlan(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active subscription")

		return res, err
	}

	weeklyHours, err := s.attendance.WeeklyHours(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get weekly hours")

		return res, err
	}

	upcomingBookings, err := s.booking.GetUpcoming(ctx, userID, upcomingBookingsLimit)
	if err != nil {
		log.Error().Err(err).Msg("failed to get upcoming bookings")

		return res, err
	}

	lastPayment, err := s.payment.LastPayment(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get last payment")

		return res, err
	}

	hasPendingPayments, err := s.payment.HasPendingPayments(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check pending payments")

		return res, err
	}

	paymentStatus := dto.PaymentStatusNone
	if subscription != nil {
		paymentStatus = subscription.PaymentStatus
	}

	res = dto.DashboardResponse{
		Subscription:       subscription,
		WeeklyHours:        weeklyHours,
		UpcomingBookings:   upcomingBookings,
		LastPayment:        lastPayment,
		HasPendingPayments: hasPendingPayments,
		PaymentStatus:      paymentStatus,
	}

	return res, nil
}

// Stats reports the user's attendance count for the current month and the
// number of confirmed bookings from today onwards.
func (s *serviceImpl) Stats(ctx context.Context, userID string) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	monthlyAttendances, err := s.attendance.MonthlyCount(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to count monthly attendances")

		return res, err
	}

	activeBookings, err := s.booking.CountActive(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to count active bookings")

		return res, err
	}

	res = dto.StatsResponse{
		MonthlyAttendances: monthlyAttendances,
		ActiveBookings:     activeBookings,
	}

	return res, nil
}
