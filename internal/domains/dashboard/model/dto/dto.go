package dto

import (
	attendanceDto "fauget/internal/domains/attendance/model/dto"
	bookingDto "fauget/internal/domains/booking/model/dto"
	paymentDto "fauget/internal/domains/payment/model/dto"
	subscriptionDto "fauget/internal/domains/subscription/model/dto"
)

// PaymentStatusNone is reported when the user has no active subscription.
const PaymentStatusNone = "no_subscription"

type DashboardResponse struct {
	Subscription       *subscriptionDto.SubscriptionResponse `json:"subscription"`
	WeeklyHours        attendanceDto.WeeklyHoursResponse     `json:"weeklyHours"`
	UpcomingBookings   []bookingDto.BookingResponse          `json:"upcomingBookings"`
	LastPayment        *paymentDto.PaymentResponse           `json:"lastPayment"`
	HasPendingPayments bool                                  `json:"hasPendingPayments"`
	PaymentStatus      string                                `json:"paymentStatus"`
}

type StatsResponse struct {
	MonthlyAttendances int `json:"monthlyAttendances"`
	ActiveBookings     int `json:"activeBookings"`
}
