package domain

import "time"

// BookingStatus enumerates the lifecycle of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// PaymentState enumerates a booking's payment state.
type PaymentState string

const (
	PaymentUnpaid PaymentState = "unpaid"
	PaymentPaid   PaymentState = "paid"
)

// ProjectStatus enumerates the decorator-side progress of a confirmed booking.
type ProjectStatus string

const (
	ProjectAssigned   ProjectStatus = "assigned"
	ProjectInProgress ProjectStatus = "in-progress"
	ProjectCompleted  ProjectStatus = "completed"
)

// Booking is a customer's reservation of a service.
type Booking struct {
	ID                string
	ServiceID         string
	ServiceName       string
	ServiceCost       int
	BookingDate       time.Time
	Location          string
	Status            BookingStatus
	PaymentStatus     PaymentState
	ProjectStatus     ProjectStatus
	AssignedDecorator string
	UserName          string
	UserEmail         string
	CreatedAt         time.Time
}

// BookingRequest is the payload for creating a booking.
type BookingRequest struct {
	ServiceID   string
	ServiceName string
	ServiceCost int
	BookingDate string
	Location    string
}
