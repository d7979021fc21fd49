package domain

import (
	"errors"
	"time"
)

// ErrDuplicateCode signals a write that violated the uniqueness of
// Reservation.Code. Stores return it so the engine can re-draw a code
// instead of surfacing a storage error.
var ErrDuplicateCode = errors.New("booking code already taken")

type ReservationStatus string

// Status values are stable wire strings; clients and reports depend on them.
const (
	StatusBooking   ReservationStatus = "BOOKING"
	StatusCheckIn   ReservationStatus = "CHECK-IN"
	StatusFinished  ReservationStatus = "FINISHED"
	StatusCancelled ReservationStatus = "CANCELLED"
)

// Terminal reports whether no further transition is allowed from s.
func (s ReservationStatus) Terminal() bool {
	return s == StatusFinished || s == StatusCancelled
}

type Reservation struct {
	ID            int64             `json:"id" gorm:"primaryKey"`
	Code          string            `json:"code" gorm:"uniqueIndex"`
	RoomNo        int               `json:"room_no"`
	CustomerEmail string            `json:"customer_email,omitempty"`
	BookingFrom   time.Time         `json:"booking_from"`
	BookingTo     time.Time         `json:"booking_to"`
	Checkin       *time.Time        `json:"checkin,omitempty"`
	Checkout      *time.Time        `json:"checkout,omitempty"`
	Status        ReservationStatus `json:"status"`
	Total         int               `json:"total"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// Active reports whether the reservation still occupies its room window.
// Cancelled reservations release the window; finished ones keep it (the
// stay happened).
func (r *Reservation) Active() bool {
	return r.Status != StatusCancelled
}
