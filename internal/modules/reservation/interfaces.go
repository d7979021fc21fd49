package reservation

import (
	"context"
	"time"

	"hotelier/internal/domain"
)

// ReservationStore is the engine's only durable collaborator. Lookups
// return (nil, nil) when no record matches.
type ReservationStore interface {
	Save(ctx context.Context, r *domain.Reservation) error
	FindByCode(ctx context.Context, code string) (*domain.Reservation, error)
	FindBetweenDates(ctx context.Context, from, to time.Time) ([]domain.Reservation, error)
	FindActiveByRoom(ctx context.Context, roomNo int) ([]domain.Reservation, error)
}

// RoomFinder resolves room inventory. FindByRoomNo returns (nil, nil)
// for an unknown room number.
type RoomFinder interface {
	FindByRoomNo(ctx context.Context, roomNo int) (*domain.Room, error)
}

// EventSink receives lifecycle events after a successful state change.
// A nil sink disables event delivery.
type EventSink interface {
	ReservationChanged(event string, r *domain.Reservation)
}

// Lifecycle event names delivered to the EventSink.
const (
	EventCreated    = "reservation.created"
	EventCancelled  = "reservation.cancelled"
	EventCheckedIn  = "reservation.checked_in"
	EventCheckedOut = "reservation.checked_out"
)
