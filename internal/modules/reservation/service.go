package reservation

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"hotelier/internal/domain"
	"hotelier/internal/pkg/daterange"
	"hotelier/internal/pkg/response"
)

// Service drives the reservation lifecycle: it validates prospective
// bookings against room availability, allocates booking codes, applies
// the access policy and moves reservations through
// BOOKING → CHECK-IN → FINISHED, with CANCELLED reachable from the two
// non-terminal states. Every public operation returns an Outcome; no
// error crosses this boundary raw.
type Service struct {
	store ReservationStore
	rooms RoomFinder
	codes codeAllocator
	sink  EventSink

	now  func() time.Time
	logf func(format string, args ...any)
}

func NewService(store ReservationStore, rooms RoomFinder, sink EventSink) *Service {
	return &Service{
		store: store,
		rooms: rooms,
		codes: codeAllocator{store: store},
		sink:  sink,
		now:   time.Now,
		logf:  log.Printf,
	}
}

// Create books a room for [req.BookingFrom, req.BookingTo). The total
// is fixed here as price × nights and never recomputed. A missing room
// and an occupied room produce the same conflict outcome so callers
// cannot probe the inventory.
func (s *Service) Create(ctx context.Context, p Principal, req CreateReservationRequest) response.Outcome {
	r, err := s.create(ctx, p, req)
	if err == nil {
		s.emit(EventCreated, r)
	}
	return s.outcome(r, "Booking Successfully", err)
}

func (s *Service) create(ctx context.Context, p Principal, req CreateReservationRequest) (*domain.Reservation, error) {
	r := &domain.Reservation{
		RoomNo:      req.RoomNo,
		BookingFrom: req.BookingFrom,
		BookingTo:   req.BookingTo,
		Status:      domain.StatusBooking,
	}
	if p.IsCustomer() {
		r.CustomerEmail = p.Email
	}

	room, err := s.rooms.FindByRoomNo(ctx, req.RoomNo)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomUnavailable
	}

	if req.BookingTo.Before(req.BookingFrom) {
		return nil, ErrInvalidDates
	}

	free, err := s.isAvailable(ctx, req.RoomNo, req.BookingFrom, req.BookingTo)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrRoomUnavailable
	}

	r.Total = room.Price * daterange.Days(req.BookingFrom, req.BookingTo)

	// Persist inside the allocation loop: when a concurrent create wins
	// the same code, the unique index rejects the write and we re-draw.
	for {
		code, err := s.codes.Allocate(ctx)
		if err != nil {
			return nil, err
		}
		r.Code = code

		err = s.store.Save(ctx, r)
		if err == nil {
			return r, nil
		}
		if !errors.Is(err, domain.ErrDuplicateCode) {
			return nil, err
		}
	}
}

// isAvailable reports whether the room is free over the half-open
// window [from, to). A room with no reservations is free.
func (s *Service) isAvailable(ctx context.Context, roomNo int, from, to time.Time) (bool, error) {
	existing, err := s.store.FindActiveByRoom(ctx, roomNo)
	if err != nil {
		return false, err
	}
	for i := range existing {
		if daterange.Overlaps(from, to, existing[i].BookingFrom, existing[i].BookingTo) {
			return false, nil
		}
	}
	return true, nil
}

// Cancel releases a booking that has not started. Started or finished
// stays cannot be cancelled.
func (s *Service) Cancel(ctx context.Context, p Principal, code string) response.Outcome {
	r, err := s.cancel(ctx, p, code)
	if err == nil {
		s.emit(EventCancelled, r)
	}
	return s.outcome(r, "Reservation Canceled", err)
}

func (s *Service) cancel(ctx context.Context, p Principal, code string) (*domain.Reservation, error) {
	r, err := s.store.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrNotFound
	}
	if !CanModify(r, p) {
		return nil, ErrForbidden
	}
	if r.Status == domain.StatusCheckIn || r.Status == domain.StatusFinished {
		return nil, ErrForbidden
	}

	r.Status = domain.StatusCancelled
	if err := s.store.Save(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// CheckIn stamps the arrival time and moves the reservation to
// CHECK-IN. Ownership is not re-checked here: the route layer restricts
// check-in and check-out to staff roles.
func (s *Service) CheckIn(ctx context.Context, code string) response.Outcome {
	r, err := s.transition(ctx, code, domain.StatusCheckIn)
	if err == nil {
		s.emit(EventCheckedIn, r)
	}
	return s.outcome(r, "Check-in successfully", err)
}

// CheckOut stamps the departure time and moves the reservation to its
// terminal FINISHED state.
func (s *Service) CheckOut(ctx context.Context, code string) response.Outcome {
	r, err := s.transition(ctx, code, domain.StatusFinished)
	if err == nil {
		s.emit(EventCheckedOut, r)
	}
	return s.outcome(r, "Check-out successfully", err)
}

// transition is the shared check-in/check-out routine: look up by code,
// refuse cancelled reservations, stamp the timestamp matching the
// target status and persist.
func (s *Service) transition(ctx context.Context, code string, target domain.ReservationStatus) (*domain.Reservation, error) {
	r, err := s.store.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrNotFound
	}
	if r.Status == domain.StatusCancelled {
		return nil, ErrCancelledStay
	}

	now := s.now()
	switch target {
	case domain.StatusCheckIn:
		r.Checkin = &now
	case domain.StatusFinished:
		r.Checkout = &now
	}
	r.Status = target

	if err := s.store.Save(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Find returns a single reservation, owner-gated for customers.
func (s *Service) Find(ctx context.Context, p Principal, code string) response.Outcome {
	r, err := s.find(ctx, p, code)
	return s.outcome(r, "Retrieve reservation information successfully", err)
}

func (s *Service) find(ctx context.Context, p Principal, code string) (*domain.Reservation, error) {
	r, err := s.store.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrNotFound
	}
	if !CanView(r, p) {
		return nil, ErrForbidden
	}
	return r, nil
}

// FindBetweenDates lists every reservation whose booking window
// intersects [from, to]. No ownership narrowing happens here; the route
// layer restricts the listing to staff roles.
func (s *Service) FindBetweenDates(ctx context.Context, from, to time.Time) response.Outcome {
	list, err := s.store.FindBetweenDates(ctx, from, to)
	if err != nil {
		s.logf("reservation: list between dates failed: %v", err)
		return response.Fail(http.StatusInternalServerError, "Internal error!")
	}
	return response.Ok(list, "Retrieve reservations successfully")
}

func (s *Service) emit(event string, r *domain.Reservation) {
	if s.sink != nil {
		s.sink.ReservationChanged(event, r)
	}
}

// outcome is the single conversion point from the engine's tagged
// errors to the uniform Outcome. Anything unrecognized is logged and
// reported as a generic internal error; the cause never reaches the
// caller.
func (s *Service) outcome(r *domain.Reservation, okMessage string, err error) response.Outcome {
	if err == nil {
		return response.Ok(r, okMessage)
	}
	switch {
	case errors.Is(err, ErrInvalidDates):
		return response.Fail(http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrRoomUnavailable):
		return response.Fail(http.StatusConflict, "Room is not available to reserve")
	case errors.Is(err, ErrNotFound):
		return response.Fail(http.StatusNotFound, "Reservation Not Found")
	case errors.Is(err, ErrForbidden):
		return response.Fail(http.StatusForbidden, "Forbidden")
	case errors.Is(err, ErrCancelledStay):
		return response.Fail(http.StatusForbidden, "Forbidden. Reservation has been cancelled")
	default:
		s.logf("reservation: operation failed: %v", err)
		return response.Fail(http.StatusInternalServerError, "Internal error!")
	}
}
