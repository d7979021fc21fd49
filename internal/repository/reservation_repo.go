package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"hotelier/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type reservationModel struct {
	ID            int64      `gorm:"column:id;primaryKey"`
	Code          string     `gorm:"column:code"`
	RoomNo        int        `gorm:"column:room_no"`
	CustomerEmail string     `gorm:"column:customer_email"`
	BookingFrom   time.Time  `gorm:"column:booking_from"`
	BookingTo     time.Time  `gorm:"column:booking_to"`
	Checkin       *time.Time `gorm:"column:checkin"`
	Checkout      *time.Time `gorm:"column:checkout"`
	Status        string     `gorm:"column:status"`
	Total         int        `gorm:"column:total"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (reservationModel) TableName() string { return "reservations" }

func toDomainReservation(m reservationModel) *domain.Reservation {
	return &domain.Reservation{
		ID:            m.ID,
		Code:          m.Code,
		RoomNo:        m.RoomNo,
		CustomerEmail: m.CustomerEmail,
		BookingFrom:   m.BookingFrom,
		BookingTo:     m.BookingTo,
		Checkin:       m.Checkin,
		Checkout:      m.Checkout,
		Status:        domain.ReservationStatus(m.Status),
		Total:         m.Total,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toReservationModel(r *domain.Reservation) reservationModel {
	return reservationModel{
		ID:            r.ID,
		Code:          r.Code,
		RoomNo:        r.RoomNo,
		CustomerEmail: r.CustomerEmail,
		BookingFrom:   r.BookingFrom,
		BookingTo:     r.BookingTo,
		Checkin:       r.Checkin,
		Checkout:      r.Checkout,
		Status:        string(r.Status),
		Total:         r.Total,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// Save inserts or updates a reservation and writes the assigned ID and
// timestamps back to r.
func (rp *ReservationRepository) Save(ctx context.Context, r *domain.Reservation) error {
	m := toReservationModel(r)
	tx := rp.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		// The unique index on code is the backstop for the allocator's
		// non-atomic generate-then-check loop.
		if isUniqueViolation(tx.Error, "code") {
			return domain.ErrDuplicateCode
		}
		return tx.Error
	}
	*r = *toDomainReservation(m)
	return nil
}

// FindByCode returns (nil, nil) when no reservation carries the code.
func (rp *ReservationRepository) FindByCode(ctx context.Context, code string) (*domain.Reservation, error) {
	var m reservationModel
	tx := rp.db.WithContext(ctx).Where("code = ?", code).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainReservation(m), nil
}

// FindBetweenDates lists reservations whose booking window intersects
// the closed interval [from, to].
func (rp *ReservationRepository) FindBetweenDates(ctx context.Context, from, to time.Time) ([]domain.Reservation, error) {
	var ms []reservationModel
	tx := rp.db.WithContext(ctx).
		Where("booking_from <= ? AND booking_to >= ?", to, from).
		Order("booking_from").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Reservation, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

// FindActiveByRoom lists the room's non-cancelled reservations. The
// availability check tests these for overlap in memory.
func (rp *ReservationRepository) FindActiveByRoom(ctx context.Context, roomNo int) ([]domain.Reservation, error) {
	var ms []reservationModel
	tx := rp.db.WithContext(ctx).
		Where("room_no = ? AND status <> ?", roomNo, string(domain.StatusCancelled)).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Reservation, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

// isUniqueViolation recognizes a unique-index violation on the given
// column for both backends: pgconn error 23505 on PostgreSQL, the
// constraint message on SQLite.
func isUniqueViolation(err error, column string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, column)
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed") &&
		strings.Contains(err.Error(), column)
}
