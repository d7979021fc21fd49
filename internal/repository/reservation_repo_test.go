package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"hotelier/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        "file:" + t.Name() + "?mode=memory&cache=shared",
		}),
		&gorm.Config{},
	)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Reservation{}, &domain.Room{}, &domain.User{}))
	return db
}

func day(n int) time.Time {
	return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestReservationRepository_SaveAndFindByCode(t *testing.T) {
	repo := NewReservationRepository(newTestDB(t))
	ctx := context.Background()

	r := &domain.Reservation{
		Code:        "AB12CD34",
		RoomNo:      101,
		BookingFrom: day(0),
		BookingTo:   day(2),
		Status:      domain.StatusBooking,
		Total:       200,
	}
	require.NoError(t, repo.Save(ctx, r))
	assert.NotZero(t, r.ID)

	got, err := repo.FindByCode(ctx, "AB12CD34")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, r.ID, got.ID)
	assert.Equal(t, domain.StatusBooking, got.Status)

	missing, err := repo.FindByCode(ctx, "NOPE0000")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestReservationRepository_DuplicateCode(t *testing.T) {
	repo := NewReservationRepository(newTestDB(t))
	ctx := context.Background()

	first := &domain.Reservation{Code: "SAMECODE", RoomNo: 101, BookingFrom: day(0), BookingTo: day(1), Status: domain.StatusBooking}
	require.NoError(t, repo.Save(ctx, first))

	dup := &domain.Reservation{Code: "SAMECODE", RoomNo: 102, BookingFrom: day(3), BookingTo: day(4), Status: domain.StatusBooking}
	err := repo.Save(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrDuplicateCode)
}

func TestReservationRepository_FindActiveByRoom(t *testing.T) {
	repo := NewReservationRepository(newTestDB(t))
	ctx := context.Background()

	seed := []domain.Reservation{
		{Code: "ACTIVE01", RoomNo: 101, BookingFrom: day(0), BookingTo: day(2), Status: domain.StatusBooking},
		{Code: "GONE0001", RoomNo: 101, BookingFrom: day(0), BookingTo: day(2), Status: domain.StatusCancelled},
		{Code: "OTHER001", RoomNo: 202, BookingFrom: day(0), BookingTo: day(2), Status: domain.StatusBooking},
	}
	for i := range seed {
		require.NoError(t, repo.Save(ctx, &seed[i]))
	}

	active, err := repo.FindActiveByRoom(ctx, 101)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "ACTIVE01", active[0].Code)
}

func TestReservationRepository_FindBetweenDates(t *testing.T) {
	repo := NewReservationRepository(newTestDB(t))
	ctx := context.Background()

	seed := []domain.Reservation{
		{Code: "INSIDE01", RoomNo: 101, BookingFrom: day(2), BookingTo: day(4), Status: domain.StatusBooking},
		{Code: "EDGE0001", RoomNo: 102, BookingFrom: day(5), BookingTo: day(7), Status: domain.StatusBooking},
		{Code: "OUTSIDE1", RoomNo: 103, BookingFrom: day(10), BookingTo: day(12), Status: domain.StatusBooking},
	}
	for i := range seed {
		require.NoError(t, repo.Save(ctx, &seed[i]))
	}

	got, err := repo.FindBetweenDates(ctx, day(0), day(5))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "INSIDE01", got[0].Code)
	assert.Equal(t, "EDGE0001", got[1].Code)
}
