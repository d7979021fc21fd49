package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hotelier/internal/domain"
)

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	if room != nil {
		room.ID = 7 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockRoomRepository) FindByRoomNo(ctx context.Context, roomNo int) (*domain.Room, error) {
	args := m.Called(ctx, roomNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Room), args.Error(1)
}

func TestGetRoom_NotFound(t *testing.T) {
	rooms := new(MockRoomRepository)
	rooms.On("FindByRoomNo", mock.Anything, 404).Return(nil, nil)

	svc := NewService(rooms)
	_, err := svc.GetRoom(context.Background(), 404)

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestCreateRoom(t *testing.T) {
	rooms := new(MockRoomRepository)
	rooms.On("FindByRoomNo", mock.Anything, 101).Return(nil, nil)
	rooms.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(rooms)
	room, err := svc.CreateRoom(context.Background(), CreateRoomRequest{
		RoomNo: 101,
		Name:   "Standard Double",
		Price:  100,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), room.ID)
	assert.Equal(t, 101, room.RoomNo)
}

func TestCreateRoom_DuplicateRoomNo(t *testing.T) {
	rooms := new(MockRoomRepository)
	rooms.On("FindByRoomNo", mock.Anything, 101).Return(&domain.Room{RoomNo: 101}, nil)

	svc := NewService(rooms)
	_, err := svc.CreateRoom(context.Background(), CreateRoomRequest{RoomNo: 101, Name: "Dup", Price: 1})

	assert.ErrorIs(t, err, ErrRoomExists)
	rooms.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
