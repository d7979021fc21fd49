package catalog

import (
	"context"

	"hotelier/internal/domain"
)

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	// FindByRoomNo returns (nil, nil) when the room does not exist.
	FindByRoomNo(ctx context.Context, roomNo int) (*domain.Room, error)
	List(ctx context.Context) ([]domain.Room, error)
}
