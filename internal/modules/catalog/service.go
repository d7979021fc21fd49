package catalog

import (
	"context"

	"hotelier/internal/domain"
)

type Service struct {
	rooms RoomRepository
}

func NewService(rooms RoomRepository) *Service {
	return &Service{rooms: rooms}
}

func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.List(ctx)
}

func (s *Service) GetRoom(ctx context.Context, roomNo int) (*domain.Room, error) {
	room, err := s.rooms.FindByRoomNo(ctx, roomNo)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	existing, err := s.rooms.FindByRoomNo(ctx, req.RoomNo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrRoomExists
	}

	room := &domain.Room{
		RoomNo:      req.RoomNo,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}
