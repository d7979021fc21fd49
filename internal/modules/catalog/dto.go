package catalog

type CreateRoomRequest struct {
	RoomNo      int    `json:"room_no" validate:"required,gt=0"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Price       int    `json:"price" validate:"gte=0"` // per night
}
