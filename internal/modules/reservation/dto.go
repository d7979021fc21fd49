package reservation

import "time"

type CreateReservationRequest struct {
	RoomNo      int       `json:"room_no" binding:"required"`
	BookingFrom time.Time `json:"booking_from" binding:"required"`
	BookingTo   time.Time `json:"booking_to" binding:"required"`
}
