package domain

import "time"

type Room struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	RoomNo      int       `json:"room_no" gorm:"uniqueIndex" validate:"required,gt=0"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       int       `json:"price" validate:"gte=0"` // per night
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
