package notify

import (
	"time"

	"hotelier/internal/domain"
)

// Event is the wire form of a reservation lifecycle change pushed to
// desk dashboards.
type Event struct {
	Type   string                   `json:"type"`
	Code   string                   `json:"code"`
	RoomNo int                      `json:"room_no"`
	Status domain.ReservationStatus `json:"status"`
	At     time.Time                `json:"at"`
}

// DeskFeed fans reservation lifecycle events out to the hub. It
// satisfies the reservation engine's EventSink.
type DeskFeed struct {
	hub *Hub
}

func NewDeskFeed(hub *Hub) *DeskFeed {
	return &DeskFeed{hub: hub}
}

func (f *DeskFeed) ReservationChanged(event string, r *domain.Reservation) {
	f.hub.Broadcast(Event{
		Type:   event,
		Code:   r.Code,
		RoomNo: r.RoomNo,
		Status: r.Status,
		At:     time.Now(),
	})
}
