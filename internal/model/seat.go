package model

// SeatStatus is the booking state of a single seat in a room.  A seat
// starts FREE and moves to BOOKED exactly once; there is no way back.
type SeatStatus string

const (
    SeatFree   SeatStatus = "FREE"   // seat can still be purchased
    SeatBooked SeatStatus = "BOOKED" // seat has been sold
)

// Marker returns the single character used when drawing the seat grid:
// 'S' for a free seat and 'B' for a booked one.
func (s SeatStatus) Marker() byte {
    if s == SeatBooked {
        return 'B'
    }
    return 'S'
}
