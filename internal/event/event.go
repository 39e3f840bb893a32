// Package event defines the payloads emitted by a booking session and the
// publishers that deliver them.
package event

// BookingConfirmedName is the name every BookingConfirmed event is logged under.
const BookingConfirmedName = "booking.confirmed"

// BookingConfirmed is emitted after a seat purchase succeeds.  It carries
// enough of the session's figures for a consumer to log or audit the sale
// without asking the room again.
type BookingConfirmed struct {
    SessionID     string `json:"session_id"`
    Row           int    `json:"row"`
    Seat          int    `json:"seat"`
    SeatLabel     string `json:"seat_label"`
    Price         int    `json:"price"`
    TicketsSold   int    `json:"tickets_sold"`
    CurrentIncome int    `json:"current_income"`
    ConfirmedAt   string `json:"confirmed_at"`
}
