// Package room defines the seat grid of a single cinema room together with
// its pricing rules.  The sentinel errors below let the session layer tell
// a bad seat choice apart from a seat that is already sold, so it can show
// the right message and restart the purchase flow.
package room

import "errors"

// ErrOutOfRange is returned when a row or seat number falls outside the
// room.  Row and seat numbers are 1-based.
var ErrOutOfRange = errors.New("seat out of range")

// ErrAlreadyBooked is returned when the requested seat has been sold
// earlier in the session.
var ErrAlreadyBooked = errors.New("seat already booked")

// ErrInvalidLayout is returned by New when a room dimension is not in
// 1..model.MaxDimension.
var ErrInvalidLayout = errors.New("invalid room layout")

// ErrInvalidPriceList is returned by New when a price or the small room
// limit is negative.
var ErrInvalidPriceList = errors.New("invalid price list")
