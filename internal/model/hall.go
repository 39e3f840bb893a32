package model

// Layout describes the seating layout of a cinema room as entered by the
// user at startup.  Both dimensions must lie in 1..MaxDimension; the validate
// tags are checked by the room package before any grid is allocated, which
// caps a room at one million seats.
//
// Fields:
//  Rows        – number of seating rows.
//  SeatsPerRow – number of seats in every row.
type Layout struct {
    Rows        int `validate:"min=1,max=1000"` // rows in the room
    SeatsPerRow int `validate:"min=1,max=1000"` // seats per row
}

// MaxDimension is the largest number of rows, and of seats per row, a
// Layout accepts.  It must match the max in the validate tags above.
const MaxDimension = 1000

// TotalSeats returns Rows*SeatsPerRow.
func (l Layout) TotalSeats() int {
    return l.Rows * l.SeatsPerRow
}
