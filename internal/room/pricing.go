package room

// PriceList holds the ticket prices of a room.  Rooms with at most
// SmallRoomLimit seats charge FrontPrice everywhere; larger rooms charge
// FrontPrice for the front half of the rows (rows/2, rounded down) and
// BackPrice for the rest.
type PriceList struct {
	FrontPrice     int `validate:"gte=0"`
	BackPrice      int `validate:"gte=0"`
	SmallRoomLimit int `validate:"gte=0"`
}

// DefaultPriceList returns $10 front, $8 back, flat pricing up to 60 seats.
func DefaultPriceList() PriceList {
	return PriceList{FrontPrice: 10, BackPrice: 8, SmallRoomLimit: 60}
}

func (p PriceList) isSmall(rows, seatsPerRow int) bool {
	return rows*seatsPerRow <= p.SmallRoomLimit
}

// SeatPrice returns the price of any seat in the given 1-based row.
func (p PriceList) SeatPrice(rows, seatsPerRow, row int) int {
	if p.isSmall(rows, seatsPerRow) || row <= rows/2 {
		return p.FrontPrice
	}
	return p.BackPrice
}

// TotalIncome returns the income of a sold-out room.  It splits the rows at
// rows/2 exactly like SeatPrice so that selling every seat adds up to it.
func (p PriceList) TotalIncome(rows, seatsPerRow int) int {
	if p.isSmall(rows, seatsPerRow) {
		return p.FrontPrice * rows * seatsPerRow
	}
	front := rows / 2
	return p.FrontPrice*front*seatsPerRow + p.BackPrice*(rows-front)*seatsPerRow
}
