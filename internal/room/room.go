package room

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/iliyamo/cinema-room-manager/internal/model"
)

var validate = validator.New()

// Room is the seat grid of one cinema room plus its running sales figures.
// Seats are stored zero-based; every exported method takes 1-based row and
// seat numbers as the user types them.
type Room struct {
	layout      model.Layout
	prices      PriceList
	seats       [][]model.SeatStatus
	totalIncome int

	ticketsSold   int
	currentIncome int
}

// New builds an empty room.  Rows and seats per row must each lie in
// 1..model.MaxDimension, and no price may be negative.
func New(layout model.Layout, prices PriceList) (*Room, error) {
	if err := validate.Struct(layout); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	if err := validate.Struct(prices); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPriceList, err)
	}
	seats := make([][]model.SeatStatus, layout.Rows)
	for i := range seats {
		row := make([]model.SeatStatus, layout.SeatsPerRow)
		for j := range row {
			row[j] = model.SeatFree
		}
		seats[i] = row
	}
	return &Room{
		layout:      layout,
		prices:      prices,
		seats:       seats,
		totalIncome: prices.TotalIncome(layout.Rows, layout.SeatsPerRow),
	}, nil
}

// Rows returns the number of rows in the room.
func (r *Room) Rows() int { return r.layout.Rows }

// SeatsPerRow returns the number of seats in each row.
func (r *Room) SeatsPerRow() int { return r.layout.SeatsPerRow }

// TotalSeats returns Rows*SeatsPerRow.
func (r *Room) TotalSeats() int { return r.layout.TotalSeats() }

// TotalIncome returns the income of the room once every seat is sold.
func (r *Room) TotalIncome() int { return r.totalIncome }

func (r *Room) inRange(row, seat int) bool {
	return row >= 1 && row <= r.layout.Rows && seat >= 1 && seat <= r.layout.SeatsPerRow
}

// Status reports whether the seat is free or booked.
func (r *Room) Status(row, seat int) (model.SeatStatus, error) {
	if !r.inRange(row, seat) {
		return "", ErrOutOfRange
	}
	return r.seats[row-1][seat-1], nil
}

// Price returns what the seat costs, booked or not.
func (r *Room) Price(row, seat int) (int, error) {
	if !r.inRange(row, seat) {
		return 0, ErrOutOfRange
	}
	return r.prices.SeatPrice(r.layout.Rows, r.layout.SeatsPerRow, row), nil
}

// Purchase books the seat and returns its price.  It fails with
// ErrOutOfRange or ErrAlreadyBooked without touching any state.
func (r *Room) Purchase(row, seat int) (int, error) {
	if !r.inRange(row, seat) {
		return 0, ErrOutOfRange
	}
	if r.seats[row-1][seat-1] == model.SeatBooked {
		return 0, ErrAlreadyBooked
	}
	price := r.prices.SeatPrice(r.layout.Rows, r.layout.SeatsPerRow, row)
	r.seats[row-1][seat-1] = model.SeatBooked
	r.ticketsSold++
	r.currentIncome += price
	return price, nil
}

// Statistics returns the current sales figures.
func (r *Room) Statistics() model.Statistics {
	return model.Statistics{
		TicketsSold:   r.ticketsSold,
		Percentage:    float64(r.ticketsSold) / float64(r.TotalSeats()) * 100,
		CurrentIncome: r.currentIncome,
		TotalIncome:   r.totalIncome,
	}
}
