// Package app wires the console, the room and the booking session together
// and runs the read/dispatch loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/labstack/gommon/log"

	"github.com/iliyamo/cinema-room-manager/internal/config"
	"github.com/iliyamo/cinema-room-manager/internal/console"
	"github.com/iliyamo/cinema-room-manager/internal/event"
	"github.com/iliyamo/cinema-room-manager/internal/model"
	"github.com/iliyamo/cinema-room-manager/internal/room"
	"github.com/iliyamo/cinema-room-manager/internal/session"
)

const (
	rowsPrompt  = "Enter the number of rows:\n"
	seatsPrompt = "Enter the number of seats in each row:\n"
)

// Run asks for the room size, then feeds one integer at a time to a new
// session until the user exits.  Running out of input ends the session
// quietly; anything that is not an integer is an error.
func Run(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer, l *log.Logger) error {
	rd := console.NewReader(in)

	layout, err := readLayout(rd, out)
	if err != nil {
		return err
	}
	prices := room.PriceList{
		FrontPrice:     cfg.FrontPrice,
		BackPrice:      cfg.BackPrice,
		SmallRoomLimit: cfg.SmallRoomLimit,
	}
	r, err := room.New(layout, prices)
	if err != nil {
		return err
	}

	s, err := session.New(r, out,
		session.WithLogger(l),
		session.WithPublisher(event.NewLogPublisher(l)),
	)
	if err != nil {
		return err
	}
	l.Infof("session %s started (env=%s rows=%d seats_per_row=%d total_income=%d)",
		s.ID(), cfg.Env, r.Rows(), r.SeatsPerRow(), r.TotalIncome())

	for s.Active() {
		input, err := rd.NextInt()
		if errors.Is(err, io.EOF) {
			l.Infof("session %s: input closed before exit", s.ID())
			return nil
		}
		if err != nil {
			return err
		}
		if err := s.Execute(ctx, input); err != nil {
			return err
		}
	}

	st := r.Statistics()
	l.Infof("session %s finished (tickets_sold=%d income=%d)", s.ID(), st.TicketsSold, st.CurrentIncome)
	return nil
}

func readLayout(rd *console.Reader, out io.Writer) (model.Layout, error) {
	var layout model.Layout
	if _, err := io.WriteString(out, rowsPrompt); err != nil {
		return layout, fmt.Errorf("write output: %w", err)
	}
	rows, err := rd.NextInt()
	if err != nil {
		return layout, fmt.Errorf("read number of rows: %w", err)
	}
	if _, err := io.WriteString(out, seatsPrompt); err != nil {
		return layout, fmt.Errorf("write output: %w", err)
	}
	seats, err := rd.NextInt()
	if err != nil {
		return layout, fmt.Errorf("read number of seats: %w", err)
	}
	layout.Rows, layout.SeatsPerRow = rows, seats
	return layout, nil
}
