package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/labstack/gommon/log"
)

// Publisher delivers booking events.  Implementations should not panic;
// errors are returned so the caller can log them and carry on.
type Publisher interface {
	PublishBookingConfirmed(ctx context.Context, ev BookingConfirmed) error
}

// LogPublisher writes every event as a single line through a logger at
// INFO level, followed by its JSON body at DEBUG level.
type LogPublisher struct {
	logger *log.Logger
}

// NewLogPublisher returns a LogPublisher writing to l.
func NewLogPublisher(l *log.Logger) *LogPublisher {
	return &LogPublisher{logger: l}
}

func (p *LogPublisher) PublishBookingConfirmed(ctx context.Context, ev BookingConfirmed) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", BookingConfirmedName, err)
	}
	p.logger.Info(FormatLine(ev))
	p.logger.Debugf("%s %s", BookingConfirmedName, body)
	return nil
}

// FormatLine renders the event as one human-friendly line.
func FormatLine(ev BookingConfirmed) string {
	return fmt.Sprintf("[%s] Booking confirmed | session=%s | seat=%s | row=%d | seat_number=%d | price=$%d | tickets_sold=%d | income=$%d",
		ev.ConfirmedAt, ev.SessionID, ev.SeatLabel, ev.Row, ev.Seat, ev.Price, ev.TicketsSold, ev.CurrentIncome)
}

// Discard drops every event.
type Discard struct{}

func (Discard) PublishBookingConfirmed(context.Context, BookingConfirmed) error { return nil }
