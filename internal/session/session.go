package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"

	"github.com/iliyamo/cinema-room-manager/internal/event"
	"github.com/iliyamo/cinema-room-manager/internal/logger"
	"github.com/iliyamo/cinema-room-manager/internal/room"
)

// Session is a single user's booking session over one room.  It is not
// safe for concurrent use.
type Session struct {
	id        string
	room      *room.Room
	out       io.Writer
	logger    *log.Logger
	publisher event.Publisher
	now       func() time.Time

	state        State
	selectedRow  int
	selectedSeat int
}

// Option customizes a Session.
type Option func(*Session)

// ErrNilDependency is returned by New when the room or the writer is nil.
var ErrNilDependency = errors.New("session: nil room or writer")

// WithLogger sets the logger; the default drops everything.
func WithLogger(l *log.Logger) Option { return func(s *Session) { s.logger = l } }

// WithPublisher sets where booking events go; the default drops them.
func WithPublisher(p event.Publisher) Option { return func(s *Session) { s.publisher = p } }

// WithClock replaces time.Now for event timestamps.
func WithClock(now func() time.Time) Option { return func(s *Session) { s.now = now } }

// WithID fixes the session ID instead of generating a UUID.
func WithID(id string) Option { return func(s *Session) { s.id = id } }

// New starts a session on r and prints the main menu to out.
func New(r *room.Room, out io.Writer, opts ...Option) (*Session, error) {
	if r == nil || out == nil {
		return nil, ErrNilDependency
	}
	s := &Session{
		room:      r,
		out:       out,
		logger:    logger.Discard(),
		publisher: event.Discard{},
		now:       time.Now,
		state:     StateMenu,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.id == "" {
		s.id = uuid.NewString()
	}
	if err := s.print(menuText); err != nil {
		return nil, err
	}
	return s, nil
}

// ID returns the session ID carried by log lines and booking events.
func (s *Session) ID() string { return s.id }

// State returns the current position in the menu / purchase flow.
func (s *Session) State() State { return s.state }

// Room returns the room the session sells seats in.
func (s *Session) Room() *room.Room { return s.room }

// Active reports whether the session still accepts input.
func (s *Session) Active() bool {
	return s.state != StateOff
}

// Execute feeds one input to the session.  Bad seat choices are handled
// here by printing a message and asking for the row again; the returned
// error only reports failures to write the output or unexpected room errors.
func (s *Session) Execute(ctx context.Context, input int) error {
	next, effects := Transition(s.state, input)
	s.logger.Debugf("session %s: %s --%d--> %s", s.id, s.state, input, next)
	s.state = next
	return s.apply(ctx, effects)
}

func (s *Session) apply(ctx context.Context, effects []Effect) error {
	for _, e := range effects {
		var err error
		switch e.Kind {
		case EffectShowMenu:
			err = s.print(menuText)
		case EffectShowSeats:
			err = s.print(seatsHeader + s.room.Render())
		case EffectShowStatistics:
			st := s.room.Statistics()
			err = s.printf(statisticsFormat, st.TicketsSold, st.Percentage, st.CurrentIncome, st.TotalIncome)
		case EffectPromptRow:
			err = s.print(rowPrompt)
		case EffectPromptSeat:
			err = s.print(seatPrompt)
		case EffectSelectRow:
			s.selectedRow = e.Value
		case EffectPurchase:
			s.selectedSeat = e.Value
			var sold bool
			sold, err = s.purchase(ctx)
			if err == nil && !sold {
				return s.restartPurchase(ctx)
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// restartPurchase re-enters the purchase flow as if "buy a ticket" had been
// chosen from the menu.
func (s *Session) restartPurchase(ctx context.Context) error {
	next, effects := Transition(StateMenu, ChoiceBuyTicket)
	s.state = next
	return s.apply(ctx, effects)
}

// purchase tries to buy the selected seat.  It reports false when the
// choice was rejected and the user has been told why.
func (s *Session) purchase(ctx context.Context) (bool, error) {
	row, seat := s.selectedRow, s.selectedSeat
	s.selectedRow, s.selectedSeat = 0, 0

	price, err := s.room.Purchase(row, seat)
	switch {
	case errors.Is(err, room.ErrOutOfRange):
		s.logger.Infof("session %s: rejected row=%d seat=%d: %v", s.id, row, seat, err)
		return false, s.print(wrongInputText)
	case errors.Is(err, room.ErrAlreadyBooked):
		s.logger.Infof("session %s: rejected row=%d seat=%d: %v", s.id, row, seat, err)
		return false, s.print(alreadyPurchasedText)
	case err != nil:
		return false, fmt.Errorf("purchase row %d seat %d: %w", row, seat, err)
	}

	st := s.room.Statistics()
	ev := event.BookingConfirmed{
		SessionID:     s.id,
		Row:           row,
		Seat:          seat,
		SeatLabel:     fmt.Sprintf("R%d-S%d", row, seat),
		Price:         price,
		TicketsSold:   st.TicketsSold,
		CurrentIncome: st.CurrentIncome,
		ConfirmedAt:   s.now().UTC().Format(time.RFC3339),
	}
	if err := s.publisher.PublishBookingConfirmed(ctx, ev); err != nil {
		s.logger.Warnf("session %s: publish %s failed: %v", s.id, event.BookingConfirmedName, err)
	}
	// the seat is sold and announced even if the price line cannot be shown
	return true, s.printf(priceFormat, price)
}

func (s *Session) print(text string) error {
	if _, err := io.WriteString(s.out, text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (s *Session) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(s.out, format, args...); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
