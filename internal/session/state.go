// Package session drives one interactive booking session.  The decision
// logic lives in Transition, a pure function from (state, input) to the next
// state and a list of effects; Session applies those effects against a room
// and an output stream.
package session

// State is the position of the session in the menu / purchase flow.
type State int

const (
	StateMenu         State = iota // waiting for a menu choice
	StateAwaitingRow               // waiting for the row of a ticket
	StateAwaitingSeat              // waiting for the seat of a ticket
	StateOff                       // session finished, input is ignored
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "MENU"
	case StateAwaitingRow:
		return "AWAITING_ROW"
	case StateAwaitingSeat:
		return "AWAITING_SEAT"
	case StateOff:
		return "OFF"
	}
	return "UNKNOWN"
}

// Menu choices.
const (
	ChoiceExit       = 0
	ChoiceShowSeats  = 1
	ChoiceBuyTicket  = 2
	ChoiceStatistics = 3
)
