package session

// EffectKind names a side effect the session must perform.
type EffectKind int

const (
	EffectShowMenu EffectKind = iota
	EffectShowSeats
	EffectShowStatistics
	EffectPromptRow
	EffectPromptSeat
	EffectSelectRow // Value holds the row
	EffectPurchase  // Value holds the seat; the row comes from the previous EffectSelectRow
)

// Effect is one step of work produced by Transition.
type Effect struct {
	Kind  EffectKind
	Value int
}

// Transition computes the next state for an input and the effects to apply,
// in order.  If an EffectPurchase fails, the effects after it are skipped
// and the caller restarts the purchase flow with
// Transition(StateMenu, ChoiceBuyTicket).
func Transition(state State, input int) (State, []Effect) {
	switch state {
	case StateMenu:
		switch input {
		case ChoiceShowSeats:
			return StateMenu, []Effect{{Kind: EffectShowSeats}, {Kind: EffectShowMenu}}
		case ChoiceBuyTicket:
			return StateAwaitingRow, []Effect{{Kind: EffectPromptRow}}
		case ChoiceStatistics:
			return StateMenu, []Effect{{Kind: EffectShowStatistics}, {Kind: EffectShowMenu}}
		case ChoiceExit:
			return StateOff, nil
		}
		return StateMenu, nil
	case StateAwaitingRow:
		return StateAwaitingSeat, []Effect{{Kind: EffectSelectRow, Value: input}, {Kind: EffectPromptSeat}}
	case StateAwaitingSeat:
		return StateMenu, []Effect{{Kind: EffectPurchase, Value: input}, {Kind: EffectShowMenu}}
	}
	return state, nil
}
