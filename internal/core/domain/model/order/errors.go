package order

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is the sentinel for every rejected status change:
	// the (current status, requested status, actor) triple is not in the
	// transition table, including attempts against a terminal status.
	ErrInvalidTransition = errors.New("status transition is not allowed")

	// ErrActorIsNotParticipant indicates that the acting identity is neither
	// the buyer nor the seller of the order. Resolution fails before the
	// transition table is consulted.
	ErrActorIsNotParticipant = errors.New("actor is neither the buyer nor the seller of the order")
)

// InvalidTransitionError carries the rejected triple and a human-readable
// reason, e.g. "change delivering order to returning or cancelling only".
type InvalidTransitionError struct {
	From   Status
	To     Status
	Actor  Actor
	Reason string
}

func newInvalidTransitionError(from, to Status, actor Actor, reason string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Actor: actor, Reason: reason}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s (%s -> %s by %s)",
		ErrInvalidTransition, e.Reason, e.From, e.To, e.Actor)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
