package order

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine whose legal transitions depend on which participant (buyer or
// seller) is acting, see Transitions.
//
// State diagram:
//
//	Unverified ──seller──> Cancelled
//	Unverified ──seller──> Delivering ──seller──> Delivered
//	                       Delivering ──buyer───> Cancelling ──seller──> Cancelled
//	                       Delivering ──buyer───> Returning  ──seller──> Returned
//
// Cancelled, Returned and Delivered are terminal: no outgoing edges.
//
// The numeric values are part of the external contract (they are persisted
// and exchanged with clients) and must not be reordered.
type Status int

const (
	// Unverified is the initial status of every order: created, not yet
	// confirmed by the seller.
	Unverified Status = iota

	// Cancelling means the buyer requested cancellation while the order was
	// in flight; the seller must confirm it.
	Cancelling

	// Cancelled is terminal: the order was cancelled by the seller.
	Cancelled

	// Returning means the buyer requested a return while the order was in
	// flight; the seller must confirm it.
	Returning

	// Returned is terminal: the seller accepted the return.
	Returned

	// Delivering means the seller verified the order and shipped it.
	Delivering

	// Delivered is terminal: the seller confirmed delivery.
	Delivered
)

// Requestable status codes at the operation boundary. Clients may only
// request codes 1..5 (Cancelling..Delivering); Unverified is never a target
// and Delivered is applied through the domain API.
const (
	MinRequestableStatusCode = 1
	MaxRequestableStatusCode = 5
)

// Transition is one edge of the status workflow: from the current status,
// the permitted actor may move the order to the target status.
type Transition struct {
	From  Status
	To    Status
	Actor Actor
}

// Transitions returns the complete transition table. The table is
// intentionally asymmetric: the seller drives forward progress (verify,
// ship, deliver, confirm cancellations and returns) while the buyer may only
// request cancellation or return while the order is in flight. The buyer can
// never move an order to a terminal state directly.
//
// Every (current, requested, actor) triple absent from this table is an
// invalid transition.
func Transitions() []Transition {
	return []Transition{
		{From: Unverified, To: Cancelled, Actor: Seller},
		{From: Unverified, To: Delivering, Actor: Seller},
		{From: Cancelling, To: Cancelled, Actor: Seller},
		{From: Returning, To: Returned, Actor: Seller},
		{From: Delivering, To: Delivered, Actor: Seller},
		{From: Delivering, To: Returning, Actor: Buyer},
		{From: Delivering, To: Cancelling, Actor: Buyer},
	}
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unverified: "Unverified",
		Cancelling: "Cancelling",
		Cancelled:  "Cancelled",
		Returning:  "Returning",
		Returned:   "Returned",
		Delivering: "Delivering",
		Delivered:  "Delivered",
	}
}

// StatusFromRequestCode maps an externally supplied status code to a Status.
// Codes outside MinRequestableStatusCode..MaxRequestableStatusCode are
// rejected with a value-out-of-range error, mirroring the operation contract.
func StatusFromRequestCode(code int) (Status, error) {
	if code < MinRequestableStatusCode || code > MaxRequestableStatusCode {
		return 0, errs.NewValueIsOutOfRangeError(
			"status", code, MinRequestableStatusCode, MaxRequestableStatusCode,
		)
	}
	return Status(code), nil
}

// Validate checks that the Status value is one of the closed enum's members.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// values outside the enum. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status has no outgoing edges.
func (s Status) IsTerminal() bool {
	return s == Cancelled || s == Returned || s == Delivered
}

// TransitionTo validates the (current, requested, actor) triple against the
// transition table and returns the new status on success.
//
// Failure cases all unwrap to ErrInvalidTransition:
//   - the current status is terminal
//   - the actor has no edge from the current status
//   - the requested status is not among the actor's targets
func (s Status) TransitionTo(requested Status, actor Actor) (Status, error) {
	if err := requested.Validate(); err != nil {
		return 0, err
	}

	if s.IsTerminal() {
		return 0, newInvalidTransitionError(s, requested, actor,
			fmt.Sprintf("%s order is final", strings.ToLower(s.String())))
	}

	var targets []string
	for _, t := range Transitions() {
		if t.From != s || t.Actor != actor {
			continue
		}
		if t.To == requested {
			return requested, nil
		}
		targets = append(targets, strings.ToLower(t.To.String()))
	}

	if len(targets) == 0 {
		return 0, newInvalidTransitionError(s, requested, actor,
			fmt.Sprintf("%s may not change an order in %s status",
				strings.ToLower(actor.String()), strings.ToLower(s.String())))
	}

	return 0, newInvalidTransitionError(s, requested, actor,
		fmt.Sprintf("change %s order to %s only",
			strings.ToLower(s.String()), strings.Join(targets, " or ")))
}
