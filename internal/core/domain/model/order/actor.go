package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Actor is the capability a participant holds relative to one specific
// order, resolved once per request from the order's buyer and seller
// identifiers. The workflow's transition table is keyed by Actor, so no
// role-string checks happen at transition time.
type Actor int

const (
	// ActorUnknown is the zero value and never matches a transition.
	ActorUnknown Actor = iota

	// Buyer is the participant whose identity matches the order's buyerID.
	Buyer

	// Seller is the participant whose identity matches the order's sellerID.
	Seller
)

func getActorStrings() map[Actor]string {
	return map[Actor]string{
		Buyer:  "Buyer",
		Seller: "Seller",
	}
}

// Validate checks that the Actor is Buyer or Seller.
func (a Actor) Validate() error {
	if _, ok := getActorStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("actor",
			fmt.Errorf("%d is not a valid actor", a))
	}
	return nil
}

// String returns the actor name, or "Unknown" for values outside the enum.
func (a Actor) String() string {
	if str, ok := getActorStrings()[a]; ok {
		return str
	}
	return "Unknown"
}
