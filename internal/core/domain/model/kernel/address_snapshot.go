package kernel

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// AddressSnapshot is a value object holding the formatted address text frozen
// onto an order at creation time. Once captured, the text is never re-derived
// from live address records, so later edits or deletions of the underlying
// address do not alter historical orders.
//
// The format is:
//
//	{line1}
//	{line2}
//	{city}, {country}
//	{zip}
//	{phone}        <- present only on customer snapshots
//
// The zero value is invalid; snapshots are created via NewAddressSnapshot
// (plus WithPhone for customer addresses) or RestoreAddressSnapshot when
// rehydrating persisted orders.
type AddressSnapshot struct {
	text string
}

// NewAddressSnapshot formats an address into its frozen text form.
// line2 may be empty; its line is kept so the format stays positional.
// line1, city, country and zip are required.
func NewAddressSnapshot(line1, line2, city, country, zip string) (AddressSnapshot, error) {
	if line1 == "" {
		return AddressSnapshot{}, errs.NewValueIsRequiredError("line1")
	}
	if city == "" {
		return AddressSnapshot{}, errs.NewValueIsRequiredError("city")
	}
	if country == "" {
		return AddressSnapshot{}, errs.NewValueIsRequiredError("country")
	}
	if zip == "" {
		return AddressSnapshot{}, errs.NewValueIsRequiredError("zip")
	}

	return AddressSnapshot{
		text: fmt.Sprintf("%s\n%s\n%s, %s\n%s", line1, line2, city, country, zip),
	}, nil
}

// WithPhone returns a copy of the snapshot with a trailing phone line.
// Used for customer snapshots, which carry the buyer's contact number.
func (s AddressSnapshot) WithPhone(phone string) (AddressSnapshot, error) {
	if err := s.Validate(); err != nil {
		return AddressSnapshot{}, err
	}
	if phone == "" {
		return AddressSnapshot{}, errs.NewValueIsRequiredError("phone")
	}

	return AddressSnapshot{text: s.text + "\n" + phone}, nil
}

// RestoreAddressSnapshot rehydrates a snapshot from its persisted text.
// The text is trusted as-is: it was produced by NewAddressSnapshot when the
// order was created and must not be reformatted.
func RestoreAddressSnapshot(text string) (AddressSnapshot, error) {
	if strings.TrimSpace(text) == "" {
		return AddressSnapshot{}, errs.NewValueIsRequiredError("address snapshot text")
	}
	return AddressSnapshot{text: text}, nil
}

// String returns the frozen address text.
func (s AddressSnapshot) String() string {
	return s.text
}

// IsEqual compares two snapshots by their text.
func (s AddressSnapshot) IsEqual(other AddressSnapshot) bool {
	return s.text == other.text
}

// Validate checks that the snapshot was created through a constructor.
func (s AddressSnapshot) Validate() error {
	if s.text == "" {
		return errs.NewValueIsRequiredError(
			"AddressSnapshot must be created via NewAddressSnapshot or RestoreAddressSnapshot",
		)
	}
	return nil
}
