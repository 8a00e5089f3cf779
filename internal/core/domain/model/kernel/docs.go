// Package kernel contains shared value objects used across the fulfillment
// domain: identifiers and address snapshots. Types in this package are
// immutable, validated at construction, and carry no behavior specific to a
// single aggregate.
package kernel
