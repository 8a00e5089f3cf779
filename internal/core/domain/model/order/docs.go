// Package order contains the Order aggregate and its status workflow.
//
// An Order is the persisted result of allocating part of a purchase to one
// warehouse; its lifecycle is governed by a role-gated state machine whose
// edges are enumerated by Transitions. The seller drives forward progress
// while the buyer may only request cancellation or return of an in-flight
// order; see the Status and Actor types for details.
package order
