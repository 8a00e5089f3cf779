// Package stock contains the value objects of the warehouse stock view:
// Record, the read-only per-warehouse quantity of a product, and Allocation,
// the transient planned portion of a purchase to be fulfilled from one
// warehouse. Stock records are owned by the inventory subsystem; this core
// only reads them and reserves quantities against them.
package stock
