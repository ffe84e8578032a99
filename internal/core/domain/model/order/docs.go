// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: identity, weight, region, delivery windows and assignment fields
//   - Status: Created (in the pool), Assigned, Completed
//
// Key business rules:
//   - Orders reference their courier by id; couriers do not hold order collections
//   - Courier id and assign time are set and cleared together
//   - An assigned order returns to the pool through Unassign, never by direct reassignment
//   - Completion happens once, by the assigned courier, not before the assign time
package order
