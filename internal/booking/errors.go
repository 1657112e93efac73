// Package booking implements the in-memory reservation domain: rooms,
// guests, services, reservations and payments, plus the front-desk
// orchestration that persists them through a gateway. Expected domain
// outcomes (room occupied, cancellation target absent) are reported as
// boolean results on the aggregates; the sentinel errors below cover
// validation failures, persistence faults and the one partial-success
// condition the caller must be able to distinguish.
package booking

import "errors"

// ErrInvalidStay is returned when a reservation's check-out date is not
// strictly after its check-in date.
var ErrInvalidStay = errors.New("check-out must be after check-in")

// ErrRoomUnavailable is returned by the front desk when the requested
// room is not Available. This is a routine outcome, not a fault: the
// room and the guest's history are left untouched.
var ErrRoomUnavailable = errors.New("room not available")

// ErrNotPersisted is returned when an operation requires a stored
// reservation (one that already carries a gateway-generated id).
var ErrNotPersisted = errors.New("reservation has not been persisted")

// ErrNoGeneratedID is returned when the gateway reports success but
// yields no identifier. The caller must not assume the create happened.
var ErrNoGeneratedID = errors.New("gateway returned no generated id")

// ErrPaymentUnlinked signals partial success: the payment row exists but
// the link back onto the reservation record failed. The payment is
// returned alongside this error so the caller can reconcile later.
var ErrPaymentUnlinked = errors.New("payment recorded but not linked to reservation")
