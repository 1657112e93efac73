package booking

import (
	"context"
	"fmt"
)

// ReservationGateway is the slice of the persistence gateway the front
// desk needs for room bookings: the initial insert that yields a
// generated identifier, and the follow-up write that links a payment
// onto the stored reservation row.
type ReservationGateway interface {
	CreateReservation(ctx context.Context, res *Reservation) (uint64, error)
	LinkPayment(ctx context.Context, reservationID, paymentID uint64) (bool, error)
}

// PaymentGateway persists payment records and yields their generated
// identifiers.
type PaymentGateway interface {
	CreatePayment(ctx context.Context, p *Payment) (uint64, error)
}

// ServiceRequestGateway links payments onto stored service requests.
// The link is conditional on the request being unpaid; a false return
// means the row was missing or already carried a payment.
type ServiceRequestGateway interface {
	LinkServicePayment(ctx context.Context, requestID, paymentID uint64) (bool, error)
}

// Desk orchestrates the two-step booking protocol against the gateways:
// claim the room in memory, persist the reservation, and later settle a
// payment and link it back onto the reservation row. The desk performs
// no retries; persistence faults propagate to the caller.
type Desk struct {
	reservations ReservationGateway
	payments     PaymentGateway
	requests     ServiceRequestGateway
}

// NewDesk wires a front desk to its gateways. All must be non-nil.
func NewDesk(reservations ReservationGateway, payments PaymentGateway, requests ServiceRequestGateway) *Desk {
	if reservations == nil || payments == nil || requests == nil {
		panic("nil gateway passed to NewDesk")
	}
	return &Desk{reservations: reservations, payments: payments, requests: requests}
}

// Place books the reservation and persists it. ErrRoomUnavailable is
// the routine rejection when the room cannot be claimed. On a
// persistence fault the in-memory booking is undone before the error
// propagates, so the room and the guest's history match storage again.
// The success path leaves the reservation Active and carrying the
// gateway-generated id.
func (d *Desk) Place(ctx context.Context, res *Reservation) error {
	if !res.Book() {
		return ErrRoomUnavailable
	}
	id, err := d.reservations.CreateReservation(ctx, res)
	if err != nil {
		res.Cancel()
		return err
	}
	if id == 0 {
		res.Cancel()
		return ErrNoGeneratedID
	}
	res.SetID(id)
	return nil
}

// Settle computes the reservation total, persists a payment for it and
// links the generated payment id back onto the reservation row. The
// payment insert must come first: the link step needs the generated id.
// When the insert succeeds but the link does not, the stored state is
// inconsistent with the intent; Settle returns the payment together
// with ErrPaymentUnlinked so the caller can surface the partial success
// instead of masking it.
func (d *Desk) Settle(ctx context.Context, res *Reservation, method string) (*Payment, error) {
	if res.ID() == 0 {
		return nil, ErrNotPersisted
	}
	pay := NewPayment(res.TotalCents(), method, res.ID())
	pid, err := d.payments.CreatePayment(ctx, pay)
	if err != nil {
		return nil, err
	}
	if pid == 0 {
		return nil, ErrNoGeneratedID
	}
	pay.SetID(pid)

	linked, err := d.reservations.LinkPayment(ctx, res.ID(), pid)
	if err != nil {
		return pay, fmt.Errorf("%w: %v", ErrPaymentUnlinked, err)
	}
	if !linked {
		return pay, ErrPaymentUnlinked
	}
	res.SetPayment(pay)
	return pay, nil
}

// SettleServiceRequest persists a payment for the request's flat
// service cost and links it onto the stored row. The conditional link
// refuses a request that already carries a payment, so the second of
// two racing settlements loses; like room settlements, the loser gets
// the created payment back together with ErrPaymentUnlinked.
func (d *Desk) SettleServiceRequest(ctx context.Context, sr *ServiceReservation, method string) (*Payment, error) {
	if sr.ID() == 0 {
		return nil, ErrNotPersisted
	}
	pay := NewPayment(sr.Service().CostCents(), method, 0)
	pid, err := d.payments.CreatePayment(ctx, pay)
	if err != nil {
		return nil, err
	}
	if pid == 0 {
		return nil, ErrNoGeneratedID
	}
	pay.SetID(pid)

	linked, err := d.requests.LinkServicePayment(ctx, sr.ID(), pid)
	if err != nil {
		return pay, fmt.Errorf("%w: %v", ErrPaymentUnlinked, err)
	}
	if !linked {
		return pay, ErrPaymentUnlinked
	}
	sr.AttachPayment(pay)
	return pay, nil
}
