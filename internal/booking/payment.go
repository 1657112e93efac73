package booking

import "time"

// Payment is a recorded settlement, not a processed transaction. The
// creation instant is stamped in the constructor and has no setter:
// whatever later happens to the amount or method, the date never moves.
type Payment struct {
	id            uint64
	amountCents   uint32
	method        string
	date          time.Time
	reservationID uint64
}

// NewPayment records a settled charge against a reservation. The date
// is always the construction instant in UTC, never caller-supplied.
func NewPayment(amountCents uint32, method string, reservationID uint64) *Payment {
	return &Payment{
		amountCents:   amountCents,
		method:        method,
		date:          time.Now().UTC(),
		reservationID: reservationID,
	}
}

func (p *Payment) ID() uint64 { return p.id }
func (p *Payment) SetID(id uint64) { p.id = id }
func (p *Payment) AmountCents() uint32 { return p.amountCents }
func (p *Payment) Method() string { return p.method }
func (p *Payment) Date() time.Time { return p.date }
func (p *Payment) ReservationID() uint64 { return p.reservationID }

// SetAmountCents and SetMethod exist for administrative corrections.
// They deliberately do not touch the date.
func (p *Payment) SetAmountCents(cents uint32) { p.amountCents = cents }
func (p *Payment) SetMethod(method string) { p.method = method }
