package model

import "time"

// Payment is a settled charge as stored in the PAYMENTS table. The row
// is written once and never updated; the reservation side carries the
// link (RESERVATIONS.payment_id), not this table.
//
// Fields:
//  ID     – primary key identifier.
//  Amount – settled amount in cents.
//  Method – payment method (cash, card, transfer).
//  Date   – creation instant of the record, stamped by the domain.
type Payment struct {
	ID     uint64    `json:"id"`           // payments.payment_id
	Amount uint32    `json:"amount_cents"` // payments.amount
	Method string    `json:"method"`       // payments.payment_method
	Date   time.Time `json:"date"`         // payments.payment_date
}
