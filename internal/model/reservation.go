package model

// Reservation records a room booking as stored in the RESERVATIONS
// table. The payment id is null until the settlement link step has
// completed, so an Active row with a null PaymentID is an unpaid
// reservation awaiting reconciliation.
//
// Fields:
//  ID         – primary key identifier, generated on insert.
//  CustomerID – guest who booked the room.
//  RoomID     – room held by this reservation.
//  CheckIn    – arrival date (YYYY-MM-DD).
//  CheckOut   – departure date, strictly after CheckIn.
//  Status     – Active or Cancelled.
//  TotalCost  – stay total in cents at booking time.
//  PaymentID  – linked payment, nil before the link step.
type Reservation struct {
	ID         uint64  `json:"id"`                   // reservations.reservation_id
	CustomerID uint64  `json:"customer_id"`          // reservations.customer_id
	RoomID     uint64  `json:"room_id"`              // reservations.room_id
	CheckIn    string  `json:"check_in"`             // reservations.check_in_date
	CheckOut   string  `json:"check_out"`            // reservations.check_out_date
	Status     string  `json:"status"`               // reservations.status
	TotalCost  uint32  `json:"total_cost_cents"`     // reservations.total_cost
	PaymentID  *uint64 `json:"payment_id,omitempty"` // reservations.payment_id (nullable)
}

// ServiceReservation records a guest's request for a catalog service as
// stored in the SERVICE_RESERVATIONS table. Services are not exclusive,
// so the row carries no status beyond its existence; the payment id is
// null until the request is settled.
//
// Fields:
//  ID          – primary key identifier.
//  CustomerID  – requesting guest.
//  ServiceID   – requested catalog service.
//  RequestedAt – free-form timestamp supplied by the guest.
//  PaymentID   – linked payment, nil while unpaid.
type ServiceReservation struct {
	ID          uint64  `json:"id"`                   // service_reservations.service_reservation_id
	CustomerID  uint64  `json:"customer_id"`          // service_reservations.customer_id
	ServiceID   uint64  `json:"service_id"`           // service_reservations.service_id
	RequestedAt string  `json:"requested_at"`         // service_reservations.requested_at
	PaymentID   *uint64 `json:"payment_id,omitempty"` // service_reservations.payment_id (nullable)
}
