// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationConfirmedEvent is published once a stay has been booked and
// persisted. It carries enough context for downstream consumers to log or
// notify without querying the primary database.
type ReservationConfirmedEvent struct {
	ReservationID  uint64 `json:"reservation_id"`
	CustomerID     uint64 `json:"customer_id"`
	CustomerName   string `json:"customer_name"`
	RoomID         uint64 `json:"room_id"`
	RoomNumber     string `json:"room_number"`
	RoomType       string `json:"room_type"`
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	Nights         uint32 `json:"nights"`
	TotalCostCents uint32 `json:"total_cost_cents"`
	ConfirmedAt    string `json:"confirmed_at"`
}
