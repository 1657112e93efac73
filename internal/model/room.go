package model

// Room represents a bookable hotel room as stored in the ROOMS table.
// The status column is the binary availability flag gating new
// bookings; Maintenance rooms are excluded from the bookable pool.
//
// Fields:
//  ID            – primary key identifier.
//  Number        – printed room number (e.g. "101").
//  Type          – room category (single, double, suite).
//  Status        – Available, Occupied or Maintenance.
//  CostPerNight  – nightly rate in cents.
//  Description   – free-form description shown in the catalog.
type Room struct {
	ID           uint64 `json:"id"`                   // rooms.room_id
	Number       string `json:"room_number"`          // rooms.room_number
	Type         string `json:"room_type"`            // rooms.room_type
	Status       string `json:"status"`               // rooms.status
	CostPerNight uint32 `json:"cost_per_night_cents"` // rooms.cost_per_night
	Description  string `json:"description"`          // rooms.description
}
