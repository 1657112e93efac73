package booking

import "sync"

// RoomStatus is the availability flag gating new bookings. The values
// match the status column of the ROOMS table.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "Available"
	RoomOccupied    RoomStatus = "Occupied"
	RoomMaintenance RoomStatus = "Maintenance"
)

// Room is the unit of mutual exclusion for bookings. Its fields are only
// reachable through accessors so that the availability transition cannot
// be bypassed. Assign and Release guard the status with a mutex: the
// check-then-act on the flag must be a single step once more than one
// booking path runs at a time.
type Room struct {
	mu sync.Mutex

	id          uint64
	number      string
	roomType    string
	status      RoomStatus
	rateCents   uint32 // cost per night
	description string
	occupant    *Guest
}

// NewRoom returns an Available room with no identifier. The id is
// assigned by the persistence gateway after the first insert.
func NewRoom(number, roomType string, rateCents uint32, description string) *Room {
	return &Room{
		number:      number,
		roomType:    roomType,
		status:      RoomAvailable,
		rateCents:   rateCents,
		description: description,
	}
}

// RestoreRoom rebuilds a room from a persisted row. Loads produce fresh
// object graphs; identity with previously loaded rooms is not preserved.
func RestoreRoom(id uint64, number, roomType string, status RoomStatus, rateCents uint32, description string) *Room {
	r := NewRoom(number, roomType, rateCents, description)
	r.id = id
	r.status = status
	return r
}

// Assign claims the room for a guest. It succeeds only when the room is
// Available and flips it to Occupied; in every other state it reports
// failure and changes nothing. It never queues or retries.
func (r *Room) Assign(g *Guest) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status != RoomAvailable {
		return false
	}
	r.status = RoomOccupied
	r.occupant = g
	return true
}

// Release returns the room to Available regardless of its prior state.
// Releasing an already-available room is a no-op.
func (r *Room) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = RoomAvailable
	r.occupant = nil
}

// MarkMaintenance takes the room out of the bookable pool. A room under
// maintenance rejects Assign the same way an occupied one does.
func (r *Room) MarkMaintenance() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = RoomMaintenance
	r.occupant = nil
}

func (r *Room) ID() uint64 { return r.id }
func (r *Room) SetID(id uint64) { r.id = id }
func (r *Room) Number() string { return r.number }
func (r *Room) Type() string { return r.roomType }

// Status returns the current availability flag.
func (r *Room) Status() RoomStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// Occupant returns the guest the room is currently assigned to, or nil.
func (r *Room) Occupant() *Guest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.occupant
}

func (r *Room) RateCents() uint32 { return r.rateCents }
func (r *Room) SetRateCents(cents uint32) { r.rateCents = cents }
func (r *Room) Description() string { return r.description }
func (r *Room) SetDescription(desc string) { r.description = desc }
