package booking

import (
	"testing"
	"time"
)

func activeReservation(t *testing.T, g *Guest, id uint64) *Reservation {
	t.Helper()
	r := NewRoom("101", "single", 65000, "")
	res, err := NewReservation(
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC),
		g, r)
	if err != nil {
		t.Fatalf("NewReservation: %v", err)
	}
	res.SetID(id)
	if !res.Book() {
		t.Fatal("Book failed")
	}
	return res
}

func TestFullNameSkipsEmptyParts(t *testing.T) {
	cases := []struct {
		guest *Guest
		want  string
	}{
		{NewGuest("Ana", "Maria", "Solis", "Rios", "", "", "", ""), "Ana Maria Solis Rios"},
		{NewGuest("Ana", "", "Solis", "", "", "", "", ""), "Ana Solis"},
		{NewGuest("Ana", "", "Solis", "Rios", "", "", "", ""), "Ana Solis Rios"},
	}
	for _, c := range cases {
		if got := c.guest.FullName(); got != c.want {
			t.Errorf("FullName = %q, want %q", got, c.want)
		}
	}
}

func TestRemoveReservationKeyedByID(t *testing.T) {
	g := NewGuest("Ana", "", "Solis", "", "", "ana@example.com", "", "")
	r1 := activeReservation(t, g, 1)
	activeReservation(t, g, 2)

	// cancelling by id removes exactly that entry
	if !r1.Cancel() {
		t.Fatal("Cancel failed")
	}
	left := g.RoomReservations()
	if len(left) != 1 {
		t.Fatalf("history length = %d, want 1", len(left))
	}
	if left[0].ID() != 2 {
		t.Errorf("remaining reservation id = %d, want 2", left[0].ID())
	}

	// removing an absent id is a normal not-found, not a panic
	if g.removeRoomReservation(99) {
		t.Error("removal of absent id reported success")
	}
	if g.removeRoomReservation(1) {
		t.Error("second removal of id 1 reported success")
	}
	if got := len(g.RoomReservations()); got != 1 {
		t.Errorf("history length after no-op removals = %d, want 1", got)
	}
}

func TestReservationListIsACopy(t *testing.T) {
	g := NewGuest("Ana", "", "Solis", "", "", "ana@example.com", "", "")
	activeReservation(t, g, 1)

	list := g.RoomReservations()
	list[0] = nil
	if g.RoomReservations()[0] == nil {
		t.Error("mutating the returned slice changed the guest's history")
	}
}

func TestCancelServiceReservation(t *testing.T) {
	g := NewGuest("Ana", "", "Solis", "", "", "ana@example.com", "", "")
	svc := NewService("spa", 45000, "")

	sr := NewServiceReservation("2026-04-01 10:00", g, svc)
	sr.SetID(5)
	sr.Book()
	if got := len(g.ServiceReservations()); got != 1 {
		t.Fatalf("service history length = %d, want 1", got)
	}

	if !g.CancelServiceReservation(5) {
		t.Fatal("CancelServiceReservation failed")
	}
	if got := len(g.ServiceReservations()); got != 0 {
		t.Errorf("service history length = %d, want 0", got)
	}
	if g.CancelServiceReservation(5) {
		t.Error("second cancellation reported success")
	}
}
