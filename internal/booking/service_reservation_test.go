package booking

import "testing"

func TestServiceHasNoExclusivity(t *testing.T) {
	spa := NewService("spa", 45000, "one session")
	g1 := NewGuest("Ana", "", "Solis", "", "", "ana@example.com", "", "")
	g2 := NewGuest("Luis", "", "Mora", "", "", "luis@example.com", "", "")

	sr1 := NewServiceReservation("2026-04-01 10:00", g1, spa)
	sr2 := NewServiceReservation("2026-04-01 10:00", g2, spa)

	if !sr1.Book() {
		t.Error("first service booking failed")
	}
	if !sr2.Book() {
		t.Error("second service booking against the same service failed")
	}
	if got := len(g1.ServiceReservations()); got != 1 {
		t.Errorf("g1 service history length = %d, want 1", got)
	}
	if got := len(g2.ServiceReservations()); got != 1 {
		t.Errorf("g2 service history length = %d, want 1", got)
	}
}

func TestServiceRequestPaidAtMostOnce(t *testing.T) {
	spa := RestoreService(3, "spa", 45000, "")
	g := NewGuest("Ana", "", "Solis", "", "", "ana@example.com", "", "")
	sr := RestoreServiceReservation(9, "2026-04-01 10:00", g, spa)

	first := NewPayment(45000, "card", 0)
	if !sr.AttachPayment(first) {
		t.Fatal("first payment refused")
	}
	if sr.AttachPayment(NewPayment(45000, "cash", 0)) {
		t.Error("second payment accepted on a paid request")
	}
	if sr.Payment() != first {
		t.Error("first payment replaced")
	}
}

func TestServiceReservationBindsGuestAndService(t *testing.T) {
	spa := RestoreService(3, "spa", 45000, "")
	g := NewGuest("Ana", "", "Solis", "", "", "ana@example.com", "", "")
	sr := RestoreServiceReservation(9, "2026-04-01 10:00", g, spa)

	if sr.ID() != 9 {
		t.Errorf("id = %d, want 9", sr.ID())
	}
	if sr.Guest() != g || sr.Service() != spa {
		t.Error("service reservation lost its guest or service reference")
	}
	if sr.RequestedAt() != "2026-04-01 10:00" {
		t.Errorf("requested_at = %q", sr.RequestedAt())
	}
}
