package booking

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestGuest() *Guest {
	return NewGuest("Ana", "Maria", "Solis", "Rios", "555", "ana@example.com", "CDMX", "CURP1")
}

func TestNewReservationRejectsInvalidStay(t *testing.T) {
	g := newTestGuest()
	r := NewRoom("101", "single", 65000, "")

	if _, err := NewReservation(date(2026, 3, 10), date(2026, 3, 10), g, r); err != ErrInvalidStay {
		t.Errorf("same-day stay: err = %v, want ErrInvalidStay", err)
	}
	if _, err := NewReservation(date(2026, 3, 10), date(2026, 3, 8), g, r); err != ErrInvalidStay {
		t.Errorf("reversed stay: err = %v, want ErrInvalidStay", err)
	}
	if _, err := NewReservation(date(2026, 3, 10), date(2026, 3, 12), g, r); err != nil {
		t.Errorf("valid stay: err = %v, want nil", err)
	}
}

func TestRestoredReservationKeepsPersistedTotal(t *testing.T) {
	g := newTestGuest()
	r := NewRoom("201", "suite", 65000, "")

	// A 2-night stay priced at booking with a 45000 service attached:
	// the stored total, not nights times rate, is what settlement sees.
	res := RestoreReservation(7, date(2026, 4, 1), date(2026, 4, 3), g, r, 175000)
	if got := res.TotalCents(); got != 175000 {
		t.Errorf("TotalCents() = %d, want the persisted 175000", got)
	}
	if res.ID() != 7 {
		t.Errorf("id = %d, want 7", res.ID())
	}
	if res.Status() != StatusActive {
		t.Errorf("status = %s, want Active", res.Status())
	}
}

func TestBookClaimsRoomAndRegistersGuest(t *testing.T) {
	g := newTestGuest()
	r := NewRoom("101", "single", 65000, "")
	res, _ := NewReservation(date(2026, 3, 10), date(2026, 3, 12), g, r)

	if !res.Book() {
		t.Fatal("Book on available room failed")
	}
	if r.Status() != RoomOccupied {
		t.Errorf("room status = %s, want Occupied", r.Status())
	}
	if got := len(g.RoomReservations()); got != 1 {
		t.Errorf("guest history length = %d, want 1", got)
	}
	if res.Status() != StatusActive {
		t.Errorf("reservation status = %s, want Active", res.Status())
	}
	// second Book is rejected without side effects
	if res.Book() {
		t.Error("second Book succeeded")
	}
	if got := len(g.RoomReservations()); got != 1 {
		t.Errorf("history length after double book = %d, want 1", got)
	}
}

func TestBookFailureLeavesGuestUntouched(t *testing.T) {
	g := newTestGuest()
	r := NewRoom("101", "single", 65000, "")
	other := NewGuest("Luis", "", "Mora", "", "556", "luis@example.com", "JAL", "CURP2")
	r.Assign(other)

	res, _ := NewReservation(date(2026, 3, 10), date(2026, 3, 12), g, r)
	if res.Book() {
		t.Fatal("Book on occupied room succeeded")
	}
	// neither effect happened: the pair is all-or-nothing
	if got := len(g.RoomReservations()); got != 0 {
		t.Errorf("guest history length = %d, want 0", got)
	}
	if res.Status() != StatusProposed {
		t.Errorf("reservation status = %s, want Proposed", res.Status())
	}
	if r.Occupant() != other {
		t.Error("occupant changed by failed booking")
	}
}

func TestTwoGuestsOneRoom(t *testing.T) {
	r := NewRoom("101", "single", 65000, "")
	g1 := newTestGuest()
	g2 := NewGuest("Luis", "", "Mora", "", "556", "luis@example.com", "JAL", "CURP2")

	res1, _ := NewReservation(date(2026, 3, 10), date(2026, 3, 12), g1, r)
	res2, _ := NewReservation(date(2026, 3, 11), date(2026, 3, 13), g2, r)

	if !res1.Book() {
		t.Fatal("first booking failed")
	}
	if res2.Book() {
		t.Fatal("second booking of the same room succeeded")
	}

	// after the first guest cancels, the room opens up again
	if !res1.Cancel() {
		t.Fatal("cancel failed")
	}
	if !res2.Book() {
		t.Error("booking after release failed")
	}
}

func TestCancelReleasesRoomAndHistoryOnce(t *testing.T) {
	g := newTestGuest()
	r := NewRoom("101", "single", 65000, "")
	res, _ := NewReservation(date(2026, 3, 10), date(2026, 3, 12), g, r)
	res.SetID(7)
	res.Book()

	if !res.Cancel() {
		t.Fatal("first Cancel failed")
	}
	if r.Status() != RoomAvailable {
		t.Errorf("room status = %s, want Available", r.Status())
	}
	if got := len(g.RoomReservations()); got != 0 {
		t.Errorf("guest history length = %d, want 0", got)
	}
	if res.Status() != StatusCancelled {
		t.Errorf("reservation status = %s, want Cancelled", res.Status())
	}
	if res.Cancel() {
		t.Error("second Cancel succeeded")
	}
}

func TestCancelBeforeBookIsRejected(t *testing.T) {
	g := newTestGuest()
	r := NewRoom("101", "single", 65000, "")
	res, _ := NewReservation(date(2026, 3, 10), date(2026, 3, 12), g, r)
	if res.Cancel() {
		t.Error("Cancel on proposed reservation succeeded")
	}
}

func TestRescheduleIsPartial(t *testing.T) {
	g := newTestGuest()
	r := NewRoom("101", "single", 65000, "")
	res, _ := NewReservation(date(2026, 3, 10), date(2026, 3, 12), g, r)

	newOut := date(2026, 3, 15)
	res.Reschedule(nil, &newOut)
	if !res.CheckIn().Equal(date(2026, 3, 10)) {
		t.Errorf("check-in moved to %v on a checkout-only reschedule", res.CheckIn())
	}
	if !res.CheckOut().Equal(newOut) {
		t.Errorf("check-out = %v, want %v", res.CheckOut(), newOut)
	}

	newIn := date(2026, 3, 11)
	res.Reschedule(&newIn, nil)
	if !res.CheckIn().Equal(newIn) {
		t.Errorf("check-in = %v, want %v", res.CheckIn(), newIn)
	}
}

func TestNightsAndTotal(t *testing.T) {
	g := newTestGuest()
	r := NewRoom("201", "suite", 180000, "")
	res, _ := NewReservation(date(2026, 3, 10), date(2026, 3, 13), g, r)

	if got := res.Nights(); got != 3 {
		t.Errorf("Nights = %d, want 3", got)
	}
	if got := res.TotalCents(); got != 540000 {
		t.Errorf("TotalCents = %d, want 540000", got)
	}

	res.AttachService(NewService("spa", 45000, ""))
	res.AttachService(NewService("laundry", 12000, ""))
	if got := res.TotalCents(); got != 597000 {
		t.Errorf("TotalCents with services = %d, want 597000", got)
	}
}

func TestOneNightStay(t *testing.T) {
	g := newTestGuest()
	r := NewRoom("101", "single", 65000, "")
	res, _ := NewReservation(date(2026, 3, 10), date(2026, 3, 11), g, r)
	if got := res.Nights(); got != 1 {
		t.Errorf("Nights = %d, want 1", got)
	}
	if got := res.TotalCents(); got != 65000 {
		t.Errorf("TotalCents = %d, want 65000", got)
	}
}
