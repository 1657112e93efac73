package booking

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeGateway implements the desk's gateway interfaces with scriptable
// outcomes.
type fakeGateway struct {
	nextReservationID uint64
	createErr         error
	nextPaymentID     uint64
	paymentErr        error
	linkOK            bool
	linkErr           error
	linkServiceOK     bool
	linkServiceErr    error

	createdPayments    []*Payment
	linkedPairs        [][2]uint64
	serviceLinkedPairs [][2]uint64
}

func (f *fakeGateway) CreateReservation(_ context.Context, _ *Reservation) (uint64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	return f.nextReservationID, nil
}

func (f *fakeGateway) LinkPayment(_ context.Context, resID, payID uint64) (bool, error) {
	if f.linkErr != nil {
		return false, f.linkErr
	}
	if f.linkOK {
		f.linkedPairs = append(f.linkedPairs, [2]uint64{resID, payID})
	}
	return f.linkOK, nil
}

func (f *fakeGateway) LinkServicePayment(_ context.Context, reqID, payID uint64) (bool, error) {
	if f.linkServiceErr != nil {
		return false, f.linkServiceErr
	}
	if f.linkServiceOK {
		f.serviceLinkedPairs = append(f.serviceLinkedPairs, [2]uint64{reqID, payID})
	}
	return f.linkServiceOK, nil
}

func (f *fakeGateway) CreatePayment(_ context.Context, p *Payment) (uint64, error) {
	if f.paymentErr != nil {
		return 0, f.paymentErr
	}
	f.createdPayments = append(f.createdPayments, p)
	return f.nextPaymentID, nil
}

func proposedReservation(t *testing.T) *Reservation {
	t.Helper()
	g := NewGuest("Ana", "", "Solis", "", "555", "ana@example.com", "CDMX", "CURP1")
	r := NewRoom("101", "single", 65000, "")
	res, err := NewReservation(
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC),
		g, r)
	if err != nil {
		t.Fatalf("NewReservation: %v", err)
	}
	return res
}

func TestPlaceAssignsGatewayID(t *testing.T) {
	gw := &fakeGateway{nextReservationID: 42}
	desk := NewDesk(gw, gw, gw)
	res := proposedReservation(t)

	if err := desk.Place(context.Background(), res); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if res.ID() != 42 {
		t.Errorf("reservation id = %d, want 42", res.ID())
	}
	if res.Status() != StatusActive {
		t.Errorf("status = %s, want Active", res.Status())
	}
}

func TestPlaceRejectsUnavailableRoom(t *testing.T) {
	gw := &fakeGateway{nextReservationID: 42}
	desk := NewDesk(gw, gw, gw)
	res := proposedReservation(t)
	res.Room().MarkMaintenance()

	if err := desk.Place(context.Background(), res); !errors.Is(err, ErrRoomUnavailable) {
		t.Fatalf("err = %v, want ErrRoomUnavailable", err)
	}
	if res.ID() != 0 {
		t.Errorf("failed placement assigned id %d", res.ID())
	}
}

func TestPlaceUndoesBookingOnPersistenceFault(t *testing.T) {
	boom := errors.New("connection reset")
	gw := &fakeGateway{createErr: boom}
	desk := NewDesk(gw, gw, gw)
	res := proposedReservation(t)

	if err := desk.Place(context.Background(), res); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped gateway fault", err)
	}
	// the in-memory claim was rolled back
	if res.Room().Status() != RoomAvailable {
		t.Errorf("room status = %s, want Available after rollback", res.Room().Status())
	}
	if got := len(res.Guest().RoomReservations()); got != 0 {
		t.Errorf("guest history length = %d, want 0 after rollback", got)
	}
}

func TestPlaceRejectsZeroGeneratedID(t *testing.T) {
	gw := &fakeGateway{nextReservationID: 0}
	desk := NewDesk(gw, gw, gw)
	res := proposedReservation(t)

	if err := desk.Place(context.Background(), res); !errors.Is(err, ErrNoGeneratedID) {
		t.Fatalf("err = %v, want ErrNoGeneratedID", err)
	}
	if res.Room().Status() != RoomAvailable {
		t.Errorf("room still claimed after rejected placement")
	}
}

func TestSettleLinksPayment(t *testing.T) {
	gw := &fakeGateway{nextReservationID: 42, nextPaymentID: 9, linkOK: true}
	desk := NewDesk(gw, gw, gw)
	res := proposedReservation(t)
	if err := desk.Place(context.Background(), res); err != nil {
		t.Fatalf("Place: %v", err)
	}

	pay, err := desk.Settle(context.Background(), res, "card")
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}
	if pay.ID() != 9 {
		t.Errorf("payment id = %d, want 9", pay.ID())
	}
	if pay.AmountCents() != res.TotalCents() {
		t.Errorf("payment amount = %d, want %d", pay.AmountCents(), res.TotalCents())
	}
	if len(gw.linkedPairs) != 1 || gw.linkedPairs[0] != [2]uint64{42, 9} {
		t.Errorf("linked pairs = %v, want [[42 9]]", gw.linkedPairs)
	}
	if res.Payment() != pay {
		t.Error("payment not attached to the reservation")
	}
}

func TestSettleRequiresPersistedReservation(t *testing.T) {
	gw := &fakeGateway{}
	desk := NewDesk(gw, gw, gw)
	res := proposedReservation(t)

	if _, err := desk.Settle(context.Background(), res, "card"); !errors.Is(err, ErrNotPersisted) {
		t.Fatalf("err = %v, want ErrNotPersisted", err)
	}
}

func TestSettleReportsPartialSuccessOnLinkFailure(t *testing.T) {
	gw := &fakeGateway{nextReservationID: 42, nextPaymentID: 9, linkOK: false}
	desk := NewDesk(gw, gw, gw)
	res := proposedReservation(t)
	if err := desk.Place(context.Background(), res); err != nil {
		t.Fatalf("Place: %v", err)
	}

	pay, err := desk.Settle(context.Background(), res, "card")
	if !errors.Is(err, ErrPaymentUnlinked) {
		t.Fatalf("err = %v, want ErrPaymentUnlinked", err)
	}
	// the payment exists and is returned alongside the error
	if pay == nil || pay.ID() != 9 {
		t.Fatalf("partial success must return the created payment, got %v", pay)
	}
	if res.Payment() != nil {
		t.Error("unlinked payment attached to the reservation")
	}
}

func TestSettleWrapsLinkError(t *testing.T) {
	boom := errors.New("connection reset")
	gw := &fakeGateway{nextReservationID: 42, nextPaymentID: 9, linkErr: boom}
	desk := NewDesk(gw, gw, gw)
	res := proposedReservation(t)
	if err := desk.Place(context.Background(), res); err != nil {
		t.Fatalf("Place: %v", err)
	}

	pay, err := desk.Settle(context.Background(), res, "card")
	if !errors.Is(err, ErrPaymentUnlinked) {
		t.Fatalf("err = %v, want ErrPaymentUnlinked", err)
	}
	if pay == nil {
		t.Fatal("partial success must return the created payment")
	}
}

func persistedServiceRequest() *ServiceReservation {
	g := NewGuest("Ana", "", "Solis", "", "555", "ana@example.com", "CDMX", "CURP1")
	s := RestoreService(3, "spa", 45000, "")
	return RestoreServiceReservation(11, "2026-04-02 15:00", g, s)
}

func TestServiceSettleLinksPayment(t *testing.T) {
	gw := &fakeGateway{nextPaymentID: 9, linkServiceOK: true}
	desk := NewDesk(gw, gw, gw)
	sr := persistedServiceRequest()

	pay, err := desk.SettleServiceRequest(context.Background(), sr, "card")
	if err != nil {
		t.Fatalf("SettleServiceRequest: %v", err)
	}
	if pay.ID() != 9 {
		t.Errorf("payment id = %d, want 9", pay.ID())
	}
	if pay.AmountCents() != 45000 {
		t.Errorf("payment amount = %d, want the flat service cost 45000", pay.AmountCents())
	}
	if len(gw.serviceLinkedPairs) != 1 || gw.serviceLinkedPairs[0] != [2]uint64{11, 9} {
		t.Errorf("service linked pairs = %v, want [[11 9]]", gw.serviceLinkedPairs)
	}
	if sr.Payment() != pay {
		t.Error("payment not attached to the request")
	}
}

func TestServiceSettleRequiresPersistedRequest(t *testing.T) {
	gw := &fakeGateway{nextPaymentID: 9, linkServiceOK: true}
	desk := NewDesk(gw, gw, gw)
	g := NewGuest("Ana", "", "Solis", "", "555", "ana@example.com", "CDMX", "CURP1")
	sr := NewServiceReservation("2026-04-02 15:00", g, RestoreService(3, "spa", 45000, ""))

	if _, err := desk.SettleServiceRequest(context.Background(), sr, "card"); !errors.Is(err, ErrNotPersisted) {
		t.Fatalf("err = %v, want ErrNotPersisted", err)
	}
	if len(gw.createdPayments) != 0 {
		t.Error("payment created for an unpersisted request")
	}
}

func TestServiceSettleRefusedLinkIsPartialSuccess(t *testing.T) {
	gw := &fakeGateway{nextPaymentID: 9, linkServiceOK: false}
	desk := NewDesk(gw, gw, gw)
	sr := persistedServiceRequest()

	pay, err := desk.SettleServiceRequest(context.Background(), sr, "card")
	if !errors.Is(err, ErrPaymentUnlinked) {
		t.Fatalf("err = %v, want ErrPaymentUnlinked", err)
	}
	if pay == nil || pay.ID() != 9 {
		t.Fatalf("partial success must return the created payment, got %v", pay)
	}
	if sr.Payment() != nil {
		t.Error("unlinked payment attached to the request")
	}
}

func TestSettlePropagatesPaymentFault(t *testing.T) {
	boom := errors.New("disk full")
	gw := &fakeGateway{nextReservationID: 42, paymentErr: boom}
	desk := NewDesk(gw, gw, gw)
	res := proposedReservation(t)
	if err := desk.Place(context.Background(), res); err != nil {
		t.Fatalf("Place: %v", err)
	}

	if _, err := desk.Settle(context.Background(), res, "card"); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want payment fault", err)
	}
}
