package handler

import (
	"testing"

	"github.com/josemtz/hotel-reservation/internal/model"
	"github.com/josemtz/hotel-reservation/internal/repository"
)

func TestRehydrateChargesStoredTotal(t *testing.T) {
	// 2 nights at 65000 would reprice to 130000; the row was booked with
	// a 45000 service attached, so the stored 175000 must win.
	d := &repository.ReservationDetail{
		ID:        7,
		CheckIn:   "2026-04-01",
		CheckOut:  "2026-04-03",
		Status:    "Active",
		TotalCost: 175000,
		Customer: model.Customer{
			ID: 4, FirstName: "Ana", LastName: "Solis", Email: "ana@example.com",
		},
		Room: model.Room{
			ID: 3, Number: "201", Type: "suite", Status: "Occupied", CostPerNight: 65000,
		},
	}

	h := &ReservationHandler{}
	res, err := h.rehydrate(d)
	if err != nil {
		t.Fatalf("rehydrate: %v", err)
	}
	if got := res.TotalCents(); got != d.TotalCost {
		t.Errorf("TotalCents() = %d, want the stored total %d", got, d.TotalCost)
	}
	if res.ID() != d.ID {
		t.Errorf("id = %d, want %d", res.ID(), d.ID)
	}
}

func TestRehydrateRejectsMalformedDates(t *testing.T) {
	d := &repository.ReservationDetail{
		ID:       7,
		CheckIn:  "April 1st",
		CheckOut: "2026-04-03",
	}
	h := &ReservationHandler{}
	if _, err := h.rehydrate(d); err == nil {
		t.Error("malformed check_in accepted")
	}
}
