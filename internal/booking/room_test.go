package booking

import (
	"sync"
	"testing"
)

func TestAssignOnlyWhenAvailable(t *testing.T) {
	r := NewRoom("101", "single", 65000, "garden view")
	g := NewGuest("Ana", "", "Solis", "", "555", "ana@example.com", "CDMX", "CURP1")

	if r.Status() != RoomAvailable {
		t.Fatalf("new room status = %s, want Available", r.Status())
	}
	if !r.Assign(g) {
		t.Fatal("Assign on available room failed")
	}
	if r.Status() != RoomOccupied {
		t.Errorf("status after assign = %s, want Occupied", r.Status())
	}
	if r.Occupant() != g {
		t.Error("occupant not set to assigning guest")
	}

	other := NewGuest("Luis", "", "Mora", "", "556", "luis@example.com", "JAL", "CURP2")
	if r.Assign(other) {
		t.Error("Assign on occupied room succeeded")
	}
	if r.Occupant() != g {
		t.Error("failed assign replaced the occupant")
	}
}

func TestAssignRejectedUnderMaintenance(t *testing.T) {
	r := NewRoom("202", "double", 95000, "")
	r.MarkMaintenance()
	g := NewGuest("Ana", "", "Solis", "", "555", "ana@example.com", "CDMX", "CURP1")
	if r.Assign(g) {
		t.Error("Assign on maintenance room succeeded")
	}
	if r.Status() != RoomMaintenance {
		t.Errorf("status = %s, want Maintenance", r.Status())
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	r := NewRoom("101", "single", 65000, "")
	g := NewGuest("Ana", "", "Solis", "", "555", "ana@example.com", "CDMX", "CURP1")
	r.Assign(g)

	r.Release()
	if r.Status() != RoomAvailable {
		t.Errorf("status after release = %s, want Available", r.Status())
	}
	if r.Occupant() != nil {
		t.Error("occupant not cleared on release")
	}
	// second release is a no-op
	r.Release()
	if r.Status() != RoomAvailable {
		t.Errorf("status after double release = %s, want Available", r.Status())
	}
}

func TestConcurrentAssignAdmitsExactlyOne(t *testing.T) {
	const workers = 64
	r := NewRoom("101", "single", 65000, "")

	var wg sync.WaitGroup
	wins := make(chan int, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			g := NewGuest("G", "", "Uest", "", "", "", "", "")
			if r.Assign(g) {
				wins <- n
			}
		}(i)
	}
	wg.Wait()
	close(wins)

	count := 0
	for range wins {
		count++
	}
	if count != 1 {
		t.Fatalf("%d concurrent assigns succeeded, want exactly 1", count)
	}
	if r.Status() != RoomOccupied {
		t.Errorf("status = %s, want Occupied", r.Status())
	}
}
