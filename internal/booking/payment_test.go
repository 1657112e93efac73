package booking

import (
	"testing"
	"time"
)

func TestPaymentDateStampedAtConstruction(t *testing.T) {
	before := time.Now().UTC()
	p := NewPayment(540000, "card", 7)
	after := time.Now().UTC()

	if p.Date().Before(before) || p.Date().After(after) {
		t.Errorf("payment date %v outside construction window [%v, %v]", p.Date(), before, after)
	}
	if p.Date().Location() != time.UTC {
		t.Errorf("payment date location = %v, want UTC", p.Date().Location())
	}
}

func TestPaymentDateSurvivesCorrections(t *testing.T) {
	p := NewPayment(540000, "card", 7)
	stamped := p.Date()

	p.SetAmountCents(560000)
	p.SetMethod("cash")

	if p.AmountCents() != 560000 {
		t.Errorf("amount = %d, want 560000", p.AmountCents())
	}
	if p.Method() != "cash" {
		t.Errorf("method = %q, want cash", p.Method())
	}
	if !p.Date().Equal(stamped) {
		t.Errorf("date moved from %v to %v after corrections", stamped, p.Date())
	}
}
