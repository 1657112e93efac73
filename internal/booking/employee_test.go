package booking

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"FRONT_DESK", RoleFrontDesk, true},
		{"front_desk", RoleFrontDesk, true},
		{" porter ", RolePorter, true},
		{"STAFF", RoleStaff, true},
		{"MANAGER", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := ParseRole(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseRole(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestRoleCapabilities(t *testing.T) {
	if !RoleFrontDesk.Can("settle_payment") {
		t.Error("front desk cannot settle payments")
	}
	if !RolePorter.Can("carry_luggage") {
		t.Error("porter cannot carry luggage")
	}
	if RolePorter.Can("manage_rooms") {
		t.Error("porter can manage rooms")
	}
	if RoleStaff.Can("settle_payment") {
		t.Error("generic staff can settle payments")
	}
	for _, r := range []Role{RoleFrontDesk, RolePorter, RoleStaff} {
		if !r.Can("view_reservations") {
			t.Errorf("%s cannot view reservations", r)
		}
	}
}

func TestDutiesReturnsACopy(t *testing.T) {
	d := RolePorter.Duties()
	if len(d) == 0 {
		t.Fatal("porter has no duties")
	}
	d[0] = "sabotage"
	if RolePorter.Can("sabotage") {
		t.Error("mutating the returned duties changed the role's capability set")
	}
}
