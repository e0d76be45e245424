package policy

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"SUPER_ADMIN", Owner, true},
		{"ADMIN", Admin, true},
		{"MEMBER", Member, true},
		{"owner", Member, false},
		{"", Member, false},
	}
	for _, c := range cases {
		got, ok := ParseRole(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseRole(%q) = (%v, %v), want (%v, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestRoleString(t *testing.T) {
	if Owner.String() != "SUPER_ADMIN" || Admin.String() != "ADMIN" || Member.String() != "MEMBER" {
		t.Errorf("unexpected role strings: %q %q %q", Owner, Admin, Member)
	}
}

func TestCanChangeRoleSelf(t *testing.T) {
	d := CanChangeRole("u1", "u1", Owner, Owner, Admin, 3)
	if d.Allowed {
		t.Fatal("self role change must be denied regardless of roles")
	}
	if d.Reason != "cannot change own role" {
		t.Errorf("reason = %q", d.Reason)
	}
}

func TestCanChangeRoleMatrix(t *testing.T) {
	roles := []Role{Member, Admin, Owner}

	cases := []struct {
		name                      string
		actor, target, requested  Role
		owners                    int
		allowed                   bool
		reason                    string
	}{
		{"admin promotes member to admin", Admin, Member, Admin, 1, true, ""},
		{"admin demotes admin to member", Admin, Admin, Member, 1, false, "admin cannot demote another admin"},
		{"admin demotes admin to member with many owners", Admin, Admin, Member, 5, false, "admin cannot demote another admin"},
		{"admin touches owner", Admin, Owner, Member, 2, false, "admin cannot change owner"},
		{"admin promotes member to owner", Admin, Member, Owner, 2, false, "admin cannot promote to owner"},
		{"admin promotes admin to owner", Admin, Admin, Owner, 2, false, "admin cannot promote to owner"},
		{"admin no-op on member", Admin, Member, Member, 1, true, ""},
		{"owner demotes sole co-owner", Owner, Owner, Member, 1, false, "at least one owner must remain"},
		{"owner demotes co-owner with two owners", Owner, Owner, Member, 2, true, ""},
		{"owner demotes co-owner to admin with two owners", Owner, Owner, Admin, 2, true, ""},
		{"owner promotes member to owner", Owner, Member, Owner, 1, true, ""},
		{"owner promotes member to admin", Owner, Member, Admin, 1, true, ""},
		{"owner demotes admin to member", Owner, Admin, Member, 1, true, ""},
		{"owner re-grants owner to owner", Owner, Owner, Owner, 1, true, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := CanChangeRole("actor", "target", c.actor, c.target, c.requested, c.owners)
			if d.Allowed != c.allowed {
				t.Fatalf("allowed = %v, want %v", d.Allowed, c.allowed)
			}
			if !c.allowed && d.Reason != c.reason {
				t.Errorf("reason = %q, want %q", d.Reason, c.reason)
			}
		})
	}

	// Member actors are denied for every combination.
	for _, target := range roles {
		for _, requested := range roles {
			d := CanChangeRole("actor", "target", Member, target, requested, 3)
			if d.Allowed {
				t.Errorf("member actor allowed for target=%v requested=%v", target, requested)
			}
			if d.Reason != "members cannot change roles" {
				t.Errorf("reason = %q", d.Reason)
			}
		}
	}

	// An admin actor can never produce an owner, neither by granting the role
	// nor by altering an existing owner.
	for _, target := range roles {
		if d := CanChangeRole("actor", "target", Admin, target, Owner, 3); d.Allowed {
			t.Errorf("admin actor granted owner with target=%v", target)
		}
	}
	for _, requested := range roles {
		if d := CanChangeRole("actor", "target", Admin, Owner, requested, 3); d.Allowed {
			t.Errorf("admin actor altered an owner with requested=%v", requested)
		}
	}
}

func TestCanChangeRoleIsPure(t *testing.T) {
	for i := 0; i < 3; i++ {
		d := CanChangeRole("a", "b", Owner, Owner, Member, 2)
		if !d.Allowed {
			t.Fatalf("call %d diverged: %+v", i, d)
		}
	}
}

func TestCanRemoveMember(t *testing.T) {
	cases := []struct {
		actor, target Role
		allowed       bool
	}{
		{Owner, Owner, true},
		{Owner, Admin, true},
		{Owner, Member, true},
		{Admin, Member, true},
		{Admin, Admin, false},
		{Admin, Owner, false},
		{Member, Member, false},
		{Member, Admin, false},
		{Member, Owner, false},
	}
	for _, c := range cases {
		if d := CanRemoveMember(c.actor, c.target); d.Allowed != c.allowed {
			t.Errorf("CanRemoveMember(%v, %v) = %v, want %v", c.actor, c.target, d.Allowed, c.allowed)
		}
	}
}

// Removal intentionally lacks the last-owner guard that demotion and leave
// have. This pins the inherited behavior: an owner removing the only other
// owner — or being removed while sole owner — is allowed, which can orphan a
// workspace. A future guard should make this test fail deliberately.
func TestRemoveLastOwnerAllowed(t *testing.T) {
	if d := CanRemoveMember(Owner, Owner); !d.Allowed {
		t.Fatal("owner-removes-owner is currently allowed with no owner-count check")
	}
}

func TestCanLeave(t *testing.T) {
	cases := []struct {
		actor   Role
		owners  int
		allowed bool
		reason  string
	}{
		{Owner, 1, false, "last owner must assign a successor first"},
		{Owner, 2, true, ""},
		{Admin, 1, true, ""},
		{Member, 1, true, ""},
		{Member, 0, false, "workspace has no owner"},
		{Owner, 0, false, "workspace has no owner"},
	}
	for _, c := range cases {
		d := CanLeave(c.actor, c.owners)
		if d.Allowed != c.allowed {
			t.Errorf("CanLeave(%v, %d) = %v, want %v", c.actor, c.owners, d.Allowed, c.allowed)
		}
		if !c.allowed && d.Reason != c.reason {
			t.Errorf("CanLeave(%v, %d) reason = %q, want %q", c.actor, c.owners, d.Reason, c.reason)
		}
	}
}

func TestCanInvite(t *testing.T) {
	cases := []struct {
		actor, requested Role
		allowed          bool
		reason           string
	}{
		{Owner, Owner, true, ""},
		{Owner, Admin, true, ""},
		{Owner, Member, true, ""},
		{Admin, Owner, false, "only owner can invite owner"},
		{Admin, Admin, false, "admin can only invite members"},
		{Admin, Member, true, ""},
		{Member, Owner, false, "only owner can invite owner"},
		{Member, Admin, false, "members cannot invite"},
		{Member, Member, false, "members cannot invite"},
	}
	for _, c := range cases {
		d := CanInvite(c.actor, c.requested)
		if d.Allowed != c.allowed {
			t.Errorf("CanInvite(%v, %v) = %v, want %v", c.actor, c.requested, d.Allowed, c.allowed)
		}
		if !c.allowed && d.Reason != c.reason {
			t.Errorf("CanInvite(%v, %v) reason = %q, want %q", c.actor, c.requested, d.Reason, c.reason)
		}
	}
}
