package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFindMember(t *testing.T) {
	owner := primitive.NewObjectID()
	member := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	workspace := &Workspace{
		Members: []Member{
			{MemberId: owner, Role: RoleOwner},
			{MemberId: member, Role: RoleMember},
		},
	}

	if got := workspace.FindMember(owner); got == nil || got.Role != RoleOwner {
		t.Error("expected the owner's membership entry")
	}
	if got := workspace.FindMember(stranger); got != nil {
		t.Error("expected nil for a non-member")
	}

	// The returned entry aliases the slice so callers see current state.
	entry := workspace.FindMember(member)
	entry.Role = RoleAdmin
	if workspace.Members[1].Role != RoleAdmin {
		t.Error("FindMember should return a pointer into the members slice")
	}
}

func TestCountOwners(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		want  int
	}{
		{"no members", nil, 0},
		{"single owner", []string{RoleOwner, RoleAdmin, RoleMember}, 1},
		{"two owners", []string{RoleOwner, RoleOwner}, 2},
		{"no owner", []string{RoleAdmin, RoleMember}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workspace := &Workspace{}
			for _, role := range tt.roles {
				workspace.Members = append(workspace.Members, Member{
					MemberId: primitive.NewObjectID(),
					Role:     role,
				})
			}
			if got := workspace.CountOwners(); got != tt.want {
				t.Errorf("CountOwners() = %d, want %d", got, tt.want)
			}
		})
	}
}
