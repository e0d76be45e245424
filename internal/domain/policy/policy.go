// Package policy holds the workspace role-authorization rules as pure decision
// functions. The same rules used to live inline inside the route handlers;
// they are consolidated here so they can be tested without any transport or
// storage layer.
package policy

import "github.com/catatancerdas/collab-backend/internal/domain/models"

// Role is a ranked membership role: Owner > Admin > Member.
type Role int

const (
	Member Role = iota
	Admin
	Owner
)

// ParseRole maps a stored role string onto the ranked enum.
func ParseRole(s string) (Role, bool) {
	switch s {
	case models.RoleOwner:
		return Owner, true
	case models.RoleAdmin:
		return Admin, true
	case models.RoleMember:
		return Member, true
	}
	return Member, false
}

func (r Role) String() string {
	switch r {
	case Owner:
		return models.RoleOwner
	case Admin:
		return models.RoleAdmin
	}
	return models.RoleMember
}

type Decision struct {
	Allowed bool
	Reason  string
}

var allow = Decision{Allowed: true}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// CanChangeRole decides whether actor may set target's role to requested.
// remainingOwners is the number of owners in the workspace before the change.
//
// The admin rules are deliberately asymmetric: an admin may promote a member
// to admin but may not demote another admin. Do not "fix" this without a
// product decision; the asymmetry is inherited behavior.
func CanChangeRole(actorId, targetId string, actor, target, requested Role, remainingOwners int) Decision {
	if actorId == targetId {
		return deny("cannot change own role")
	}
	if actor == Member {
		return deny("members cannot change roles")
	}
	if actor == Admin {
		if target == Owner {
			return deny("admin cannot change owner")
		}
		if requested == Owner {
			return deny("admin cannot promote to owner")
		}
		if target == Admin && requested == Member {
			return deny("admin cannot demote another admin")
		}
		return allow
	}
	if target == Owner && requested != Owner && remainingOwners <= 1 {
		return deny("at least one owner must remain")
	}
	return allow
}

// CanRemoveMember decides whether actor may remove a member holding target's
// role. Removal carries no last-owner guard; only demotion and self-leave do.
func CanRemoveMember(actor, target Role) Decision {
	switch actor {
	case Owner:
		return allow
	case Admin:
		if target == Member {
			return allow
		}
		return deny("admin can only remove members")
	}
	return deny("members cannot remove members")
}

// CanLeave decides whether a member may leave the workspace. totalOwners is
// the current owner count including the actor.
func CanLeave(actor Role, totalOwners int) Decision {
	if totalOwners == 0 {
		return deny("workspace has no owner")
	}
	if actor == Owner && totalOwners == 1 {
		return deny("last owner must assign a successor first")
	}
	return allow
}

// CanInvite decides whether actor may create an invitation granting requested.
func CanInvite(actor, requested Role) Decision {
	if requested == Owner && actor != Owner {
		return deny("only owner can invite owner")
	}
	if actor == Member {
		return deny("members cannot invite")
	}
	if actor == Admin && requested != Member {
		return deny("admin can only invite members")
	}
	return allow
}
