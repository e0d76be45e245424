package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role strings as persisted in the workspaces collection. The owner role keeps
// the legacy SUPER_ADMIN name so existing documents stay readable.
const (
	RoleOwner  = "SUPER_ADMIN"
	RoleAdmin  = "ADMIN"
	RoleMember = "MEMBER"
)

type Member struct {
	MemberId primitive.ObjectID `bson:"memberId" json:"memberId"`
	Role     string             `bson:"role" json:"role"`
	JoinedAt time.Time          `bson:"joinedAt" json:"joinedAt"`
}

type Workspace struct {
	Id        primitive.ObjectID `bson:"_id" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Icon      string             `bson:"icon,omitempty" json:"icon,omitempty"`
	Members   []Member           `bson:"members" json:"members"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// FindMember returns the membership entry for the given user, or nil when the
// user does not belong to the workspace.
func (w *Workspace) FindMember(userId primitive.ObjectID) *Member {
	for i := range w.Members {
		if w.Members[i].MemberId == userId {
			return &w.Members[i]
		}
	}
	return nil
}

// CountOwners returns how many members currently hold the owner role.
func (w *Workspace) CountOwners() int {
	count := 0
	for i := range w.Members {
		if w.Members[i].Role == RoleOwner {
			count++
		}
	}
	return count
}
