package usecase

import (
	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemberWithUser pairs a membership entry with the user profile behind it.
type MemberWithUser struct {
	models.Member
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
}

// UpdateMemberRoleRepository defines the interface for changing a member's role
type UpdateMemberRoleRepository interface {
	UpdateRole(workspaceId primitive.ObjectID, userId primitive.ObjectID, role string) error
}

// RemoveMemberRepository defines the interface for removing a member from a workspace
type RemoveMemberRepository interface {
	Remove(workspaceId primitive.ObjectID, userId primitive.ObjectID) error
}

// ListMembersRepository defines the interface for listing members with their user profiles
type ListMembersRepository interface {
	List(workspaceId primitive.ObjectID) ([]MemberWithUser, error)
}
