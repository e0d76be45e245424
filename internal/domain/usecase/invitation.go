package usecase

import (
	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateInvitationRepository defines the interface for creating invitations
type CreateInvitationRepository interface {
	Create(invitation *models.Invitation) (*models.Invitation, error)
}

// FindInvitationByIdRepository defines the interface for retrieving an invitation by id
type FindInvitationByIdRepository interface {
	Find(invitationId string) (*models.Invitation, error)
}

// FindPendingInvitationRepository defines the interface for duplicate-invite detection
type FindPendingInvitationRepository interface {
	FindPending(workspaceId primitive.ObjectID, email string) (*models.Invitation, error)
}

// FindInvitationsByWorkspaceRepository defines the interface for listing a workspace's pending invitations
type FindInvitationsByWorkspaceRepository interface {
	FindByWorkspace(workspaceId primitive.ObjectID) ([]models.Invitation, error)
}

// DeleteInvitationRepository defines the interface for revoking an invitation
type DeleteInvitationRepository interface {
	Delete(invitationId string) error
}

// AcceptInvitationRepository performs the accept multi-write atomically: the
// member row is added, the invitation deleted and the inviter's notification
// created in a single transaction.
type AcceptInvitationRepository interface {
	Accept(invitation *models.Invitation, userId primitive.ObjectID) error
}
