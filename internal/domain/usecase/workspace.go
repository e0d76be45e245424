package usecase

import (
	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateWorkspaceRepository defines the interface for creating workspaces
type CreateWorkspaceRepository interface {
	Create(workspace *models.Workspace) (*models.Workspace, error)
}

// FindWorkspaceByIdRepository defines the interface for retrieving a single workspace
type FindWorkspaceByIdRepository interface {
	Find(workspaceId primitive.ObjectID) (*models.Workspace, error)
}

// FindWorkspacesByMemberRepository defines the interface for listing the workspaces a user belongs to
type FindWorkspacesByMemberRepository interface {
	FindByMember(userId primitive.ObjectID) ([]models.Workspace, error)
}

// UpdateWorkspaceRepository defines the interface for renaming a workspace
type UpdateWorkspaceRepository interface {
	Update(workspaceId primitive.ObjectID, name string, icon string) (*models.Workspace, error)
}

// DeleteWorkspaceRepository defines the interface for deleting a workspace and its contents
type DeleteWorkspaceRepository interface {
	Delete(workspaceId primitive.ObjectID) error
}
