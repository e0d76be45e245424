package workspace_repository

import (
	"context"
	"time"

	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateWorkspaceRepository struct {
	Db *mongo.Database
}

func NewCreateWorkspaceRepository(db *mongo.Database) *CreateWorkspaceRepository {
	return &CreateWorkspaceRepository{Db: db}
}

func (r *CreateWorkspaceRepository) Create(workspace *models.Workspace) (*models.Workspace, error) {
	collection := r.Db.Collection("workspaces")

	workspace.Id = primitive.NewObjectID()
	workspace.CreatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, workspace)
	if err != nil {
		return nil, err
	}

	return workspace, nil
}
