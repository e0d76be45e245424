package workspace_repository

import (
	"context"

	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FindWorkspaceByIdRepository handles fetching a workspace by its ID
type FindWorkspaceByIdRepository struct {
	Db *mongo.Database
}

func NewFindWorkspaceByIdRepository(db *mongo.Database) *FindWorkspaceByIdRepository {
	return &FindWorkspaceByIdRepository{Db: db}
}

func (r *FindWorkspaceByIdRepository) Find(workspaceId primitive.ObjectID) (*models.Workspace, error) {
	collection := r.Db.Collection("workspaces")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var workspace models.Workspace
	err := collection.FindOne(ctx, bson.M{"_id": workspaceId}).Decode(&workspace)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &workspace, nil
}
