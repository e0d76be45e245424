package workspace_repository

import (
	"context"

	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DeleteWorkspaceRepository deletes a workspace together with its documents,
// meetings and pending invitations.
type DeleteWorkspaceRepository struct {
	Db *mongo.Database
}

func NewDeleteWorkspaceRepository(db *mongo.Database) *DeleteWorkspaceRepository {
	return &DeleteWorkspaceRepository{Db: db}
}

func (r *DeleteWorkspaceRepository) Delete(workspaceId primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	filter := bson.M{"workspaceId": workspaceId}

	if _, err := r.Db.Collection("documents").DeleteMany(ctx, filter); err != nil {
		return err
	}
	if _, err := r.Db.Collection("meetings").DeleteMany(ctx, filter); err != nil {
		return err
	}
	if _, err := r.Db.Collection("invitations").DeleteMany(ctx, filter); err != nil {
		return err
	}

	_, err := r.Db.Collection("workspaces").DeleteOne(ctx, bson.M{"_id": workspaceId})
	return err
}
