package workspace_repository

import (
	"context"

	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UpdateWorkspaceRepository struct {
	Db *mongo.Database
}

func NewUpdateWorkspaceRepository(db *mongo.Database) *UpdateWorkspaceRepository {
	return &UpdateWorkspaceRepository{Db: db}
}

func (r *UpdateWorkspaceRepository) Update(workspaceId primitive.ObjectID, name string, icon string) (*models.Workspace, error) {
	collection := r.Db.Collection("workspaces")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	set := bson.M{"name": name}
	if icon != "" {
		set["icon"] = icon
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var workspace models.Workspace
	err := collection.FindOneAndUpdate(ctx, bson.M{"_id": workspaceId}, bson.M{"$set": set}, opts).Decode(&workspace)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &workspace, nil
}
