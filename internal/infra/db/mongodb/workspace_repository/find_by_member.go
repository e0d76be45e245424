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

type FindWorkspacesByMemberRepository struct {
	Db *mongo.Database
}

func NewFindWorkspacesByMemberRepository(db *mongo.Database) *FindWorkspacesByMemberRepository {
	return &FindWorkspacesByMemberRepository{Db: db}
}

func (r *FindWorkspacesByMemberRepository) FindByMember(userId primitive.ObjectID) ([]models.Workspace, error) {
	collection := r.Db.Collection("workspaces")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"createdAt": 1})
	cursor, err := collection.Find(ctx, bson.M{"members.memberId": userId}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	workspaces := []models.Workspace{}
	if err := cursor.All(ctx, &workspaces); err != nil {
		return nil, err
	}

	return workspaces, nil
}
