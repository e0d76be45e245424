package member_repository

import (
	"context"

	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateMemberRoleRepository struct {
	Db *mongo.Database
}

func NewUpdateMemberRoleRepository(db *mongo.Database) *UpdateMemberRoleRepository {
	return &UpdateMemberRoleRepository{Db: db}
}

func (r *UpdateMemberRoleRepository) UpdateRole(workspaceId primitive.ObjectID, userId primitive.ObjectID, role string) error {
	collection := r.Db.Collection("workspaces")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result, err := collection.UpdateOne(ctx,
		bson.M{"_id": workspaceId, "members.memberId": userId},
		bson.M{"$set": bson.M{"members.$.role": role}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}
