package member_repository

import (
	"context"

	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RemoveMemberRepository struct {
	Db *mongo.Database
}

func NewRemoveMemberRepository(db *mongo.Database) *RemoveMemberRepository {
	return &RemoveMemberRepository{Db: db}
}

func (r *RemoveMemberRepository) Remove(workspaceId primitive.ObjectID, userId primitive.ObjectID) error {
	collection := r.Db.Collection("workspaces")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result, err := collection.UpdateOne(ctx,
		bson.M{"_id": workspaceId},
		bson.M{"$pull": bson.M{"members": bson.M{"memberId": userId}}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}
