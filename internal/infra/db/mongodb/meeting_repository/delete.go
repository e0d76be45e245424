package meeting_repository

import (
	"context"

	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteMeetingRepository struct {
	Db *mongo.Database
}

func NewDeleteMeetingRepository(db *mongo.Database) *DeleteMeetingRepository {
	return &DeleteMeetingRepository{Db: db}
}

func (r *DeleteMeetingRepository) Delete(meetingId primitive.ObjectID, workspaceId primitive.ObjectID) error {
	collection := r.Db.Collection("meetings")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result, err := collection.DeleteOne(ctx, bson.M{"_id": meetingId, "workspaceId": workspaceId})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}
