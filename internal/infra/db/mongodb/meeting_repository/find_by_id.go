package meeting_repository

import (
	"context"

	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindMeetingByIdRepository struct {
	Db *mongo.Database
}

func NewFindMeetingByIdRepository(db *mongo.Database) *FindMeetingByIdRepository {
	return &FindMeetingByIdRepository{Db: db}
}

func (r *FindMeetingByIdRepository) Find(meetingId primitive.ObjectID, workspaceId primitive.ObjectID) (*models.Meeting, error) {
	collection := r.Db.Collection("meetings")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var meeting models.Meeting
	err := collection.FindOne(ctx, bson.M{"_id": meetingId, "workspaceId": workspaceId}).Decode(&meeting)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &meeting, nil
}
