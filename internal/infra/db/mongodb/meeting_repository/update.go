package meeting_repository

import (
	"context"

	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UpdateMeetingRepository struct {
	Db *mongo.Database
}

func NewUpdateMeetingRepository(db *mongo.Database) *UpdateMeetingRepository {
	return &UpdateMeetingRepository{Db: db}
}

func (r *UpdateMeetingRepository) Update(meetingId primitive.ObjectID, meeting *models.Meeting) (*models.Meeting, error) {
	collection := r.Db.Collection("meetings")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	set := bson.M{
		"title":       meeting.Title,
		"description": meeting.Description,
		"startsAt":    meeting.StartsAt,
		"endsAt":      meeting.EndsAt,
		"attendees":   meeting.Attendees,
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Meeting
	err := collection.FindOneAndUpdate(ctx,
		bson.M{"_id": meetingId, "workspaceId": meeting.WorkspaceId},
		bson.M{"$set": set}, opts,
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
