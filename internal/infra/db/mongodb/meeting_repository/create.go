package meeting_repository

import (
	"context"
	"time"

	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateMeetingRepository struct {
	Db *mongo.Database
}

func NewCreateMeetingRepository(db *mongo.Database) *CreateMeetingRepository {
	return &CreateMeetingRepository{Db: db}
}

func (r *CreateMeetingRepository) Create(meeting *models.Meeting) (*models.Meeting, error) {
	collection := r.Db.Collection("meetings")

	meeting.Id = primitive.NewObjectID()
	meeting.CreatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, meeting)
	if err != nil {
		return nil, err
	}

	return meeting, nil
}
