package meeting_repository

import (
	"context"
	"time"

	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindMeetingsRepository struct {
	Db *mongo.Database
}

func NewFindMeetingsRepository(db *mongo.Database) *FindMeetingsRepository {
	return &FindMeetingsRepository{Db: db}
}

func (r *FindMeetingsRepository) Find(workspaceId primitive.ObjectID, from time.Time, to time.Time) ([]models.Meeting, error) {
	collection := r.Db.Collection("meetings")

	query := bson.M{"workspaceId": workspaceId}
	startsAt := bson.M{}
	if !from.IsZero() {
		startsAt["$gte"] = from
	}
	if !to.IsZero() {
		startsAt["$lte"] = to
	}
	if len(startsAt) > 0 {
		query["startsAt"] = startsAt
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"startsAt": 1})
	cursor, err := collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	meetings := []models.Meeting{}
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, err
	}

	return meetings, nil
}
