package notification_repository

import (
	"context"

	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MarkAllNotificationsReadRepository struct {
	Db *mongo.Database
}

func NewMarkAllNotificationsReadRepository(db *mongo.Database) *MarkAllNotificationsReadRepository {
	return &MarkAllNotificationsReadRepository{Db: db}
}

func (r *MarkAllNotificationsReadRepository) MarkAllRead(userId primitive.ObjectID) error {
	collection := r.Db.Collection("notifications")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.UpdateMany(ctx,
		bson.M{"userId": userId, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	return err
}
