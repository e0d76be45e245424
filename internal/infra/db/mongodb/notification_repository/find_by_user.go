package notification_repository

import (
	"context"

	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindNotificationsByUserRepository struct {
	Db *mongo.Database
}

func NewFindNotificationsByUserRepository(db *mongo.Database) *FindNotificationsByUserRepository {
	return &FindNotificationsByUserRepository{Db: db}
}

func (r *FindNotificationsByUserRepository) FindByUser(userId primitive.ObjectID, unreadOnly bool) ([]models.Notification, error) {
	collection := r.Db.Collection("notifications")

	query := bson.M{"userId": userId}
	if unreadOnly {
		query["read"] = false
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(100)
	cursor, err := collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notifications := []models.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}

	return notifications, nil
}
