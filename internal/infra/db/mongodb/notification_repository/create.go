package notification_repository

import (
	"context"
	"time"

	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateNotificationRepository struct {
	Db *mongo.Database
}

func NewCreateNotificationRepository(db *mongo.Database) *CreateNotificationRepository {
	return &CreateNotificationRepository{Db: db}
}

func (r *CreateNotificationRepository) Create(notification *models.Notification) (*models.Notification, error) {
	collection := r.Db.Collection("notifications")

	notification.Id = primitive.NewObjectID()
	notification.CreatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, notification)
	if err != nil {
		return nil, err
	}

	return notification, nil
}
