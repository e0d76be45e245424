package notification_repository

import (
	"context"

	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MarkNotificationReadRepository struct {
	Db *mongo.Database
}

func NewMarkNotificationReadRepository(db *mongo.Database) *MarkNotificationReadRepository {
	return &MarkNotificationReadRepository{Db: db}
}

// MarkRead flips the read flag. The userId filter keeps users from touching
// notifications that are not theirs.
func (r *MarkNotificationReadRepository) MarkRead(notificationId primitive.ObjectID, userId primitive.ObjectID) error {
	collection := r.Db.Collection("notifications")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result, err := collection.UpdateOne(ctx,
		bson.M{"_id": notificationId, "userId": userId},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}
