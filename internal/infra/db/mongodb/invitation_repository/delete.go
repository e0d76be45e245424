package invitation_repository

import (
	"context"

	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteInvitationRepository struct {
	Db *mongo.Database
}

func NewDeleteInvitationRepository(db *mongo.Database) *DeleteInvitationRepository {
	return &DeleteInvitationRepository{Db: db}
}

func (r *DeleteInvitationRepository) Delete(invitationId string) error {
	collection := r.Db.Collection("invitations")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result, err := collection.DeleteOne(ctx, bson.M{"_id": invitationId})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}
