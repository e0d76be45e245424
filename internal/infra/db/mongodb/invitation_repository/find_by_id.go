package invitation_repository

import (
	"context"

	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindInvitationByIdRepository struct {
	Db *mongo.Database
}

func NewFindInvitationByIdRepository(db *mongo.Database) *FindInvitationByIdRepository {
	return &FindInvitationByIdRepository{Db: db}
}

func (r *FindInvitationByIdRepository) Find(invitationId string) (*models.Invitation, error) {
	collection := r.Db.Collection("invitations")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var invitation models.Invitation
	err := collection.FindOne(ctx, bson.M{"_id": invitationId}).Decode(&invitation)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &invitation, nil
}
