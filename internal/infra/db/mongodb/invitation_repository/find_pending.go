package invitation_repository

import (
	"context"

	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindPendingInvitationRepository struct {
	Db *mongo.Database
}

func NewFindPendingInvitationRepository(db *mongo.Database) *FindPendingInvitationRepository {
	return &FindPendingInvitationRepository{Db: db}
}

func (r *FindPendingInvitationRepository) FindPending(workspaceId primitive.ObjectID, email string) (*models.Invitation, error) {
	collection := r.Db.Collection("invitations")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var invitation models.Invitation
	err := collection.FindOne(ctx, bson.M{
		"workspaceId": workspaceId,
		"email":       email,
		"status":      models.InvitationPending,
	}).Decode(&invitation)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &invitation, nil
}
