package invitation_repository

import (
	"context"

	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindInvitationsByWorkspaceRepository struct {
	Db *mongo.Database
}

func NewFindInvitationsByWorkspaceRepository(db *mongo.Database) *FindInvitationsByWorkspaceRepository {
	return &FindInvitationsByWorkspaceRepository{Db: db}
}

func (r *FindInvitationsByWorkspaceRepository) FindByWorkspace(workspaceId primitive.ObjectID) ([]models.Invitation, error) {
	collection := r.Db.Collection("invitations")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := collection.Find(ctx, bson.M{
		"workspaceId": workspaceId,
		"status":      models.InvitationPending,
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	invitations := []models.Invitation{}
	if err := cursor.All(ctx, &invitations); err != nil {
		return nil, err
	}

	return invitations, nil
}
