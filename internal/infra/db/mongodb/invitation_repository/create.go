package invitation_repository

import (
	"context"
	"time"

	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateInvitationRepository struct {
	Db *mongo.Database
}

func NewCreateInvitationRepository(db *mongo.Database) *CreateInvitationRepository {
	return &CreateInvitationRepository{Db: db}
}

func (r *CreateInvitationRepository) Create(invitation *models.Invitation) (*models.Invitation, error) {
	collection := r.Db.Collection("invitations")

	now := time.Now().UTC()
	invitation.Id = uuid.NewString()
	invitation.Status = models.InvitationPending
	invitation.CreatedAt = now
	invitation.ExpiredAt = now.Add(models.InvitationTTL)

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, invitation)
	if err != nil {
		return nil, err
	}

	return invitation, nil
}
