package invitation_repository

import (
	"context"
	"time"

	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AcceptInvitationRepository performs the accept multi-write in one Mongo
// transaction: add the member, delete the invitation, notify the inviter.
// The member push is guarded so a user already in the array is not added
// twice.
type AcceptInvitationRepository struct {
	Db *mongo.Database
}

func NewAcceptInvitationRepository(db *mongo.Database) *AcceptInvitationRepository {
	return &AcceptInvitationRepository{Db: db}
}

func (r *AcceptInvitationRepository) Accept(invitation *models.Invitation, userId primitive.ObjectID) error {
	client := r.Db.Client()

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	session, err := client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	now := time.Now().UTC()

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		_, err := r.Db.Collection("workspaces").UpdateOne(sc,
			bson.M{"_id": invitation.WorkspaceId, "members.memberId": bson.M{"$ne": userId}},
			bson.M{"$push": bson.M{"members": models.Member{
				MemberId: userId,
				Role:     invitation.Role,
				JoinedAt: now,
			}}},
		)
		if err != nil {
			return nil, err
		}

		result, err := r.Db.Collection("invitations").DeleteOne(sc, bson.M{"_id": invitation.Id})
		if err != nil {
			return nil, err
		}
		if result.DeletedCount == 0 {
			return nil, mongo.ErrNoDocuments
		}

		_, err = r.Db.Collection("notifications").InsertOne(sc, models.Notification{
			Id:          primitive.NewObjectID(),
			UserId:      invitation.InvitedById,
			WorkspaceId: invitation.WorkspaceId,
			Event:       "invitation-accepted",
			Message:     invitation.Email + " accepted the invitation",
			CreatedAt:   now,
		})
		if err != nil {
			return nil, err
		}

		return nil, nil
	})

	return err
}
