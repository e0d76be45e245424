package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const InvitationPending = "PENDING"

// InvitationTTL is how long an invitation stays acceptable after creation.
// Expiry is checked lazily at accept time; no background sweep exists.
const InvitationTTL = 24 * time.Hour

type Invitation struct {
	Id          string             `bson:"_id" json:"id"`
	WorkspaceId primitive.ObjectID `bson:"workspaceId" json:"workspaceId"`
	Email       string             `bson:"email" json:"email"`
	Role        string             `bson:"role" json:"role"`
	InvitedById primitive.ObjectID `bson:"invitedById" json:"invitedById"`
	Status      string             `bson:"status" json:"status"`
	ExpiredAt   time.Time          `bson:"expiredAt" json:"expiredAt"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

func (i *Invitation) IsExpired(now time.Time) bool {
	return now.After(i.ExpiredAt)
}
