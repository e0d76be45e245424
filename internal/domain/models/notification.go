package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Notification struct {
	Id          primitive.ObjectID `bson:"_id" json:"id"`
	UserId      primitive.ObjectID `bson:"userId" json:"userId"`
	WorkspaceId primitive.ObjectID `bson:"workspaceId" json:"workspaceId"`
	Event       string             `bson:"event" json:"event"`
	Message     string             `bson:"message" json:"message"`
	Read        bool               `bson:"read" json:"read"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
