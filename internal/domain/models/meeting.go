package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Meeting struct {
	Id              primitive.ObjectID   `bson:"_id" json:"id"`
	WorkspaceId     primitive.ObjectID   `bson:"workspaceId" json:"workspaceId"`
	Title           string               `bson:"title" json:"title"`
	Description     string               `bson:"description,omitempty" json:"description,omitempty"`
	StartsAt        time.Time            `bson:"startsAt" json:"startsAt"`
	EndsAt          time.Time            `bson:"endsAt" json:"endsAt"`
	Attendees       []primitive.ObjectID `bson:"attendees" json:"attendees"`
	CalendarEventId string               `bson:"calendarEventId,omitempty" json:"calendarEventId,omitempty"`
	CreatedBy       primitive.ObjectID   `bson:"createdBy" json:"createdBy"`
	CreatedAt       time.Time            `bson:"createdAt" json:"createdAt"`
}
