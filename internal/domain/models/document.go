package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Document struct {
	Id               primitive.ObjectID  `bson:"_id" json:"id"`
	WorkspaceId      primitive.ObjectID  `bson:"workspaceId" json:"workspaceId"`
	Title            string              `bson:"title" json:"title"`
	Content          string              `bson:"content,omitempty" json:"content,omitempty"`
	Icon             string              `bson:"icon,omitempty" json:"icon,omitempty"`
	CoverImage       string              `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	ParentDocumentId *primitive.ObjectID `bson:"parentDocumentId,omitempty" json:"parentDocumentId,omitempty"`
	IsArchived       bool                `bson:"isArchived" json:"isArchived"`
	IsPublished      bool                `bson:"isPublished" json:"isPublished"`
	CreatedBy        primitive.ObjectID  `bson:"createdBy" json:"createdBy"`
	CreatedAt        time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time           `bson:"updatedAt" json:"updatedAt"`
}
