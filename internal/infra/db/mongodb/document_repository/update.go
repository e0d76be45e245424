package document_repository

import (
	"context"
	"time"

	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UpdateDocumentRepository struct {
	Db *mongo.Database
}

func NewUpdateDocumentRepository(db *mongo.Database) *UpdateDocumentRepository {
	return &UpdateDocumentRepository{Db: db}
}

func (r *UpdateDocumentRepository) Update(documentId primitive.ObjectID, input *usecase.UpdateDocumentInput) (*models.Document, error) {
	collection := r.Db.Collection("documents")

	set := bson.M{"updatedAt": time.Now().UTC()}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Content != nil {
		set["content"] = *input.Content
	}
	if input.Icon != nil {
		set["icon"] = *input.Icon
	}
	if input.CoverImage != nil {
		set["coverImage"] = *input.CoverImage
	}
	if input.IsPublished != nil {
		set["isPublished"] = *input.IsPublished
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var document models.Document
	err := collection.FindOneAndUpdate(ctx, bson.M{"_id": documentId}, bson.M{"$set": set}, opts).Decode(&document)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &document, nil
}
