package document_repository

import (
	"context"
	"time"

	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateDocumentRepository struct {
	Db *mongo.Database
}

func NewCreateDocumentRepository(db *mongo.Database) *CreateDocumentRepository {
	return &CreateDocumentRepository{Db: db}
}

func (r *CreateDocumentRepository) Create(document *models.Document) (*models.Document, error) {
	collection := r.Db.Collection("documents")

	now := time.Now().UTC()
	document.Id = primitive.NewObjectID()
	document.CreatedAt = now
	document.UpdatedAt = now

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, document)
	if err != nil {
		return nil, err
	}

	return document, nil
}
