package document_repository

import (
	"context"

	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindDocumentByIdRepository struct {
	Db *mongo.Database
}

func NewFindDocumentByIdRepository(db *mongo.Database) *FindDocumentByIdRepository {
	return &FindDocumentByIdRepository{Db: db}
}

func (r *FindDocumentByIdRepository) Find(documentId primitive.ObjectID) (*models.Document, error) {
	collection := r.Db.Collection("documents")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var document models.Document
	err := collection.FindOne(ctx, bson.M{"_id": documentId}).Decode(&document)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &document, nil
}
