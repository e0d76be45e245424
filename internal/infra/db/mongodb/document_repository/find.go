package document_repository

import (
	"context"

	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindDocumentsRepository struct {
	Db *mongo.Database
}

func NewFindDocumentsRepository(db *mongo.Database) *FindDocumentsRepository {
	return &FindDocumentsRepository{Db: db}
}

func (r *FindDocumentsRepository) Find(filter *usecase.DocumentFilter) ([]models.Document, error) {
	collection := r.Db.Collection("documents")

	query := bson.M{
		"workspaceId": filter.WorkspaceId,
		"isArchived":  filter.Archived,
	}
	if filter.ParentDocumentId != nil {
		query["parentDocumentId"] = *filter.ParentDocumentId
	}
	if filter.Search != "" {
		query["title"] = bson.M{"$regex": primitive.Regex{Pattern: filter.Search, Options: "i"}}
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"updatedAt": -1})
	cursor, err := collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	documents := []models.Document{}
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, err
	}

	return documents, nil
}
