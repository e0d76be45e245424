package document_repository

import (
	"context"

	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DeleteDocumentRepository hard-deletes a document and its descendants.
type DeleteDocumentRepository struct {
	Db *mongo.Database
}

func NewDeleteDocumentRepository(db *mongo.Database) *DeleteDocumentRepository {
	return &DeleteDocumentRepository{Db: db}
}

func (r *DeleteDocumentRepository) Delete(documentId primitive.ObjectID) error {
	collection := r.Db.Collection("documents")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	queue := []primitive.ObjectID{documentId}
	for len(queue) > 0 {
		batch := queue
		queue = nil

		cursor, err := collection.Find(ctx, bson.M{"parentDocumentId": bson.M{"$in": batch}})
		if err != nil {
			return err
		}
		var children []struct {
			Id primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.All(ctx, &children); err != nil {
			return err
		}
		for _, child := range children {
			queue = append(queue, child.Id)
		}

		if _, err := collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": batch}}); err != nil {
			return err
		}
	}

	return nil
}
