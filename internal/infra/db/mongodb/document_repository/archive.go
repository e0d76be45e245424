package document_repository

import (
	"context"
	"time"

	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ArchiveDocumentRepository archives a document and all of its descendants,
// walking the parent-child tree level by level.
type ArchiveDocumentRepository struct {
	Db *mongo.Database
}

func NewArchiveDocumentRepository(db *mongo.Database) *ArchiveDocumentRepository {
	return &ArchiveDocumentRepository{Db: db}
}

func (r *ArchiveDocumentRepository) Archive(documentId primitive.ObjectID) error {
	return r.setArchived(documentId, true)
}

func (r *ArchiveDocumentRepository) setArchived(rootId primitive.ObjectID, archived bool) error {
	collection := r.Db.Collection("documents")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	queue := []primitive.ObjectID{rootId}
	for len(queue) > 0 {
		batch := queue
		queue = nil

		set := bson.M{"isArchived": archived, "updatedAt": time.Now().UTC()}
		_, err := collection.UpdateMany(ctx,
			bson.M{"_id": bson.M{"$in": batch}},
			bson.M{"$set": set},
		)
		if err != nil {
			return err
		}

		cursor, err := collection.Find(ctx,
			bson.M{"parentDocumentId": bson.M{"$in": batch}},
		)
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
	}

	return nil
}
