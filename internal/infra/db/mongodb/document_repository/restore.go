package document_repository

import (
	"context"
	"time"

	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RestoreDocumentRepository unarchives a document subtree. When the restored
// root's parent is still archived, the root is detached so it does not come
// back hidden under an archived ancestor.
type RestoreDocumentRepository struct {
	Db *mongo.Database
}

func NewRestoreDocumentRepository(db *mongo.Database) *RestoreDocumentRepository {
	return &RestoreDocumentRepository{Db: db}
}

func (r *RestoreDocumentRepository) Restore(documentId primitive.ObjectID) error {
	collection := r.Db.Collection("documents")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var document models.Document
	err := collection.FindOne(ctx, bson.M{"_id": documentId}).Decode(&document)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{"isArchived": false, "updatedAt": time.Now().UTC()}}
	if document.ParentDocumentId != nil {
		var parent models.Document
		err := collection.FindOne(ctx, bson.M{"_id": *document.ParentDocumentId}).Decode(&parent)
		if err != nil && err != mongo.ErrNoDocuments {
			return err
		}
		if err == mongo.ErrNoDocuments || parent.IsArchived {
			update["$unset"] = bson.M{"parentDocumentId": ""}
		}
	}

	if _, err := collection.UpdateOne(ctx, bson.M{"_id": documentId}, update); err != nil {
		return err
	}

	archiver := &ArchiveDocumentRepository{Db: r.Db}
	return archiver.setArchived(documentId, false)
}
