package usecase

import (
	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentFilter narrows document listings.
type DocumentFilter struct {
	WorkspaceId      primitive.ObjectID
	ParentDocumentId *primitive.ObjectID
	Archived         bool
	Search           string
}

// UpdateDocumentInput carries the mutable document fields; nil means "leave as is".
type UpdateDocumentInput struct {
	Title       *string
	Content     *string
	Icon        *string
	CoverImage  *string
	IsPublished *bool
}

// CreateDocumentRepository defines the interface for creating documents
type CreateDocumentRepository interface {
	Create(document *models.Document) (*models.Document, error)
}

// FindDocumentByIdRepository defines the interface for retrieving a single document
type FindDocumentByIdRepository interface {
	Find(documentId primitive.ObjectID) (*models.Document, error)
}

// FindDocumentsRepository defines the interface for listing documents
type FindDocumentsRepository interface {
	Find(filter *DocumentFilter) ([]models.Document, error)
}

// UpdateDocumentRepository defines the interface for updating document fields
type UpdateDocumentRepository interface {
	Update(documentId primitive.ObjectID, input *UpdateDocumentInput) (*models.Document, error)
}

// ArchiveDocumentRepository archives a document and every descendant.
type ArchiveDocumentRepository interface {
	Archive(documentId primitive.ObjectID) error
}

// RestoreDocumentRepository unarchives a document subtree, detaching it from
// an archived parent when needed.
type RestoreDocumentRepository interface {
	Restore(documentId primitive.ObjectID) error
}

// DeleteDocumentRepository defines the interface for hard-deleting a document subtree
type DeleteDocumentRepository interface {
	Delete(documentId primitive.ObjectID) error
}
