package document

import (
	"net/http"

	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	"github.com/catatancerdas/collab-backend/internal/presentation/helpers"
	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ArchiveDocumentController archives a document together with every
// descendant page.
type ArchiveDocumentController struct {
	FindDocumentByIdRepository usecase.FindDocumentByIdRepository
	ArchiveDocumentRepository  usecase.ArchiveDocumentRepository
	EventPublisher             usecase.EventPublisher
}

func NewArchiveDocumentController(
	findDocumentByIdRepository usecase.FindDocumentByIdRepository,
	archiveDocumentRepository usecase.ArchiveDocumentRepository,
	eventPublisher usecase.EventPublisher,
) *ArchiveDocumentController {
	return &ArchiveDocumentController{
		FindDocumentByIdRepository: findDocumentByIdRepository,
		ArchiveDocumentRepository:  archiveDocumentRepository,
		EventPublisher:             eventPublisher,
	}
}

func (c *ArchiveDocumentController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	workspaceId, err := primitive.ObjectIDFromHex(r.Req.PathValue("workspaceId"))
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid workspace ID format", http.StatusBadRequest)
	}

	documentId, err := primitive.ObjectIDFromHex(r.Req.PathValue("documentId"))
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid document ID format", http.StatusBadRequest)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid user ID format", http.StatusBadRequest)
	}

	document, err := c.FindDocumentByIdRepository.Find(documentId)
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when retrieving document", http.StatusInternalServerError)
	}
	if document == nil || document.WorkspaceId != workspaceId {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeNotFound,
			"document not found", http.StatusNotFound)
	}

	if err := c.ArchiveDocumentRepository.Archive(documentId); err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when archiving document", http.StatusInternalServerError)
	}

	payload := map[string]any{
		"documentId": documentId.Hex(),
		"actorId":    userId.Hex(),
	}
	c.EventPublisher.Publish(usecase.WorkspaceChannel(workspaceId.Hex()), "document-archived", payload)

	return helpers.CreateSuccessResponse(payload, http.StatusOK)
}
