package document

import (
	"net/http"

	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	"github.com/catatancerdas/collab-backend/internal/presentation/helpers"
	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetPublicDocumentController serves published documents without
// authentication. Anything unpublished or archived answers 404 so the route
// does not leak existence.
type GetPublicDocumentController struct {
	FindDocumentByIdRepository usecase.FindDocumentByIdRepository
}

func NewGetPublicDocumentController(repo usecase.FindDocumentByIdRepository) *GetPublicDocumentController {
	return &GetPublicDocumentController{FindDocumentByIdRepository: repo}
}

func (c *GetPublicDocumentController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	documentId, err := primitive.ObjectIDFromHex(r.Req.PathValue("documentId"))
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid document ID format", http.StatusBadRequest)
	}

	document, err := c.FindDocumentByIdRepository.Find(documentId)
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when retrieving document", http.StatusInternalServerError)
	}
	if document == nil || !document.IsPublished || document.IsArchived {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeNotFound,
			"document not found", http.StatusNotFound)
	}

	return helpers.CreateSuccessResponse(document, http.StatusOK)
}
