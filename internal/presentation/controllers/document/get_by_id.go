package document

import (
	"net/http"

	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	"github.com/catatancerdas/collab-backend/internal/presentation/helpers"
	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetDocumentByIdController struct {
	FindDocumentByIdRepository usecase.FindDocumentByIdRepository
}

func NewGetDocumentByIdController(repo usecase.FindDocumentByIdRepository) *GetDocumentByIdController {
	return &GetDocumentByIdController{FindDocumentByIdRepository: repo}
}

func (c *GetDocumentByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	document, err := c.FindDocumentByIdRepository.Find(documentId)
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when retrieving document", http.StatusInternalServerError)
	}
	if document == nil || document.WorkspaceId != workspaceId {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeNotFound,
			"document not found", http.StatusNotFound)
	}

	return helpers.CreateSuccessResponse(document, http.StatusOK)
}
