package document

import (
	"net/http"

	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	"github.com/catatancerdas/collab-backend/internal/presentation/helpers"
	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetDocumentsController struct {
	FindDocumentsRepository usecase.FindDocumentsRepository
}

func NewGetDocumentsController(repo usecase.FindDocumentsRepository) *GetDocumentsController {
	return &GetDocumentsController{FindDocumentsRepository: repo}
}

func (c *GetDocumentsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	workspaceId, err := primitive.ObjectIDFromHex(r.Req.PathValue("workspaceId"))
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid workspace ID format", http.StatusBadRequest)
	}

	filter, errResponse := helpers.GetDocumentFilterByQueries(&r.UrlParams, workspaceId)
	if errResponse != nil {
		return errResponse
	}

	documents, err := c.FindDocumentsRepository.Find(filter)
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when retrieving documents", http.StatusInternalServerError)
	}

	return helpers.CreateSuccessResponse(documents, http.StatusOK)
}
