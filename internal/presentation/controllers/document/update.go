package document

import (
	"encoding/json"
	"net/http"

	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	"github.com/catatancerdas/collab-backend/internal/presentation/helpers"
	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateDocumentController struct {
	Validate                   *validator.Validate
	FindDocumentByIdRepository usecase.FindDocumentByIdRepository
	UpdateDocumentRepository   usecase.UpdateDocumentRepository
	EventPublisher             usecase.EventPublisher
}

func NewUpdateDocumentController(
	findDocumentByIdRepository usecase.FindDocumentByIdRepository,
	updateDocumentRepository usecase.UpdateDocumentRepository,
	eventPublisher usecase.EventPublisher,
) *UpdateDocumentController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &UpdateDocumentController{
		Validate:                   validate,
		FindDocumentByIdRepository: findDocumentByIdRepository,
		UpdateDocumentRepository:   updateDocumentRepository,
		EventPublisher:             eventPublisher,
	}
}

type UpdateDocumentControllerBody struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Content     *string `json:"content"`
	Icon        *string `json:"icon" validate:"omitempty,max=255"`
	CoverImage  *string `json:"coverImage" validate:"omitempty,max=1024"`
	IsPublished *bool   `json:"isPublished"`
}

func (c *UpdateDocumentController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body UpdateDocumentControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid body request", http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			helpers.GetErrorMessages(c.Validate, err), http.StatusUnprocessableEntity)
	}

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

	existing, err := c.FindDocumentByIdRepository.Find(documentId)
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when retrieving document", http.StatusInternalServerError)
	}
	if existing == nil || existing.WorkspaceId != workspaceId {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeNotFound,
			"document not found", http.StatusNotFound)
	}

	updated, err := c.UpdateDocumentRepository.Update(documentId, &usecase.UpdateDocumentInput{
		Title:       body.Title,
		Content:     body.Content,
		Icon:        body.Icon,
		CoverImage:  body.CoverImage,
		IsPublished: body.IsPublished,
	})
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when updating document", http.StatusInternalServerError)
	}
	if updated == nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeNotFound,
			"document not found", http.StatusNotFound)
	}

	c.EventPublisher.Publish(usecase.WorkspaceChannel(workspaceId.Hex()), "document-updated", map[string]any{
		"document": updated,
		"actorId":  userId.Hex(),
	})

	return helpers.CreateSuccessResponse(updated, http.StatusOK)
}
