package template

import (
	"encoding/json"
	"net/http"

	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	"github.com/catatancerdas/collab-backend/internal/presentation/helpers"
	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateTemplateController generates document content from a prompt through
// the generative model and stores the result as a regular document.
type CreateTemplateController struct {
	Validate                 *validator.Validate
	TemplateGenerator        usecase.TemplateGenerator
	CreateDocumentRepository usecase.CreateDocumentRepository
	EventPublisher           usecase.EventPublisher
}

func NewCreateTemplateController(
	templateGenerator usecase.TemplateGenerator,
	createDocumentRepository usecase.CreateDocumentRepository,
	eventPublisher usecase.EventPublisher,
) *CreateTemplateController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &CreateTemplateController{
		Validate:                 validate,
		TemplateGenerator:        templateGenerator,
		CreateDocumentRepository: createDocumentRepository,
		EventPublisher:           eventPublisher,
	}
}

type CreateTemplateControllerBody struct {
	Title  string `json:"title" validate:"required,min=1,max=255"`
	Prompt string `json:"prompt" validate:"required,min=3,max=2000"`
}

func (c *CreateTemplateController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateTemplateControllerBody
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

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid user ID format", http.StatusBadRequest)
	}

	content, err := c.TemplateGenerator.Generate(body.Prompt)
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when generating template", http.StatusInternalServerError)
	}

	document, err := c.CreateDocumentRepository.Create(&models.Document{
		WorkspaceId: workspaceId,
		Title:       body.Title,
		Content:     content,
		CreatedBy:   userId,
	})
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when saving generated document", http.StatusInternalServerError)
	}

	c.EventPublisher.Publish(usecase.WorkspaceChannel(workspaceId.Hex()), "document-created", map[string]any{
		"document": document,
		"actorId":  userId.Hex(),
	})

	return helpers.CreateSuccessResponse(document, http.StatusCreated)
}
