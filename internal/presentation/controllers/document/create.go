package document

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

type CreateDocumentController struct {
	Validate                   *validator.Validate
	CreateDocumentRepository   usecase.CreateDocumentRepository
	FindDocumentByIdRepository usecase.FindDocumentByIdRepository
	EventPublisher             usecase.EventPublisher
}

func NewCreateDocumentController(
	createDocumentRepository usecase.CreateDocumentRepository,
	findDocumentByIdRepository usecase.FindDocumentByIdRepository,
	eventPublisher usecase.EventPublisher,
) *CreateDocumentController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &CreateDocumentController{
		Validate:                   validate,
		CreateDocumentRepository:   createDocumentRepository,
		FindDocumentByIdRepository: findDocumentByIdRepository,
		EventPublisher:             eventPublisher,
	}
}

type CreateDocumentControllerBody struct {
	Title            string `json:"title" validate:"required,min=1,max=255"`
	Content          string `json:"content"`
	Icon             string `json:"icon" validate:"omitempty,max=255"`
	ParentDocumentId string `json:"parentDocumentId" validate:"omitempty,len=24,hexadecimal"`
}

func (c *CreateDocumentController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateDocumentControllerBody
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

	document := &models.Document{
		WorkspaceId: workspaceId,
		Title:       body.Title,
		Content:     body.Content,
		Icon:        body.Icon,
		CreatedBy:   userId,
	}

	if body.ParentDocumentId != "" {
		parentId, _ := primitive.ObjectIDFromHex(body.ParentDocumentId)
		parent, err := c.FindDocumentByIdRepository.Find(parentId)
		if err != nil {
			return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
				"an error occurred when retrieving parent document", http.StatusInternalServerError)
		}
		if parent == nil || parent.WorkspaceId != workspaceId {
			return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeNotFound,
				"parent document not found", http.StatusNotFound)
		}
		document.ParentDocumentId = &parentId
	}

	created, err := c.CreateDocumentRepository.Create(document)
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when creating document", http.StatusInternalServerError)
	}

	c.EventPublisher.Publish(usecase.WorkspaceChannel(workspaceId.Hex()), "document-created", map[string]any{
		"document": created,
		"actorId":  userId.Hex(),
	})

	return helpers.CreateSuccessResponse(created, http.StatusCreated)
}
