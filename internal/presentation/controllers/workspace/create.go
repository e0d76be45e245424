package workspace

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	"github.com/catatancerdas/collab-backend/internal/presentation/helpers"
	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateWorkspaceController handles creating workspaces. The creator becomes
// the first owner.
type CreateWorkspaceController struct {
	Validate                  *validator.Validate
	CreateWorkspaceRepository usecase.CreateWorkspaceRepository
}

func NewCreateWorkspaceController(createWorkspaceRepository usecase.CreateWorkspaceRepository) *CreateWorkspaceController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &CreateWorkspaceController{
		Validate:                  validate,
		CreateWorkspaceRepository: createWorkspaceRepository,
	}
}

type CreateWorkspaceControllerBody struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
	Icon string `json:"icon" validate:"omitempty,max=255"`
}

func (c *CreateWorkspaceController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateWorkspaceControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid body request", http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			helpers.GetErrorMessages(c.Validate, err), http.StatusUnprocessableEntity)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid user ID format", http.StatusBadRequest)
	}

	workspace, err := c.CreateWorkspaceRepository.Create(&models.Workspace{
		Name: body.Name,
		Icon: body.Icon,
		Members: []models.Member{{
			MemberId: userId,
			Role:     models.RoleOwner,
			JoinedAt: time.Now().UTC(),
		}},
	})
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when creating workspace", http.StatusInternalServerError)
	}

	return helpers.CreateSuccessResponse(workspace, http.StatusCreated)
}
