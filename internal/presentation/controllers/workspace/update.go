package workspace

import (
	"encoding/json"
	"net/http"

	"github.com/catatancerdas/collab-backend/internal/domain/policy"
	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	"github.com/catatancerdas/collab-backend/internal/presentation/helpers"
	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpdateWorkspaceController renames a workspace. Admins and owners only.
type UpdateWorkspaceController struct {
	Validate                    *validator.Validate
	FindWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository
	UpdateWorkspaceRepository   usecase.UpdateWorkspaceRepository
	EventPublisher              usecase.EventPublisher
}

func NewUpdateWorkspaceController(
	findWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository,
	updateWorkspaceRepository usecase.UpdateWorkspaceRepository,
	eventPublisher usecase.EventPublisher,
) *UpdateWorkspaceController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &UpdateWorkspaceController{
		Validate:                    validate,
		FindWorkspaceByIdRepository: findWorkspaceByIdRepository,
		UpdateWorkspaceRepository:   updateWorkspaceRepository,
		EventPublisher:              eventPublisher,
	}
}

type UpdateWorkspaceControllerBody struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
	Icon string `json:"icon" validate:"omitempty,max=255"`
}

func (c *UpdateWorkspaceController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body UpdateWorkspaceControllerBody
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

	workspace, err := c.FindWorkspaceByIdRepository.Find(workspaceId)
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when retrieving workspace", http.StatusInternalServerError)
	}
	if workspace == nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeNotFound,
			"workspace not found", http.StatusNotFound)
	}

	actor := workspace.FindMember(userId)
	if actor == nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeForbidden,
			"you are not a member of this workspace", http.StatusForbidden)
	}
	actorRole, _ := policy.ParseRole(actor.Role)
	if actorRole == policy.Member {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeForbidden,
			"only admins can update the workspace", http.StatusForbidden)
	}

	updated, err := c.UpdateWorkspaceRepository.Update(workspaceId, body.Name, body.Icon)
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when updating workspace", http.StatusInternalServerError)
	}

	c.EventPublisher.Publish(usecase.WorkspaceChannel(workspaceId.Hex()), "workspace-updated", map[string]any{
		"workspace": updated,
		"actorId":   userId.Hex(),
	})

	return helpers.CreateSuccessResponse(updated, http.StatusOK)
}
