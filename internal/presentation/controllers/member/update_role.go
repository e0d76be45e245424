package member

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

// UpdateMemberRoleController changes a member's role after running the
// role-change policy against the current workspace state.
type UpdateMemberRoleController struct {
	Validate                    *validator.Validate
	FindWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository
	UpdateMemberRoleRepository  usecase.UpdateMemberRoleRepository
	EventPublisher              usecase.EventPublisher
}

func NewUpdateMemberRoleController(
	findWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository,
	updateMemberRoleRepository usecase.UpdateMemberRoleRepository,
	eventPublisher usecase.EventPublisher,
) *UpdateMemberRoleController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &UpdateMemberRoleController{
		Validate:                    validate,
		FindWorkspaceByIdRepository: findWorkspaceByIdRepository,
		UpdateMemberRoleRepository:  updateMemberRoleRepository,
		EventPublisher:              eventPublisher,
	}
}

type UpdateMemberRoleControllerBody struct {
	Role string `json:"role" validate:"required,oneof=SUPER_ADMIN ADMIN MEMBER"`
}

func (c *UpdateMemberRoleController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body UpdateMemberRoleControllerBody
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

	targetId, err := primitive.ObjectIDFromHex(r.Req.PathValue("userId"))
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid user ID format", http.StatusBadRequest)
	}

	actorId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
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

	actor := workspace.FindMember(actorId)
	if actor == nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeForbidden,
			"you are not a member of this workspace", http.StatusForbidden)
	}
	target := workspace.FindMember(targetId)
	if target == nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeNotFound,
			"member not found", http.StatusNotFound)
	}

	actorRole, _ := policy.ParseRole(actor.Role)
	targetRole, _ := policy.ParseRole(target.Role)
	requestedRole, _ := policy.ParseRole(body.Role)

	decision := policy.CanChangeRole(actorId.Hex(), targetId.Hex(),
		actorRole, targetRole, requestedRole, workspace.CountOwners())
	if !decision.Allowed {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeForbidden,
			decision.Reason, http.StatusForbidden)
	}

	if err := c.UpdateMemberRoleRepository.UpdateRole(workspaceId, targetId, body.Role); err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when updating member role", http.StatusInternalServerError)
	}

	payload := map[string]any{
		"workspaceId": workspaceId.Hex(),
		"memberId":    targetId.Hex(),
		"role":        body.Role,
		"actorId":     actorId.Hex(),
	}
	c.EventPublisher.Publish(usecase.WorkspaceChannel(workspaceId.Hex()), "member-updated", payload)
	c.EventPublisher.Publish(usecase.NotificationChannel(targetId.Hex()), "member-updated", payload)

	return helpers.CreateSuccessResponse(payload, http.StatusOK)
}
