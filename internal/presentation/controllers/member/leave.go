package member

import (
	"net/http"

	"github.com/catatancerdas/collab-backend/internal/domain/policy"
	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	"github.com/catatancerdas/collab-backend/internal/presentation/helpers"
	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LeaveWorkspaceController lets the actor leave a workspace, guarded so the
// last owner cannot walk away without assigning a successor.
type LeaveWorkspaceController struct {
	FindWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository
	RemoveMemberRepository      usecase.RemoveMemberRepository
	EventPublisher              usecase.EventPublisher
}

func NewLeaveWorkspaceController(
	findWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository,
	removeMemberRepository usecase.RemoveMemberRepository,
	eventPublisher usecase.EventPublisher,
) *LeaveWorkspaceController {
	return &LeaveWorkspaceController{
		FindWorkspaceByIdRepository: findWorkspaceByIdRepository,
		RemoveMemberRepository:      removeMemberRepository,
		EventPublisher:              eventPublisher,
	}
}

func (c *LeaveWorkspaceController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	workspaceId, err := primitive.ObjectIDFromHex(r.Req.PathValue("workspaceId"))
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid workspace ID format", http.StatusBadRequest)
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
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeNotFound,
			"you are not a member of this workspace", http.StatusNotFound)
	}

	actorRole, _ := policy.ParseRole(actor.Role)

	decision := policy.CanLeave(actorRole, workspace.CountOwners())
	if !decision.Allowed {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeForbidden,
			decision.Reason, http.StatusForbidden)
	}

	if err := c.RemoveMemberRepository.Remove(workspaceId, actorId); err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when leaving workspace", http.StatusInternalServerError)
	}

	payload := map[string]any{
		"workspaceId": workspaceId.Hex(),
		"memberId":    actorId.Hex(),
	}
	c.EventPublisher.Publish(usecase.WorkspaceChannel(workspaceId.Hex()), "member-leaved", payload)

	return helpers.CreateSuccessResponse(payload, http.StatusOK)
}
