package member

import (
	"net/http"

	"github.com/catatancerdas/collab-backend/internal/domain/policy"
	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	"github.com/catatancerdas/collab-backend/internal/presentation/helpers"
	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RemoveMemberController removes a member from the workspace. Self-removal
// goes through the leave endpoint instead, which carries the last-owner
// guard; removal of others does not (inherited behavior).
type RemoveMemberController struct {
	FindWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository
	RemoveMemberRepository      usecase.RemoveMemberRepository
	EventPublisher              usecase.EventPublisher
}

func NewRemoveMemberController(
	findWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository,
	removeMemberRepository usecase.RemoveMemberRepository,
	eventPublisher usecase.EventPublisher,
) *RemoveMemberController {
	return &RemoveMemberController{
		FindWorkspaceByIdRepository: findWorkspaceByIdRepository,
		RemoveMemberRepository:      removeMemberRepository,
		EventPublisher:              eventPublisher,
	}
}

func (c *RemoveMemberController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	if actorId == targetId {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"use the leave endpoint to remove yourself", http.StatusBadRequest)
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

	decision := policy.CanRemoveMember(actorRole, targetRole)
	if !decision.Allowed {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeForbidden,
			decision.Reason, http.StatusForbidden)
	}

	if err := c.RemoveMemberRepository.Remove(workspaceId, targetId); err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when removing member", http.StatusInternalServerError)
	}

	payload := map[string]any{
		"workspaceId": workspaceId.Hex(),
		"memberId":    targetId.Hex(),
		"actorId":     actorId.Hex(),
	}
	c.EventPublisher.Publish(usecase.WorkspaceChannel(workspaceId.Hex()), "member-removed", payload)
	c.EventPublisher.Publish(usecase.NotificationChannel(targetId.Hex()), "member-removed", payload)

	return helpers.CreateSuccessResponse(payload, http.StatusOK)
}
