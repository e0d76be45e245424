package invitation

import (
	"net/http"

	"github.com/catatancerdas/collab-backend/internal/domain/policy"
	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	"github.com/catatancerdas/collab-backend/internal/presentation/helpers"
	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RevokeInvitationController deletes a pending invitation. Admins and owners
// only.
type RevokeInvitationController struct {
	FindWorkspaceByIdRepository  usecase.FindWorkspaceByIdRepository
	FindInvitationByIdRepository usecase.FindInvitationByIdRepository
	DeleteInvitationRepository   usecase.DeleteInvitationRepository
	EventPublisher               usecase.EventPublisher
}

func NewRevokeInvitationController(
	findWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository,
	findInvitationByIdRepository usecase.FindInvitationByIdRepository,
	deleteInvitationRepository usecase.DeleteInvitationRepository,
	eventPublisher usecase.EventPublisher,
) *RevokeInvitationController {
	return &RevokeInvitationController{
		FindWorkspaceByIdRepository:  findWorkspaceByIdRepository,
		FindInvitationByIdRepository: findInvitationByIdRepository,
		DeleteInvitationRepository:   deleteInvitationRepository,
		EventPublisher:               eventPublisher,
	}
}

func (c *RevokeInvitationController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	workspaceId, err := primitive.ObjectIDFromHex(r.Req.PathValue("workspaceId"))
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid workspace ID format", http.StatusBadRequest)
	}

	invitationId := r.Req.PathValue("invitationId")
	if invitationId == "" {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"missing invitation ID", http.StatusBadRequest)
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
	if actorRole, _ := policy.ParseRole(actor.Role); actorRole == policy.Member {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeForbidden,
			"only admins can revoke invitations", http.StatusForbidden)
	}

	invitation, err := c.FindInvitationByIdRepository.Find(invitationId)
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when retrieving invitation", http.StatusInternalServerError)
	}
	if invitation == nil || invitation.WorkspaceId != workspaceId {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeNotFound,
			"invitation not found", http.StatusNotFound)
	}

	if err := c.DeleteInvitationRepository.Delete(invitationId); err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when revoking invitation", http.StatusInternalServerError)
	}

	payload := map[string]any{
		"invitationId": invitationId,
		"workspaceId":  workspaceId.Hex(),
		"actorId":      actorId.Hex(),
	}
	c.EventPublisher.Publish(usecase.WorkspaceChannel(workspaceId.Hex()), "invitation-removed", payload)

	return helpers.CreateSuccessResponse(payload, http.StatusOK)
}
