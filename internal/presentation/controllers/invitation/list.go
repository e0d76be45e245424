package invitation

import (
	"net/http"

	"github.com/catatancerdas/collab-backend/internal/domain/policy"
	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	"github.com/catatancerdas/collab-backend/internal/presentation/helpers"
	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListInvitationsController lists a workspace's pending invitations. Admins
// and owners only.
type ListInvitationsController struct {
	FindWorkspaceByIdRepository          usecase.FindWorkspaceByIdRepository
	FindInvitationsByWorkspaceRepository usecase.FindInvitationsByWorkspaceRepository
}

func NewListInvitationsController(
	findWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository,
	findInvitationsByWorkspaceRepository usecase.FindInvitationsByWorkspaceRepository,
) *ListInvitationsController {
	return &ListInvitationsController{
		FindWorkspaceByIdRepository:          findWorkspaceByIdRepository,
		FindInvitationsByWorkspaceRepository: findInvitationsByWorkspaceRepository,
	}
}

func (c *ListInvitationsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeForbidden,
			"you are not a member of this workspace", http.StatusForbidden)
	}
	if actorRole, _ := policy.ParseRole(actor.Role); actorRole == policy.Member {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeForbidden,
			"only admins can view invitations", http.StatusForbidden)
	}

	invitations, err := c.FindInvitationsByWorkspaceRepository.FindByWorkspace(workspaceId)
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when retrieving invitations", http.StatusInternalServerError)
	}

	return helpers.CreateSuccessResponse(invitations, http.StatusOK)
}
