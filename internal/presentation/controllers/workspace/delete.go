package workspace

import (
	"net/http"

	"github.com/catatancerdas/collab-backend/internal/domain/policy"
	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	"github.com/catatancerdas/collab-backend/internal/presentation/helpers"
	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeleteWorkspaceController deletes a workspace and everything inside it.
// Owner only.
type DeleteWorkspaceController struct {
	FindWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository
	DeleteWorkspaceRepository   usecase.DeleteWorkspaceRepository
	EventPublisher              usecase.EventPublisher
}

func NewDeleteWorkspaceController(
	findWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository,
	deleteWorkspaceRepository usecase.DeleteWorkspaceRepository,
	eventPublisher usecase.EventPublisher,
) *DeleteWorkspaceController {
	return &DeleteWorkspaceController{
		FindWorkspaceByIdRepository: findWorkspaceByIdRepository,
		DeleteWorkspaceRepository:   deleteWorkspaceRepository,
		EventPublisher:              eventPublisher,
	}
}

func (c *DeleteWorkspaceController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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
	if actorRole, _ := policy.ParseRole(actor.Role); actorRole != policy.Owner {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeForbidden,
			"only the owner can delete the workspace", http.StatusForbidden)
	}

	if err := c.DeleteWorkspaceRepository.Delete(workspaceId); err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when deleting workspace", http.StatusInternalServerError)
	}

	c.EventPublisher.Publish(usecase.WorkspaceChannel(workspaceId.Hex()), "workspace-deleted", map[string]any{
		"workspaceId": workspaceId.Hex(),
		"actorId":     userId.Hex(),
	})

	return helpers.CreateSuccessResponse(nil, http.StatusOK)
}
