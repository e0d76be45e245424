package workspace

import (
	"net/http"

	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	"github.com/catatancerdas/collab-backend/internal/presentation/helpers"
	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetWorkspacesController lists the workspaces the actor belongs to
type GetWorkspacesController struct {
	FindWorkspacesByMemberRepository usecase.FindWorkspacesByMemberRepository
}

func NewGetWorkspacesController(repo usecase.FindWorkspacesByMemberRepository) *GetWorkspacesController {
	return &GetWorkspacesController{FindWorkspacesByMemberRepository: repo}
}

func (c *GetWorkspacesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid user ID format", http.StatusBadRequest)
	}

	workspaces, err := c.FindWorkspacesByMemberRepository.FindByMember(userId)
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when retrieving workspaces", http.StatusInternalServerError)
	}

	return helpers.CreateSuccessResponse(workspaces, http.StatusOK)
}
