package document

import (
	"net/http"

	"github.com/catatancerdas/collab-backend/internal/domain/policy"
	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	"github.com/catatancerdas/collab-backend/internal/presentation/helpers"
	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeleteDocumentController hard-deletes a document subtree. Admins and
// owners only; members can only archive.
type DeleteDocumentController struct {
	FindWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository
	FindDocumentByIdRepository  usecase.FindDocumentByIdRepository
	DeleteDocumentRepository    usecase.DeleteDocumentRepository
	EventPublisher              usecase.EventPublisher
}

func NewDeleteDocumentController(
	findWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository,
	findDocumentByIdRepository usecase.FindDocumentByIdRepository,
	deleteDocumentRepository usecase.DeleteDocumentRepository,
	eventPublisher usecase.EventPublisher,
) *DeleteDocumentController {
	return &DeleteDocumentController{
		FindWorkspaceByIdRepository: findWorkspaceByIdRepository,
		FindDocumentByIdRepository:  findDocumentByIdRepository,
		DeleteDocumentRepository:    deleteDocumentRepository,
		EventPublisher:              eventPublisher,
	}
}

func (c *DeleteDocumentController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	workspaceId, err := primitive.ObjectIDFromHex(r.Req.PathValue("workspaceId"))
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid workspace ID format", http.StatusBadRequest)
	}

	documentId, err := primitive.ObjectIDFromHex(r.Req.PathValue("documentId"))
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid document ID format", http.StatusBadRequest)
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
	if actorRole, _ := policy.ParseRole(actor.Role); actorRole == policy.Member {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeForbidden,
			"only admins can permanently delete documents", http.StatusForbidden)
	}

	document, err := c.FindDocumentByIdRepository.Find(documentId)
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when retrieving document", http.StatusInternalServerError)
	}
	if document == nil || document.WorkspaceId != workspaceId {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeNotFound,
			"document not found", http.StatusNotFound)
	}

	if err := c.DeleteDocumentRepository.Delete(documentId); err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when deleting document", http.StatusInternalServerError)
	}

	payload := map[string]any{
		"documentId": documentId.Hex(),
		"actorId":    userId.Hex(),
	}
	c.EventPublisher.Publish(usecase.WorkspaceChannel(workspaceId.Hex()), "document-deleted", payload)

	return helpers.CreateSuccessResponse(payload, http.StatusOK)
}
