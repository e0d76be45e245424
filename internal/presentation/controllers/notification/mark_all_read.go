package notification

import (
	"net/http"

	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	"github.com/catatancerdas/collab-backend/internal/presentation/helpers"
	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MarkAllNotificationsReadController struct {
	MarkAllNotificationsReadRepository usecase.MarkAllNotificationsReadRepository
}

func NewMarkAllNotificationsReadController(repo usecase.MarkAllNotificationsReadRepository) *MarkAllNotificationsReadController {
	return &MarkAllNotificationsReadController{MarkAllNotificationsReadRepository: repo}
}

func (c *MarkAllNotificationsReadController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid user ID format", http.StatusBadRequest)
	}

	if err := c.MarkAllNotificationsReadRepository.MarkAllRead(userId); err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when marking notifications read", http.StatusInternalServerError)
	}

	return helpers.CreateSuccessResponse(map[string]any{"read": "all"}, http.StatusOK)
}
