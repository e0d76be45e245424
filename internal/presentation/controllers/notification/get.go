package notification

import (
	"net/http"

	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	"github.com/catatancerdas/collab-backend/internal/presentation/helpers"
	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetNotificationsController struct {
	FindNotificationsByUserRepository usecase.FindNotificationsByUserRepository
}

func NewGetNotificationsController(repo usecase.FindNotificationsByUserRepository) *GetNotificationsController {
	return &GetNotificationsController{FindNotificationsByUserRepository: repo}
}

func (c *GetNotificationsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid user ID format", http.StatusBadRequest)
	}

	unreadOnly := r.UrlParams.Get("unread") == "true"

	notifications, err := c.FindNotificationsByUserRepository.FindByUser(userId, unreadOnly)
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when retrieving notifications", http.StatusInternalServerError)
	}

	return helpers.CreateSuccessResponse(notifications, http.StatusOK)
}
