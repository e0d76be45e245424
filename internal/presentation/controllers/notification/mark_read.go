package notification

import (
	"net/http"

	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	"github.com/catatancerdas/collab-backend/internal/presentation/helpers"
	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MarkNotificationReadController flips a single notification to read. The
// repository filters by owner, so a user cannot touch someone else's rows.
type MarkNotificationReadController struct {
	MarkNotificationReadRepository usecase.MarkNotificationReadRepository
}

func NewMarkNotificationReadController(repo usecase.MarkNotificationReadRepository) *MarkNotificationReadController {
	return &MarkNotificationReadController{MarkNotificationReadRepository: repo}
}

func (c *MarkNotificationReadController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	notificationId, err := primitive.ObjectIDFromHex(r.Req.PathValue("notificationId"))
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid notification ID format", http.StatusBadRequest)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid user ID format", http.StatusBadRequest)
	}

	if err := c.MarkNotificationReadRepository.MarkRead(notificationId, userId); err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeNotFound,
			"notification not found", http.StatusNotFound)
	}

	return helpers.CreateSuccessResponse(map[string]any{
		"notificationId": notificationId.Hex(),
	}, http.StatusOK)
}
