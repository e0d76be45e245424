package meeting

import (
	"net/http"
	"time"

	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	"github.com/catatancerdas/collab-backend/internal/presentation/helpers"
	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetMeetingsController struct {
	FindMeetingsRepository usecase.FindMeetingsRepository
}

func NewGetMeetingsController(repo usecase.FindMeetingsRepository) *GetMeetingsController {
	return &GetMeetingsController{FindMeetingsRepository: repo}
}

func (c *GetMeetingsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	workspaceId, err := primitive.ObjectIDFromHex(r.Req.PathValue("workspaceId"))
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid workspace ID format", http.StatusBadRequest)
	}

	var from, to time.Time
	if value := r.UrlParams.Get("from"); value != "" {
		from, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
				"invalid from date, expected RFC3339", http.StatusBadRequest)
		}
	}
	if value := r.UrlParams.Get("to"); value != "" {
		to, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
				"invalid to date, expected RFC3339", http.StatusBadRequest)
		}
	}

	meetings, err := c.FindMeetingsRepository.Find(workspaceId, from, to)
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when retrieving meetings", http.StatusInternalServerError)
	}

	return helpers.CreateSuccessResponse(meetings, http.StatusOK)
}
