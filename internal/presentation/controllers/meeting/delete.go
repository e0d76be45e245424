package meeting

import (
	"net/http"

	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	"github.com/catatancerdas/collab-backend/internal/presentation/helpers"
	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteMeetingController struct {
	FindMeetingByIdRepository usecase.FindMeetingByIdRepository
	DeleteMeetingRepository   usecase.DeleteMeetingRepository
	CalendarGateway           usecase.CalendarGateway
	EventPublisher            usecase.EventPublisher
}

func NewDeleteMeetingController(
	findMeetingByIdRepository usecase.FindMeetingByIdRepository,
	deleteMeetingRepository usecase.DeleteMeetingRepository,
	calendarGateway usecase.CalendarGateway,
	eventPublisher usecase.EventPublisher,
) *DeleteMeetingController {
	return &DeleteMeetingController{
		FindMeetingByIdRepository: findMeetingByIdRepository,
		DeleteMeetingRepository:   deleteMeetingRepository,
		CalendarGateway:           calendarGateway,
		EventPublisher:            eventPublisher,
	}
}

func (c *DeleteMeetingController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	workspaceId, err := primitive.ObjectIDFromHex(r.Req.PathValue("workspaceId"))
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid workspace ID format", http.StatusBadRequest)
	}

	meetingId, err := primitive.ObjectIDFromHex(r.Req.PathValue("meetingId"))
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid meeting ID format", http.StatusBadRequest)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid user ID format", http.StatusBadRequest)
	}

	meeting, err := c.FindMeetingByIdRepository.Find(meetingId, workspaceId)
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when retrieving meeting", http.StatusInternalServerError)
	}
	if meeting == nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeNotFound,
			"meeting not found", http.StatusNotFound)
	}

	if meeting.CalendarEventId != "" {
		if err := c.CalendarGateway.DeleteEvent(meeting.CalendarEventId); err != nil {
			return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
				"an error occurred when deleting calendar event", http.StatusInternalServerError)
		}
	}

	if err := c.DeleteMeetingRepository.Delete(meetingId, workspaceId); err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when deleting meeting", http.StatusInternalServerError)
	}

	payload := map[string]any{
		"meetingId": meetingId.Hex(),
		"actorId":   userId.Hex(),
	}
	c.EventPublisher.Publish(usecase.WorkspaceChannel(workspaceId.Hex()), "meeting-deleted", payload)

	return helpers.CreateSuccessResponse(payload, http.StatusOK)
}
