package meeting

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	"github.com/catatancerdas/collab-backend/internal/presentation/helpers"
	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateMeetingController struct {
	Validate                  *validator.Validate
	FindMeetingByIdRepository usecase.FindMeetingByIdRepository
	UpdateMeetingRepository   usecase.UpdateMeetingRepository
	CalendarGateway           usecase.CalendarGateway
	EventPublisher            usecase.EventPublisher
}

func NewUpdateMeetingController(
	findMeetingByIdRepository usecase.FindMeetingByIdRepository,
	updateMeetingRepository usecase.UpdateMeetingRepository,
	calendarGateway usecase.CalendarGateway,
	eventPublisher usecase.EventPublisher,
) *UpdateMeetingController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &UpdateMeetingController{
		Validate:                  validate,
		FindMeetingByIdRepository: findMeetingByIdRepository,
		UpdateMeetingRepository:   updateMeetingRepository,
		CalendarGateway:           calendarGateway,
		EventPublisher:            eventPublisher,
	}
}

type UpdateMeetingControllerBody struct {
	Title       string    `json:"title" validate:"required,min=1,max=255"`
	Description string    `json:"description" validate:"omitempty,max=2000"`
	StartsAt    time.Time `json:"startsAt" validate:"required"`
	EndsAt      time.Time `json:"endsAt" validate:"required,gtfield=StartsAt"`
	Attendees   []string  `json:"attendees" validate:"dive,len=24,hexadecimal"`
}

func (c *UpdateMeetingController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body UpdateMeetingControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid body request", http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			helpers.GetErrorMessages(c.Validate, err), http.StatusUnprocessableEntity)
	}

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

	attendees := make([]primitive.ObjectID, 0, len(body.Attendees))
	for _, attendee := range body.Attendees {
		attendeeId, _ := primitive.ObjectIDFromHex(attendee)
		attendees = append(attendees, attendeeId)
	}

	if meeting.CalendarEventId != "" {
		err = c.CalendarGateway.UpdateEvent(meeting.CalendarEventId, &usecase.CalendarEventInput{
			Title:       body.Title,
			Description: body.Description,
			StartsAt:    body.StartsAt,
			EndsAt:      body.EndsAt,
			Attendees:   body.Attendees,
		})
		if err != nil {
			return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
				"an error occurred when updating calendar event", http.StatusInternalServerError)
		}
	}

	updated, err := c.UpdateMeetingRepository.Update(meetingId, &models.Meeting{
		WorkspaceId:     workspaceId,
		Title:           body.Title,
		Description:     body.Description,
		StartsAt:        body.StartsAt,
		EndsAt:          body.EndsAt,
		Attendees:       attendees,
		CalendarEventId: meeting.CalendarEventId,
		CreatedBy:       meeting.CreatedBy,
	})
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when updating meeting", http.StatusInternalServerError)
	}

	c.EventPublisher.Publish(usecase.WorkspaceChannel(workspaceId.Hex()), "meeting-updated", map[string]any{
		"meeting": updated,
		"actorId": userId.Hex(),
	})

	return helpers.CreateSuccessResponse(updated, http.StatusOK)
}
