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

// CreateMeetingController schedules a meeting and mirrors it into the
// calendar vendor. The vendor event id is stored so later edits stay in
// sync. Attendees get a notification row and a realtime nudge.
type CreateMeetingController struct {
	Validate                     *validator.Validate
	CreateMeetingRepository      usecase.CreateMeetingRepository
	CreateNotificationRepository usecase.CreateNotificationRepository
	CalendarGateway              usecase.CalendarGateway
	EventPublisher               usecase.EventPublisher
}

func NewCreateMeetingController(
	createMeetingRepository usecase.CreateMeetingRepository,
	createNotificationRepository usecase.CreateNotificationRepository,
	calendarGateway usecase.CalendarGateway,
	eventPublisher usecase.EventPublisher,
) *CreateMeetingController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &CreateMeetingController{
		Validate:                     validate,
		CreateMeetingRepository:      createMeetingRepository,
		CreateNotificationRepository: createNotificationRepository,
		CalendarGateway:              calendarGateway,
		EventPublisher:               eventPublisher,
	}
}

type CreateMeetingControllerBody struct {
	Title       string    `json:"title" validate:"required,min=1,max=255"`
	Description string    `json:"description" validate:"omitempty,max=2000"`
	StartsAt    time.Time `json:"startsAt" validate:"required"`
	EndsAt      time.Time `json:"endsAt" validate:"required,gtfield=StartsAt"`
	Attendees   []string  `json:"attendees" validate:"dive,len=24,hexadecimal"`
}

func (c *CreateMeetingController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateMeetingControllerBody
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

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeBadRequest,
			"invalid user ID format", http.StatusBadRequest)
	}

	attendees := make([]primitive.ObjectID, 0, len(body.Attendees))
	for _, attendee := range body.Attendees {
		attendeeId, _ := primitive.ObjectIDFromHex(attendee)
		attendees = append(attendees, attendeeId)
	}

	eventId, err := c.CalendarGateway.CreateEvent(&usecase.CalendarEventInput{
		Title:       body.Title,
		Description: body.Description,
		StartsAt:    body.StartsAt,
		EndsAt:      body.EndsAt,
		Attendees:   body.Attendees,
	})
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when creating calendar event", http.StatusInternalServerError)
	}

	meeting, err := c.CreateMeetingRepository.Create(&models.Meeting{
		WorkspaceId:     workspaceId,
		Title:           body.Title,
		Description:     body.Description,
		StartsAt:        body.StartsAt,
		EndsAt:          body.EndsAt,
		Attendees:       attendees,
		CalendarEventId: eventId,
		CreatedBy:       userId,
	})
	if err != nil {
		return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
			"an error occurred when creating meeting", http.StatusInternalServerError)
	}

	for _, attendeeId := range attendees {
		if attendeeId == userId {
			continue
		}
		_, err := c.CreateNotificationRepository.Create(&models.Notification{
			UserId:      attendeeId,
			WorkspaceId: workspaceId,
			Event:       "meeting-created",
			Message:     "You were invited to " + body.Title,
		})
		if err != nil {
			return helpers.CreateErrorResponse(presentationProtocols.ErrorTypeInternalServerError,
				"an error occurred when notifying attendees", http.StatusInternalServerError)
		}
		c.EventPublisher.Publish(usecase.NotificationChannel(attendeeId.Hex()), "meeting-created", map[string]any{
			"meetingId": meeting.Id.Hex(),
		})
	}

	c.EventPublisher.Publish(usecase.WorkspaceChannel(workspaceId.Hex()), "meeting-created", map[string]any{
		"meeting": meeting,
		"actorId": userId.Hex(),
	})

	return helpers.CreateSuccessResponse(meeting, http.StatusCreated)
}
