package meeting

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/catatancerdas/collab-backend/internal/domain/models"
	"github.com/catatancerdas/collab-backend/internal/domain/usecase"
	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeMeetingCreator struct {
	created *models.Meeting
}

func (f *fakeMeetingCreator) Create(meeting *models.Meeting) (*models.Meeting, error) {
	meeting.Id = primitive.NewObjectID()
	meeting.CreatedAt = time.Now()
	f.created = meeting
	return meeting, nil
}

type fakeMeetingFinder struct {
	meeting *models.Meeting
}

func (f *fakeMeetingFinder) Find(meetingId primitive.ObjectID, workspaceId primitive.ObjectID) (*models.Meeting, error) {
	if f.meeting != nil && f.meeting.Id == meetingId && f.meeting.WorkspaceId == workspaceId {
		return f.meeting, nil
	}
	return nil, nil
}

type fakeMeetingDeleter struct {
	calls int
}

func (f *fakeMeetingDeleter) Delete(meetingId primitive.ObjectID, workspaceId primitive.ObjectID) error {
	f.calls++
	return nil
}

type fakeNotificationCreator struct {
	created []*models.Notification
}

func (f *fakeNotificationCreator) Create(notification *models.Notification) (*models.Notification, error) {
	notification.Id = primitive.NewObjectID()
	f.created = append(f.created, notification)
	return notification, nil
}

type fakeCalendar struct {
	eventId       string
	createErr     error
	createdInputs []*usecase.CalendarEventInput
	deletedEvents []string
}

func (f *fakeCalendar) CreateEvent(input *usecase.CalendarEventInput) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.createdInputs = append(f.createdInputs, input)
	return f.eventId, nil
}

func (f *fakeCalendar) UpdateEvent(eventId string, input *usecase.CalendarEventInput) error {
	return nil
}

func (f *fakeCalendar) DeleteEvent(eventId string) error {
	f.deletedEvents = append(f.deletedEvents, eventId)
	return nil
}

type fakePublisher struct {
	events []string
}

func (p *fakePublisher) Publish(channel string, event string, payload any) {
	p.events = append(p.events, event)
}

func newRequest(t *testing.T, method string, body any, pathValues map[string]string, userId string) presentationProtocols.HttpRequest {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding body: %v", err)
		}
	}
	req := httptest.NewRequest(method, "/", &buf)
	for key, value := range pathValues {
		req.SetPathValue(key, value)
	}
	if userId != "" {
		req.Header.Set("UserId", userId)
	}
	return presentationProtocols.HttpRequest{
		Body:      req.Body,
		Header:    req.Header,
		UrlParams: req.URL.Query(),
		Req:       req,
	}
}

func TestCreateMeeting(t *testing.T) {
	workspaceId := primitive.NewObjectID()
	organizer := primitive.NewObjectID()
	attendee := primitive.NewObjectID()

	body := map[string]any{
		"title":     "sprint planning",
		"startsAt":  time.Now().Add(time.Hour).Format(time.RFC3339),
		"endsAt":    time.Now().Add(2 * time.Hour).Format(time.RFC3339),
		"attendees": []string{attendee.Hex(), organizer.Hex()},
	}

	t.Run("stores the calendar event id", func(t *testing.T) {
		creator := &fakeMeetingCreator{}
		notifications := &fakeNotificationCreator{}
		gateway := &fakeCalendar{eventId: "cal-event-42"}
		publisher := &fakePublisher{}
		controller := NewCreateMeetingController(creator, notifications, gateway, publisher)

		res := controller.Handle(newRequest(t, http.MethodPost, body,
			map[string]string{"workspaceId": workspaceId.Hex()}, organizer.Hex()))

		if res.StatusCode != http.StatusCreated {
			t.Fatalf("status = %d, want 201", res.StatusCode)
		}
		if len(gateway.createdInputs) != 1 {
			t.Fatal("expected one calendar event")
		}
		if creator.created.CalendarEventId != "cal-event-42" {
			t.Errorf("calendarEventId = %q, want cal-event-42", creator.created.CalendarEventId)
		}
		// Only the non-organizer attendee is notified.
		if len(notifications.created) != 1 || notifications.created[0].UserId != attendee {
			t.Errorf("expected a single notification for the attendee")
		}
	})

	t.Run("calendar failure aborts the meeting", func(t *testing.T) {
		creator := &fakeMeetingCreator{}
		gateway := &fakeCalendar{createErr: errors.New("vendor down")}
		controller := NewCreateMeetingController(creator, &fakeNotificationCreator{}, gateway, &fakePublisher{})

		res := controller.Handle(newRequest(t, http.MethodPost, body,
			map[string]string{"workspaceId": workspaceId.Hex()}, organizer.Hex()))

		if res.StatusCode != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", res.StatusCode)
		}
		if creator.created != nil {
			t.Error("meeting must not be stored when the calendar call fails")
		}
	})

	t.Run("rejects endsAt before startsAt", func(t *testing.T) {
		bad := map[string]any{
			"title":    "time warp",
			"startsAt": time.Now().Add(2 * time.Hour).Format(time.RFC3339),
			"endsAt":   time.Now().Add(time.Hour).Format(time.RFC3339),
		}
		controller := NewCreateMeetingController(
			&fakeMeetingCreator{}, &fakeNotificationCreator{}, &fakeCalendar{}, &fakePublisher{})

		res := controller.Handle(newRequest(t, http.MethodPost, bad,
			map[string]string{"workspaceId": workspaceId.Hex()}, organizer.Hex()))

		if res.StatusCode != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want 422", res.StatusCode)
		}
	})
}

func TestDeleteMeetingSyncsCalendar(t *testing.T) {
	workspaceId := primitive.NewObjectID()
	meetingId := primitive.NewObjectID()
	userId := primitive.NewObjectID()

	gateway := &fakeCalendar{}
	deleter := &fakeMeetingDeleter{}
	controller := NewDeleteMeetingController(
		&fakeMeetingFinder{meeting: &models.Meeting{
			Id:              meetingId,
			WorkspaceId:     workspaceId,
			CalendarEventId: "cal-event-42",
		}},
		deleter, gateway, &fakePublisher{})

	res := controller.Handle(newRequest(t, http.MethodDelete, nil,
		map[string]string{"workspaceId": workspaceId.Hex(), "meetingId": meetingId.Hex()},
		userId.Hex()))

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}
	if len(gateway.deletedEvents) != 1 || gateway.deletedEvents[0] != "cal-event-42" {
		t.Errorf("deleted events = %v, want [cal-event-42]", gateway.deletedEvents)
	}
	if deleter.calls != 1 {
		t.Error("expected the meeting row to be deleted")
	}
}
