package invitation

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/catatancerdas/collab-backend/internal/domain/models"
	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
	"github.com/catatancerdas/collab-backend/internal/utils"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeWorkspaceFinder struct {
	workspace *models.Workspace
}

func (f *fakeWorkspaceFinder) Find(workspaceId primitive.ObjectID) (*models.Workspace, error) {
	if f.workspace != nil && f.workspace.Id == workspaceId {
		return f.workspace, nil
	}
	return nil, nil
}

type fakeUserByEmail struct {
	user *models.User
}

func (f *fakeUserByEmail) FindByEmail(email string) (*models.User, error) {
	if f.user != nil && f.user.Email == email {
		return f.user, nil
	}
	return nil, nil
}

type fakeUserById struct {
	user *models.User
}

func (f *fakeUserById) Find(userId primitive.ObjectID) (*models.User, error) {
	if f.user != nil && f.user.Id == userId {
		return f.user, nil
	}
	return nil, nil
}

type fakePendingFinder struct {
	pending *models.Invitation
}

func (f *fakePendingFinder) FindPending(workspaceId primitive.ObjectID, email string) (*models.Invitation, error) {
	return f.pending, nil
}

type fakeInvitationCreator struct {
	created *models.Invitation
}

func (f *fakeInvitationCreator) Create(invitation *models.Invitation) (*models.Invitation, error) {
	invitation.Id = uuid.NewString()
	invitation.Status = models.InvitationPending
	invitation.CreatedAt = time.Now()
	invitation.ExpiredAt = invitation.CreatedAt.Add(models.InvitationTTL)
	f.created = invitation
	return invitation, nil
}

// fakeInvitationStore emulates the transactional accept: one successful accept
// consumes the invitation and records the member exactly once.
type fakeInvitationStore struct {
	invitation *models.Invitation
	members    []primitive.ObjectID
	accepts    int
}

func (f *fakeInvitationStore) Find(invitationId string) (*models.Invitation, error) {
	if f.invitation != nil && f.invitation.Id == invitationId {
		return f.invitation, nil
	}
	return nil, nil
}

func (f *fakeInvitationStore) Accept(invitation *models.Invitation, userId primitive.ObjectID) error {
	f.accepts++
	f.members = append(f.members, userId)
	f.invitation = nil
	return nil
}

type fakeMailer struct{}

func (f *fakeMailer) SendInvitation(email string, workspaceName string, acceptURL string) error {
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

func decodeEnvelope(t *testing.T, res *presentationProtocols.HttpResponse) presentationProtocols.Envelope {
	t.Helper()
	var env presentationProtocols.Envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	return env
}

func TestCreateInvitationPolicy(t *testing.T) {
	t.Setenv("INVITE_SECRET", "test-secret")

	workspaceId := primitive.NewObjectID()
	owner := primitive.NewObjectID()
	admin := primitive.NewObjectID()
	member := primitive.NewObjectID()

	workspace := &models.Workspace{
		Id:   workspaceId,
		Name: "acme",
		Members: []models.Member{
			{MemberId: owner, Role: models.RoleOwner},
			{MemberId: admin, Role: models.RoleAdmin},
			{MemberId: member, Role: models.RoleMember},
		},
	}

	tests := []struct {
		name       string
		actor      primitive.ObjectID
		role       string
		wantStatus int
		wantReason string
	}{
		{"owner invites admin", owner, models.RoleAdmin, http.StatusCreated, ""},
		{"owner invites owner", owner, models.RoleOwner, http.StatusCreated, ""},
		{"admin invites member", admin, models.RoleMember, http.StatusCreated, ""},
		{"admin cannot invite admin", admin, models.RoleAdmin, http.StatusForbidden, "admin can only invite members"},
		{"admin cannot invite owner", admin, models.RoleOwner, http.StatusForbidden, "only owner can invite owner"},
		{"member cannot invite", member, models.RoleMember, http.StatusForbidden, "members cannot invite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := &fakeInvitationCreator{}
			controller := NewCreateInvitationController(
				&fakeWorkspaceFinder{workspace: workspace},
				&fakeUserByEmail{},
				&fakePendingFinder{},
				creator,
				&fakeMailer{},
				&fakePublisher{},
			)

			res := controller.Handle(newRequest(t, http.MethodPost,
				map[string]string{"email": "new@example.com", "role": tt.role},
				map[string]string{"workspaceId": workspaceId.Hex()}, tt.actor.Hex()))

			if res.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", res.StatusCode, tt.wantStatus)
			}
			env := decodeEnvelope(t, res)
			if tt.wantReason != "" && env.Message != tt.wantReason {
				t.Errorf("message = %q, want %q", env.Message, tt.wantReason)
			}
			if tt.wantStatus == http.StatusCreated {
				if creator.created == nil {
					t.Fatal("expected invitation to be created")
				}
				if creator.created.Status != models.InvitationPending {
					t.Errorf("status = %q, want PENDING", creator.created.Status)
				}
			} else if creator.created != nil {
				t.Error("denied request must not create an invitation")
			}
		})
	}
}

func TestCreateInvitationConflicts(t *testing.T) {
	t.Setenv("INVITE_SECRET", "test-secret")

	workspaceId := primitive.NewObjectID()
	owner := primitive.NewObjectID()
	existing := primitive.NewObjectID()

	workspace := &models.Workspace{
		Id:   workspaceId,
		Name: "acme",
		Members: []models.Member{
			{MemberId: owner, Role: models.RoleOwner},
			{MemberId: existing, Role: models.RoleMember},
		},
	}

	t.Run("email already belongs to a member", func(t *testing.T) {
		controller := NewCreateInvitationController(
			&fakeWorkspaceFinder{workspace: workspace},
			&fakeUserByEmail{user: &models.User{Id: existing, Email: "taken@example.com"}},
			&fakePendingFinder{},
			&fakeInvitationCreator{},
			&fakeMailer{},
			&fakePublisher{},
		)

		res := controller.Handle(newRequest(t, http.MethodPost,
			map[string]string{"email": "taken@example.com", "role": models.RoleMember},
			map[string]string{"workspaceId": workspaceId.Hex()}, owner.Hex()))

		if res.StatusCode != http.StatusConflict {
			t.Fatalf("status = %d, want 409", res.StatusCode)
		}
	})

	t.Run("pending invitation already exists", func(t *testing.T) {
		controller := NewCreateInvitationController(
			&fakeWorkspaceFinder{workspace: workspace},
			&fakeUserByEmail{},
			&fakePendingFinder{pending: &models.Invitation{Id: uuid.NewString()}},
			&fakeInvitationCreator{},
			&fakeMailer{},
			&fakePublisher{},
		)

		res := controller.Handle(newRequest(t, http.MethodPost,
			map[string]string{"email": "dup@example.com", "role": models.RoleMember},
			map[string]string{"workspaceId": workspaceId.Hex()}, owner.Hex()))

		if res.StatusCode != http.StatusConflict {
			t.Fatalf("status = %d, want 409", res.StatusCode)
		}
	})
}

func TestAcceptInvitation(t *testing.T) {
	t.Setenv("INVITE_SECRET", "test-secret")

	workspaceId := primitive.NewObjectID()
	inviter := primitive.NewObjectID()
	invitee := primitive.NewObjectID()
	inviteeEmail := "invitee@example.com"

	newInvitation := func() *models.Invitation {
		return &models.Invitation{
			Id:          uuid.NewString(),
			WorkspaceId: workspaceId,
			Email:       inviteeEmail,
			Role:        models.RoleMember,
			InvitedById: inviter,
			Status:      models.InvitationPending,
			CreatedAt:   time.Now(),
			ExpiredAt:   time.Now().Add(models.InvitationTTL),
		}
	}

	signToken := func(t *testing.T, inv *models.Invitation) string {
		t.Helper()
		token, err := utils.NewInviteTokenUtil().Sign(inv.Id, inv.Email, inv.ExpiredAt)
		if err != nil {
			t.Fatalf("signing token: %v", err)
		}
		return token
	}

	t.Run("round trip", func(t *testing.T) {
		invitation := newInvitation()
		store := &fakeInvitationStore{invitation: invitation}
		publisher := &fakePublisher{}
		controller := NewAcceptInvitationController(
			store,
			&fakeUserById{user: &models.User{Id: invitee, Email: inviteeEmail}},
			store,
			publisher,
		)
		token := signToken(t, invitation)

		res := controller.Handle(newRequest(t, http.MethodPost,
			map[string]string{"token": token},
			map[string]string{"invitationId": invitation.Id}, invitee.Hex()))

		if res.StatusCode != http.StatusOK {
			env := decodeEnvelope(t, res)
			t.Fatalf("status = %d (%s), want 200", res.StatusCode, env.Message)
		}
		if store.accepts != 1 || len(store.members) != 1 || store.members[0] != invitee {
			t.Fatal("expected the invitee to be added exactly once")
		}
		if store.invitation != nil {
			t.Error("accepted invitation should be consumed")
		}
		wantEvents := map[string]bool{"member-added": false, "invitation-accepted": false}
		for _, event := range publisher.events {
			wantEvents[event] = true
		}
		for event, seen := range wantEvents {
			if !seen {
				t.Errorf("expected %s event", event)
			}
		}

		// Second accept: the invitation is gone, so the lookup 404s.
		res = controller.Handle(newRequest(t, http.MethodPost,
			map[string]string{"token": token},
			map[string]string{"invitationId": invitation.Id}, invitee.Hex()))
		if res.StatusCode != http.StatusNotFound {
			t.Fatalf("second accept status = %d, want 404", res.StatusCode)
		}
		if store.accepts != 1 {
			t.Error("second accept must not add the member again")
		}
	})

	t.Run("expired invitation", func(t *testing.T) {
		invitation := newInvitation()
		store := &fakeInvitationStore{invitation: invitation}
		controller := NewAcceptInvitationController(
			store,
			&fakeUserById{user: &models.User{Id: invitee, Email: inviteeEmail}},
			store,
			&fakePublisher{},
		)
		controller.Now = func() time.Time {
			return invitation.ExpiredAt.Add(time.Minute)
		}
		token := signToken(t, invitation)

		res := controller.Handle(newRequest(t, http.MethodPost,
			map[string]string{"token": token},
			map[string]string{"invitationId": invitation.Id}, invitee.Hex()))

		if res.StatusCode != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", res.StatusCode)
		}
		env := decodeEnvelope(t, res)
		if env.Message != "invitation expired" {
			t.Errorf("message = %q, want %q", env.Message, "invitation expired")
		}
		if store.accepts != 0 {
			t.Error("expired invitation must not be accepted")
		}
	})

	t.Run("account email does not match", func(t *testing.T) {
		invitation := newInvitation()
		store := &fakeInvitationStore{invitation: invitation}
		controller := NewAcceptInvitationController(
			store,
			&fakeUserById{user: &models.User{Id: invitee, Email: "someone-else@example.com"}},
			store,
			&fakePublisher{},
		)
		token := signToken(t, invitation)

		res := controller.Handle(newRequest(t, http.MethodPost,
			map[string]string{"token": token},
			map[string]string{"invitationId": invitation.Id}, invitee.Hex()))

		if res.StatusCode != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", res.StatusCode)
		}
		if store.accepts != 0 {
			t.Error("mismatched email must not be accepted")
		}
	})

	t.Run("token bound to another invitation", func(t *testing.T) {
		invitation := newInvitation()
		other := newInvitation()
		store := &fakeInvitationStore{invitation: invitation}
		controller := NewAcceptInvitationController(
			store,
			&fakeUserById{user: &models.User{Id: invitee, Email: inviteeEmail}},
			store,
			&fakePublisher{},
		)
		token := signToken(t, other)

		res := controller.Handle(newRequest(t, http.MethodPost,
			map[string]string{"token": token},
			map[string]string{"invitationId": invitation.Id}, invitee.Hex()))

		if res.StatusCode != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", res.StatusCode)
		}
		env := decodeEnvelope(t, res)
		if env.Message != "invalid invitation token" {
			t.Errorf("message = %q, want %q", env.Message, "invalid invitation token")
		}
	})

	t.Run("case-insensitive email match", func(t *testing.T) {
		invitation := newInvitation()
		store := &fakeInvitationStore{invitation: invitation}
		controller := NewAcceptInvitationController(
			store,
			&fakeUserById{user: &models.User{Id: invitee, Email: "Invitee@Example.COM"}},
			store,
			&fakePublisher{},
		)
		token := signToken(t, invitation)

		res := controller.Handle(newRequest(t, http.MethodPost,
			map[string]string{"token": token},
			map[string]string{"invitationId": invitation.Id}, invitee.Hex()))

		if res.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", res.StatusCode)
		}
	})
}
