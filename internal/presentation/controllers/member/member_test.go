package member

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/catatancerdas/collab-backend/internal/domain/models"
	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
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

type fakeRoleUpdater struct {
	calls int
	role  string
}

func (f *fakeRoleUpdater) UpdateRole(workspaceId primitive.ObjectID, userId primitive.ObjectID, role string) error {
	f.calls++
	f.role = role
	return nil
}

type fakeMemberRemover struct {
	calls   int
	removed primitive.ObjectID
}

func (f *fakeMemberRemover) Remove(workspaceId primitive.ObjectID, userId primitive.ObjectID) error {
	f.calls++
	f.removed = userId
	return nil
}

type publishedEvent struct {
	Channel string
	Event   string
}

type fakePublisher struct {
	events []publishedEvent
}

func (p *fakePublisher) Publish(channel string, event string, payload any) {
	p.events = append(p.events, publishedEvent{Channel: channel, Event: event})
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

func workspaceWith(id primitive.ObjectID, members ...models.Member) *models.Workspace {
	return &models.Workspace{Id: id, Name: "acme", Members: members}
}

func TestUpdateMemberRole(t *testing.T) {
	workspaceId := primitive.NewObjectID()
	owner := primitive.NewObjectID()
	secondOwner := primitive.NewObjectID()
	admin := primitive.NewObjectID()
	secondAdmin := primitive.NewObjectID()
	member := primitive.NewObjectID()

	workspace := workspaceWith(workspaceId,
		models.Member{MemberId: owner, Role: models.RoleOwner},
		models.Member{MemberId: secondOwner, Role: models.RoleOwner},
		models.Member{MemberId: admin, Role: models.RoleAdmin},
		models.Member{MemberId: secondAdmin, Role: models.RoleAdmin},
		models.Member{MemberId: member, Role: models.RoleMember},
	)

	soloOwnerWorkspace := workspaceWith(workspaceId,
		models.Member{MemberId: owner, Role: models.RoleOwner},
		models.Member{MemberId: admin, Role: models.RoleAdmin},
	)

	tests := []struct {
		name       string
		workspace  *models.Workspace
		actor      primitive.ObjectID
		target     primitive.ObjectID
		role       string
		wantStatus int
		wantReason string
		wantWrite  bool
	}{
		{
			name:       "owner promotes member to admin",
			workspace:  workspace,
			actor:      owner,
			target:     member,
			role:       models.RoleAdmin,
			wantStatus: http.StatusOK,
			wantWrite:  true,
		},
		{
			name:       "owner demotes other owner when two remain",
			workspace:  workspace,
			actor:      owner,
			target:     secondOwner,
			role:       models.RoleMember,
			wantStatus: http.StatusOK,
			wantWrite:  true,
		},
		{
			name:       "admin promotes member to admin",
			workspace:  workspace,
			actor:      admin,
			target:     member,
			role:       models.RoleAdmin,
			wantStatus: http.StatusOK,
			wantWrite:  true,
		},
		{
			name:       "admin cannot demote another admin",
			workspace:  workspace,
			actor:      admin,
			target:     secondAdmin,
			role:       models.RoleMember,
			wantStatus: http.StatusForbidden,
			wantReason: "admin cannot demote another admin",
		},
		{
			name:       "admin cannot promote to owner",
			workspace:  workspace,
			actor:      admin,
			target:     member,
			role:       models.RoleOwner,
			wantStatus: http.StatusForbidden,
			wantReason: "admin cannot promote to owner",
		},
		{
			name:       "admin cannot touch an owner",
			workspace:  workspace,
			actor:      admin,
			target:     secondOwner,
			role:       models.RoleMember,
			wantStatus: http.StatusForbidden,
			wantReason: "admin cannot change owner",
		},
		{
			name:       "member cannot change roles",
			workspace:  workspace,
			actor:      member,
			target:     admin,
			role:       models.RoleMember,
			wantStatus: http.StatusForbidden,
			wantReason: "members cannot change roles",
		},
		{
			name:       "cannot change own role",
			workspace:  workspace,
			actor:      owner,
			target:     owner,
			role:       models.RoleMember,
			wantStatus: http.StatusForbidden,
			wantReason: "cannot change own role",
		},
		{
			name:       "admin cannot demote the only owner",
			workspace:  soloOwnerWorkspace,
			actor:      admin,
			target:     owner,
			role:       models.RoleMember,
			wantStatus: http.StatusForbidden,
			wantReason: "admin cannot change owner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updater := &fakeRoleUpdater{}
			publisher := &fakePublisher{}
			controller := NewUpdateMemberRoleController(
				&fakeWorkspaceFinder{workspace: tt.workspace}, updater, publisher)

			res := controller.Handle(newRequest(t, http.MethodPut,
				map[string]string{"role": tt.role},
				map[string]string{"workspaceId": workspaceId.Hex(), "userId": tt.target.Hex()},
				tt.actor.Hex()))

			if res.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", res.StatusCode, tt.wantStatus)
			}

			env := decodeEnvelope(t, res)
			if tt.wantReason != "" && env.Message != tt.wantReason {
				t.Errorf("message = %q, want %q", env.Message, tt.wantReason)
			}
			if tt.wantWrite && updater.calls != 1 {
				t.Errorf("expected one role write, got %d", updater.calls)
			}
			if !tt.wantWrite && updater.calls != 0 {
				t.Errorf("denied request must not write, got %d writes", updater.calls)
			}
			if tt.wantWrite && len(publisher.events) == 0 {
				t.Error("expected events to be published")
			}
			if !tt.wantWrite && len(publisher.events) != 0 {
				t.Error("denied request must not publish events")
			}
		})
	}
}

func TestRemoveMember(t *testing.T) {
	workspaceId := primitive.NewObjectID()
	owner := primitive.NewObjectID()
	admin := primitive.NewObjectID()
	secondAdmin := primitive.NewObjectID()
	member := primitive.NewObjectID()

	workspace := workspaceWith(workspaceId,
		models.Member{MemberId: owner, Role: models.RoleOwner},
		models.Member{MemberId: admin, Role: models.RoleAdmin},
		models.Member{MemberId: secondAdmin, Role: models.RoleAdmin},
		models.Member{MemberId: member, Role: models.RoleMember},
	)

	tests := []struct {
		name       string
		actor      primitive.ObjectID
		target     primitive.ObjectID
		wantStatus int
		wantReason string
	}{
		{"owner removes admin", owner, admin, http.StatusOK, ""},
		{"owner removes member", owner, member, http.StatusOK, ""},
		{"admin removes member", admin, member, http.StatusOK, ""},
		{"admin cannot remove admin", admin, secondAdmin, http.StatusForbidden, "admin can only remove members"},
		{"admin cannot remove owner", admin, owner, http.StatusForbidden, "admin can only remove members"},
		{"member cannot remove anyone", member, admin, http.StatusForbidden, "members cannot remove members"},
		{"self removal redirects to leave", admin, admin, http.StatusBadRequest, "use the leave endpoint to remove yourself"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remover := &fakeMemberRemover{}
			controller := NewRemoveMemberController(
				&fakeWorkspaceFinder{workspace: workspace}, remover, &fakePublisher{})

			res := controller.Handle(newRequest(t, http.MethodDelete, nil,
				map[string]string{"workspaceId": workspaceId.Hex(), "userId": tt.target.Hex()},
				tt.actor.Hex()))

			if res.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", res.StatusCode, tt.wantStatus)
			}
			env := decodeEnvelope(t, res)
			if tt.wantReason != "" && env.Message != tt.wantReason {
				t.Errorf("message = %q, want %q", env.Message, tt.wantReason)
			}
			if tt.wantStatus == http.StatusOK {
				if remover.calls != 1 || remover.removed != tt.target {
					t.Errorf("expected target %s removed once", tt.target.Hex())
				}
			} else if remover.calls != 0 {
				t.Error("denied request must not remove")
			}
		})
	}
}

// Removing the last remaining owner via the member endpoint is allowed: only
// demotion and leave carry the last-owner guard.
func TestRemoveLastOwnerAllowed(t *testing.T) {
	workspaceId := primitive.NewObjectID()
	owner := primitive.NewObjectID()
	secondOwner := primitive.NewObjectID()

	workspace := workspaceWith(workspaceId,
		models.Member{MemberId: owner, Role: models.RoleOwner},
		models.Member{MemberId: secondOwner, Role: models.RoleOwner},
	)

	remover := &fakeMemberRemover{}
	controller := NewRemoveMemberController(
		&fakeWorkspaceFinder{workspace: workspace}, remover, &fakePublisher{})

	res := controller.Handle(newRequest(t, http.MethodDelete, nil,
		map[string]string{"workspaceId": workspaceId.Hex(), "userId": secondOwner.Hex()},
		owner.Hex()))

	if res.StatusCode != http.StatusOK {
		t.Fatalf("owner removing another owner should pass, got %d", res.StatusCode)
	}
	if remover.calls != 1 {
		t.Fatal("expected removal to happen")
	}
}

func TestLeaveWorkspace(t *testing.T) {
	workspaceId := primitive.NewObjectID()
	owner := primitive.NewObjectID()
	secondOwner := primitive.NewObjectID()
	member := primitive.NewObjectID()

	tests := []struct {
		name       string
		members    []models.Member
		actor      primitive.ObjectID
		wantStatus int
		wantReason string
	}{
		{
			name: "member leaves",
			members: []models.Member{
				{MemberId: owner, Role: models.RoleOwner},
				{MemberId: member, Role: models.RoleMember},
			},
			actor:      member,
			wantStatus: http.StatusOK,
		},
		{
			name: "owner leaves when another owner remains",
			members: []models.Member{
				{MemberId: owner, Role: models.RoleOwner},
				{MemberId: secondOwner, Role: models.RoleOwner},
			},
			actor:      owner,
			wantStatus: http.StatusOK,
		},
		{
			name: "last owner cannot leave",
			members: []models.Member{
				{MemberId: owner, Role: models.RoleOwner},
				{MemberId: member, Role: models.RoleMember},
			},
			actor:      owner,
			wantStatus: http.StatusForbidden,
			wantReason: "last owner must assign a successor first",
		},
		{
			name: "ownerless workspace refuses departures",
			members: []models.Member{
				{MemberId: member, Role: models.RoleMember},
			},
			actor:      member,
			wantStatus: http.StatusForbidden,
			wantReason: "workspace has no owner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remover := &fakeMemberRemover{}
			controller := NewLeaveWorkspaceController(
				&fakeWorkspaceFinder{workspace: workspaceWith(workspaceId, tt.members...)},
				remover, &fakePublisher{})

			res := controller.Handle(newRequest(t, http.MethodDelete, nil,
				map[string]string{"workspaceId": workspaceId.Hex()}, tt.actor.Hex()))

			if res.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", res.StatusCode, tt.wantStatus)
			}
			env := decodeEnvelope(t, res)
			if tt.wantReason != "" && env.Message != tt.wantReason {
				t.Errorf("message = %q, want %q", env.Message, tt.wantReason)
			}
			if tt.wantStatus == http.StatusOK && remover.removed != tt.actor {
				t.Error("expected the actor to be removed")
			}
		})
	}
}
