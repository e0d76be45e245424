package document

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

type fakeDocumentFinder struct {
	document *models.Document
}

func (f *fakeDocumentFinder) Find(documentId primitive.ObjectID) (*models.Document, error) {
	if f.document != nil && f.document.Id == documentId {
		return f.document, nil
	}
	return nil, nil
}

type fakeWorkspaceFinder struct {
	workspace *models.Workspace
}

func (f *fakeWorkspaceFinder) Find(workspaceId primitive.ObjectID) (*models.Workspace, error) {
	if f.workspace != nil && f.workspace.Id == workspaceId {
		return f.workspace, nil
	}
	return nil, nil
}

type fakeArchiver struct {
	calls int
}

func (f *fakeArchiver) Archive(documentId primitive.ObjectID) error {
	f.calls++
	return nil
}

type fakeDeleter struct {
	calls int
}

func (f *fakeDeleter) Delete(documentId primitive.ObjectID) error {
	f.calls++
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

func TestGetPublicDocument(t *testing.T) {
	documentId := primitive.NewObjectID()

	tests := []struct {
		name       string
		document   *models.Document
		wantStatus int
	}{
		{
			name:       "published document is served",
			document:   &models.Document{Id: documentId, Title: "roadmap", IsPublished: true},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unpublished document answers 404",
			document:   &models.Document{Id: documentId, Title: "draft"},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "archived document answers 404 even when published",
			document:   &models.Document{Id: documentId, Title: "old", IsPublished: true, IsArchived: true},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown document answers 404",
			document:   nil,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller := NewGetPublicDocumentController(&fakeDocumentFinder{document: tt.document})

			res := controller.Handle(newRequest(t, http.MethodGet, nil,
				map[string]string{"documentId": documentId.Hex()}, ""))

			if res.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", res.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestArchiveDocument(t *testing.T) {
	workspaceId := primitive.NewObjectID()
	otherWorkspaceId := primitive.NewObjectID()
	documentId := primitive.NewObjectID()
	userId := primitive.NewObjectID()

	t.Run("archives and publishes", func(t *testing.T) {
		archiver := &fakeArchiver{}
		publisher := &fakePublisher{}
		controller := NewArchiveDocumentController(
			&fakeDocumentFinder{document: &models.Document{Id: documentId, WorkspaceId: workspaceId}},
			archiver, publisher)

		res := controller.Handle(newRequest(t, http.MethodDelete, nil,
			map[string]string{"workspaceId": workspaceId.Hex(), "documentId": documentId.Hex()},
			userId.Hex()))

		if res.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", res.StatusCode)
		}
		if archiver.calls != 1 {
			t.Error("expected the archive cascade to run once")
		}
		if len(publisher.events) != 1 || publisher.events[0] != "document-archived" {
			t.Errorf("events = %v, want [document-archived]", publisher.events)
		}
	})

	t.Run("document in another workspace answers 404", func(t *testing.T) {
		archiver := &fakeArchiver{}
		controller := NewArchiveDocumentController(
			&fakeDocumentFinder{document: &models.Document{Id: documentId, WorkspaceId: otherWorkspaceId}},
			archiver, &fakePublisher{})

		res := controller.Handle(newRequest(t, http.MethodDelete, nil,
			map[string]string{"workspaceId": workspaceId.Hex(), "documentId": documentId.Hex()},
			userId.Hex()))

		if res.StatusCode != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", res.StatusCode)
		}
		if archiver.calls != 0 {
			t.Error("cross-workspace document must not be archived")
		}
	})
}

func TestDeleteDocumentRequiresAdmin(t *testing.T) {
	workspaceId := primitive.NewObjectID()
	documentId := primitive.NewObjectID()
	admin := primitive.NewObjectID()
	member := primitive.NewObjectID()

	workspace := &models.Workspace{
		Id: workspaceId,
		Members: []models.Member{
			{MemberId: admin, Role: models.RoleAdmin},
			{MemberId: member, Role: models.RoleMember},
		},
	}

	tests := []struct {
		name       string
		actor      primitive.ObjectID
		wantStatus int
		wantCalls  int
	}{
		{"admin hard-deletes", admin, http.StatusOK, 1},
		{"member is refused", member, http.StatusForbidden, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deleter := &fakeDeleter{}
			controller := NewDeleteDocumentController(
				&fakeWorkspaceFinder{workspace: workspace},
				&fakeDocumentFinder{document: &models.Document{Id: documentId, WorkspaceId: workspaceId}},
				deleter, &fakePublisher{})

			res := controller.Handle(newRequest(t, http.MethodDelete, nil,
				map[string]string{"workspaceId": workspaceId.Hex(), "documentId": documentId.Hex()},
				tt.actor.Hex()))

			if res.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", res.StatusCode, tt.wantStatus)
			}
			if deleter.calls != tt.wantCalls {
				t.Errorf("delete calls = %d, want %d", deleter.calls, tt.wantCalls)
			}
		})
	}
}
