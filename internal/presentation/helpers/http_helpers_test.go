package helpers

import (
	"encoding/json"
	"net/http"
	"testing"

	presentationProtocols "github.com/catatancerdas/collab-backend/internal/presentation/protocols"
)

func TestCreateSuccessResponse(t *testing.T) {
	res := CreateSuccessResponse(map[string]string{"name": "acme"}, http.StatusCreated)

	if res.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", res.StatusCode)
	}

	var env presentationProtocols.Envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	if env.Status != "success" {
		t.Errorf("status = %q, want success", env.Status)
	}
	if env.Code != http.StatusCreated {
		t.Errorf("code = %d, want 201", env.Code)
	}
	if env.ErrorType != "" || env.Message != "" {
		t.Error("success envelope must not carry error fields")
	}
	data, ok := env.Data.(map[string]any)
	if !ok || data["name"] != "acme" {
		t.Errorf("data = %v, want the wrapped payload", env.Data)
	}
}

func TestCreateErrorResponse(t *testing.T) {
	res := CreateErrorResponse(presentationProtocols.ErrorTypeForbidden,
		"members cannot invite", http.StatusForbidden)

	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", res.StatusCode)
	}

	var env presentationProtocols.Envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	if env.Status != "error" {
		t.Errorf("status = %q, want error", env.Status)
	}
	if env.ErrorType != presentationProtocols.ErrorTypeForbidden {
		t.Errorf("error_type = %q, want Forbidden", env.ErrorType)
	}
	if env.Message != "members cannot invite" {
		t.Errorf("message = %q", env.Message)
	}
	if env.Data != nil {
		t.Error("error envelope must not carry data")
	}
}

func TestCreateFileResponse(t *testing.T) {
	res := CreateFileResponse([]byte("xlsx-bytes"), "members.xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}
	if got := res.Headers.Get("Content-Disposition"); got != `attachment; filename="members.xlsx"` {
		t.Errorf("content-disposition = %q", got)
	}
	if got := res.Headers.Get("Content-Type"); got == "" {
		t.Error("expected a content type header")
	}
}
