package utils

import (
	"testing"
	"time"
)

func TestInviteTokenRoundTrip(t *testing.T) {
	t.Setenv("INVITE_SECRET", "test-secret")
	util := NewInviteTokenUtil()

	token, err := util.Sign("inv-123", "user@example.com", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("signing: %v", err)
	}

	invitationId, email, err := util.Verify(token)
	if err != nil {
		t.Fatalf("verifying: %v", err)
	}
	if invitationId != "inv-123" {
		t.Errorf("invitationId = %q, want inv-123", invitationId)
	}
	if email != "user@example.com" {
		t.Errorf("email = %q, want user@example.com", email)
	}
}

func TestInviteTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("INVITE_SECRET", "secret-a")
	token, err := NewInviteTokenUtil().Sign("inv-123", "user@example.com", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("signing: %v", err)
	}

	other := &InviteTokenUtil{Secret: []byte("secret-b")}
	if _, _, err := other.Verify(token); err == nil {
		t.Fatal("expected verification to fail with a different secret")
	}
}

func TestInviteTokenRejectsExpired(t *testing.T) {
	t.Setenv("INVITE_SECRET", "test-secret")
	util := NewInviteTokenUtil()

	token, err := util.Sign("inv-123", "user@example.com", time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatalf("signing: %v", err)
	}

	if _, _, err := util.Verify(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}
