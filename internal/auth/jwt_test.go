package auth

import (
	"testing"
	"time"
)

func TestIssueAndVerifyToken(t *testing.T) {
	mgr := NewJWTManager("test-secret", time.Hour)

	token, err := mgr.IssueToken("user-123")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	userID, err := mgr.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("VerifyToken user id = %q, want %q", userID, "user-123")
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", time.Hour).IssueToken("user-123")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if _, err := NewJWTManager("secret-b", time.Hour).VerifyToken(token); err == nil {
		t.Error("VerifyToken accepted a token signed with a different secret")
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	mgr := NewJWTManager("test-secret", -time.Minute)
	token, err := mgr.IssueToken("user-123")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if _, err := mgr.VerifyToken(token); err == nil {
		t.Error("VerifyToken accepted an expired token")
	}
}

func TestVerifyTokenGarbage(t *testing.T) {
	mgr := NewJWTManager("test-secret", time.Hour)
	if _, err := mgr.VerifyToken("not-a-token"); err == nil {
		t.Error("VerifyToken accepted garbage input")
	}
}
