package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/groupchat/internal/auth"
)

func TestJWTAuth(t *testing.T) {
	mgr := auth.NewJWTManager("test-secret", time.Hour)
	token, err := mgr.IssueToken("user-123")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	var gotUserID string
	handler := JWTAuth(mgr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"no bearer prefix", token, http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUserID = ""
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK && gotUserID != "user-123" {
				t.Errorf("user id = %q, want %q", gotUserID, "user-123")
			}
			if tt.wantStatus == http.StatusUnauthorized && rec.Body.String() != unauthorizedBody {
				t.Errorf("body = %s", rec.Body.String())
			}
		})
	}
}
