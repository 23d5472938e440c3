package users

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AlexSec-DEV/BlackKeyv2/utils"
)

func authenticated(req *http.Request, userID uint) *http.Request {
	ctx := context.WithValue(req.Context(), utils.UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestUpdateProfileRequiresAuth(t *testing.T) {
	req := httptest.NewRequest("PUT", "http://example.local/api/profile", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	UpdateProfileHandler(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without auth context, got %d", rec.Code)
	}
}

func TestUpdateProfileRejectsShortPassword(t *testing.T) {
	body := `{"currentPassword":"oldpass1","newPassword":"123"}`
	req := httptest.NewRequest("PUT", "http://example.local/api/profile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	UpdateProfileHandler(rec, authenticated(req, 3))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a short new password, got %d", rec.Code)
	}
}

func TestUpdateProfileRejectsBadBirthDate(t *testing.T) {
	body := `{"birthDate":"31-12-1990"}`
	req := httptest.NewRequest("PUT", "http://example.local/api/profile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	UpdateProfileHandler(rec, authenticated(req, 3))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a malformed birth date, got %d", rec.Code)
	}
}
