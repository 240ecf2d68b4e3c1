package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"assetverse/logger"
	"assetverse/models"

	"github.com/stretchr/testify/assert"
)

type stubVerifier struct {
	email string
	err   error
}

func (s stubVerifier) Verify(context.Context, string) (string, error) {
	return s.email, s.err
}

type stubUserRepo struct {
	user *models.User
	err  error
}

func (s stubUserRepo) Create(context.Context, *models.User) (*models.InsertResult, error) {
	return nil, errors.New("not implemented")
}

func (s stubUserRepo) GetByEmail(context.Context, string) (*models.User, error) {
	return s.user, s.err
}

func (s stubUserRepo) UpdateName(context.Context, string, string) (*models.UpdateResult, error) {
	return nil, errors.New("not implemented")
}

func echoEmail() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, _ := EmailFromContext(r.Context())
		_, _ = w.Write([]byte(email))
	})
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		verifier   stubVerifier
		wantStatus int
		wantBody   string
	}{
		{
			name:       "no header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty token",
			header:     "Bearer ",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "verifier rejects",
			header:     "Bearer bad-token",
			verifier:   stubVerifier{err: errors.New("expired")},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "verified email reaches the handler",
			header:     "Bearer good-token",
			verifier:   stubVerifier{email: "a@x.com"},
			wantStatus: http.StatusOK,
			wantBody:   "a@x.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := Authenticate(tt.verifier, logger.Nop())

			req := httptest.NewRequest(http.MethodGet, "/user/role", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			mw(echoEmail()).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		repo       stubUserRepo
		email      string
		role       string
		wantStatus int
	}{
		{
			name:       "matching role passes",
			repo:       stubUserRepo{user: &models.User{Email: "hr@x.com", Role: models.RoleHR}},
			email:      "hr@x.com",
			role:       models.RoleHR,
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "other role is forbidden",
			repo:       stubUserRepo{user: &models.User{Email: "e@x.com", Role: models.RoleEmployee}},
			email:      "e@x.com",
			role:       models.RoleHR,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "no user record is forbidden",
			repo:       stubUserRepo{},
			email:      "ghost@x.com",
			role:       models.RoleHR,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "no identity in context",
			repo:       stubUserRepo{},
			role:       models.RoleHR,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "lookup failure",
			repo:       stubUserRepo{err: errors.New("store down")},
			email:      "a@x.com",
			role:       models.RoleHR,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := RequireRole(tt.repo, tt.role)

			req := httptest.NewRequest(http.MethodGet, "/assets", nil)
			if tt.email != "" {
				req = req.WithContext(WithEmail(req.Context(), tt.email))
			}
			rr := httptest.NewRecorder()
			mw(ok).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
