package middlewarectx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"

	"github.com/clubfit/membership-tracker/internal/models"
)

func TestMemberAccessMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		role           string
		memberID       string
		urlID          string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "администратор проходит к любому участнику",
			role:           models.RoleAdmin,
			memberID:       "",
			urlID:          "m-1",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "тренер проходит к любому участнику",
			role:           models.RoleTrainer,
			memberID:       "",
			urlID:          "m-1",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "участник проходит к собственной записи",
			role:           models.RoleMember,
			memberID:       "m-1",
			urlID:          "m-1",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "участник не проходит к чужой записи",
			role:           models.RoleMember,
			memberID:       "m-1",
			urlID:          "m-2",
			expectedStatus: http.StatusForbidden,
			expectedBody:   `"error":"Access denied"`,
		},
		{
			name:           "участник без привязки к записи не проходит",
			role:           models.RoleMember,
			memberID:       "",
			urlID:          "m-1",
			expectedStatus: http.StatusForbidden,
			expectedBody:   `"error":"Access denied"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			handler := MemberAccessMiddleware(logger)(next)

			req := httptest.NewRequest(http.MethodGet, "/members/"+tt.urlID, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.urlID)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			ctx = context.WithValue(ctx, Role, tt.role)
			ctx = context.WithValue(ctx, MemberID, tt.memberID)
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
					"response body should contain %s, got %s", tt.expectedBody, w.Body.String())
			}
		})
	}
}
