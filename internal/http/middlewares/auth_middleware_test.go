package middlewares_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/taskflow/taskflow/internal/auth"
	"github.com/taskflow/taskflow/internal/http/middlewares"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeVerifier struct{}

func (fakeVerifier) VerifyToken(token string) (*auth.Claims, error) {
	if token != "good" {
		return nil, errors.New("bad token")
	}

	return &auth.Claims{UserID: "user-1"}, nil
}

// echoUserID exposes the identity the middleware stashed on the context.
func echoUserID(c *gin.Context) {
	id, ok := middlewares.UserIDFromContext(c)

	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no user id in context"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"userId": id})
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name           string
		header         string
		query          string
		allowQuery     bool
		wantStatusCode int
		wantUserID     string
	}{
		{
			name:           "valid_header",
			header:         "Bearer good",
			wantStatusCode: http.StatusOK,
			wantUserID:     "user-1",
		},
		{
			name:           "missing_header",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "wrong_scheme",
			header:         "Basic good",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "invalid_token",
			header:         "Bearer expired",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "query_token_rejected_by_default",
			query:          "?token=good",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "query_token_accepted_when_allowed",
			query:          "?token=good",
			allowQuery:     true,
			wantStatusCode: http.StatusOK,
			wantUserID:     "user-1",
		},
		{
			name:           "invalid_query_token",
			query:          "?token=expired",
			allowQuery:     true,
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "header_wins_over_query",
			header:         "Bearer good",
			query:          "?token=expired",
			allowQuery:     true,
			wantStatusCode: http.StatusOK,
			wantUserID:     "user-1",
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			mw := middlewares.NewAuthMiddleware(fakeVerifier{})

			guard := mw.RequireAuth()
			if tt.allowQuery {
				guard = mw.RequireAuthAllowQueryToken()
			}

			r := gin.New()
			r.GET("/secure", guard, echoUserID)

			req := httptest.NewRequest(http.MethodGet, "/secure"+tt.query, nil)

			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatusCode, w.Body.String())
			}

			var body map[string]string

			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("bad body: %s", w.Body.String())
			}

			if tt.wantStatusCode == http.StatusUnauthorized {
				if body["error"] != "Unauthorized" {
					t.Fatalf("401 body %q, want Unauthorized", body["error"])
				}
				return
			}

			if body["userId"] != tt.wantUserID {
				t.Fatalf("got user id %q, want %q", body["userId"], tt.wantUserID)
			}
		})
	}
}
