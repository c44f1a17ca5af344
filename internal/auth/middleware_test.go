package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *service {
	return &service{jwtManager: NewJWTManager("test-secret")}
}

func protectedProbe(t *testing.T, handled *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*handled = true
		assert.Equal(t, "user-1", r.Context().Value("userID"))
		assert.Equal(t, "jo@example.com", r.Context().Value("userEmail"))
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_ValidCookie(t *testing.T) {
	svc := newTestService()
	token, err := svc.jwtManager.GenerateToken(testUser)
	require.NoError(t, err)

	handled := false
	req := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
	w := httptest.NewRecorder()

	svc.AuthMiddleware()(protectedProbe(t, &handled)).ServeHTTP(w, req)

	assert.True(t, handled)
	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestAuthMiddleware_UniformUnauthorized(t *testing.T) {
	svc := newTestService()

	expired, err := svc.jwtManager.generateTokenWithDuration(testUser, -time.Minute)
	require.NoError(t, err)

	cases := []struct {
		name   string
		cookie *http.Cookie
	}{
		{"missing cookie", nil},
		{"garbage token", &http.Cookie{Name: AuthCookieName, Value: "garbage"}},
		{"expired token", &http.Cookie{Name: AuthCookieName, Value: expired}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handled := false
			req := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
			if tc.cookie != nil {
				req.AddCookie(tc.cookie)
			}
			w := httptest.NewRecorder()

			svc.AuthMiddleware()(protectedProbe(t, &handled)).ServeHTTP(w, req)

			assert.False(t, handled)
			res := w.Result()
			assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
			// Every failure mode must look identical to the client.
			body := w.Body.String()
			assert.Contains(t, body, "Authentication required")
		})
	}
}
