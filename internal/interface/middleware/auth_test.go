package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-blog-api/internal/application"
	"github.com/oksasatya/go-ddd-blog-api/pkg/helpers"
)

func init() { gin.SetMode(gin.TestMode) }

func newManager(t *testing.T, secret string, now func() time.Time) *helpers.JWTManager {
	t.Helper()
	m, err := helpers.NewJWTManager(secret, 2*time.Hour, helpers.WithClock(now))
	require.NoError(t, err)
	return m
}

func TestAuthenticate(t *testing.T) {
	m := newManager(t, "middleware_test_secret", time.Now)
	token, _, err := m.Issue(7)
	require.NoError(t, err)

	uid, err := Authenticate("Bearer "+token, m)
	require.NoError(t, err)
	assert.Equal(t, int64(7), uid)

	for _, header := range []string{"", "Bearer", "Bearer ", "Basic " + token, token, "Bearer garbage"} {
		_, err := Authenticate(header, m)
		assert.ErrorIs(t, err, application.ErrUnauthenticated, header)
	}

	other := newManager(t, "some_other_secret", time.Now)
	_, err = Authenticate("Bearer "+token, other)
	assert.ErrorIs(t, err, application.ErrUnauthenticated)

	past := func() time.Time { return time.Now().Add(-3 * time.Hour) }
	expired, _, err := newManager(t, "middleware_test_secret", past).Issue(7)
	require.NoError(t, err)
	_, err = Authenticate("Bearer "+expired, m)
	assert.ErrorIs(t, err, application.ErrUnauthenticated)
}

func newGatedEngine(m *helpers.JWTManager, logs *bytes.Buffer) (*gin.Engine, *bool) {
	logger := logrus.New()
	logger.SetOutput(logs)

	called := false
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/me", NewGate(m, logger).Require(func(c *gin.Context, uid int64) {
		called = true
		c.JSON(http.StatusOK, gin.H{"user_id": uid})
	}))
	return r, &called
}
func TestGate_AllowsValidToken(t *testing.T) {
	m := newManager(t, "middleware_test_secret", time.Now)
	r, called := newGatedEngine(m, &bytes.Buffer{})
	token, _, err := m.Issue(42)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *called)
	assert.JSONEq(t, `{"user_id":42}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestGate_RejectsWithoutCallingHandler(t *testing.T) {
	m := newManager(t, "middleware_test_secret", time.Now)
	foreign, _, err := newManager(t, "some_other_secret", time.Now).Issue(42)
	require.NoError(t, err)

	for _, header := range []string{"", "Bearer not-a-jwt", "Bearer " + foreign} {
		logs := &bytes.Buffer{}
		r, called := newGatedEngine(m, logs)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *called)
		assert.Contains(t, w.Body.String(), `"message":"unauthorized"`)
		assert.Contains(t, logs.String(), "request rejected by auth gate")
	}
}
