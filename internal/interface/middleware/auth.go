package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog-api/internal/application"
	"github.com/oksasatya/go-ddd-blog-api/pkg/response"
)

// TokenVerifier resolves a session token to a user id.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

// AuthedHandler is a handler that runs only for an authenticated user.
type AuthedHandler func(c *gin.Context, userID int64)

var errMissingBearer = errors.New("missing bearer token")

// Authenticate extracts a Bearer token from an Authorization header value and verifies it.
// Every failure wraps application.ErrUnauthenticated.
func Authenticate(header string, v TokenVerifier) (int64, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return 0, errors.Wrap(application.ErrUnauthenticated, errMissingBearer.Error())
	}
	uid, err := v.Verify(strings.TrimSpace(token))
	if err != nil {
		return 0, errors.Wrap(application.ErrUnauthenticated, err.Error())
	}
	return uid, nil
}

// Gate guards routes with a Bearer token. It never touches storage.
type Gate struct {
	Verifier TokenVerifier
	Logger   *logrus.Logger
}

func NewGate(v TokenVerifier, logger *logrus.Logger) *Gate {
	return &Gate{Verifier: v, Logger: logger}
}

// Require authenticates the request and passes the user id to h. Any failure is
// answered with the same 401 and h is not called.
func (g *Gate) Require(h AuthedHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := Authenticate(c.GetHeader("Authorization"), g.Verifier)
		if err != nil {
			g.Logger.WithError(err).WithFields(logrus.Fields{
				"path":       c.FullPath(),
				"request_id": c.GetString(response.RequestIDKey),
			}).Warn("request rejected by auth gate")
			response.Fail(c, http.StatusUnauthorized, "unauthorized", nil)
			return
		}
		h(c, uid)
	}
}
