package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog-api/internal/application"
	"github.com/oksasatya/go-ddd-blog-api/pkg/response"
)

const msgInternal = "something bad happened"

// statusFor maps service errors to a status code and a client-facing message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, application.ErrValidation):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, application.ErrUnauthenticated):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, application.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, application.ErrForbidden):
		return http.StatusForbidden, "you are not the owner of this blog"
	case errors.Is(err, application.ErrAlreadyLiked):
		return http.StatusBadRequest, "you have already liked this blog"
	case errors.Is(err, application.ErrNotLiked):
		return http.StatusNotFound, "you have not liked this blog"
	case errors.Is(err, application.ErrUpdateFailed):
		return http.StatusBadRequest, "update failed"
	case errors.Is(err, application.ErrNotFound):
		return http.StatusNotFound, "not found"
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

// writeError logs err with its full chain and writes a stable envelope. Validation
// and not-found messages carry the service's own wording; nothing else leaks.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	status, msg := statusFor(err)

	entry := logger.WithError(err).WithFields(logrus.Fields{
		"path":       c.FullPath(),
		"status":     status,
		"request_id": c.GetString(response.RequestIDKey),
	})
	if status >= http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Info("request rejected")
	}

	var detail any
	if status == http.StatusBadRequest || status == http.StatusNotFound {
		detail = clientDetail(err)
	}
	response.Fail(c, status, msg, detail)
}

// clientDetail keeps only the message the service wrapped around the sentinel.
func clientDetail(err error) string {
	for _, s := range []error{
		application.ErrValidation,
		application.ErrNotFound,
		application.ErrAlreadyLiked,
		application.ErrNotLiked,
		application.ErrUpdateFailed,
	} {
		if errors.Is(err, s) {
			return strings.TrimSuffix(err.Error(), ": "+s.Error())
		}
	}
	return ""
}
