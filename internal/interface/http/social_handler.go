package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog-api/internal/application"
	"github.com/oksasatya/go-ddd-blog-api/pkg/response"
	"github.com/oksasatya/go-ddd-blog-api/pkg/validation"
)

type SocialHandler struct {
	Svc    *application.SocialService
	Logger *logrus.Logger
}

func NewSocialHandler(svc *application.SocialService, logger *logrus.Logger) *SocialHandler {
	return &SocialHandler{Svc: svc, Logger: logger}
}

type commentRequest struct {
	Comment string `json:"comment" binding:"required,notblank"`
}

// ListComments GET /api/blogs/:id/comments
func (h *SocialHandler) ListComments(c *gin.Context, _ int64) {
	id, ok := blogIDParam(c)
	if !ok {
		return
	}
	comments, err := h.Svc.ListComments(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"comments": comments}, "comments", gin.H{"count": len(comments)})
}

// AddComment POST /api/blogs/:id/comments
func (h *SocialHandler) AddComment(c *gin.Context, uid int64) {
	id, ok := blogIDParam(c)
	if !ok {
		return
	}
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "comment is required", validation.ToDetails(err))
		return
	}
	commentID, err := h.Svc.AddComment(c.Request.Context(), id, uid, req.Comment)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"comment_id": commentID}, "comment added", nil)
}

// Like POST /api/blogs/:id/like
func (h *SocialHandler) Like(c *gin.Context, uid int64) {
	id, ok := blogIDParam(c)
	if !ok {
		return
	}
	if err := h.Svc.Like(c.Request.Context(), id, uid); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"blog_id": id, "liked": true}, "blog liked", nil)
}

// Unlike DELETE /api/blogs/:id/like
func (h *SocialHandler) Unlike(c *gin.Context, uid int64) {
	id, ok := blogIDParam(c)
	if !ok {
		return
	}
	if err := h.Svc.Unlike(c.Request.Context(), id, uid); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"blog_id": id, "liked": false}, "blog unliked", nil)
}
