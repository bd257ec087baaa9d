package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog-api/internal/application"
	"github.com/oksasatya/go-ddd-blog-api/pkg/response"
	"github.com/oksasatya/go-ddd-blog-api/pkg/validation"
)

type BlogHandler struct {
	Svc    *application.BlogService
	Logger *logrus.Logger
}

func NewBlogHandler(svc *application.BlogService, logger *logrus.Logger) *BlogHandler {
	return &BlogHandler{Svc: svc, Logger: logger}
}

type createBlogRequest struct {
	Title   string `json:"title" binding:"required,notblank"`
	Content string `json:"content" binding:"required,notblank"`
}

type updateBlogRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// ListAll GET /api/all-blogs
func (h *BlogHandler) ListAll(c *gin.Context) {
	posts, err := h.Svc.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"blogs": posts}, "blogs", gin.H{"count": len(posts)})
}

// ListMine GET /api/my-blogs
func (h *BlogHandler) ListMine(c *gin.Context, uid int64) {
	posts, err := h.Svc.ListMine(c.Request.Context(), uid)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"blogs": posts}, "your blogs", gin.H{"count": len(posts)})
}

// Get GET /api/blogs/:id
func (h *BlogHandler) Get(c *gin.Context) {
	id, ok := blogIDParam(c)
	if !ok {
		return
	}
	post, err := h.Svc.GetDetail(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, post, "blog", nil)
}

// Create POST /api/blogs
func (h *BlogHandler) Create(c *gin.Context, uid int64) {
	var req createBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "title and content are required", validation.ToDetails(err))
		return
	}
	id, err := h.Svc.Create(c.Request.Context(), uid, req.Title, req.Content)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"blog_id": id}, "blog created", nil)
}

// Update PATCH /api/blogs/:id
func (h *BlogHandler) Update(c *gin.Context, uid int64) {
	id, ok := blogIDParam(c)
	if !ok {
		return
	}
	var req updateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	err := h.Svc.Update(c.Request.Context(), id, uid, application.UpdatePostInput{Title: req.Title, Content: req.Content})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"blog_id": id}, "blog updated", nil)
}

// Delete DELETE /api/blogs/:id
func (h *BlogHandler) Delete(c *gin.Context, uid int64) {
	id, ok := blogIDParam(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id, uid); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"blog_id": id}, "blog deleted", nil)
}
