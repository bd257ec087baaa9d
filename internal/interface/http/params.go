package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-blog-api/pkg/response"
)

// blogIDParam parses :id as a positive integer, writing 400 when it is not one.
func blogIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Fail(c, http.StatusBadRequest, "invalid blog id", map[string]string{"id": "must be a positive integer"})
		return 0, false
	}
	return id, true
}
