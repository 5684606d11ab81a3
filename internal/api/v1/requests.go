package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const maxRequestLogLimit = 500

// ListRequests 最近的计划请求审计记录
// GET /api/requests?limit=50
func (h *Handler) ListRequests(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "审计日志未启用"})
		return
	}

	limit := 50
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "非法 limit"})
			return
		}
		limit = min(n, maxRequestLogLimit)
	}

	items, err := h.store.ListRequestLogs(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
