package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hireplan/internal/planner"
)

type monthsResponse struct {
	Months []string `json:"months"`
	Count  int      `json:"count"`
}

// ListMonths 展开起止月份
// GET /api/months?start=2026-01&end=2026-06
func (h *Handler) ListMonths(c *gin.Context) {
	months, err := planner.ExpandMonths(c.Query("start"), c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, monthsResponse{Months: months, Count: len(months)})
}
