package v1

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hireplan/internal/exporter"
	"hireplan/internal/model"
	"hireplan/internal/planner"
)

const exportFilename = "hiring-plan.xlsx"

// exportRequest 导出请求：直接给出计划，或给出上下文由调试模式生成
type exportRequest struct {
	Plan    *model.HiringPlan `json:"plan"`
	Context json.RawMessage   `json:"context"`
	Seed    *uint64           `json:"seed"`
}

// ExportPlan 导出招聘计划为 Excel
// POST /api/plan/export
func (h *Handler) ExportPlan(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
		return
	}

	plan := req.Plan
	if plan == nil {
		if len(req.Context) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "plan 或 context 必须提供其一"})
			return
		}
		pc, err := planner.ParseContext(req.Context)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		src := h.newSource()
		if req.Seed != nil {
			src = planner.NewSeededSource(*req.Seed)
		}
		plan, err = planner.GenerateDebug(pc, src)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	f, err := exporter.BuildPlanWorkbook(plan)
	if err != nil {
		h.logger.Error("build plan workbook failed", zap.String("request_id", requestID(c)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "导出失败"})
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		h.logger.Error("write plan workbook failed", zap.String("request_id", requestID(c)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "写入文件失败"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+exportFilename+"\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
