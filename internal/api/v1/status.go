package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hireplan/internal/store"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Service        string `json:"service"`
	Version        string `json:"version"`
	DebugAvailable bool   `json:"debugAvailable"` // 调试模式始终可用
	LiveProvider   string `json:"liveProvider"`   // 在线模式模型提供方
	LiveConfigured bool   `json:"liveConfigured"` // 在线模式是否已配置
	AuditEnabled   bool   `json:"auditEnabled"`   // 是否记录请求审计

	RequestCounts map[string]int `json:"requestCounts,omitempty"` // 按模式统计的已审计请求数
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	resp := StatusResponse{
		Service:        "hireplan",
		Version:        h.version,
		DebugAvailable: true,
		AuditEnabled:   h.store != nil,
	}
	if h.live != nil {
		resp.LiveProvider = h.live.Provider()
		resp.LiveConfigured = h.live.Configured()
	}
	if h.store != nil {
		counts := make(map[string]int, 2)
		for _, mode := range []string{store.ModeDebug, store.ModeLive} {
			n, err := h.store.CountRequestLogs(mode)
			if err != nil {
				h.logger.Warn("count request logs failed", zap.String("mode", mode), zap.Error(err))
				continue
			}
			counts[mode] = n
		}
		resp.RequestCounts = counts
	}
	c.JSON(http.StatusOK, resp)
}
