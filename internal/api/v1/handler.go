package v1

import (
	"context"
	"encoding/json"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hireplan/internal/planner"
	"hireplan/internal/store"
)

// LiveGenerator 在线模式计划生成器
type LiveGenerator interface {
	Generate(ctx context.Context, prompt string, planContext json.RawMessage) (string, error)
	Provider() string
	Configured() bool
}

// Options Handler 依赖
type Options struct {
	Live    LiveGenerator
	Store   *store.Store // 为空时不记录审计日志
	Logger  *zap.Logger
	Version string
	// NewSource 每个调试请求的随机源；为空时使用 planner.NewSource
	NewSource func() planner.Source
}

// Handler V1 API 处理器
type Handler struct {
	live      LiveGenerator
	store     *store.Store
	logger    *zap.Logger
	version   string
	newSource func() planner.Source
}

// NewHandler 创建 V1 API 处理器
func NewHandler(opts Options) *Handler {
	h := &Handler{
		live:      opts.Live,
		store:     opts.Store,
		logger:    opts.Logger,
		version:   opts.Version,
		newSource: opts.NewSource,
	}
	if h.logger == nil {
		h.logger = zap.NewNop()
	}
	if h.newSource == nil {
		h.newSource = planner.NewSource
	}
	if h.version == "" {
		h.version = "dev"
	}
	return h
}

// RegisterRoutes 注册 V1 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)
	// 月份展开
	router.GET("/months", h.ListMonths)

	// 计划生成
	router.POST("/plan", h.GeneratePlan)
	// 计划导出
	router.POST("/plan/export", h.ExportPlan)

	// 请求审计
	router.GET("/requests", h.ListRequests)
}

// RequestIDKey 请求 ID 在 gin.Context 中的键，由服务端中间件写入
const RequestIDKey = "request_id"

func requestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
