package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hireplan/internal/api/v1"
	"hireplan/internal/config"
	"hireplan/internal/llm"
	"hireplan/internal/planner"
	"hireplan/internal/store"
)

// Version 服务版本，构建时可通过 -ldflags 覆盖
var Version = "dev"

// Server HTTP服务器
type Server struct {
	router *gin.Engine
	store  *store.Store
	v1     *v1.Handler
	logger *zap.Logger
	http   *http.Server
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig, logger *zap.Logger) (*Server, error) {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// 审计日志（可选）
	var sqliteStore *store.Store
	if cfg.Data.AuditLog {
		dataDir, err := config.EnsureDataDir(cfg)
		if err != nil {
			return nil, fmt.Errorf("ensure data dir: %w", err)
		}
		sqliteStore, err = store.New(filepath.Join(dataDir, "hireplan.db"))
		if err != nil {
			return nil, fmt.Errorf("init audit store: %w", err)
		}
	}

	// 在线模式：未配置 API Key 时服务仍可启动，在线请求返回 500
	client, err := llm.NewClient(context.Background(), llm.Config{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.Model,
		BaseURL:  cfg.LLM.BaseURL,
		APIKey:   cfg.LLM.APIKey,
		Timeout:  cfg.LLM.Timeout(),
	})
	if err != nil {
		logger.Warn("live mode unavailable", zap.String("provider", cfg.LLM.Provider), zap.Error(err))
	}
	live := llm.NewPlanGenerator(client, cfg.LLM.Provider, cfg.LLM.Timeout(), err)

	newSource := planner.NewSource
	if seed := cfg.Planner.Seed; seed != 0 {
		newSource = func() planner.Source { return planner.NewSeededSource(seed) }
	}

	v1Handler := v1.NewHandler(v1.Options{
		Live:      live,
		Store:     sqliteStore,
		Logger:    logger,
		Version:   Version,
		NewSource: newSource,
	})

	s := &Server{
		router: gin.New(),
		store:  sqliteStore,
		v1:     v1Handler,
		logger: logger,
	}
	s.http = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.setupRoutes()

	return s, nil
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	s.router.Use(recoveryMiddleware(s.logger), requestIDMiddleware(), loggerMiddleware(s.logger), corsMiddleware())

	api := s.router.Group("/api")
	{
		s.v1.RegisterRoutes(api)
	}

	s.router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
}

// Handler 返回 HTTP 处理器（用于测试）
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run 启动服务器，阻塞直到 Shutdown
func (s *Server) Run(addr string) error {
	s.http.Addr = addr
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown 优雅关闭并释放存储
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.http.Shutdown(ctx)
	if s.store != nil {
		if cerr := s.store.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
