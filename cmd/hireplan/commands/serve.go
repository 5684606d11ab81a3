package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hireplan/internal/config"
	"hireplan/internal/logging"
	"hireplan/internal/server"
)

func serveCmd() *cobra.Command {
	var (
		port    int
		devMode bool
		dataDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the hiring plan HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			// 加载配置
			cfg, info, err := config.LoadConfigWithInfo(configPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "加载配置失败，使用默认配置: %v\n", err)
				cfg = config.DefaultConfig()
				info = config.LoadConfigInfo{}
			}

			// 命令行参数覆盖配置；port 仅在配置未显式指定时生效
			if port > 0 && !info.PortSpecified {
				cfg.Server.Port = port
			}
			if devMode {
				cfg.Server.DevMode = true
			}
			if dataDir != "" {
				cfg.Data.DataDir = dataDir
			}

			logger, err := logging.New(cfg.Server.DevMode)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			srv, err := server.NewServer(cfg, logger)
			if err != nil {
				return err
			}

			addr := fmt.Sprintf(":%d", cfg.Server.Port)
			errCh := make(chan error, 1)
			go func() {
				logger.Info("server starting",
					zap.String("addr", addr),
					zap.String("llm_provider", cfg.LLM.Provider),
					zap.Bool("dev_mode", cfg.Server.DevMode),
					zap.Bool("audit_log", cfg.Data.AuditLog))
				errCh <- srv.Run(addr)
			}()

			// 等待信号
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			select {
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("server failed: %w", err)
				}
				return nil
			case sig := <-quit:
				logger.Info("shutting down", zap.String("signal", sig.String()))
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("shutdown failed", zap.Error(err))
				return err
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "服务端口 (config.toml 优先；仅当未显式配置 port 时生效)")
	cmd.Flags().BoolVar(&devMode, "dev", false, "开发模式")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "数据目录 (覆盖配置文件)")
	return cmd
}
