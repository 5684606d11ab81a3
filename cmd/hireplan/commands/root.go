package commands

import (
	"github.com/spf13/cobra"
)

var configPath string

// Execute 构建并执行根命令
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "hireplan",
		Short:        "Headcount hiring plan service",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config.toml 路径 (默认可执行文件同目录)")

	root.AddCommand(serveCmd(), debugCmd(), monthsCmd())
	return root
}
