package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig 应用配置
type AppConfig struct {
	Server  ServerConfig  `toml:"server"`
	Data    DataConfig    `toml:"data"`
	LLM     LLMConfig     `toml:"llm"`
	Planner PlannerConfig `toml:"planner"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 数据配置
type DataConfig struct {
	DataDir  string `toml:"data_dir"`
	AuditLog bool   `toml:"audit_log"`
}

// LLMConfig 在线模式大模型配置
type LLMConfig struct {
	Provider       string `toml:"provider"`
	Model          string `toml:"model"`
	BaseURL        string `toml:"base_url"`
	APIKey         string `toml:"api_key"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Timeout 单次模型调用超时
func (c LLMConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 120 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// PlannerConfig 调试计划生成配置
type PlannerConfig struct {
	// Seed 为 0 时每次请求生成不同的计划
	Seed uint64 `toml:"seed"`
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	Path          string
	PortSpecified bool
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20262,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir:  "data",
			AuditLog: true,
		},
		LLM: LLMConfig{
			Provider:       "openai",
			TimeoutSeconds: 120,
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// DefaultConfigPath 可执行文件同目录下的 config.toml
func DefaultConfigPath() string {
	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}
	return filepath.Join(exeDir, "config.toml")
}

// LoadConfigWithInfo 从 config.toml 加载配置并返回元信息；path 为空时使用默认路径
func LoadConfigWithInfo(path string) (*AppConfig, LoadConfigInfo, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	info := LoadConfigInfo{Path: path}
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// 配置文件不存在，使用默认配置
			applyEnvOverrides(config, &info)
			return config, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}

	applyEnvOverrides(config, &info)
	return config, info, nil
}

// LoadConfig 从 config.toml 加载配置
func LoadConfig(path string) (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo(path)
	return config, err
}

// applyEnvOverrides 环境变量覆盖（API Key 不建议写入配置文件）
func applyEnvOverrides(config *AppConfig, info *LoadConfigInfo) {
	if v := strings.TrimSpace(os.Getenv("HIREPLAN_LLM_PROVIDER")); v != "" {
		config.LLM.Provider = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("HIREPLAN_LLM_MODEL")); v != "" {
		config.LLM.Model = v
	}
	if v := strings.TrimSpace(os.Getenv("HIREPLAN_PORT")); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			config.Server.Port = port
			info.PortSpecified = true
		}
	}

	if config.LLM.APIKey != "" {
		return
	}
	switch config.LLM.Provider {
	case "gemini":
		if v := os.Getenv("GEMINI_API_KEY"); v != "" {
			config.LLM.APIKey = v
		} else if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
			config.LLM.APIKey = v
		}
	default:
		config.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}
}

// EnsureDataDir 确保数据目录存在；相对路径基于可执行文件目录
func EnsureDataDir(config *AppConfig) (string, error) {
	dataDir := config.Data.DataDir
	if !filepath.IsAbs(dataDir) {
		exeDir, err := GetExeDir()
		if err != nil {
			exeDir = "."
		}
		dataDir = filepath.Join(exeDir, dataDir)
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}
