// Package llm 在线模式：把用户需求与上下文转发给外部大模型，原样返回模型输出
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Client 大模型文本补全接口
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrNotConfigured 在线模式未配置（缺少 API Key 等）
var ErrNotConfigured = errors.New("live model not configured")

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config 大模型客户端配置
type Config struct {
	Provider string
	Model    string
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
}

// NewClient 按 provider 创建客户端
func NewClient(ctx context.Context, cfg Config) (Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("%w: %s api key is empty", ErrNotConfigured, cfg.Provider)
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case ProviderOpenAI, "":
		return NewOpenAIClient(cfg), nil
	case ProviderGemini:
		c, err := NewGeminiClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
