package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// PlanFormat 要求模型输出的 JSON 结构
const PlanFormat = "{ monthYear: { roleCity: count } }"

// BuildPlanPrompt 组装完整提示词
func BuildPlanPrompt(prompt string, planContext json.RawMessage) string {
	return fmt.Sprintf(
		"Generate a headcount hiring plan for this user prompt and context. "+
			"Output should be in JSON in the given format. "+
			"Prompt: %s. "+
			"Context: %s. "+
			"Format: %s",
		prompt, compactContext(planContext), PlanFormat,
	)
}

func compactContext(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

// PlanGenerator 在线计划生成器；模型输出不做结构校验
type PlanGenerator struct {
	client   Client
	provider string
	timeout  time.Duration
	initErr  error
}

// NewPlanGenerator 创建生成器；client 为 nil 时 Generate 返回 initErr
func NewPlanGenerator(client Client, provider string, timeout time.Duration, initErr error) *PlanGenerator {
	if client == nil && initErr == nil {
		initErr = ErrNotConfigured
	}
	return &PlanGenerator{client: client, provider: provider, timeout: timeout, initErr: initErr}
}

// Provider 模型提供方
func (g *PlanGenerator) Provider() string { return g.provider }

// Configured 是否可用
func (g *PlanGenerator) Configured() bool { return g.client != nil }

// Generate 调用模型并返回原始文本
func (g *PlanGenerator) Generate(ctx context.Context, prompt string, planContext json.RawMessage) (string, error) {
	if g.client == nil {
		return "", g.initErr
	}
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	out, err := g.client.Complete(ctx, BuildPlanPrompt(prompt, planContext))
	if err != nil {
		return "", fmt.Errorf("%s generate plan: %w", g.provider, err)
	}
	return out, nil
}
