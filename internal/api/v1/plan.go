package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hireplan/internal/model"
	"hireplan/internal/planner"
	"hireplan/internal/store"
)

const (
	msgInvalidJSON    = "Invalid JSON"
	msgMissingPrompt  = "Missing prompt"
	msgMissingContext = "Missing context"
	msgRequestFailed  = "Request failed"
)

var errLiveUnavailable = errors.New("live generator not configured")

// planRequest 计划请求；字段保留原始 JSON 以区分“缺失”与“零值”
type planRequest struct {
	Prompt  json.RawMessage
	Context json.RawMessage
	Debug   json.RawMessage
}

// parsePlanRequest 解析请求体；合法的数组或字符串视为缺少 prompt，其余非对象视为非法 JSON
func parsePlanRequest(body []byte) (planRequest, string) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		if trimmed := bytes.TrimSpace(body); json.Valid(trimmed) && (trimmed[0] == '[' || trimmed[0] == '"') {
			return planRequest{}, msgMissingPrompt
		}
		return planRequest{}, msgInvalidJSON
	}
	prompt, ok := fields["prompt"]
	if !ok {
		return planRequest{}, msgMissingPrompt
	}
	planContext, ok := fields["context"]
	if !ok {
		return planRequest{}, msgMissingContext
	}
	return planRequest{Prompt: prompt, Context: planContext, Debug: fields["debug"]}, ""
}

// promptText 字符串取其值，其他 JSON 值按原文拼入提示词
func promptText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// truthy 按 JSON 值的真假判断 debug 开关：false/0/""/null/[]/{} 为假
func truthy(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	}
	return false
}

// GeneratePlan 生成招聘计划
// POST /api/plan
func (h *Handler) GeneratePlan(c *gin.Context) {
	start := time.Now()

	body, err := c.GetRawData()
	if err != nil {
		c.String(http.StatusBadRequest, msgInvalidJSON)
		return
	}
	req, msg := parsePlanRequest(body)
	if msg != "" {
		c.String(http.StatusBadRequest, msg)
		return
	}

	entry := store.RequestLog{RequestID: requestID(c)}

	var payload []byte
	if truthy(req.Debug) {
		entry.Mode = store.ModeDebug
		var plan *model.HiringPlan
		plan, err = h.debugPlan(req.Context, &entry)
		if err == nil {
			payload, err = json.Marshal(plan)
		}
	} else {
		entry.Mode = store.ModeLive
		entry.Provider = h.liveProvider()
		var out string
		out, err = h.livePlan(c, req)
		payload = []byte(out)
	}

	if err != nil {
		h.logger.Error("plan generation failed",
			zap.String("request_id", entry.RequestID),
			zap.String("mode", entry.Mode),
			zap.Error(err))
		entry.StatusCode = http.StatusInternalServerError
		entry.ErrorMessage = err.Error()
		h.audit(entry, start)
		c.String(http.StatusInternalServerError, msgRequestFailed)
		return
	}

	entry.StatusCode = http.StatusOK
	h.audit(entry, start)
	c.Data(http.StatusOK, "application/json", payload)
}

func (h *Handler) debugPlan(raw json.RawMessage, entry *store.RequestLog) (*model.HiringPlan, error) {
	pc, err := planner.ParseContext(raw)
	if err != nil {
		return nil, err
	}
	entry.RoleCount = len(pc.Roles)
	plan, err := planner.GenerateDebug(pc, h.newSource())
	if err != nil {
		return nil, err
	}
	entry.MonthCount = plan.Len()
	return plan, nil
}

func (h *Handler) livePlan(c *gin.Context, req planRequest) (string, error) {
	if h.live == nil {
		return "", errLiveUnavailable
	}
	return h.live.Generate(c.Request.Context(), promptText(req.Prompt), req.Context)
}

func (h *Handler) liveProvider() string {
	if h.live == nil {
		return ""
	}
	return h.live.Provider()
}

// audit 记录审计日志；写入失败仅告警，不影响响应
func (h *Handler) audit(entry store.RequestLog, start time.Time) {
	if h.store == nil {
		return
	}
	entry.LatencyMs = time.Since(start).Milliseconds()
	if _, err := h.store.CreateRequestLog(entry); err != nil {
		h.logger.Warn("write request log failed", zap.String("request_id", entry.RequestID), zap.Error(err))
	}
}
