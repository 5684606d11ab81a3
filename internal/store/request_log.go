package store

import (
	"fmt"
	"time"
)

const (
	ModeDebug = "debug"
	ModeLive  = "live"
)

// RequestLog 一次计划请求的审计记录
type RequestLog struct {
	ID           int64     `json:"id"`
	RequestID    string    `json:"requestId"`
	Mode         string    `json:"mode"`
	Provider     string    `json:"provider"`
	StatusCode   int       `json:"statusCode"`
	MonthCount   int       `json:"monthCount"`
	RoleCount    int       `json:"roleCount"`
	LatencyMs    int64     `json:"latencyMs"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CreateRequestLog 写入审计记录，返回 id
func (s *Store) CreateRequestLog(log RequestLog) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO request_logs (request_id, mode, provider, status_code, month_count, role_count, latency_ms, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, log.RequestID, log.Mode, log.Provider, log.StatusCode, log.MonthCount, log.RoleCount, log.LatencyMs, log.ErrorMessage)
	if err != nil {
		return 0, fmt.Errorf("failed to create request log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get request log id: %w", err)
	}
	return id, nil
}

// ListRequestLogs 按时间倒序列出最近的审计记录
func (s *Store) ListRequestLogs(limit int) ([]RequestLog, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, request_id, mode, provider, status_code, month_count, role_count, latency_ms, error_message, created_at
		FROM request_logs
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query request logs failed: %w", err)
	}
	defer rows.Close()

	out := []RequestLog{}
	for rows.Next() {
		var it RequestLog
		if err := rows.Scan(&it.ID, &it.RequestID, &it.Mode, &it.Provider, &it.StatusCode,
			&it.MonthCount, &it.RoleCount, &it.LatencyMs, &it.ErrorMessage, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan request log failed: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate request logs failed: %w", err)
	}
	return out, nil
}

// CountRequestLogs 按模式统计请求数
func (s *Store) CountRequestLogs(mode string) (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(1) FROM request_logs WHERE mode = ?`, mode).Scan(&n); err != nil {
		return 0, fmt.Errorf("count request logs failed: %w", err)
	}
	return n, nil
}
