package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogs_CreateAndList(t *testing.T) {
	st, err := New(filepath.Join(t.TempDir(), "hireplan.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	for i, mode := range []string{ModeDebug, ModeLive, ModeDebug} {
		_, err := st.CreateRequestLog(RequestLog{
			RequestID:  "req-" + mode,
			Mode:       mode,
			StatusCode: 200,
			MonthCount: i + 1,
			RoleCount:  2,
			LatencyMs:  int64(i),
		})
		require.NoError(t, err)
	}

	logs, err := st.ListRequestLogs(2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	// 倒序：最近一条在前
	assert.Equal(t, 3, logs[0].MonthCount)
	assert.Equal(t, ModeLive, logs[1].Mode)
	assert.False(t, logs[0].CreatedAt.IsZero(), "created_at not populated")

	n, err := st.CountRequestLogs(ModeDebug)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = st.CountRequestLogs(ModeLive)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNew_ReopenKeepsSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "hireplan.db")
	st, err := New(dbPath)
	require.NoError(t, err)
	_, err = st.CreateRequestLog(RequestLog{RequestID: "a", Mode: ModeDebug, StatusCode: 500, ErrorMessage: "boom"})
	require.NoError(t, err)
	require.NoError(t, st.Close())

	st, err = New(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	logs, err := st.ListRequestLogs(0)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "boom", logs[0].ErrorMessage)
}
