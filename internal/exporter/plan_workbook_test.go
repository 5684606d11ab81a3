package exporter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"hireplan/internal/model"
)

func TestBuildPlanWorkbook_Layout(t *testing.T) {
	plan := model.NewHiringPlan()
	plan.Add(model.MonthPlan{Month: "Jan 2026", Roles: []model.RoleCount{
		{Key: "pm-London", Count: 1},
		{Key: "developer-NYC", Count: 3},
	}})
	plan.Add(model.MonthPlan{Month: "Mar 2026", Roles: []model.RoleCount{
		{Key: "developer-NYC", Count: 2},
	}})

	f, err := BuildPlanWorkbook(plan)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	// 写出再读回，确认产物是合法 xlsx
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	rf, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rf.Close() })

	for _, tc := range []struct {
		cell string
		want string
	}{
		{cell: "A1", want: "Role-City"},
		{cell: "B1", want: "Jan 2026"},
		{cell: "C1", want: "Mar 2026"},
		{cell: "D1", want: "Total"},
		{cell: "A2", want: "developer-NYC"},
		{cell: "B2", want: "3"},
		{cell: "C2", want: "2"},
		{cell: "D2", want: "5"},
		{cell: "A3", want: "pm-London"},
		{cell: "B3", want: "1"},
		{cell: "C3", want: ""},
		{cell: "D3", want: "1"},
		{cell: "A4", want: "Total"},
		{cell: "B4", want: "4"},
		{cell: "C4", want: "2"},
		{cell: "D4", want: "6"},
	} {
		got, err := rf.GetCellValue(PlanSheet, tc.cell)
		require.NoError(t, err, tc.cell)
		assert.Equal(t, tc.want, got, tc.cell)
	}
}

func TestBuildPlanWorkbook_EmptyPlan(t *testing.T) {
	f, err := BuildPlanWorkbook(model.NewHiringPlan())
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	got, err := f.GetCellValue(PlanSheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Total", got)

	got, err = f.GetCellValue(PlanSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "0", got)
}
