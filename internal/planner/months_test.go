package planner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandMonths_YearRollover(t *testing.T) {
	got, err := ExpandMonths("2025-11", "2026-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"Nov 2025", "Dec 2025", "Jan 2026", "Feb 2026"}, got)
}

func TestExpandMonths_IgnoresDayAndTime(t *testing.T) {
	got, err := ExpandMonths("2026-01-31", "2026-03-01T12:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, []string{"Jan 2026", "Feb 2026", "Mar 2026"}, got)
}

func TestExpandMonths_SingleMonth(t *testing.T) {
	got, err := ExpandMonths("2026-06", "2026-06-15")
	require.NoError(t, err)
	assert.Equal(t, []string{"Jun 2026"}, got)
}

func TestExpandMonths_ReverseRangeIsEmpty(t *testing.T) {
	got, err := ExpandMonths("2026-03", "2026-01")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExpandMonths_Inclusivity(t *testing.T) {
	cases := [][2]string{
		{"2024-01", "2024-12"},
		{"2019-07", "2026-02"},
		{"2025-12", "2026-01"},
		{"2030-05", "2030-05"},
	}
	for _, tc := range cases {
		t.Run(tc[0]+".."+tc[1], func(t *testing.T) {
			start, err := ParseYearMonth(tc[0])
			require.NoError(t, err)
			end, err := ParseYearMonth(tc[1])
			require.NoError(t, err)

			got, err := ExpandMonths(tc[0], tc[1])
			require.NoError(t, err)

			require.Len(t, got, end.Index()-start.Index()+1)
			assert.Equal(t, start.Label(), got[0])
			assert.Equal(t, end.Label(), got[len(got)-1])

			seen := make(map[string]bool, len(got))
			cur := start
			for i, label := range got {
				assert.Equal(t, cur.Label(), label, "position %d", i)
				assert.False(t, seen[label], "duplicate label %s", label)
				seen[label] = true
				cur = cur.Next()
			}
		})
	}
}

func TestExpandMonths_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		field string
	}{
		{name: "too short", start: "2026-1", end: "2026-02", field: "startDate"},
		{name: "bad month", start: "2026-01", end: "2026-13", field: "endDate"},
		{name: "zero month", start: "2026-00", end: "2026-02", field: "startDate"},
		{name: "slash separator", start: "2026/01", end: "2026-02", field: "startDate"},
		{name: "garbage", start: "2026-01", end: "next month", field: "endDate"},
		{name: "empty", start: "", end: "2026-02", field: "startDate"},
		{name: "year zero", start: "0000-01", end: "2026-01", field: "startDate"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ExpandMonths(tc.start, tc.end)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedDate))

			var mde *MalformedDateError
			require.True(t, errors.As(err, &mde))
			assert.Equal(t, tc.field, mde.Field)
		})
	}
}

func TestYearMonth_Next(t *testing.T) {
	assert.Equal(t, YearMonth{Year: 2027, Month: 1}, YearMonth{Year: 2026, Month: 12}.Next())
	assert.Equal(t, YearMonth{Year: 2026, Month: 7}, YearMonth{Year: 2026, Month: 6}.Next())
	assert.Equal(t, "2026-07", YearMonth{Year: 2026, Month: 7}.String())
}
