package planner

import (
	"fmt"
	"time"
)

const (
	yearMonthLayout = "2006-01"
	monthLabel      = "Jan 2006"
)

// YearMonth 日历月
type YearMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// ParseYearMonth 解析日期字符串的前 7 个字符（YYYY-MM），日及更细粒度被丢弃
func ParseYearMonth(s string) (YearMonth, error) {
	if len(s) < len(yearMonthLayout) {
		return YearMonth{}, &MalformedDateError{Value: s, Err: fmt.Errorf("need at least %d characters", len(yearMonthLayout))}
	}
	t, err := time.Parse(yearMonthLayout, s[:len(yearMonthLayout)])
	if err != nil {
		return YearMonth{}, &MalformedDateError{Value: s, Err: err}
	}
	if t.Year() < 1 {
		return YearMonth{}, &MalformedDateError{Value: s, Err: fmt.Errorf("year %d out of range", t.Year())}
	}
	return YearMonth{Year: t.Year(), Month: int(t.Month())}, nil
}

// Index 月序号（year*12 + month），用于比较与计数
func (ym YearMonth) Index() int {
	return ym.Year*12 + ym.Month
}

// After 是否晚于 other
func (ym YearMonth) After(other YearMonth) bool {
	return ym.Index() > other.Index()
}

// Next 下一个月，12 月滚动到次年 1 月
func (ym YearMonth) Next() YearMonth {
	if ym.Month == 12 {
		return YearMonth{Year: ym.Year + 1, Month: 1}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month + 1}
}

// Label 展示用月份标签，如 "Jan 2026"
func (ym YearMonth) Label() string {
	return time.Date(ym.Year, time.Month(ym.Month), 1, 0, 0, 0, 0, time.UTC).Format(monthLabel)
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}

// ExpandRange 枚举 [start, end] 之间的所有月份（含两端）；start 晚于 end 时返回空
func ExpandRange(start, end YearMonth) []string {
	if start.After(end) {
		return []string{}
	}
	labels := make([]string, 0, end.Index()-start.Index()+1)
	for cur := start; !cur.After(end); cur = cur.Next() {
		labels = append(labels, cur.Label())
	}
	return labels
}

// ExpandMonths 解析起止日期并展开月份标签序列
func ExpandMonths(startDate, endDate string) ([]string, error) {
	start, err := ParseYearMonth(startDate)
	if err != nil {
		return nil, withField(err, "startDate")
	}
	end, err := ParseYearMonth(endDate)
	if err != nil {
		return nil, withField(err, "endDate")
	}
	return ExpandRange(start, end), nil
}

func withField(err error, field string) error {
	if mde, ok := err.(*MalformedDateError); ok && mde.Field == "" {
		mde.Field = field
	}
	return err
}
