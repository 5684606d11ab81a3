package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RoleCity 岗位 + 城市
type RoleCity struct {
	Role string `json:"role"`
	City string `json:"city"`
}

// Key 计划内层键，如 "developer-NYC"
func (rc RoleCity) Key() string {
	return rc.Role + "-" + rc.City
}

// PlanContext 前端传入的计划上下文
type PlanContext struct {
	StartDate string     `json:"startDate"`
	EndDate   string     `json:"endDate"`
	Roles     []RoleCity `json:"roles"`
}

// RoleCount 单个岗位城市的招聘人数
type RoleCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// MonthPlan 某月的招聘安排（保持插入顺序）
type MonthPlan struct {
	Month string      `json:"month"`
	Roles []RoleCount `json:"roles"`
}

// Set 写入人数；键已存在时原位覆盖
func (m *MonthPlan) Set(key string, count int) {
	for i := range m.Roles {
		if m.Roles[i].Key == key {
			m.Roles[i].Count = count
			return
		}
	}
	m.Roles = append(m.Roles, RoleCount{Key: key, Count: count})
}

// Get 读取人数
func (m MonthPlan) Get(key string) (int, bool) {
	for _, rc := range m.Roles {
		if rc.Key == key {
			return rc.Count, true
		}
	}
	return 0, false
}

// Total 当月招聘总人数
func (m MonthPlan) Total() int {
	total := 0
	for _, rc := range m.Roles {
		total += rc.Count
	}
	return total
}

// HiringPlan 稀疏招聘计划：月份标签 -> 岗位城市键 -> 人数
//
// 缺失的月份表示当月不招聘；已存在的月份至少有一个条目。
// JSON 序列化为对象，按月份插入顺序输出。
type HiringPlan struct {
	Months []MonthPlan
}

// NewHiringPlan 创建空计划
func NewHiringPlan() *HiringPlan {
	return &HiringPlan{Months: []MonthPlan{}}
}

// Add 追加一个月；空月份被忽略，重复月份覆盖原条目
func (p *HiringPlan) Add(mp MonthPlan) {
	if len(mp.Roles) == 0 {
		return
	}
	for i := range p.Months {
		if p.Months[i].Month == mp.Month {
			p.Months[i] = mp
			return
		}
	}
	p.Months = append(p.Months, mp)
}

// Month 按标签查找
func (p *HiringPlan) Month(label string) (MonthPlan, bool) {
	for _, mp := range p.Months {
		if mp.Month == label {
			return mp, true
		}
	}
	return MonthPlan{}, false
}

// Len 有招聘的月份数
func (p *HiringPlan) Len() int {
	return len(p.Months)
}

// Keys 全部岗位城市键（首次出现顺序）
func (p *HiringPlan) Keys() []string {
	seen := make(map[string]bool)
	var keys []string
	for _, mp := range p.Months {
		for _, rc := range mp.Roles {
			if !seen[rc.Key] {
				seen[rc.Key] = true
				keys = append(keys, rc.Key)
			}
		}
	}
	return keys
}

// MarshalJSON 输出 { "Jan 2026": { "developer-NYC": 2 } }
func (p HiringPlan) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, mp := range p.Months {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, mp.Month); err != nil {
			return nil, err
		}
		buf.WriteByte('{')
		for j, rc := range mp.Roles {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := writeKey(&buf, rc.Key); err != nil {
				return nil, err
			}
			fmt.Fprintf(&buf, "%d", rc.Count)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeKey(buf *bytes.Buffer, key string) error {
	b, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(b)
	buf.WriteByte(':')
	return nil
}

// UnmarshalJSON 按文档顺序读取计划；人数为 0 的条目被丢弃，负数报错
func (p *HiringPlan) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := expectDelim(dec, '{'); err != nil {
		return fmt.Errorf("hiring plan: %w", err)
	}
	months := []MonthPlan{}
	for dec.More() {
		label, err := readKey(dec)
		if err != nil {
			return fmt.Errorf("hiring plan: %w", err)
		}
		if err := expectDelim(dec, '{'); err != nil {
			return fmt.Errorf("hiring plan month %q: %w", label, err)
		}
		mp := MonthPlan{Month: label}
		for dec.More() {
			key, err := readKey(dec)
			if err != nil {
				return fmt.Errorf("hiring plan month %q: %w", label, err)
			}
			var n json.Number
			if err := dec.Decode(&n); err != nil {
				return fmt.Errorf("hiring plan %q/%q: count must be a number: %w", label, key, err)
			}
			count, err := n.Int64()
			if err != nil {
				return fmt.Errorf("hiring plan %q/%q: count must be an integer: %w", label, key, err)
			}
			if count < 0 {
				return fmt.Errorf("hiring plan %q/%q: negative count %d", label, key, count)
			}
			if count > 0 {
				mp.Set(key, int(count))
			}
		}
		if err := expectDelim(dec, '}'); err != nil {
			return fmt.Errorf("hiring plan month %q: %w", label, err)
		}
		if len(mp.Roles) == 0 {
			continue
		}
		replaced := false
		for i := range months {
			if months[i].Month == label {
				months[i] = mp
				replaced = true
				break
			}
		}
		if !replaced {
			months = append(months, mp)
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return fmt.Errorf("hiring plan: %w", err)
	}
	p.Months = months
	return nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key, got %v", tok)
	}
	return key, nil
}
