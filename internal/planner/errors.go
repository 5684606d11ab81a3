package planner

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedDate 日期前缀无法解析为年月
	ErrMalformedDate = errors.New("malformed date")
	// ErrInvalidRoleList 岗位列表中存在非法条目
	ErrInvalidRoleList = errors.New("invalid role list")
)

// MalformedDateError 日期字符串的 YYYY-MM 前缀解析失败
type MalformedDateError struct {
	Field string // startDate / endDate，未知时为空
	Value string
	Err   error
}

func (e *MalformedDateError) Error() string {
	msg := fmt.Sprintf("malformed date %q", e.Value)
	if e.Field != "" {
		msg = fmt.Sprintf("malformed %s %q", e.Field, e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedDateError) Unwrap() error { return e.Err }

// Is 使 errors.Is(err, ErrMalformedDate) 成立
func (e *MalformedDateError) Is(target error) bool { return target == ErrMalformedDate }

// InvalidRoleListError 岗位列表校验失败；Index 为 -1 表示列表本身非法
type InvalidRoleListError struct {
	Index  int
	Reason string
}

func (e *InvalidRoleListError) Error() string {
	if e.Index < 0 {
		return "invalid role list: " + e.Reason
	}
	return fmt.Sprintf("invalid role list: entry %d: %s", e.Index, e.Reason)
}

// Is 使 errors.Is(err, ErrInvalidRoleList) 成立
func (e *InvalidRoleListError) Is(target error) bool { return target == ErrInvalidRoleList }
