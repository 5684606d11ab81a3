package planner

import (
	"encoding/json"
	"fmt"

	"hireplan/internal/model"
)

// ParseContext 宽松解析前端上下文
//
// 字段缺失或类型不符时返回 MalformedDateError / InvalidRoleListError，而不是 JSON 解码错误，
// 以便边界层统一按核心失败处理。
func ParseContext(raw json.RawMessage) (model.PlanContext, error) {
	var pc model.PlanContext

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return pc, &MalformedDateError{Field: "startDate", Err: fmt.Errorf("context is not an object")}
	}

	var err error
	if pc.StartDate, err = stringField(fields, "startDate"); err != nil {
		return pc, err
	}
	if pc.EndDate, err = stringField(fields, "endDate"); err != nil {
		return pc, err
	}
	if pc.Roles, err = roleList(fields["roles"]); err != nil {
		return pc, err
	}
	return pc, nil
}

func stringField(fields map[string]json.RawMessage, name string) (string, error) {
	v, ok := fields[name]
	if !ok {
		return "", &MalformedDateError{Field: name, Err: fmt.Errorf("missing")}
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", &MalformedDateError{Field: name, Value: string(v), Err: fmt.Errorf("not a string")}
	}
	return s, nil
}

func roleList(raw json.RawMessage) ([]model.RoleCity, error) {
	if raw == nil {
		return nil, &InvalidRoleListError{Index: -1, Reason: "roles missing"}
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil || entries == nil {
		return nil, &InvalidRoleListError{Index: -1, Reason: "roles is not a list"}
	}

	roles := make([]model.RoleCity, 0, len(entries))
	for i, entry := range entries {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(entry, &obj); err != nil || obj == nil {
			return nil, &InvalidRoleListError{Index: i, Reason: "entry is not an object"}
		}
		var rc model.RoleCity
		if err := json.Unmarshal(obj["role"], &rc.Role); err != nil {
			return nil, &InvalidRoleListError{Index: i, Reason: "role must be a string"}
		}
		if err := json.Unmarshal(obj["city"], &rc.City); err != nil {
			return nil, &InvalidRoleListError{Index: i, Reason: "city must be a string"}
		}
		roles = append(roles, rc)
	}
	if err := ValidateRoles(roles); err != nil {
		return nil, err
	}
	return roles, nil
}
