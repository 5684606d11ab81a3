package planner

import "hireplan/internal/model"

const (
	minHeadcount = 1
	maxHeadcount = 3
)

// ValidateRoles 校验岗位列表：role 与 city 均为非空字符串
func ValidateRoles(roles []model.RoleCity) error {
	for i, rc := range roles {
		if rc.Role == "" {
			return &InvalidRoleListError{Index: i, Reason: "role is empty"}
		}
		if rc.City == "" {
			return &InvalidRoleListError{Index: i, Reason: "city is empty"}
		}
	}
	return nil
}

// Synthesize 为每个月随机生成招聘安排
//
// 每月先在 [0, len(roles)] 中均匀抽取 k，再按位置无放回抽取 k 个岗位，
// 每个岗位人数在 [1, 3] 中均匀抽取。k 为 0 的月份不出现在结果中。
func Synthesize(months []string, roles []model.RoleCity, src Source) (*model.HiringPlan, error) {
	if err := ValidateRoles(roles); err != nil {
		return nil, err
	}
	if src == nil {
		src = NewSource()
	}

	plan := model.NewHiringPlan()
	for _, month := range months {
		k := src.IntRange(0, len(roles))
		mp := model.MonthPlan{Month: month}
		for _, idx := range src.Sample(len(roles), k) {
			mp.Set(roles[idx].Key(), src.IntRange(minHeadcount, maxHeadcount))
		}
		plan.Add(mp)
	}
	return plan, nil
}
