package planner

import "hireplan/internal/model"

// GenerateDebug 本地生成随机但结构合法的招聘计划（调试模式，不调用模型）
func GenerateDebug(pc model.PlanContext, src Source) (*model.HiringPlan, error) {
	months, err := ExpandMonths(pc.StartDate, pc.EndDate)
	if err != nil {
		return nil, err
	}
	return Synthesize(months, pc.Roles, src)
}
