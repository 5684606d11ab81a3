package exporter

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"hireplan/internal/model"
)

// PlanSheet 招聘计划工作表名
const PlanSheet = "Hiring Plan"

// BuildPlanWorkbook 将招聘计划写成工作簿
//
// 布局：首行为 "Role-City" + 各月份（按计划顺序），每个岗位城市一行（按键排序），
// 末列为行合计，末行为月合计。计划中不存在的组合留空。
func BuildPlanWorkbook(plan *model.HiringPlan) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), PlanSheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := fillPlanSheet(f, plan); err != nil {
		_ = f.Close()
		return nil, err
	}
	f.SetActiveSheet(0)
	return f, nil
}

func fillPlanSheet(f *excelize.File, plan *model.HiringPlan) error {
	keys := plan.Keys()
	sort.Strings(keys)
	totalCol := len(plan.Months) + 2
	totalRow := len(keys) + 2

	header := make([]any, 0, totalCol)
	header = append(header, "Role-City")
	for _, mp := range plan.Months {
		header = append(header, mp.Month)
	}
	header = append(header, "Total")
	if err := f.SetSheetRow(PlanSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	grand := 0
	for ri, key := range keys {
		row := ri + 2
		if err := setCell(f, 1, row, key); err != nil {
			return err
		}
		rowTotal := 0
		for mi, mp := range plan.Months {
			n, ok := mp.Get(key)
			if !ok {
				continue
			}
			if err := setCell(f, mi+2, row, n); err != nil {
				return err
			}
			rowTotal += n
		}
		if err := setCell(f, totalCol, row, rowTotal); err != nil {
			return err
		}
		grand += rowTotal
	}

	if err := setCell(f, 1, totalRow, "Total"); err != nil {
		return err
	}
	for mi, mp := range plan.Months {
		if err := setCell(f, mi+2, totalRow, mp.Total()); err != nil {
			return err
		}
	}
	if err := setCell(f, totalCol, totalRow, grand); err != nil {
		return err
	}

	return stylePlanSheet(f, totalCol, totalRow)
}

func stylePlanSheet(f *excelize.File, totalCol, totalRow int) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(totalCol, 1)
	if err := f.SetCellStyle(PlanSheet, "A1", lastHeader, bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	firstTotal, _ := excelize.CoordinatesToCellName(1, totalRow)
	lastTotal, _ := excelize.CoordinatesToCellName(totalCol, totalRow)
	if err := f.SetCellStyle(PlanSheet, firstTotal, lastTotal, bold); err != nil {
		return fmt.Errorf("style totals: %w", err)
	}
	if err := f.SetColWidth(PlanSheet, "A", "A", 28); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	return f.SetPanes(PlanSheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      1,
		TopLeftCell: "B2",
		ActivePane:  "bottomRight",
	})
}

func setCell(f *excelize.File, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(PlanSheet, cell, v); err != nil {
		return fmt.Errorf("write %s: %w", cell, err)
	}
	return nil
}
