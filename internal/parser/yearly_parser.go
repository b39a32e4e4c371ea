package parser

import (
	"github.com/diyouva/H1-B-Analysis/internal/dataset"
	"github.com/diyouva/H1-B-Analysis/internal/model"
)

// ParseYearlyTable 解析单个年度文件表
//
// 定位雇主列与四个数值列，逐行生成统一口径记录并计算三个合计字段。
// 找不到雇主列返回 SchemaError；数值列缺失不报错，按零填充并记入
// MissingFields。任何一行都不丢弃。
func ParseYearlyTable(tbl *dataset.Table, source string, year int) (*ParseResult, error) {
	empCol := DetectEmployerColumn(tbl.Columns)
	if empCol < 0 {
		return nil, &SchemaError{Source: source}
	}

	mapping, missing := ResolveOutcomeColumns(tbl.Columns)

	result := &ParseResult{
		Source:        source,
		MissingFields: missing,
	}

	for _, row := range tbl.Rows {
		employer := tbl.Cell(row, empCol)
		record := &model.Record{
			Employer:    employer,
			EmployerStd: model.CanonicalKey(employer),
			Year:        year,
		}

		if col, ok := mapping["Initial_Approvals"]; ok {
			record.InitialApprovals = clampNonNegative(CoerceNumeric(tbl.Cell(row, col)))
		}
		if col, ok := mapping["Continuing_Approvals"]; ok {
			record.ContinuingApprovals = clampNonNegative(CoerceNumeric(tbl.Cell(row, col)))
		}
		if col, ok := mapping["Initial_Denials"]; ok {
			record.InitialDenials = clampNonNegative(CoerceNumeric(tbl.Cell(row, col)))
		}
		if col, ok := mapping["Continuing_Denials"]; ok {
			record.ContinuingDenials = clampNonNegative(CoerceNumeric(tbl.Cell(row, col)))
		}

		record.ComputeTotals()
		result.Records = append(result.Records, record)
	}

	return result, nil
}
