package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/diyouva/H1-B-Analysis/internal/dataset"
	"github.com/diyouva/H1-B-Analysis/internal/model"
)

// 分析工作簿的固定 Sheet 名
const (
	SheetCleanData    = "Clean Data"
	SheetYearlyTotals = "Yearly Totals"
	SheetSimulation   = "Simulation"
)

// BuildWorkbook 构建分析工作簿
//
// 三个 Sheet：清洗结果全量表、年度合计、模拟汇总。图表渲染交给展示层，
// 这里只给成形的数据表。
func BuildWorkbook(records []*model.Record, yearly []model.YearlyTotal, summary []model.SummaryRow) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeTableSheet(f, SheetCleanData, RecordsToTable(records)); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeTableSheet(f, SheetYearlyTotals, yearlyToTable(yearly)); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeTableSheet(f, SheetSimulation, SummaryToTable(summary)); err != nil {
		_ = f.Close()
		return nil, err
	}

	// 删除 excelize 默认创建的空 Sheet
	if idx, err := f.GetSheetIndex(SheetCleanData); err == nil {
		f.SetActiveSheet(idx)
	}
	_ = f.DeleteSheet("Sheet1")

	return f, nil
}

// writeTableSheet 将平面表写入指定 Sheet
func writeTableSheet(f *excelize.File, sheet string, tbl *dataset.Table) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	header := make([]any, len(tbl.Columns))
	for i, c := range tbl.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", sheet, err)
	}

	for i, row := range tbl.Rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+2, sheet, err)
		}
	}
	return nil
}

func yearlyToTable(yearly []model.YearlyTotal) *dataset.Table {
	tbl := &dataset.Table{
		Columns: []string{"Year", "Total_Approvals", "Total_Denials", "Total_Applications"},
	}
	for _, y := range yearly {
		tbl.Rows = append(tbl.Rows, []string{
			fmt.Sprintf("%d", y.Year),
			formatFloat(y.TotalApprovals),
			formatFloat(y.TotalDenials),
			formatFloat(y.TotalApplications),
		})
	}
	return tbl
}
