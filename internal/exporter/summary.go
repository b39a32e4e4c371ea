package exporter

import (
	"strconv"

	"github.com/diyouva/H1-B-Analysis/internal/dataset"
	"github.com/diyouva/H1-B-Analysis/internal/model"
)

// SummaryToTable 将模拟汇总转为平面表
//
// 启用 Fortune500 交叉分组时多出一列，两种形态的表头固定。
func SummaryToTable(rows []model.SummaryRow) *dataset.Table {
	withFortune := len(rows) > 0 && rows[0].Fortune500 != nil

	columns := []string{"Year", "Flex_Group"}
	if withFortune {
		columns = append(columns, "Fortune500")
	}
	columns = append(columns, "Total_Applications", "Simulated_Total_Applications", "Change_%")

	tbl := &dataset.Table{Columns: columns}
	for _, row := range rows {
		cells := []string{strconv.Itoa(row.Year), string(row.FlexGroup)}
		if withFortune {
			v := false
			if row.Fortune500 != nil {
				v = *row.Fortune500
			}
			cells = append(cells, strconv.FormatBool(v))
		}
		cells = append(cells,
			formatFloat(row.TotalApplications),
			formatFloat(row.SimulatedTotalApplications),
			strconv.FormatFloat(row.ChangePercent, 'f', 2, 64),
		)
		tbl.Rows = append(tbl.Rows, cells)
	}
	return tbl
}

// WriteSummaryCSV 落盘模拟汇总表（simulation_result.csv）
func WriteSummaryCSV(rows []model.SummaryRow, path string) error {
	return SummaryToTable(rows).WriteCSV(path)
}
