package exporter

import (
	"strconv"

	"github.com/diyouva/H1-B-Analysis/internal/dataset"
	"github.com/diyouva/H1-B-Analysis/internal/model"
)

// CleanColumns 清洗结果表的输出列（顺序即落盘顺序）
var CleanColumns = []string{
	"Employer",
	"Employer_std",
	"Year",
	"Initial_Approvals",
	"Continuing_Approvals",
	"Initial_Denials",
	"Continuing_Denials",
	"Total_Approvals",
	"Total_Denials",
	"Total_Applications",
	"Fortune500",
	"OPT_friendly",
	"CPT_friendly",
	"Flexibility_Index",
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RecordsToTable 将统一分类表转为平面表
func RecordsToTable(records []*model.Record) *dataset.Table {
	tbl := &dataset.Table{Columns: CleanColumns}
	for _, r := range records {
		tbl.Rows = append(tbl.Rows, []string{
			r.Employer,
			r.EmployerStd,
			strconv.Itoa(r.Year),
			formatFloat(r.InitialApprovals),
			formatFloat(r.ContinuingApprovals),
			formatFloat(r.InitialDenials),
			formatFloat(r.ContinuingDenials),
			formatFloat(r.TotalApprovals),
			formatFloat(r.TotalDenials),
			formatFloat(r.TotalApplications),
			strconv.FormatBool(r.Fortune500),
			strconv.FormatBool(r.OPTFriendly),
			strconv.FormatBool(r.CPTFriendly),
			strconv.Itoa(r.FlexibilityIndex),
		})
	}
	return tbl
}

// WriteCleanCSV 落盘清洗结果表（clean_h1b_data.csv）
func WriteCleanCSV(records []*model.Record, path string) error {
	return RecordsToTable(records).WriteCSV(path)
}
