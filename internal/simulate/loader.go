package simulate

import (
	"strconv"
	"strings"

	"github.com/diyouva/H1-B-Analysis/internal/dataset"
	"github.com/diyouva/H1-B-Analysis/internal/model"
	"github.com/diyouva/H1-B-Analysis/internal/parser"
)

// LoadClassified 从落盘的分类结果表还原记录
//
// 模拟器可以脱离一次完整管线运行，直接吃 clean_h1b_data.csv。
// Flexibility_Index 等关键列缺失返回 MissingColumnError。
func LoadClassified(tbl *dataset.Table) ([]*model.Record, error) {
	required := []string{"Employer", "Year", "Total_Applications", "Flexibility_Index"}
	cols := make(map[string]int, len(required))
	for _, name := range required {
		idx := tbl.ColumnIndex(name)
		if idx < 0 {
			return nil, &MissingColumnError{Column: name}
		}
		cols[name] = idx
	}

	// 可选列：缺失时保持零值
	totalApprovals := tbl.ColumnIndex("Total_Approvals")
	totalDenials := tbl.ColumnIndex("Total_Denials")
	employerStd := tbl.ColumnIndex("Employer_std")
	fortune := tbl.ColumnIndex("Fortune500")
	optFriendly := tbl.ColumnIndex("OPT_friendly")
	cptFriendly := tbl.ColumnIndex("CPT_friendly")

	records := make([]*model.Record, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		r := &model.Record{
			Employer:          tbl.Cell(row, cols["Employer"]),
			TotalApplications: parser.CoerceNumeric(tbl.Cell(row, cols["Total_Applications"])),
		}
		r.Year, _ = strconv.Atoi(strings.TrimSpace(tbl.Cell(row, cols["Year"])))
		r.FlexibilityIndex = int(parser.CoerceNumeric(tbl.Cell(row, cols["Flexibility_Index"])))

		if employerStd >= 0 {
			r.EmployerStd = tbl.Cell(row, employerStd)
		} else {
			r.EmployerStd = model.CanonicalKey(r.Employer)
		}
		if totalApprovals >= 0 {
			r.TotalApprovals = parser.CoerceNumeric(tbl.Cell(row, totalApprovals))
		}
		if totalDenials >= 0 {
			r.TotalDenials = parser.CoerceNumeric(tbl.Cell(row, totalDenials))
		}
		if fortune >= 0 {
			r.Fortune500 = parseBool(tbl.Cell(row, fortune))
		}
		if optFriendly >= 0 {
			r.OPTFriendly = parseBool(tbl.Cell(row, optFriendly))
		}
		if cptFriendly >= 0 {
			r.CPTFriendly = parseBool(tbl.Cell(row, cptFriendly))
		}

		records = append(records, r)
	}
	return records, nil
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1":
		return true
	default:
		return false
	}
}
