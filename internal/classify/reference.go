package classify

import (
	"fmt"
	"strings"

	"github.com/diyouva/H1-B-Analysis/internal/dataset"
	"github.com/diyouva/H1-B-Analysis/internal/model"
)

// MissingReferenceFileError 必需的参照名单文件缺失（目前仅大企业名单为必需）
type MissingReferenceFileError struct {
	Name string // 名单名称
	Path string
}

func (e *MissingReferenceFileError) Error() string {
	return fmt.Sprintf("required %s reference file missing: %s", e.Name, e.Path)
}

// cptFriendlyMark CPT 名单中的肯定标记
const cptFriendlyMark = "✓"

// KeyColumn 选取参照表中的雇主名称列
//
// 优先级：字面量 Employer_std、Employer，其次列名包含 COMPANY（不分大小写），
// 都没有时退回第一列。
func KeyColumn(tbl *dataset.Table) int {
	for _, exact := range []string{"Employer_std", "Employer"} {
		if idx := tbl.ColumnIndex(exact); idx >= 0 {
			return idx
		}
	}
	for idx, col := range tbl.Columns {
		if strings.Contains(strings.ToUpper(col), "COMPANY") {
			return idx
		}
	}
	return 0
}

// BuildMemberSet 将参照表转为规范化键集合
//
// 成员判定只做集合包含，键只做大写 + 去首尾空格，近似名称视为不同雇主。
func BuildMemberSet(tbl *dataset.Table) map[string]struct{} {
	set := make(map[string]struct{})
	if tbl == nil || len(tbl.Columns) == 0 {
		return set
	}

	keyCol := KeyColumn(tbl)
	for _, row := range tbl.Rows {
		key := model.CanonicalKey(tbl.Cell(row, keyCol))
		if key == "" {
			continue
		}
		set[key] = struct{}{}
	}
	return set
}

// FilterCPTFriendly 按 "CPT Friendly" 指示列过滤
//
// 列存在时仅保留值为 ✓ 的行；列不存在时不过滤，整表作为成员集。
func FilterCPTFriendly(tbl *dataset.Table) *dataset.Table {
	if tbl == nil {
		return nil
	}
	col := tbl.ColumnIndex("CPT Friendly")
	if col < 0 {
		return tbl
	}

	filtered := &dataset.Table{Columns: tbl.Columns}
	for _, row := range tbl.Rows {
		if strings.TrimSpace(tbl.Cell(row, col)) == cptFriendlyMark {
			filtered.Rows = append(filtered.Rows, row)
		}
	}
	return filtered
}
