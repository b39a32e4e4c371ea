package parser

import "strings"

// DetectEmployerColumn 在规范化后的表头中定位雇主列
//
// 按别名顺序做精确匹配，全部不命中返回 -1。
func DetectEmployerColumn(columns []string) int {
	normalized := make([]string, len(columns))
	for i, col := range columns {
		normalized[i] = NormalizeColumnName(col)
	}

	for _, alias := range employerAliases {
		for idx, col := range normalized {
			if col == alias {
				return idx
			}
		}
	}
	return -1
}

// ResolveOutcomeColumns 解析四个数值结果列的位置
//
// 返回 统一列名 -> 列下标 的映射；未命中的字段收进 missing，由调用方记录
// 告警并按全零列处理，不让单个字段缺失拖垮整个文件。
func ResolveOutcomeColumns(columns []string) (mapping map[string]int, missing []string) {
	folded := make([]string, len(columns))
	for i, col := range columns {
		folded[i] = foldKey(NormalizeColumnName(col))
	}

	mapping = make(map[string]int)
	for _, field := range OutcomeFields {
		found := -1
		for _, alias := range field.Aliases {
			key := foldKey(alias)
			for idx, col := range folded {
				if strings.Contains(col, key) {
					found = idx
					break
				}
			}
			if found >= 0 {
				break
			}
		}
		if found >= 0 {
			mapping[field.Canonical] = found
		} else {
			missing = append(missing, field.Canonical)
		}
	}
	return mapping, missing
}
