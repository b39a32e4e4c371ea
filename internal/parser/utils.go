package parser

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeColumnName 规范化列名：去首尾空格，内部空白压缩为下划线
func NormalizeColumnName(name string) string {
	name = strings.TrimSpace(name)
	return whitespaceRe.ReplaceAllString(name, "_")
}

// foldKey 折叠列名用于别名比对：小写并去掉下划线和空格
func foldKey(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "_", "")
	name = strings.ReplaceAll(name, " ", "")
	return name
}

var numericRe = regexp.MustCompile(`[^0-9.\-]`)

// CoerceNumeric 宽松数值清洗：保留数字、小数点和负号，其余字符全部剔除
//
// 空串或解析失败一律返回 0，绝不产生 NaN、绝不丢行。信息损失（坏单元格
// 被记为 0）是有意的取舍，换取每次运行都能产出完整表。
func CoerceNumeric(s string) float64 {
	s = numericRe.ReplaceAllString(s, "")
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// clampNonNegative 申请数不允许为负，求和之前一律截到 0
func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

var trailingYearRe = regexp.MustCompile(`^\d{4}$`)

// YearFromFilename 从 "<prefix>-<year>.<ext>" 形式的文件名解析财政年度
//
// 取最后一个 "-" 之后、扩展名之前的部分，必须是四位年份。
func YearFromFilename(filename string) (int, error) {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	idx := strings.LastIndex(base, "-")
	if idx < 0 || idx == len(base)-1 {
		return 0, &FilenameFormatError{Filename: filename}
	}

	token := base[idx+1:]
	if !trailingYearRe.MatchString(token) {
		return 0, &FilenameFormatError{Filename: filename}
	}

	year, err := strconv.Atoi(token)
	if err != nil {
		return 0, &FilenameFormatError{Filename: filename}
	}
	return year, nil
}
