package parser

import "fmt"

// SchemaError 必需的雇主列缺失
//
// 对单个文件是致命错误：没有雇主名就无法做任何后续关联，整次聚合中止。
type SchemaError struct {
	Source string // 文件名
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("employer column not found in %s", e.Source)
}

// FilenameFormatError 文件名末尾无法解析出年份
type FilenameFormatError struct {
	Filename string
}

func (e *FilenameFormatError) Error() string {
	return fmt.Sprintf("cannot parse fiscal year from filename: %s", e.Filename)
}
