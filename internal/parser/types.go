package parser

import "github.com/diyouva/H1-B-Analysis/internal/model"

// OutcomeField 目标数值字段及其别名集合
//
// 各年度 USCIS 文件的列名并不统一，按序用别名做大小写 / 空格 / 下划线
// 不敏感的包含匹配，命中第一个即停。
type OutcomeField struct {
	Canonical string   // 统一列名
	Aliases   []string // 历年文件中出现过的写法
}

// OutcomeFields 四个申请结果列的映射表（顺序即解析顺序）
var OutcomeFields = []OutcomeField{
	{Canonical: "Initial_Approvals", Aliases: []string{"Initial_Approval", "INITIAL_APPROVALS", "Initial Approvals"}},
	{Canonical: "Continuing_Approvals", Aliases: []string{"Continuing_Approval", "CONTINUING_APPROVALS", "Continuing Approvals"}},
	{Canonical: "Initial_Denials", Aliases: []string{"Initial_Denial", "INITIAL_DENIALS", "Initial Denials"}},
	{Canonical: "Continuing_Denials", Aliases: []string{"Continuing_Denial", "CONTINUING_DENIALS", "Continuing Denials"}},
}

// employerAliases 雇主列的可接受列名（表头规范化之后精确匹配）
var employerAliases = []string{"Employer", "Employer_Name", "EMPLOYER_NAME", "EMPLOYER"}

// ParseResult 单个年度文件的解析结果
type ParseResult struct {
	Source        string          `json:"source"`        // 来源文件名
	Records       []*model.Record `json:"records"`       // 按原始行序
	MissingFields []string        `json:"missingFields"` // 未命中别名、按零填充的字段
}
