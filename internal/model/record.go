package model

import "strings"

// Record H-1B 年度申请记录（统一口径）
//
// 由 parser 从各年度原始文件解析得到，importer 补齐年份与三个合计字段，
// classify 再补齐雇主分类标记。数值字段经过安全清洗，保证非负、无 NaN。
type Record struct {
	Employer    string `json:"employer"`    // 雇主原始名称
	EmployerStd string `json:"employerStd"` // 规范化比对键（大写 + 去首尾空格）
	Year        int    `json:"year"`        // 财政年度（取自文件名）

	InitialApprovals    float64 `json:"initialApprovals"`
	ContinuingApprovals float64 `json:"continuingApprovals"`
	InitialDenials      float64 `json:"initialDenials"`
	ContinuingDenials   float64 `json:"continuingDenials"`

	TotalApprovals    float64 `json:"totalApprovals"`    // 初次 + 延续批准
	TotalDenials      float64 `json:"totalDenials"`      // 初次 + 延续拒绝
	TotalApplications float64 `json:"totalApplications"` // 批准 + 拒绝

	// 雇主分类标记（classify 计算）
	Fortune500  bool `json:"fortune500"`
	OPTFriendly bool `json:"optFriendly"`
	CPTFriendly bool `json:"cptFriendly"`

	// 灵活度指数 = OPT + CPT 标记计数，取值 0/1/2（Fortune500 不参与）
	FlexibilityIndex int `json:"flexibilityIndex"`
}

// CanonicalKey 雇主名称规范化比对键
//
// 仅做大写 + 去首尾空格，不做任何模糊处理；拼写变体视为不同雇主。
func CanonicalKey(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// ComputeTotals 根据四个原始列计算三个合计字段
func (r *Record) ComputeTotals() {
	r.TotalApprovals = r.InitialApprovals + r.ContinuingApprovals
	r.TotalDenials = r.InitialDenials + r.ContinuingDenials
	r.TotalApplications = r.TotalApprovals + r.TotalDenials
}
