package model

// FlexGroup 灵活度分组
type FlexGroup string

const (
	FlexGroupMore FlexGroup = "More Flexible" // FlexibilityIndex >= 1
	FlexGroupLess FlexGroup = "Less Flexible" // FlexibilityIndex == 0
)

// GroupFor 按 0.5 阈值划分灵活度分组
//
// 每条记录恰好属于一组：指数大于 0.5（即 1 或 2）为 More Flexible，否则 Less Flexible。
func GroupFor(flexibilityIndex int) FlexGroup {
	if float64(flexibilityIndex) > 0.5 {
		return FlexGroupMore
	}
	return FlexGroupLess
}

// SummaryRow 模拟汇总行，按 (年度, 灵活度分组) 聚合
type SummaryRow struct {
	Year      int       `json:"year"`
	FlexGroup FlexGroup `json:"flexGroup"`

	// 可选的 Fortune500 维度（启用交叉分组时填充）
	Fortune500 *bool `json:"fortune500,omitempty"`

	TotalApplications          float64 `json:"totalApplications"`
	SimulatedTotalApplications float64 `json:"simulatedTotalApplications"`
	ChangePercent              float64 `json:"changePercent"`
}

// YearlyTotal 年度合计（描述性统计，供 API 与导出使用）
type YearlyTotal struct {
	Year              int     `json:"year"`
	TotalApprovals    float64 `json:"totalApprovals"`
	TotalDenials      float64 `json:"totalDenials"`
	TotalApplications float64 `json:"totalApplications"`
}

// EmployerTotal 雇主合计（Top-N 排名用）
type EmployerTotal struct {
	Employer       string  `json:"employer"`
	TotalApprovals float64 `json:"totalApprovals"`
}

// FlagOverlap 各年度三类标记命中数量
type FlagOverlap struct {
	Year        int `json:"year"`
	Fortune500  int `json:"fortune500"`
	OPTFriendly int `json:"optFriendly"`
	CPTFriendly int `json:"cptFriendly"`
}
