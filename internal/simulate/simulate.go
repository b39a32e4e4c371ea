package simulate

import (
	"fmt"
	"sort"

	"github.com/diyouva/H1-B-Analysis/internal/model"
)

// MissingColumnError 模拟所需的列在输入表中不存在
//
// 缺少 Flexibility_Index 时绝不默认分组，直接失败，否则结果会被悄悄污染。
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column missing from input: %s", e.Column)
}

// Options 费用弹性模拟参数
//
// Alpha 为费用变动比例（0.2 即 +20%）。两组各自的弹性系数：灵活组用
// ElasticityHigh，非灵活组用 ElasticityLow；两者相等即退化为统一弹性。
type Options struct {
	Alpha          float64 `json:"alpha"`
	ElasticityLow  float64 `json:"elasticityLow"`
	ElasticityHigh float64 `json:"elasticityHigh"`

	// 是否在 (年度, 灵活度分组) 之外再按 Fortune500 维度交叉
	SplitByFortune500 bool `json:"splitByFortune500"`
}

// UniformOptions 统一弹性的便捷构造
func UniformOptions(alpha, elasticity float64) Options {
	return Options{Alpha: alpha, ElasticityLow: elasticity, ElasticityHigh: elasticity}
}

// SimulatedApplications 单条记录的模拟申请量
//
// 一阶线性近似：baseline × (1 + ε·α)。不做下限截断，极端 ε·α 下可能为负，
// 由调用方解读。
func SimulatedApplications(r *model.Record, opts Options) float64 {
	elasticity := opts.ElasticityLow
	if model.GroupFor(r.FlexibilityIndex) == model.FlexGroupMore {
		elasticity = opts.ElasticityHigh
	}
	return r.TotalApplications * (1 + elasticity*opts.Alpha)
}

type groupKey struct {
	year    int
	group   model.FlexGroup
	fortune bool
}

// Run 执行一次费用冲击模拟
//
// 每条记录恰好落入一个 (年度, 灵活度分组[, Fortune500]) 桶；先在桶内求和，
// 再在聚合值上计算 Change_%，避免简单平均带来的规模加权失真。
func Run(records []*model.Record, opts Options) []model.SummaryRow {
	baseline := make(map[groupKey]float64)
	simulated := make(map[groupKey]float64)

	for _, r := range records {
		key := groupKey{
			year:  r.Year,
			group: model.GroupFor(r.FlexibilityIndex),
		}
		if opts.SplitByFortune500 {
			key.fortune = r.Fortune500
		}
		baseline[key] += r.TotalApplications
		simulated[key] += SimulatedApplications(r, opts)
	}

	rows := make([]model.SummaryRow, 0, len(baseline))
	for key, base := range baseline {
		row := model.SummaryRow{
			Year:                       key.year,
			FlexGroup:                  key.group,
			TotalApplications:          base,
			SimulatedTotalApplications: simulated[key],
		}
		if opts.SplitByFortune500 {
			f := key.fortune
			row.Fortune500 = &f
		}
		if base != 0 {
			row.ChangePercent = 100 * (simulated[key]/base - 1)
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Year != rows[j].Year {
			return rows[i].Year < rows[j].Year
		}
		if rows[i].FlexGroup != rows[j].FlexGroup {
			return rows[i].FlexGroup < rows[j].FlexGroup
		}
		return boolLess(rows[i].Fortune500, rows[j].Fortune500)
	})
	return rows
}

func boolLess(a, b *bool) bool {
	if a == nil || b == nil {
		return false
	}
	return !*a && *b
}
