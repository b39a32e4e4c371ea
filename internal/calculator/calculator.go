package calculator

import (
	"sort"

	"github.com/diyouva/H1-B-Analysis/internal/model"
)

// Calculator 描述性统计计算器
//
// 对分类后的统一表做逐年 / 逐雇主聚合，供 API 与导出使用。
// 全部是纯函数式的汇总，不持有可变状态。
type Calculator struct {
	records []*model.Record
}

// NewCalculator 创建计算器
func NewCalculator(records []*model.Record) *Calculator {
	return &Calculator{records: records}
}

// YearlyTotals 各年度批准 / 拒绝 / 申请合计，按年份升序
func (c *Calculator) YearlyTotals() []model.YearlyTotal {
	byYear := make(map[int]*model.YearlyTotal)
	for _, r := range c.records {
		t, ok := byYear[r.Year]
		if !ok {
			t = &model.YearlyTotal{Year: r.Year}
			byYear[r.Year] = t
		}
		t.TotalApprovals += r.TotalApprovals
		t.TotalDenials += r.TotalDenials
		t.TotalApplications += r.TotalApplications
	}

	totals := make([]model.YearlyTotal, 0, len(byYear))
	for _, t := range byYear {
		totals = append(totals, *t)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Year < totals[j].Year })
	return totals
}

// TopEmployers 按全部年度批准量排名前 n 的雇主
//
// 同一规范化键的多条记录（多年度）合并计数；展示名取首次出现的原始写法。
func (c *Calculator) TopEmployers(n int) []model.EmployerTotal {
	type acc struct {
		display string
		total   float64
	}
	byKey := make(map[string]*acc)
	for _, r := range c.records {
		a, ok := byKey[r.EmployerStd]
		if !ok {
			a = &acc{display: r.Employer}
			byKey[r.EmployerStd] = a
		}
		a.total += r.TotalApprovals
	}

	totals := make([]model.EmployerTotal, 0, len(byKey))
	for _, a := range byKey {
		totals = append(totals, model.EmployerTotal{Employer: a.display, TotalApprovals: a.total})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].TotalApprovals != totals[j].TotalApprovals {
			return totals[i].TotalApprovals > totals[j].TotalApprovals
		}
		return totals[i].Employer < totals[j].Employer
	})

	if n > 0 && len(totals) > n {
		totals = totals[:n]
	}
	return totals
}

// FlagOverlaps 各年度三类标记的命中记录数，按年份升序
func (c *Calculator) FlagOverlaps() []model.FlagOverlap {
	byYear := make(map[int]*model.FlagOverlap)
	for _, r := range c.records {
		o, ok := byYear[r.Year]
		if !ok {
			o = &model.FlagOverlap{Year: r.Year}
			byYear[r.Year] = o
		}
		if r.Fortune500 {
			o.Fortune500++
		}
		if r.OPTFriendly {
			o.OPTFriendly++
		}
		if r.CPTFriendly {
			o.CPTFriendly++
		}
	}

	overlaps := make([]model.FlagOverlap, 0, len(byYear))
	for _, o := range byYear {
		overlaps = append(overlaps, *o)
	}
	sort.Slice(overlaps, func(i, j int) bool { return overlaps[i].Year < overlaps[j].Year })
	return overlaps
}
