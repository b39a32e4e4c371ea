package classify

import "github.com/diyouva/H1-B-Analysis/internal/model"

// Classifier 雇主分类器
//
// 持有三份不可变的成员集合快照；对统一表做纯集合包含判定，
// 重复执行结果一致。
type Classifier struct {
	fortune map[string]struct{}
	opt     map[string]struct{}
	cpt     map[string]struct{}
}

// NewClassifier 由现成的成员集合构建分类器（测试与模拟场景用）
func NewClassifier(fortune, opt, cpt map[string]struct{}) *Classifier {
	if fortune == nil {
		fortune = map[string]struct{}{}
	}
	if opt == nil {
		opt = map[string]struct{}{}
	}
	if cpt == nil {
		cpt = map[string]struct{}{}
	}
	return &Classifier{fortune: fortune, opt: opt, cpt: cpt}
}

// Sizes 各名单规模（状态接口展示用）
func (c *Classifier) Sizes() (fortune, opt, cpt int) {
	return len(c.fortune), len(c.opt), len(c.cpt)
}

// Apply 就地计算每条记录的三个成员标记与灵活度指数
func (c *Classifier) Apply(records []*model.Record) {
	for _, r := range records {
		key := r.EmployerStd
		if key == "" {
			key = model.CanonicalKey(r.Employer)
			r.EmployerStd = key
		}

		_, r.Fortune500 = c.fortune[key]
		_, r.OPTFriendly = c.opt[key]
		_, r.CPTFriendly = c.cpt[key]

		r.FlexibilityIndex = 0
		if r.OPTFriendly {
			r.FlexibilityIndex++
		}
		if r.CPTFriendly {
			r.FlexibilityIndex++
		}
	}
}
