package simulate

import (
	"errors"
	"math"
	"testing"

	"github.com/diyouva/H1-B-Analysis/internal/dataset"
	"github.com/diyouva/H1-B-Analysis/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRun_LessFlexibleScenario(t *testing.T) {
	t.Parallel()

	// 单雇主 100 份申请，不灵活组，+20% 费用，ε_low=-0.5 → 90 份，-10%
	records := []*model.Record{
		{Employer: "ACME INC", Year: 2022, TotalApplications: 100, FlexibilityIndex: 0},
	}
	rows := Run(records, Options{Alpha: 0.2, ElasticityLow: -0.5, ElasticityHigh: -0.2})

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.FlexGroup != model.FlexGroupLess {
		t.Fatalf("unexpected group: %s", row.FlexGroup)
	}
	if !almostEqual(row.SimulatedTotalApplications, 90) {
		t.Fatalf("simulated: %v", row.SimulatedTotalApplications)
	}
	if !almostEqual(row.ChangePercent, -10) {
		t.Fatalf("change%%: %v", row.ChangePercent)
	}
}

func TestRun_MoreFlexibleScenario(t *testing.T) {
	t.Parallel()

	// 同一雇主但指数为 1，ε_high=-0.2 → 96 份，-4%
	records := []*model.Record{
		{Employer: "ACME INC", Year: 2022, TotalApplications: 100, FlexibilityIndex: 1},
	}
	rows := Run(records, Options{Alpha: 0.2, ElasticityLow: -0.5, ElasticityHigh: -0.2})

	row := rows[0]
	if row.FlexGroup != model.FlexGroupMore {
		t.Fatalf("unexpected group: %s", row.FlexGroup)
	}
	if !almostEqual(row.SimulatedTotalApplications, 96) {
		t.Fatalf("simulated: %v", row.SimulatedTotalApplications)
	}
	if !almostEqual(row.ChangePercent, -4) {
		t.Fatalf("change%%: %v", row.ChangePercent)
	}
}

func TestRun_ZeroAlphaMeansZeroChange(t *testing.T) {
	t.Parallel()

	records := []*model.Record{
		{Year: 2019, TotalApplications: 50, FlexibilityIndex: 0},
		{Year: 2019, TotalApplications: 80, FlexibilityIndex: 2},
		{Year: 2020, TotalApplications: 10, FlexibilityIndex: 1},
	}
	rows := Run(records, Options{Alpha: 0, ElasticityLow: -3, ElasticityHigh: 7})

	for _, row := range rows {
		if !almostEqual(row.ChangePercent, 0) {
			t.Fatalf("%d/%s: change%% = %v, want 0", row.Year, row.FlexGroup, row.ChangePercent)
		}
		if !almostEqual(row.SimulatedTotalApplications, row.TotalApplications) {
			t.Fatalf("%d/%s: simulated diverged with alpha=0", row.Year, row.FlexGroup)
		}
	}
}

func TestRun_UniformElasticityIgnoresGroup(t *testing.T) {
	t.Parallel()

	records := []*model.Record{
		{Year: 2021, TotalApplications: 100, FlexibilityIndex: 0},
		{Year: 2021, TotalApplications: 100, FlexibilityIndex: 2},
	}
	rows := Run(records, UniformOptions(0.2, -0.3))

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	for _, row := range rows {
		if !almostEqual(row.SimulatedTotalApplications, 94) {
			t.Fatalf("%s: simulated %v, want 94", row.FlexGroup, row.SimulatedTotalApplications)
		}
	}
}

func TestRun_PartitionCoversAllRecords(t *testing.T) {
	t.Parallel()

	records := []*model.Record{
		{Year: 2020, TotalApplications: 1, FlexibilityIndex: 0},
		{Year: 2020, TotalApplications: 2, FlexibilityIndex: 1},
		{Year: 2020, TotalApplications: 4, FlexibilityIndex: 2},
	}
	rows := Run(records, UniformOptions(0.1, -0.5))

	var total float64
	for _, row := range rows {
		total += row.TotalApplications
	}
	if !almostEqual(total, 7) {
		t.Fatalf("partition lost records: baseline sum %v", total)
	}

	// 指数 1 和 2 同属 More Flexible
	for _, row := range rows {
		if row.FlexGroup == model.FlexGroupMore && !almostEqual(row.TotalApplications, 6) {
			t.Fatalf("more-flexible baseline %v, want 6", row.TotalApplications)
		}
		if row.FlexGroup == model.FlexGroupLess && !almostEqual(row.TotalApplications, 1) {
			t.Fatalf("less-flexible baseline %v, want 1", row.TotalApplications)
		}
	}
}

func TestRun_NegativeProjectionNotClamped(t *testing.T) {
	t.Parallel()

	// 极端 ε·α 允许出现负的预测值，由调用方解读
	records := []*model.Record{
		{Year: 2020, TotalApplications: 100, FlexibilityIndex: 0},
	}
	rows := Run(records, UniformOptions(2, -1))
	if !almostEqual(rows[0].SimulatedTotalApplications, -100) {
		t.Fatalf("expected -100, got %v", rows[0].SimulatedTotalApplications)
	}
}

func TestRun_SplitByFortune500(t *testing.T) {
	t.Parallel()

	records := []*model.Record{
		{Year: 2020, TotalApplications: 10, FlexibilityIndex: 0, Fortune500: true},
		{Year: 2020, TotalApplications: 20, FlexibilityIndex: 0, Fortune500: false},
	}
	rows := Run(records, Options{Alpha: 0.2, ElasticityLow: -0.5, SplitByFortune500: true})

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Fortune500 == nil || *rows[0].Fortune500 {
		t.Fatalf("expected non-fortune row first")
	}
	if rows[1].Fortune500 == nil || !*rows[1].Fortune500 {
		t.Fatalf("expected fortune row second")
	}
}

func TestLoadClassified_MissingFlexibilityIndex(t *testing.T) {
	t.Parallel()

	tbl := &dataset.Table{
		Columns: []string{"Employer", "Year", "Total_Applications"},
		Rows:    [][]string{{"ACME INC", "2020", "100"}},
	}
	_, err := LoadClassified(tbl)
	var mce *MissingColumnError
	if !errors.As(err, &mce) {
		t.Fatalf("expected MissingColumnError, got %v", err)
	}
	if mce.Column != "Flexibility_Index" {
		t.Fatalf("unexpected column: %s", mce.Column)
	}
}

func TestLoadClassified_RoundTrip(t *testing.T) {
	t.Parallel()

	tbl := &dataset.Table{
		Columns: []string{"Employer", "Employer_std", "Year", "Total_Approvals", "Total_Denials", "Total_Applications", "Fortune500", "OPT_friendly", "CPT_friendly", "Flexibility_Index"},
		Rows: [][]string{
			{"Acme Inc", "ACME INC", "2020", "90", "10", "100", "true", "true", "false", "1"},
		},
	}
	records, err := LoadClassified(tbl)
	if err != nil {
		t.Fatalf("LoadClassified: %v", err)
	}
	r := records[0]
	if r.Year != 2020 || r.TotalApplications != 100 || r.FlexibilityIndex != 1 {
		t.Fatalf("unexpected record: %+v", r)
	}
	if !r.Fortune500 || !r.OPTFriendly || r.CPTFriendly {
		t.Fatalf("unexpected flags: %+v", r)
	}
}
