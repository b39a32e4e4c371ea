package calculator

import (
	"testing"

	"github.com/diyouva/H1-B-Analysis/internal/model"
)

func sampleRecords() []*model.Record {
	return []*model.Record{
		{Employer: "Acme Inc", EmployerStd: "ACME INC", Year: 2019, TotalApprovals: 10, TotalDenials: 2, TotalApplications: 12, Fortune500: true, OPTFriendly: true},
		{Employer: "ACME INC", EmployerStd: "ACME INC", Year: 2020, TotalApprovals: 20, TotalDenials: 0, TotalApplications: 20, Fortune500: true},
		{Employer: "Globex LLC", EmployerStd: "GLOBEX LLC", Year: 2019, TotalApprovals: 5, TotalDenials: 5, TotalApplications: 10, CPTFriendly: true},
	}
}

func TestYearlyTotals(t *testing.T) {
	t.Parallel()

	totals := NewCalculator(sampleRecords()).YearlyTotals()
	if len(totals) != 2 {
		t.Fatalf("expected 2 years, got %d", len(totals))
	}
	if totals[0].Year != 2019 || totals[0].TotalApplications != 22 {
		t.Fatalf("unexpected 2019 totals: %+v", totals[0])
	}
	if totals[1].Year != 2020 || totals[1].TotalApprovals != 20 {
		t.Fatalf("unexpected 2020 totals: %+v", totals[1])
	}
}

func TestTopEmployers_MergesAcrossYears(t *testing.T) {
	t.Parallel()

	top := NewCalculator(sampleRecords()).TopEmployers(10)
	if len(top) != 2 {
		t.Fatalf("expected 2 employers, got %d", len(top))
	}
	if top[0].Employer != "Acme Inc" || top[0].TotalApprovals != 30 {
		t.Fatalf("unexpected leader: %+v", top[0])
	}

	limited := NewCalculator(sampleRecords()).TopEmployers(1)
	if len(limited) != 1 {
		t.Fatalf("expected 1 employer, got %d", len(limited))
	}
}

func TestFlagOverlaps(t *testing.T) {
	t.Parallel()

	overlaps := NewCalculator(sampleRecords()).FlagOverlaps()
	if len(overlaps) != 2 {
		t.Fatalf("expected 2 years, got %d", len(overlaps))
	}
	o := overlaps[0]
	if o.Year != 2019 || o.Fortune500 != 1 || o.OPTFriendly != 1 || o.CPTFriendly != 1 {
		t.Fatalf("unexpected 2019 overlap: %+v", o)
	}
}
