package parser

import "testing"

func TestDetectEmployerColumn_Aliases(t *testing.T) {
	t.Parallel()

	cases := []struct {
		columns []string
		want    int
	}{
		{[]string{"Fiscal Year", "Employer", "State"}, 1},
		{[]string{"Employer Name", "State"}, 0},
		{[]string{"EMPLOYER_NAME", "NAICS"}, 0},
		{[]string{"Line", "EMPLOYER"}, 1},
		{[]string{" Employer ", "State"}, 0}, // 表头先规范化再比对
		{[]string{"Company", "State"}, -1},
	}
	for _, c := range cases {
		if got := DetectEmployerColumn(c.columns); got != c.want {
			t.Fatalf("%v: want %d got %d", c.columns, c.want, got)
		}
	}
}

func TestResolveOutcomeColumns_NamingVariants(t *testing.T) {
	t.Parallel()

	// 2015 与 2021 两代文件的典型表头写法
	columns := []string{
		"Employer",
		"Initial Approvals",
		"Continuing Approval",
		"INITIAL_DENIALS",
		"Continuing Denials ",
	}

	mapping, missing := ResolveOutcomeColumns(columns)
	if len(missing) != 0 {
		t.Fatalf("unexpected missing fields: %v", missing)
	}
	if mapping["Initial_Approvals"] != 1 {
		t.Fatalf("Initial_Approvals -> %d", mapping["Initial_Approvals"])
	}
	if mapping["Continuing_Approvals"] != 2 {
		t.Fatalf("Continuing_Approvals -> %d", mapping["Continuing_Approvals"])
	}
	if mapping["Initial_Denials"] != 3 {
		t.Fatalf("Initial_Denials -> %d", mapping["Initial_Denials"])
	}
	if mapping["Continuing_Denials"] != 4 {
		t.Fatalf("Continuing_Denials -> %d", mapping["Continuing_Denials"])
	}
}

func TestResolveOutcomeColumns_AllMissing(t *testing.T) {
	t.Parallel()

	mapping, missing := ResolveOutcomeColumns([]string{"Employer", "State", "NAICS"})
	if len(mapping) != 0 {
		t.Fatalf("unexpected mapping: %v", mapping)
	}
	if len(missing) != 4 {
		t.Fatalf("expected all four fields missing, got %v", missing)
	}
}
