package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadCSV_HeaderAndRows(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "sample.csv")
	content := "Employer,Initial Approvals\nACME INC,120\nGLOBEX LLC,45\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	tbl, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(tbl.Columns) != 2 || tbl.Columns[0] != "Employer" {
		t.Fatalf("unexpected columns: %v", tbl.Columns)
	}
	if len(tbl.Rows) != 2 || tbl.Rows[1][1] != "45" {
		t.Fatalf("unexpected rows: %v", tbl.Rows)
	}
}

func TestReadCSV_RaggedRows(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "ragged.csv")
	content := "Employer,Initial Approvals,Initial Denials\nACME INC,120\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	tbl, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if got := tbl.Cell(tbl.Rows[0], 2); got != "" {
		t.Fatalf("expected empty cell for short row, got %q", got)
	}
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out", "clean.csv")

	src := &Table{
		Columns: []string{"Employer", "Year"},
		Rows:    [][]string{{"ACME INC", "2020"}, {"GLOBEX LLC", "2021"}},
	}
	if err := src.WriteCSV(path); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	got, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(got.Rows) != 2 || got.Rows[0][0] != "ACME INC" || got.Rows[1][1] != "2021" {
		t.Fatalf("round trip mismatch: %v", got.Rows)
	}
}

func TestReadXLSX_FirstSheet(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "ref.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	_ = f.SetSheetRow(sheet, "A1", &[]any{"COMPANY NAME", "RANK"})
	_ = f.SetSheetRow(sheet, "A2", &[]any{"ACME INC", 1})
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save xlsx fixture: %v", err)
	}
	_ = f.Close()

	tbl, err := ReadXLSX(path)
	if err != nil {
		t.Fatalf("ReadXLSX: %v", err)
	}
	if tbl.Columns[0] != "COMPANY NAME" {
		t.Fatalf("unexpected header: %v", tbl.Columns)
	}
	if len(tbl.Rows) != 1 || tbl.Rows[0][0] != "ACME INC" {
		t.Fatalf("unexpected rows: %v", tbl.Rows)
	}
}

func TestReadFile_UnsupportedExt(t *testing.T) {
	t.Parallel()

	if _, err := ReadFile("data.parquet"); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
}
