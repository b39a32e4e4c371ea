package importer

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/diyouva/H1-B-Analysis/internal/parser"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
}

func TestLoadAll_MultiYear(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "h1b_datahubexport-2019.csv",
		"Employer,Initial Approvals,Continuing Approvals,Initial Denials,Continuing Denials\n"+
			"ACME INC,10,5,2,1\n")
	writeFixture(t, dir, "h1b_datahubexport-2020.csv",
		"EMPLOYER_NAME,INITIAL_APPROVALS,CONTINUING_APPROVALS,INITIAL_DENIALS,CONTINUING_DENIALS\n"+
			"ACME INC,20,10,0,0\n"+
			"GLOBEX LLC,7,0,1,0\n")

	loader := NewLoader(Options{DataDir: dir, FilePrefix: "h1b_datahubexport"})
	report, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	if len(report.Files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(report.Files))
	}
	if len(report.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(report.Records))
	}
	// 文件按名称排序，2019 在前
	if report.Records[0].Year != 2019 || report.Records[1].Year != 2020 {
		t.Fatalf("unexpected year order: %d %d", report.Records[0].Year, report.Records[1].Year)
	}
	if report.Records[1].TotalApplications != 30 {
		t.Fatalf("unexpected total: %v", report.Records[1].TotalApplications)
	}
}

func TestLoadAll_NoFiles(t *testing.T) {
	t.Parallel()

	loader := NewLoader(Options{DataDir: t.TempDir(), FilePrefix: "h1b_datahubexport"})
	_, err := loader.LoadAll()
	if !errors.Is(err, ErrNoInputFiles) {
		t.Fatalf("expected ErrNoInputFiles, got %v", err)
	}
}

func TestLoadAll_BadFilenameYear(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "h1b_datahubexport-final.csv", "Employer\nACME INC\n")

	loader := NewLoader(Options{DataDir: dir, FilePrefix: "h1b_datahubexport"})
	_, err := loader.LoadAll()
	var ffe *parser.FilenameFormatError
	if !errors.As(err, &ffe) {
		t.Fatalf("expected FilenameFormatError, got %v", err)
	}
}

func TestLoadAll_SchemaErrorAbortsRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "h1b_datahubexport-2019.csv", "Company,Initial Approvals\nACME INC,10\n")

	loader := NewLoader(Options{DataDir: dir, FilePrefix: "h1b_datahubexport"})
	_, err := loader.LoadAll()
	var se *parser.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
}

func TestLoadAll_Idempotent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "h1b_datahubexport-2021.csv",
		"Employer,Initial Approvals\nACME INC,10\nGLOBEX LLC,3\n")

	loader := NewLoader(Options{DataDir: dir, FilePrefix: "h1b_datahubexport"})
	first, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("first LoadAll: %v", err)
	}
	second, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("second LoadAll: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated load not identical")
	}
}
