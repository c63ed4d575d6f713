package store

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadPreservesOrderAndValues(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "jobs.csv",
		"job_id,required_trade,area\n"+
			"J1,Plumber,Indiranagar\n"+
			"J2,Electrician,Koramangala\n"+
			"J3,Plumber,Whitefield\n")

	rows, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0]["job_id"] != "J1" || rows[2]["job_id"] != "J3" {
		t.Fatalf("file order not preserved: %v", rows)
	}
	if rows[1]["required_trade"] != "Electrician" {
		t.Fatalf("unexpected value: %v", rows[1])
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	rows, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	if err != nil {
		t.Fatalf("missing file must not error, got %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}

func TestLoadEmptyFile(t *testing.T) {
	t.Parallel()

	rows, err := Load(writeFile(t, "empty.csv", ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}

func TestLoadShortRecord(t *testing.T) {
	t.Parallel()

	rows, err := Load(writeFile(t, "short.csv", "a,b,c\n1,2\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0]["a"] != "1" || rows[0]["b"] != "2" {
		t.Fatalf("unexpected row: %v", rows[0])
	}
	if _, ok := rows[0]["c"]; ok {
		t.Fatalf("missing column should stay absent, got %v", rows[0])
	}
}
