package report

import (
	"bytes"
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func createDB(t *testing.T, stmts ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "telemetry.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}
	return path
}

func TestRunOmitsEmptyTable(t *testing.T) {
	path := createDB(t,
		`CREATE TABLE graphics (position INTEGER, track_status TEXT)`,
		`INSERT INTO graphics VALUES (1, 'OPTIMUM'), (2, 'OPTIMUM'), (4, 'WET')`,
		`CREATE TABLE statics (track TEXT)`,
	)
	var stdout, stderr bytes.Buffer
	if err := Run(context.Background(), path, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}

	out := stdout.String()
	if !strings.Contains(out, "## Graphics Fields") {
		t.Fatalf("graphics section missing:\n%s", out)
	}
	if strings.Contains(out, "## Statics Fields") {
		t.Fatalf("statics section should be omitted for an empty table:\n%s", out)
	}
	if !strings.Contains(out, "**Graphics:** 2/2 fields have variable data") {
		t.Fatalf("unexpected summary:\n%s", out)
	}
	if strings.Contains(out, "**Statics:**") {
		t.Fatalf("summary should not mention the empty statics table:\n%s", out)
	}
	if !strings.Contains(stderr.String(), "Warning: statics table is empty") {
		t.Fatalf("expected warning on diagnostics, got %q", stderr.String())
	}
	if strings.Contains(out, "Warning:") {
		t.Fatal("diagnostics leaked into the report stream")
	}
}

func TestRunReportHeaderAndNotes(t *testing.T) {
	path := createDB(t,
		`CREATE TABLE graphics (position INTEGER)`,
		`INSERT INTO graphics VALUES (1), (2)`,
		`CREATE TABLE statics (track TEXT)`,
		`INSERT INTO statics VALUES ('monza')`,
	)
	var stdout, stderr bytes.Buffer
	if err := Run(context.Background(), path, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}

	out := stdout.String()
	for _, want := range []string{
		"# Graphics and Statics Fields Analysis",
		"Data source: telemetry.db",
		"**Note:** Zeros are excluded from min/max calculations (assumption: 0 = no data).",
		"## Summary",
		"**Graphics:** 1/1 fields have variable data",
		"**Statics:** 0/1 fields have variable data",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRunIdempotent(t *testing.T) {
	path := createDB(t,
		`CREATE TABLE graphics (position INTEGER, clock REAL, track_status TEXT)`,
		`INSERT INTO graphics VALUES (1, 10.5, 'OPTIMUM'), (3, 80.25, 'GREEN'), (2, 45.0, 'WET'), (0, NULL, '')`,
		`CREATE TABLE statics (track TEXT, max_rpm INTEGER)`,
		`INSERT INTO statics VALUES ('monza', 8000)`,
	)
	var first, second, stderr bytes.Buffer
	if err := Run(context.Background(), path, &first, &stderr); err != nil {
		t.Fatal(err)
	}
	if err := Run(context.Background(), path, &second, &stderr); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatalf("report output not byte-identical across runs:\n--- first\n%s\n--- second\n%s", first.String(), second.String())
	}
}

func TestRunMissingTableFails(t *testing.T) {
	path := createDB(t, `CREATE TABLE graphics (position INTEGER)`, `INSERT INTO graphics VALUES (1)`)
	var stdout, stderr bytes.Buffer
	if err := Run(context.Background(), path, &stdout, &stderr); err == nil {
		t.Fatal("expected error when the statics table does not exist")
	}
}
