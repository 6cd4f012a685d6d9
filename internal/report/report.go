// Package report builds the field variability document for a telemetry
// database: one markdown section per populated table plus a summary.
package report

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/decnet100/acr-telemetry/internal/fields"
	"github.com/decnet100/acr-telemetry/internal/source/sqlite"
	"github.com/decnet100/acr-telemetry/pkg/types"
)

// Tables analyzed by every run, in report order.
var tables = []string{"graphics", "statics"}

// Run analyzes each table and writes the markdown report to stdout.
// Progress and warnings go to stderr so the report stream stays clean
// for redirection. Empty tables drop their section but are not errors.
func Run(ctx context.Context, dbPath string, stdout, stderr io.Writer) error {
	fmt.Fprintf(stderr, "Analyzing %s...\n\n", dbPath)

	results := make(map[string]map[string]types.FieldResult, len(tables))
	for _, table := range tables {
		fmt.Fprintf(stderr, "Analyzing %s table...\n", table)
		res, err := sqlite.Analyze(ctx, dbPath, table, stderr)
		if err != nil {
			return err
		}
		results[table] = res
	}

	fmt.Fprintf(stdout, "\n# Graphics and Statics Fields Analysis\n\n")
	fmt.Fprintf(stdout, "Analysis of graphics and statics tables showing field variability and ranges.\n")
	fmt.Fprintf(stdout, "Data source: %s\n", filepath.Base(dbPath))
	fmt.Fprintf(stdout, "\n**Variability:** Fields marked 'yes' contain varying data. Fields marked 'no' are constant or contain no useful data.\n")
	fmt.Fprintf(stdout, "**Range:** Shows the range of values (for numeric fields) or sample values (for text fields).\n")
	fmt.Fprintf(stdout, "**Note:** Zeros are excluded from min/max calculations (assumption: 0 = no data).\n\n")
	fmt.Fprintf(stdout, "---\n\n")

	for _, table := range tables {
		res := results[table]
		if len(res) == 0 {
			continue
		}
		fmt.Fprintln(stdout, FormatSection(table, res, fields.Descriptions(table)))
		fmt.Fprintf(stdout, "\n---\n\n")
	}

	fmt.Fprintf(stdout, "\n## Summary\n\n")
	for _, table := range tables {
		res := results[table]
		if len(res) == 0 {
			continue
		}
		fmt.Fprintf(stdout, "**%s:** %d/%d fields have variable data\n", title(table), countVariable(res), len(res))
	}
	return nil
}

func countVariable(results map[string]types.FieldResult) int {
	n := 0
	for _, info := range results {
		if info.Variable {
			n++
		}
	}
	return n
}
