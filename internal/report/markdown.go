package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/decnet100/acr-telemetry/pkg/types"
)

// FormatSection renders one table's classification results as a
// markdown section: an H2 heading and a pipe table with one row per
// column, sorted by column name.
func FormatSection(tableName string, results map[string]types.FieldResult, descriptions map[string]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s Fields\n\n", title(tableName))
	b.WriteString("| Field | Description | Variable | Range |\n")
	b.WriteString("|-------|-------------|----------|-------|\n")

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		info := results[name]
		fmt.Fprintf(&b, "| `%s` | %s | %s | %s |\n", name, descriptions[name], verdict(info.Variable), info.Range)
	}
	return b.String()
}

func verdict(variable bool) string {
	if variable {
		return "yes"
	}
	return "no"
}

func title(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
