// Package variability decides whether a column's recorded values vary
// and renders the human-readable range or sample description that goes
// into the report. It works on aggregates already fetched from the
// database; nothing in here touches a connection.
package variability

import (
	"database/sql"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NumericAggregates holds the per-column numbers the classifier needs
// for integer and real columns. Min and Max are computed with zeros
// excluded (in this telemetry 0 means "sensor not reporting"), so both
// come back invalid when every non-null value was exactly zero.
// DistinctCount counts zeros.
type NumericAggregates struct {
	Min           sql.NullFloat64
	Max           sql.NullFloat64
	DistinctCount int64
	TotalCount    int64
}

// Numeric classifies an integer or real column from its aggregates.
func Numeric(typ DeclaredType, agg NumericAggregates) (variable bool, rangeDesc string) {
	if !agg.Min.Valid && !agg.Max.Valid {
		return false, "constant 0 (no data)"
	}
	if agg.DistinctCount == 1 {
		return false, "constant " + formatConstant(typ, agg.Min.Float64)
	}
	if typ == TypeInteger {
		return true, fmt.Sprintf("%d … %d", intBound(agg.Min), intBound(agg.Max))
	}
	span := math.Abs(agg.Max.Float64 - agg.Min.Float64)
	prec := 2
	switch {
	case span < 0.01:
		prec = 6
	case span < 1:
		prec = 4
	}
	return true, fmt.Sprintf("~%.*f … %.*f", prec, agg.Min.Float64, prec, agg.Max.Float64)
}

// Text classifies a text column. distinct counts non-null non-empty
// values; single carries the lone value when distinct == 1; samples
// carries up to five distinct values otherwise.
func Text(distinct int64, single string, samples []string) (variable bool, rangeDesc string) {
	switch {
	case distinct == 0:
		return false, "empty/null"
	case distinct == 1:
		return false, fmt.Sprintf("constant %q", single)
	case len(samples) <= 3:
		return true, "values: " + quoteJoin(samples)
	default:
		return true, fmt.Sprintf("%d distinct values (e.g., %s, ...)", distinct, quoteJoin(samples[:3]))
	}
}

func formatConstant(typ DeclaredType, v float64) string {
	if typ == TypeInteger {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Absent bounds render as 0, matching the report's long-standing output.
func intBound(v sql.NullFloat64) int64 {
	if !v.Valid {
		return 0
	}
	return int64(v.Float64)
}

func quoteJoin(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	return strings.Join(quoted, ", ")
}
