package sqlite

import (
	"context"
	"fmt"
	"io"

	"github.com/decnet100/acr-telemetry/internal/variability"
	"github.com/decnet100/acr-telemetry/pkg/types"
)

// Metadata columns carry no analytical value and are excluded from
// every table's analysis.
var skipFields = map[string]struct{}{
	"recording_id": {},
	"time_offset":  {},
	"packet_id":    {},
	"id":           {},
}

// Analyze classifies every non-metadata column of one table. It opens
// its own connection and closes it before returning. An empty table is
// not an error: a warning goes to diag and the result map is empty.
func Analyze(ctx context.Context, dbPath, table string, diag io.Writer) (map[string]types.FieldResult, error) {
	insp, err := Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer insp.Close()

	rowCount, err := insp.FetchRowCount(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("count rows in %s: %w", table, err)
	}
	if rowCount == 0 {
		fmt.Fprintf(diag, "Warning: %s table is empty\n", table)
		return map[string]types.FieldResult{}, nil
	}

	schema, err := insp.FetchSchema(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("read schema of %s: %w", table, err)
	}

	results := make(map[string]types.FieldResult)
	for _, col := range schema {
		if _, skip := skipFields[col.Name]; skip {
			continue
		}
		variable, rangeDesc, err := insp.classifyField(ctx, table, col)
		if err != nil {
			return nil, fmt.Errorf("classify %s.%s: %w", table, col.Name, err)
		}
		results[col.Name] = types.FieldResult{
			Type:     col.Type,
			Variable: variable,
			Range:    rangeDesc,
		}
	}
	return results, nil
}

func (i *Inspector) classifyField(ctx context.Context, table string, col ColumnSpec) (bool, string, error) {
	nonNull, err := i.FetchNonNullCount(ctx, table, col.Name)
	if err != nil {
		return false, "", err
	}
	if nonNull == 0 {
		return false, "no data", nil
	}

	switch typ := variability.TypeOf(col.Type); typ {
	case variability.TypeInteger, variability.TypeReal:
		agg, err := i.FetchNumericAggregates(ctx, table, col.Name)
		if err != nil {
			return false, "", err
		}
		variable, rangeDesc := variability.Numeric(typ, agg)
		return variable, rangeDesc, nil

	default:
		distinct, _, err := i.FetchTextCounts(ctx, table, col.Name)
		if err != nil {
			return false, "", err
		}
		var single string
		var samples []string
		switch {
		case distinct == 1:
			single, err = i.FetchTextValue(ctx, table, col.Name)
		case distinct > 1:
			samples, err = i.FetchTextSamples(ctx, table, col.Name, 5)
		}
		if err != nil {
			return false, "", err
		}
		variable, rangeDesc := variability.Text(distinct, single, samples)
		return variable, rangeDesc, nil
	}
}
