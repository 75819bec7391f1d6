package google

import (
	"fmt"
	"strings"

	"wolfstats/internal/core"
	"wolfstats/internal/dataset"
)

// parseIncidentRows converts a values matrix as returned by the Sheets API
// into records. Trailing empty cells are omitted by the API, so rows may be
// shorter than the header.
func parseIncidentRows(values [][]interface{}) ([]core.IncidentRecord, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: sheet is empty", dataset.ErrSourceUnavailable)
	}
	header := toStrings(values[0])
	rows := make([][]string, 0, len(values)-1)
	for _, v := range values[1:] {
		rows = append(rows, toStrings(v))
	}
	return dataset.FromRows(header, rows)
}

func toStrings(in []interface{}) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return out
}
