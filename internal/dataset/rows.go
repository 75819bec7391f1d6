package dataset

import (
	"fmt"
	"strings"

	"wolfstats/internal/core"
)

// FromRows maps a header and its data rows onto records. Rows shorter than
// the header yield empty values for the missing cells; fully blank rows are
// skipped but still advance the row number.
func FromRows(header []string, rows [][]string) ([]core.IncidentRecord, error) {
	colDate := IndexOf(header, ColumnDate)
	colVictims := IndexOf(header, ColumnVictims)
	var missing []string
	if colDate == -1 {
		missing = append(missing, ColumnDate)
	}
	if colVictims == -1 {
		missing = append(missing, ColumnVictims)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s; got headers=%v", ErrMissingColumn, strings.Join(missing, ","), header)
	}

	names := make([]string, len(header))
	for i, h := range header {
		names[i] = strings.TrimSpace(h)
	}

	out := make([]core.IncidentRecord, 0, len(rows))
	for i, row := range rows {
		if blank(row) {
			continue
		}
		fields := make(map[string]string, len(names))
		for j, name := range names {
			if name == "" {
				continue
			}
			fields[name] = SafeGet(row, j)
		}
		out = append(out, core.IncidentRecord{
			Row:     i + 1,
			Date:    SafeGet(row, colDate),
			Victims: SafeGet(row, colVictims),
			Fields:  fields,
		})
	}
	return out, nil
}

// IndexOf finds target in arr ignoring case and surrounding space.
func IndexOf(arr []string, target string) int {
	for i, v := range arr {
		if strings.EqualFold(strings.TrimSpace(v), strings.TrimSpace(target)) {
			return i
		}
	}
	return -1
}

func SafeGet(arr []string, idx int) string {
	if idx < 0 || idx >= len(arr) {
		return ""
	}
	return strings.TrimSpace(arr[idx])
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
