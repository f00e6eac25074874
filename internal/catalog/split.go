package catalog

import "strings"

// SplitValues flattens a comma-separated text column into the sequence of
// trimmed atomic values across all rows ("count mode"). A missing/empty field
// contributes nothing; values that are empty after trimming are dropped.
// Returns ErrColumnNotFound before touching any row if the column is unknown.
func SplitValues(t *Table, columnName string) ([]string, error) {
	col, err := lookupColumn(columnName)
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, t.Len())
	for i := range t.Rows {
		for _, part := range strings.Split(col.get(&t.Rows[i]), ",") {
			if v := strings.TrimSpace(part); v != "" {
				values = append(values, v)
			}
		}
	}
	return values, nil
}

// Explode duplicates each row once per atomic value in the named column,
// with the column replaced by the single value ("explode mode"). All other
// columns are carried over unchanged and the result is a fresh dense table —
// no gaps, no original positions. Rows whose field yields no atomic values
// are dropped entirely.
func Explode(t *Table, columnName string) (*Table, error) {
	col, err := lookupColumn(columnName)
	if err != nil {
		return nil, err
	}

	out := &Table{Rows: make([]Title, 0, t.Len())}
	for i := range t.Rows {
		for _, part := range strings.Split(col.get(&t.Rows[i]), ",") {
			v := strings.TrimSpace(part)
			if v == "" {
				continue
			}
			row := t.Rows[i]
			col.set(&row, v)
			out.Rows = append(out.Rows, row)
		}
	}
	return out, nil
}
