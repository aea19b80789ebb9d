package table

import "strings"

// Record is one output row, one value per column in schema order.
type Record [ColumnCount]string

// Get returns the value for a column ID.
func (r Record) Get(id string) (string, bool) {
	idx, ok := ColumnIndex(id)
	if !ok {
		return "", false
	}
	return r[idx], true
}

// Map returns the record keyed by column ID.
func (r Record) Map() map[string]string {
	out := make(map[string]string, ColumnCount)
	for i, col := range Columns {
		out[col.ID] = r[i]
	}
	return out
}

// MapLine splits a line on commas and assigns the trimmed fields to columns
// by position. Columns past the end of the line get Undefined; fields past
// the last column are dropped. Quoted commas are not recognised, so a value
// containing a comma shifts every later column.
func MapLine(line string) Record {
	fields := strings.Split(line, ",")
	var rec Record
	for i := range rec {
		if i < len(fields) {
			rec[i] = strings.TrimSpace(fields[i])
			continue
		}
		rec[i] = Undefined
	}
	return rec
}

// MapText maps every non-blank line of text, keeping document order.
func MapText(text string) []Record {
	lines := strings.Split(text, "\n")
	records := make([]Record, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		records = append(records, MapLine(line))
	}
	return records
}
