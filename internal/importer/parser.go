package importer

import "strings"

// ParseLine splits one raw CSV line into trimmed field values.
//
// Commas inside double-quote-delimited segments are not delimiters, and a
// doubled double-quote inside a quoted segment yields one literal quote.
// Trailing empty fields are preserved so positional mapping stays valid when
// optional columns are omitted. Malformed quoting is not rejected: an
// unterminated quote consumes to end of line and whatever was accumulated is
// returned.
func ParseLine(line string) []string {
	fields := make([]string, 0, len(importColumns))
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				// Escaped quote inside a quoted segment
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))

	return fields
}
