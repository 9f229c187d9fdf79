package tabular

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrSourceUnreadable indicates the raw input could not be decoded as text.
// It is fatal for that one source only; callers degrade to an empty snapshot.
var ErrSourceUnreadable = errors.New("source is not decodable as text")

// Decode parses raw reader output into rows of trimmed string fields.
//
// Any of comma, semicolon or tab acts as a field delimiter. Blank lines are
// skipped. Rows keep whatever arity they have; quote handling is best-effort
// and an unterminated quote consumes the rest of the line rather than failing
// the parse.
func Decode(raw string) ([][]string, error) {
	if !utf8.ValidString(raw) || strings.ContainsRune(raw, 0) {
		return nil, ErrSourceUnreadable
	}

	var rows [][]string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, splitFields(line))
	}
	return rows, nil
}

func isDelimiter(c byte) bool {
	return c == ',' || c == ';' || c == '\t'
}

// splitFields splits one line on any candidate delimiter. Double quotes group
// fields containing delimiters; a doubled quote inside a quoted field is an
// escaped literal quote.
func splitFields(line string) []string {
	var (
		fields   []string
		b        strings.Builder
		inQuotes bool
	)

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				b.WriteByte('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case !inQuotes && isDelimiter(c):
			fields = append(fields, strings.TrimSpace(b.String()))
			b.Reset()
		default:
			b.WriteByte(c)
		}
	}
	fields = append(fields, strings.TrimSpace(b.String()))

	return fields
}
