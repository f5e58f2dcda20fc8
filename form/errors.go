package form

import (
	"sort"
	"strings"
)

// Errors maps a form field to its validation message.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}

	sort.Strings(fields)

	var b strings.Builder
	for i, field := range fields {
		if i > 0 {
			b.WriteString("; ")
		}

		b.WriteString(field)
		b.WriteString(": ")
		b.WriteString(e[field])
	}

	return b.String()
}

func (e Errors) Valid() bool {
	return len(e) == 0
}

// Err returns e as an error, or nil when no field failed.
func (e Errors) Err() error {
	if e.Valid() {
		return nil
	}

	return e
}
