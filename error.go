package main

import "strings"

// MultiError aggregates the failures of a script run so a batch reports every
// bad line, not just the first.
type MultiError []error

func (m MultiError) Error() string {
	var b strings.Builder
	b.WriteString("multiple errors:")
	for _, err := range m {
		b.WriteString("\n- " + err.Error())
	}
	return b.String()
}
