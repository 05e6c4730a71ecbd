package dartsarif

import (
	"sort"
)

// Error records an input line which was skipped because it is not a diagnostic
type Error struct {
	Line int    `json:"line" yaml:"line"`
	Text string `json:"text" yaml:"text"`
	Err  string `json:"error" yaml:"error"`
}

// NewError creates Error object
func NewError(line int, text, err string) *Error {
	return &Error{
		Line: line,
		Text: text,
		Err:  err,
	}
}

// sortErrors sorts the skipped lines by line number
func sortErrors(errors []Error) {
	sort.SliceStable(errors, func(i, j int) bool {
		return errors[i].Line < errors[j].Line
	})
}
