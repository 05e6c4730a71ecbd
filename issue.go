// (c) Copyright 2016 Hewlett Packard Enterprise Development LP
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dartsarif parses the plain text output of `dart analyze` and
// `flutter analyze` into issues that can be rendered as SARIF.
package dartsarif

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FieldSeparator separates the fields of a diagnostic line
const FieldSeparator = " - "

// Known severities emitted by dart analyze. The set is open, any other
// value is kept verbatim.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// ErrNotDiagnostic is returned for lines which do not have the
// `severity - location - message - rule` shape
var ErrNotDiagnostic = errors.New("not a valid dart analyze line")

// LocationError is returned when a location can not be split into
// path, line and column
type LocationError struct {
	Raw   string // location as found in the input
	Field string // "line", "column" or "" when segments are missing
	Err   error
}

func (e *LocationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid location %q: %v", e.Raw, e.Err)
	}
	return fmt.Sprintf("invalid %s in location %q: %v", e.Field, e.Raw, e.Err)
}

func (e *LocationError) Unwrap() error {
	return e.Err
}

var errMissingSegments = errors.New("expected path:line:column")

// Location is a position inside a source file
type Location struct {
	Path   string `json:"path" yaml:"path"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
}

// ParseLocation splits a `path:line:column` string. The path may itself
// contain colons (drive letters), so the numbers are taken from the right.
func ParseLocation(raw string) (Location, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 3 {
		return Location{}, &LocationError{Raw: raw, Err: errMissingSegments}
	}

	column, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return Location{}, &LocationError{Raw: raw, Field: "column", Err: err}
	}
	line, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return Location{}, &LocationError{Raw: raw, Field: "line", Err: err}
	}

	return Location{
		Path:   strings.Join(parts[:len(parts)-2], ":"),
		Line:   line,
		Column: column,
	}, nil
}

// String returns the location in the `path:line:column` form
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.Path, l.Line, l.Column)
}

// Issue is a single diagnostic reported by dart analyze
type Issue struct {
	Severity string   `json:"severity" yaml:"severity"` // taken verbatim from the input
	Location Location `json:"location" yaml:"location"` // where the diagnostic points to
	Message  string   `json:"message" yaml:"message"`   // human readable explanation
	Rule     string   `json:"rule" yaml:"rule"`         // lint or diagnostic code
}

// ParseIssue parses one line of dart analyze output. ErrNotDiagnostic is
// returned for lines without exactly four fields, a *LocationError when
// the location is malformed.
func ParseIssue(line string) (*Issue, error) {
	parts := strings.SplitN(strings.TrimSpace(line), FieldSeparator, 4)
	if len(parts) != 4 {
		return nil, ErrNotDiagnostic
	}

	location, err := ParseLocation(parts[1])
	if err != nil {
		return nil, err
	}

	return &Issue{
		Severity: parts[0],
		Location: location,
		Message:  parts[2],
		Rule:     parts[3],
	}, nil
}

// FileLocation point out the file path and line number in file
func (i Issue) FileLocation() string {
	return fmt.Sprintf("%s:%d", i.Location.Path, i.Location.Line)
}
