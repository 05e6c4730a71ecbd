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

package dartsarif

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Reader turns dart analyze output into a ReportInfo
type Reader struct {
	logger *slog.Logger
	filter *PathExclusionFilter
}

// NewReader builds a new reader. A nil logger discards all messages.
func NewReader(logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Reader{logger: logger}
}

// WithFilter sets the filter used to drop issues by path and rule
func (r *Reader) WithFilter(filter *PathExclusionFilter) *Reader {
	r.filter = filter
	return r
}

// Read parses every line of src. Lines which are not diagnostics are
// skipped, a malformed location aborts the whole read. Lines are not
// limited in length.
func (r *Reader) Read(src io.Reader) (*ReportInfo, error) {
	lines := bufio.NewReader(src)

	issues := []*Issue{}
	skipped := []Error{}
	metrics := &Metrics{}

	for {
		raw, readErr := lines.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, fmt.Errorf("reading input: %w", readErr)
		}
		if raw != "" {
			metrics.NumLines++
			issue, err := r.parseLine(trimNewline(raw), metrics, &skipped)
			if err != nil {
				return nil, err
			}
			if issue != nil {
				issues = append(issues, issue)
			}
		}
		if readErr == io.EOF {
			break
		}
	}

	metrics.NumFound = len(issues)
	r.logger.Debug("input parsed",
		"lines", metrics.NumLines,
		"issues", metrics.NumFound,
		"skipped", metrics.NumSkipped,
		"excluded", metrics.NumExcluded)

	return NewReportInfo(issues, metrics, skipped), nil
}

// parseLine returns the issue of the current line, or nil when the line
// was skipped or excluded
func (r *Reader) parseLine(text string, metrics *Metrics, skipped *[]Error) (*Issue, error) {
	issue, err := ParseIssue(text)
	switch {
	case errors.Is(err, ErrNotDiagnostic):
		r.logger.Debug("skipping invalid line", "line", metrics.NumLines, "text", text)
		*skipped = append(*skipped, *NewError(metrics.NumLines, strings.TrimSpace(text), err.Error()))
		metrics.NumSkipped++
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("line %d: %w", metrics.NumLines, err)
	case r.filter.ShouldExclude(issue.Location.Path, issue.Rule):
		r.logger.Debug("excluding issue", "location", issue.FileLocation(), "rule", issue.Rule)
		metrics.NumExcluded++
		return nil, nil
	}
	return issue, nil
}

func trimNewline(line string) string {
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
}

// ReadFile opens path and reads it. Files ending in .gz are decompressed.
func (r *Reader) ReadFile(path string) (*ReportInfo, error) {
	// #nosec G304
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var src io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer gz.Close()
		src = gz
	}

	r.logger.Info("reading analyzer output", "file", path)
	return r.Read(src)
}
