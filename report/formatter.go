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

package report

import (
	"fmt"
	"io"

	"github.com/dartsarif/dartsarif"
	"github.com/dartsarif/dartsarif/report/json"
	"github.com/dartsarif/dartsarif/report/sarif"
	"github.com/dartsarif/dartsarif/report/text"
	"github.com/dartsarif/dartsarif/report/yaml"
)

// Supported output formats
const (
	FormatSARIF = "sarif"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatText  = "text"
)

// Formats lists the output formats accepted by CreateReport
var Formats = []string{FormatSARIF, FormatJSON, FormatYAML, FormatText}

// CreateReport writes the report in the given format. An empty format
// selects SARIF. The SARIF options are ignored by the other formats.
func CreateReport(w io.Writer, format string, enableColor bool, opts sarif.Options, data *dartsarif.ReportInfo) error {
	switch format {
	case FormatSARIF, "":
		return sarif.WriteReport(w, data, opts)
	case FormatJSON:
		return json.WriteReport(w, data)
	case FormatYAML:
		return yaml.WriteReport(w, data)
	case FormatText:
		return text.WriteReport(w, data, enableColor)
	default:
		return fmt.Errorf("unknown output format %q, valid options are %v", format, Formats)
	}
}
