package sarif

import (
	"encoding/json"
	"io"

	"github.com/dartsarif/dartsarif"
)

// WriteReport write a report in SARIF format to the output writer
func WriteReport(w io.Writer, data *dartsarif.ReportInfo, opts Options) error {
	sr, err := GenerateReport(data, opts)
	if err != nil {
		return err
	}
	raw, err := json.MarshalIndent(sr, "", "  ")
	if err != nil {
		return err
	}

	_, err = w.Write(append(raw, '\n'))
	return err
}
