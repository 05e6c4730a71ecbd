package json

import (
	"encoding/json"
	"io"

	"github.com/dartsarif/dartsarif"
)

// WriteReport write a report in json format to the output writer
func WriteReport(w io.Writer, data *dartsarif.ReportInfo) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	_, err = w.Write(append(raw, '\n'))
	return err
}
