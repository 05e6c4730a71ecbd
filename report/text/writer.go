package text

import (
	_ "embed" // use go embed to import template
	"fmt"
	"io"
	"text/template"

	"github.com/gookit/color"

	"github.com/dartsarif/dartsarif"
)

var (
	errorTheme   = color.New(color.FgLightWhite, color.BgRed)
	warningTheme = color.New(color.FgBlack, color.BgYellow)
	defaultTheme = color.New(color.FgWhite, color.BgBlack)

	//go:embed template.txt
	templateContent string
)

// WriteReport write a (colorized) report in text format
func WriteReport(w io.Writer, data *dartsarif.ReportInfo, enableColor bool) error {
	t, e := template.
		New("dartsarif").
		Funcs(plainTextFuncMap(enableColor)).
		Parse(templateContent)
	if e != nil {
		return e
	}

	return t.Execute(w, data)
}

func plainTextFuncMap(enableColor bool) template.FuncMap {
	if enableColor {
		return template.FuncMap{
			"highlight": highlight,
			"danger":    color.Danger.Render,
			"notice":    color.Notice.Render,
			"success":   color.Success.Render,
		}
	}

	// by default those functions return the given content untouched
	return template.FuncMap{
		"highlight": func(t string, severity string) string {
			return t
		},
		"danger":  fmt.Sprint,
		"notice":  fmt.Sprint,
		"success": fmt.Sprint,
	}
}

// highlight returns content t colored based on the severity
func highlight(t string, severity string) string {
	switch severity {
	case dartsarif.SeverityError:
		return errorTheme.Sprint(t)
	case dartsarif.SeverityWarning:
		return warningTheme.Sprint(t)
	default:
		return defaultTheme.Sprint(t)
	}
}
