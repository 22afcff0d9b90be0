package email

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
)

type ResultRow struct {
	Domain string
	Score  float64
	Label  string
	Color  string
}

type ResultsEmailData struct {
	Rows []ResultRow
}

//go:embed email_survey_results.html
var resultsEmailHTML string

var resultsEmailTmpl = template.Must(
	template.New("results").
		Funcs(template.FuncMap{
			"formatScore": func(v float64) string {
				return fmt.Sprintf("%.1f", v)
			},
		}).
		Parse(resultsEmailHTML),
)

func RenderResultsEmailHTML(data ResultsEmailData) (string, error) {
	var buf bytes.Buffer
	if err := resultsEmailTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
