package export

import (
	"fmt"
	"io"
	"math"
	"os"
	"text/template"

	"github.com/grid-tools/fuelmix/pkg/models/domain"
)

// Reporter renders a terminal summary of a computed share series: the
// first and last few months plus the estimate annotation.
type Reporter struct {
	writer io.Writer
	edge   int // rows shown from each end of the series
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		edge:   5,
	}
}

type reportRow struct {
	Month     string
	Fossil    string
	Renewable string
	Marker    string
}

type reportData struct {
	Network   string
	First     string
	Last      string
	Months    int
	Head      []reportRow
	Tail      []reportRow
	Truncated bool
	Note      string
}

func (r *Reporter) Handle(series domain.ShareSeries, profile domain.NetworkProfile) error {
	if len(series) == 0 {
		return fmt.Errorf("share series is empty")
	}

	data := reportData{
		Network: profile.Code,
		First:   series[0].Month.String(),
		Last:    series[len(series)-1].Month.String(),
		Months:  len(series),
	}
	if final := series[len(series)-1]; final.Estimate {
		data.Note = fmt.Sprintf("Last value (%s) is an %s.", final.Month, final.Note)
	}

	if len(series) > 2*r.edge {
		data.Truncated = true
		data.Head = rows(series[:r.edge])
		data.Tail = rows(series[len(series)-r.edge:])
	} else {
		data.Head = rows(series)
	}

	tmpl := `
Rolling 12-month generation shares for {{.Network}} ({{.Months}} months, {{.First}} to {{.Last}})

{{range .Head}}{{.Month}}  fossil {{.Fossil}}  renewable {{.Renewable}}{{.Marker}}
{{end}}{{if .Truncated}}...
{{range .Tail}}{{.Month}}  fossil {{.Fossil}}  renewable {{.Renewable}}{{.Marker}}
{{end}}{{end}}{{if .Note}}
{{.Note}}
{{end}}`

	t, err := template.New("summary").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(r.writer, data)
}

func rows(points domain.ShareSeries) []reportRow {
	out := make([]reportRow, 0, len(points))
	for _, p := range points {
		row := reportRow{
			Month:     p.Month.String(),
			Fossil:    formatPct(p.FossilPct),
			Renewable: formatPct(p.RenewablePct),
		}
		if p.Estimate {
			row.Marker = "  (estimate)"
		}
		out = append(out, row)
	}
	return out
}

func formatPct(pct float64) string {
	if math.IsNaN(pct) {
		return "   n/a"
	}
	return fmt.Sprintf("%6.2f%%", pct)
}
