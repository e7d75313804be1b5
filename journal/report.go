package journal

import (
	"bytes"
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/rustyeddy/tradeplan/risk"
)

// PortfolioReport is the dashboard view of one portfolio.
type PortfolioReport struct {
	Portfolio risk.Portfolio
	Generated time.Time

	// HasData is false when no trade has closed yet; Summary is then
	// meaningless.
	HasData bool
	Summary Summary
	Daily   []DailyPL
	Open    int
}

// NewPortfolioReport builds the rollups for entries.
func NewPortfolioReport(p risk.Portfolio, entries []PLEntry, now time.Time) PortfolioReport {
	r := PortfolioReport{
		Portfolio: p,
		Generated: now,
	}
	for _, e := range entries {
		if e.PL == nil {
			r.Open++
		}
	}
	r.Summary, r.HasData = Summarize(entries)
	if r.HasData {
		r.Daily = DailyPLSeries(entries)
	}
	return r
}

var reportFuncs = template.FuncMap{
	"mul100": func(x float64) float64 { return x * 100.0 },
	"usd":    func(x float64) string { return fmt.Sprintf("%.2f", x) },
	"day":    func(t time.Time) string { return t.Format(time.DateOnly) },
}

var reportTmpl = template.Must(template.New("report").Funcs(reportFuncs).Parse(ReportOrgTemplate))

// WriteOrg renders the report as an Org-mode section.
func (r PortfolioReport) WriteOrg(w io.Writer) error {
	buf := new(bytes.Buffer)
	if err := reportTmpl.Execute(buf, r); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

const ReportOrgTemplate = `* PORTFOLIO: {{.Portfolio.Name}}
:PROPERTIES:
:BALANCE:     {{usd .Portfolio.Balance}}
:LEVERAGE:    {{.Portfolio.Leverage}}
:RISK_TRADE:  {{usd .Portfolio.RiskPerTradeUSD}}
:MAX_DAILY:   {{usd .Portfolio.MaxDailyRiskUSD}}
:DAILY_LIMIT: {{usd .Portfolio.DailyLossLimit}}
:TOTAL_LIMIT: {{usd .Portfolio.TotalLossLimit}}
:GENERATED:   [{{.Generated.Format "2006-01-02 Mon 15:04"}}]
:END:
{{if not .HasData}}
no trade data yet{{if .Open}} ({{.Open}} open){{end}}
{{- else}}
** Performance Summary
- Total P/L (USD):  *{{usd .Summary.Total}}*
- Best Trade:       *{{usd .Summary.Best}}*
- Worst Trade:      *{{usd .Summary.Worst}}*
- Win Rate:         *{{printf "%.2f" (mul100 .Summary.WinRate)}}%*

** Trade Distribution
| Outcome | Count |
|---------+-------|
| Wins    | {{.Summary.Wins}} |
| Losses  | {{.Summary.Losses}} |
| Closed  | {{.Summary.Count}} |
| Open    | {{.Open}} |

** Daily P/L
| Date       | P/L (USD) |
|------------+-----------|
{{- range .Daily}}
| {{day .Date}} | {{usd .PL}} |
{{- end}}
{{- end}}
`
