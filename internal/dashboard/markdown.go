package dashboard

import (
	"fmt"
	"strings"
	"text/template"
)

var markdownTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"inc":  func(i int) int { return i + 1 },
	"join": func(items []string) string { return strings.Join(items, ", ") },
}).Parse(`# {{.Header.Name}}'s Financial Blueprint

{{.Encouragement.Emoji}} {{.Encouragement.Text}}

Monthly income **{{.Header.Income}}** · Risk profile **{{.Header.Risk}}**

## At a glance

| | |
|---|---:|
{{range .Stats}}| {{.Label}} | {{.Text}} |
{{end}}
## Asset allocation

| Asset | Share |
|---|---:|
{{range .Slices}}| {{.Label}} | {{.Percentage}}% |
{{end}}
## Growth projection

| Horizon | Projected corpus | You invest |
|---|---:|---:|
{{range .Bars}}| {{.Label}} | {{.Corpus}} | {{.Invested}} |
{{end}}
## Recommended instruments
{{range .Cards}}
### {{.Icon}} {{.Name}}

{{.AllocationLabel}} · {{.AllocationText}}{{if .AllocationPct}}%{{end}} of portfolio · {{.ReturnRange}} ({{.ReturnLabel}})

{{range .Details}}- **{{.Label}}:** {{.Value}}
{{end}}
**How to invest**

{{range $i, $s := .Steps}}{{inc $i}}. {{$s}}
{{end}}
**Documents required:** {{join .Docs}}

**Risks:** {{.Risks}}

**Avoid if:** {{.WhoAvoid}}

**Scam red flags**

{{range .ScamFlags}}- {{.}}
{{end}}{{end}}`))

// Markdown renders the dashboard as a markdown document
func Markdown(d Dashboard) (string, error) {
	var b strings.Builder
	if err := markdownTmpl.Execute(&b, d); err != nil {
		return "", fmt.Errorf("failed to render dashboard: %w", err)
	}
	return b.String(), nil
}
