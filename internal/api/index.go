package api

import (
	"html/template"
	"net/http"

	"github.com/dmitrymomot/placegen/pkg/placename"
)

// The form page drives the same listing/statistics modes as the JSON API,
// server-rendered for browsers. html/template escapes all injected values.
var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>placegen</title>
</head>
<body>
<h1>Place name generator</h1>
<form method="get" action="/">
  <label>Names: <input type="number" name="count" min="1" max="500" value="{{.Count}}"></label>
  <label>Prefix: <input type="text" name="prefix" value="{{printf "%.2f" .Thresholds.Prefix}}"></label>
  <label>Suffix: <input type="text" name="suffix" value="{{printf "%.2f" .Thresholds.Suffix}}"></label>
  <label>Double: <input type="text" name="double" value="{{printf "%.2f" .Thresholds.Double}}"></label>
  <button type="submit">Generate</button>
  <button type="submit" name="mode" value="stats">Statistics</button>
</form>
{{if .Stats}}
<h2>Statistics</h2>
<ul>
  <li>Base names: {{.Stats.Base}} ({{.Stats.FirstParts}} &times; {{.Stats.SecondParts}})</li>
  <li>Double names: {{.Stats.Doubles}}</li>
  <li>With prefixes: {{.Stats.WithPrefixes}}</li>
  <li>With suffixes: {{.Stats.WithSuffixes}}</li>
  <li>With both: {{.Stats.WithBoth}}</li>
  <li>Approximate total (incl. doubles): {{.Stats.ApproxTotal}}</li>
</ul>
{{else}}
<ul>
{{range .Names}}  <li>{{.}}</li>
{{end}}</ul>
{{end}}
</body>
</html>
`))

type indexData struct {
	Count      int
	Thresholds placename.Thresholds
	Names      []string
	Stats      *placename.Stats
}

// index renders the HTML form page with either a name listing or the
// statistics block, mirroring the JSON endpoints.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	count := clampInt(queryInt(r, "count", defaultCount), 1, maxCount)
	gen := h.requestGenerator(r)

	data := indexData{Count: count, Thresholds: gen.Thresholds()}
	if r.URL.Query().Get("mode") == "stats" {
		stats := gen.Stats()
		data.Stats = &stats
	} else {
		data.Names = make([]string, count)
		for i := range data.Names {
			data.Names[i] = gen.Generate()
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		h.log.ErrorContext(r.Context(), "render index page", "error", err)
	}
}
