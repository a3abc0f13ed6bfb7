package httpapi

import "html/template"

var (
	indexTmpl = template.Must(template.New("index").Parse(indexHTML))
	planTmpl  = template.Must(template.New("plan").
			Funcs(template.FuncMap{"inc": func(i int) int { return i + 1 }}).
			Parse(planHTML))
	errorTmpl = template.Must(template.New("error").Parse(errorHTML))
)

const pageStyle = `
<style>
  body { font-family: system-ui, sans-serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; color: #222; }
  h1 { font-size: 1.6rem; }
  form { display: flex; gap: 0.75rem; align-items: end; flex-wrap: wrap; }
  label { display: flex; flex-direction: column; font-size: 0.9rem; gap: 0.25rem; }
  input { padding: 0.4rem 0.6rem; font-size: 1rem; }
  button { padding: 0.5rem 1.2rem; font-size: 1rem; cursor: pointer; }
  section { margin: 1.5rem 0; }
  table { border-collapse: collapse; width: 100%; }
  th, td { border: 1px solid #ccc; padding: 0.4rem 0.6rem; text-align: left; }
  details { margin: 0.5rem 0; }
  .notice { background: #fff3f3; border: 1px solid #e0b4b4; padding: 1rem; border-radius: 4px; }
  pre { background: #f6f6f6; padding: 1rem; overflow-x: auto; }
  .muted { color: #777; font-style: italic; }
</style>`

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>TripWeaver</title>` + pageStyle + `</head>
<body>
  <h1>TripWeaver</h1>
  <p>Tell me where you want to go and for how long, and I will put a plan together.</p>
  <form method="post" action="/plan">
    <label>Destination city
      <input type="text" name="city" placeholder="Paris" required>
    </label>
    <label>Number of days
      <input type="number" name="days" min="1" max="30" value="5">
    </label>
    <button type="submit">Plan my trip</button>
  </form>
</body>
</html>`

const planHTML = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Trip plan: {{.View.Request.City}}</title>` + pageStyle + `</head>
<body>
  <h1>Trip plan: {{.View.Request.City}} ({{.View.Request.Days}} days)</h1>
  <p><a href="/">&larr; Plan another trip</a></p>
{{if .View.Failed}}
  <div class="notice">
    <p>{{.View.FailureNotice}}</p>
  </div>
  {{if .View.RawText}}
  <details open>
    <summary>Raw model output</summary>
    <pre>{{.View.RawText}}</pre>
  </details>
  {{end}}
{{else}}
  {{range $i, $s := .View.Sections}}
  <section>
    <h2>{{inc $i}}. {{$s.Title}}</h2>
    {{if $s.Flights}}
    <table>
      <tr><th>Airline</th><th>Route</th><th>Stops</th><th>Duration</th><th>Price (USD)</th><th>Notes</th></tr>
      {{range $s.Flights}}
      <tr><td>{{.Airline}}</td><td>{{.From}} &rarr; {{.To}}</td><td>{{.Stops}}</td><td>{{.DurationHours}}h</td><td>{{.PriceUSD}}</td><td>{{.Notes}}</td></tr>
      {{end}}
    </table>
    {{else if $s.Hotels}}
    <table>
      <tr><th>Hotel</th><th>Stars</th><th>Price/night (USD)</th><th>Location</th><th>Notes</th></tr>
      {{range $s.Hotels}}
      <tr><td>{{.Name}}</td><td>{{.Stars}}</td><td>{{.PricePerNightUSD}}</td><td>{{.Location}}</td><td>{{.Notes}}</td></tr>
      {{end}}
    </table>
    {{else if $s.Days}}
    {{range $s.Days}}
    <details>
      <summary><strong>Day {{.Day}}: {{.Title}}</strong></summary>
      <p>{{.Description}}</p>
    </details>
    {{end}}
    {{else if $s.Text}}
    <p>{{$s.Text}}</p>
    {{else}}
    <p class="muted">Nothing was suggested.</p>
    {{end}}
  </section>
  {{end}}
{{end}}
{{if .View.Transcript}}
  <details>
    <summary>Tool transcript</summary>
    <table>
      <tr><th>Round</th><th>Tool</th><th>Arguments</th><th>Result</th></tr>
      {{range .View.Transcript.Entries}}
      <tr><td>{{.Round}}</td><td>{{.Call.Name}}</td><td><pre>{{printf "%v" .Call.Args}}</pre></td><td><pre>{{printf "%v" .Result.Result}}</pre></td></tr>
      {{end}}
    </table>
  </details>
{{end}}
</body>
</html>`

const errorHTML = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>TripWeaver</title>` + pageStyle + `</head>
<body>
  <h1>TripWeaver</h1>
  <div class="notice">
    <p>{{.Message}}</p>
  </div>
  <p><a href="/">&larr; Back</a></p>
</body>
</html>`
