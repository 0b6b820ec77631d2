package web

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/sweeney/button-daemon/internal/status"
)

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"uptime": func(d time.Duration) string {
		d = d.Truncate(time.Second)
		days := int(d.Hours()) / 24
		h := int(d.Hours()) % 24
		m := int(d.Minutes()) % 60
		s := int(d.Seconds()) % 60
		if days > 0 {
			return fmt.Sprintf("%dd %dh %dm %ds", days, h, m, s)
		}
		if h > 0 {
			return fmt.Sprintf("%dh %dm %ds", h, m, s)
		}
		if m > 0 {
			return fmt.Sprintf("%dm %ds", m, s)
		}
		return fmt.Sprintf("%ds", s)
	},
}).Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Button Daemon</title>
<style>
body { font-family: monospace; max-width: 600px; margin: 2em auto; padding: 0 1em; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; margin: 1em 0; }
td, th { text-align: left; padding: 4px 8px; border-bottom: 1px solid #ddd; }
th { width: 40%; }
.gesture { color: green; font-weight: bold; }
.none { color: #888; }
.connected { color: green; }
.disconnected { color: red; }
</style>
</head>
<body>
<h1>Button Daemon</h1>

<h2>Last Gesture</h2>
<table>
{{if .Last}}
<tr><th>Gesture</th><td class="gesture">{{.Last.Kind}}</td></tr>
{{if .Last.Count}}<tr><th>Count</th><td>{{.Last.Count}}</td></tr>{{end}}
{{if .Last.HeldMs}}<tr><th>Held</th><td>{{.Last.HeldMs}}ms</td></tr>{{end}}
<tr><th>At</th><td>{{.Last.At.UTC.Format "2006-01-02T15:04:05Z"}}</td></tr>
{{else}}
<tr><th>Gesture</th><td class="none">none yet</td></tr>
{{end}}
</table>

<h2>Gesture Counts</h2>
<table>
<tr><th>DOWN</th><td>{{.Counts.Down}}</td></tr>
<tr><th>UP</th><td>{{.Counts.Up}}</td></tr>
<tr><th>CLICK</th><td>{{.Counts.Click}}</td></tr>
<tr><th>HOLD</th><td>{{.Counts.Hold}}</td></tr>
</table>

{{if .Config.Broker}}
<h2>Connectivity</h2>
<table>
<tr><th>MQTT</th><td class="{{if .MQTTConnected}}connected{{else}}disconnected{{end}}">{{if .MQTTConnected}}connected{{else}}disconnected{{end}}</td></tr>
<tr><th>Broker</th><td>{{.Config.Broker}}</td></tr>
</table>
{{end}}

<h2>System</h2>
<table>
<tr><th>Uptime</th><td>{{uptime .Uptime}}</td></tr>
<tr><th>Started</th><td>{{.StartTime.UTC.Format "2006-01-02T15:04:05Z"}}</td></tr>
<tr><th>Pin</th><td>GPIO {{.Config.Pin}}</td></tr>
<tr><th>Config</th><td>{{.Config.ConfigPath}}</td></tr>
<tr><th>Click window</th><td>{{.Config.ClickWindowMs}}ms</td></tr>
<tr><th>Hold threshold</th><td>{{.Config.HoldThresholdMs}}ms</td></tr>
<tr><th>Click count limit</th><td>{{if .Config.ClickCountLimit}}{{.Config.ClickCountLimit}}{{else}}unlimited{{end}}</td></tr>
<tr><th>HTTP</th><td>{{.Config.HTTPAddr}}</td></tr>
</table>

<p><a href="/index.json">JSON</a></p>
</body>
</html>
`

func renderHTML(w io.Writer, snap status.Snapshot) {
	// Snapshot has Uptime() method but template needs a Duration field.
	data := struct {
		status.Snapshot
		Uptime time.Duration
	}{
		Snapshot: snap,
		Uptime:   snap.Uptime(),
	}
	indexTmpl.Execute(w, data)
}
