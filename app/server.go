package app

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

//NewEcho builds the echo instance serving the benchmark page: the dashboard
//HTML at /, and the persisted artifacts under /api/.
func NewEcho(b *Benchmark, log *slog.Logger) *echo.Echo {
	if log == nil {
		log = slog.Default()
	}
	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		e.DefaultHTTPErrorHandler(err, ctx)
		log.Error("request failed", "path", ctx.Path(), "error", err.Error())
	}
	e.GET("/", func(c echo.Context) error {
		return pageHandler(b, c)
	})
	e.GET("/api/table", artifactHandler(b.TablePath))
	e.GET("/api/figure", artifactHandler(b.FigurePath))
	e.GET("/api/figure.png", func(c echo.Context) error {
		return c.File(b.FigurePNG)
	})
	return e
}

//Serve runs the dashboard on the given local port, blocking.
func Serve(b *Benchmark, port int, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}
	e := NewEcho(b, log)
	log.Info("serving benchmark dashboard", "benchmark", b.Name, "port", port)
	return e.Start(fmt.Sprintf(":%d", port))
}

//artifactHandler serves a persisted JSON artifact. A missing artifact means
//the analysis stage has not run yet, which deserves a clearer message than
//a bare 404.
func artifactHandler(path string) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw, err := os.ReadFile(path)
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound,
				fmt.Sprintf("artifact %s not found; run the analysis stage first", path))
		}
		return c.JSONBlob(http.StatusOK, raw)
	}
}

func pageHandler(b *Benchmark, c echo.Context) error {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, b); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.HTML(http.StatusOK, buf.String())
}

//The page fetches the table artifact, renders it as a plain table, and
//reveals the figure when the linked metric column is clicked.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><title>{{.Name}} benchmark</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; }
td, th { border: 1px solid #999; padding: 0.4em 0.8em; }
th.linked { cursor: pointer; text-decoration: underline; }
#figure-placeholder { margin-top: 1.5em; }
</style>
</head>
<body>
<h1>{{.Name}}</h1>
<p>{{.Description}} <a href="{{.DocsURL}}">Documentation</a>.</p>
<div id="table"></div>
<div id="figure-placeholder"></div>
<script>
const linked = {{.LinkedMetric}};
fetch("api/table").then(r => r.json()).then(data => {
	const metrics = Object.keys(data.metrics).sort();
	const models = new Set();
	metrics.forEach(m => Object.keys(data.metrics[m]).forEach(mod => models.add(mod)));
	let html = "<table><tr><th>Model</th>";
	for (const m of metrics) {
		const cls = m === linked ? " class=\"linked\" onclick=\"showFigure()\"" : "";
		const tip = data.tooltips && data.tooltips[m] ? " title=\"" + data.tooltips[m] + "\"" : "";
		html += "<th" + cls + tip + ">" + m + "</th>";
	}
	html += "</tr>";
	for (const mod of [...models].sort()) {
		html += "<tr><td>" + mod + "</td>";
		for (const m of metrics) {
			const v = data.metrics[m][mod];
			html += "<td>" + (v === undefined ? "" : v.toPrecision(4)) + "</td>";
		}
		html += "</tr>";
	}
	html += "</table>";
	document.getElementById("table").innerHTML = html;
});
function showFigure() {
	document.getElementById("figure-placeholder").innerHTML =
		"<img src=\"api/figure.png\" alt=\"Volume vs Pressure\">";
}
</script>
</body>
</html>
`))
