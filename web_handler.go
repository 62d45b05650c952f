package main

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	uuid "github.com/satori/go.uuid"

	"github.com/curveplot/curve_visualizer/config"
	"github.com/curveplot/curve_visualizer/plot"
)

const curveGraphName = "Expected score distribution"

const exampleDescription = "The class average is 77.31% with a standard deviation of 15.17%. Scores ranged from 24% to 100%."

type storedResult struct {
	result  VisualizeResult
	created time.Time
}

var (
	resultsMu sync.Mutex
	results   = map[string]storedResult{}
)

func storeResult(result VisualizeResult) string {
	uid := uuid.NewV4().String()
	resultsMu.Lock()
	results[uid] = storedResult{result: result, created: time.Now()}
	resultsMu.Unlock()
	return uid
}

func loadResult(id string) (VisualizeResult, bool) {
	resultsMu.Lock()
	defer resultsMu.Unlock()
	stored, ok := results[id]
	return stored.result, ok
}

func purgeOldResults(maxAge time.Time) {
	resultsMu.Lock()
	defer resultsMu.Unlock()
	for id, stored := range results {
		if stored.created.Before(maxAge) {
			delete(results, id)
		}
	}
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<title>Normal Curve Visualizer</title>
<style>
body { font-family: sans-serif; max-width: 900px; margin: 2em auto; }
textarea { width: 100%; height: 5em; }
.error { color: #b00020; }
pre { background: #efefef; padding: 1em; }
iframe { width: 100%; height: 520px; border: 1px solid #efefef; }
</style>
</head>
<body>
<h1>Normal Curve Visualizer</h1>
<p>Paste a description of your score statistics and pick a sample size.</p>
<form method="POST" action="/">
<textarea name="description">{{.Description}}</textarea>
<p><label>Sample size: <input name="samples" value="{{.Samples}}"></label>
<button type="submit">Visualize</button></p>
</form>
{{if .ErrorMessage}}<p class="error">{{.ErrorMessage}}</p>{{end}}
{{if .Ready}}
<pre>{{.Table}}</pre>
<iframe src="/chart?id={{.ResultID}}"></iframe>
<p><a href="/plot?id={{.ResultID}}">Download as PNG</a></p>
{{end}}
</body>
</html>
`))

type pageData struct {
	Description  string
	Samples      string
	ErrorMessage string
	Ready        bool
	Table        string
	ResultID     string
}

func handleIndex(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Description: exampleDescription,
		Samples:     strconv.Itoa(config.GetConfig().DefaultSampleSize),
	}

	if r.Method == http.MethodPost {
		data.Description = r.FormValue("description")
		data.Samples = r.FormValue("samples")

		result := Visualize(data.Description, data.Samples)
		switch result.State {
		case StateError:
			data.ErrorMessage = result.ErrorMessage
		case StateReady:
			data.Ready = true
			data.Table = GenerateStatsTable(result.Stats, result.SampleSize, result.Points)
			data.ResultID = storeResult(result)
		}
	}

	err := pageTemplate.Execute(w, data)
	if err != nil {
		log.Printf("Error rendering page: %v", err)
	}
}

func handleChart(w http.ResponseWriter, r *http.Request) {
	result, ok := loadResult(r.URL.Query().Get("id"))
	if !ok {
		http.Error(w, "Chart not found or expired", http.StatusNotFound)
		return
	}

	labels, values := curveSeries(result.Points)
	err := plot.RenderCurveHTML(plot.NewCurveData(labels, values, curveGraphName), w)
	if err != nil {
		log.Printf("Error rendering chart: %v", err)
		http.Error(w, "Error rendering chart", http.StatusInternalServerError)
	}
}

func handlePlot(w http.ResponseWriter, r *http.Request) {
	result, ok := loadResult(r.URL.Query().Get("id"))
	if !ok {
		http.Error(w, "Chart not found or expired", http.StatusNotFound)
		return
	}

	labels, values := curveSeries(result.Points)
	png, err := plot.DrawCurve(plot.NewCurveData(labels, values, curveGraphName))
	if err != nil {
		log.Printf("Error rendering plot: %v", err)
		http.Error(w, "Error rendering plot", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", fmt.Sprint(len(png)))
	w.Write(png)
}
