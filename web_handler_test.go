package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func postForm(t *testing.T, description, samples string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("description", description)
	form.Set("samples", samples)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handleIndex(rec, req)
	return rec
}

func TestHandleIndexGet(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handleIndex(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<form")
	assert.Contains(t, rec.Body.String(), "average is 77.31%")
}

func TestHandleIndexPostReady(t *testing.T) {
	rec := postForm(t, exampleText, "200")

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "/chart?id=")
	assert.Contains(t, body, "/plot?id=")
	assert.Contains(t, body, "77.31%")

	idMatch := regexp.MustCompile(`/chart\?id=([0-9a-f-]+)`).FindStringSubmatch(body)
	assert.NotNil(t, idMatch)
	result, ok := loadResult(idMatch[1])
	assert.True(t, ok)
	assert.Equal(t, StateReady, result.State)
	assert.Len(t, result.Points, CurvePointCount)
}

func TestHandleIndexPostParseError(t *testing.T) {
	rec := postForm(t, "nothing statistical here", "200")

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "could not parse statistics")
	assert.NotContains(t, body, "/chart?id=")
}

func TestHandleIndexPostBadSampleSize(t *testing.T) {
	rec := postForm(t, exampleText, "abc")

	body := rec.Body.String()
	assert.Contains(t, body, "not a whole number")
	assert.NotContains(t, body, "/chart?id=")
}

func TestHandleChart(t *testing.T) {
	id := storeResult(Visualize(exampleText, "200"))

	req := httptest.NewRequest(http.MethodGet, "/chart?id="+id, nil)
	rec := httptest.NewRecorder()
	handleChart(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "echarts")
}

func TestHandleChartUnknownID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/chart?id=unknown", nil)
	rec := httptest.NewRecorder()
	handleChart(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlePlot(t *testing.T) {
	id := storeResult(Visualize(exampleText, "200"))

	req := httptest.NewRequest(http.MethodGet, "/plot?id="+id, nil)
	rec := httptest.NewRecorder()
	handlePlot(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes()[:4])
}

func TestPurgeOldResults(t *testing.T) {
	id := storeResult(Visualize(exampleText, "200"))
	_, ok := loadResult(id)
	assert.True(t, ok)

	purgeOldResults(time.Now().Add(time.Minute))
	_, ok = loadResult(id)
	assert.False(t, ok)
}
