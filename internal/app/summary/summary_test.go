package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MOYARU/bulletin/internal/config"
	"github.com/MOYARU/bulletin/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bulletinPage = `<!DOCTYPE html>
<html><body>
<div id="high_v">
  <table><tbody>
    <tr>
      <td class="vendor-product">Zoom -- Workplace</td>
      <td>Improper input validation<br>in the client.</td>
      <td>2024-04-01</td>
      <td>8.8</td>
      <td><a href="https://nvd.nist.gov/cve-1" target="_blank">CVE-1</a></td>
    </tr>
  </tbody></table>
</div>
<div id="medium_v">
  <table><tbody>
    <tr>
      <td class="vendor-product">acme -- widget</td>
      <td>Buffer overflow</td>
      <td>2024-04-02</td>
      <td>5.0</td>
      <td>none</td>
    </tr>
    <tr>
      <td class="vendor-product">Zoom -- Workplace</td>
      <td>Information leak</td>
      <td>2024-04-02</td>
      <td>4.3</td>
      <td><a href="https://nvd.nist.gov/cve-2">CVE-2</a></td>
    </tr>
  </tbody></table>
</div>
</body></html>`

func TestExtract(t *testing.T) {
	b, err := Extract([]byte(bulletinPage))
	require.NoError(t, err)
	assert.Equal(t, 2, b.Len())

	records := b.Records()
	require.Len(t, records, 3)
	assert.Equal(t, "Improper input validationin the client.", records[0].Description)
	assert.Equal(t, "", records[1].ReferenceURL)
	assert.Equal(t, "https://nvd.nist.gov/cve-2", records[2].ReferenceURL)

	groups := b.Groups([]string{"zoom"})
	require.Len(t, groups, 2)
	assert.Equal(t, "acme -- widget", groups[0].Key)
	assert.False(t, groups[0].Highlighted)
	assert.True(t, groups[1].Highlighted)
	require.Len(t, groups[1].Records, 2)
}

func TestRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(bulletinPage))
	}))
	defer srv.Close()

	dir := t.TempDir()
	var console bytes.Buffer
	res, err := Run(context.Background(), srv.URL+"/news-events/bulletins/sb24-099", Options{
		Config:     config.Default(),
		OutputDir:  dir,
		JSONOutput: true,
		Out:        &console,
	})
	require.NoError(t, err)
	var found []string
	for _, line := range strings.Split(console.String(), "\n") {
		if strings.Contains(line, "Found") {
			found = append(found, line)
		}
	}
	require.Len(t, found, 1)
	assert.Contains(t, found[0], "Found 2 items")
	assert.Equal(t, 2, res.Groups)
	assert.Equal(t, 3, res.Records)
	assert.Equal(t, filepath.Join(dir, "sb24-099.html"), res.HTMLPath)

	raw, err := os.ReadFile(res.HTMLPath)
	require.NoError(t, err)
	page := string(raw)
	assert.Contains(t, page, "<title>Vulnerability Summary sb24-099</title>")
	assert.Contains(t, page, "<details open>\n    <summary style=\"font-size:1.2em; color:red;\">Zoom -- Workplace</summary>")
	assert.Contains(t, page, "High: Improper input validationin the client.")
	assert.Less(t, strings.Index(page, "acme -- widget"), strings.Index(page, "Zoom -- Workplace"))

	raw, err = os.ReadFile(res.JSONPath)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Len(t, doc["records"], 3)
}

func TestRunFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dir := t.TempDir()
	var console bytes.Buffer
	_, err := Run(context.Background(), srv.URL+"/sb24-099", Options{OutputDir: dir, Out: &console})
	require.ErrorIs(t, err, engine.ErrUnexpectedStatus)
	assert.NotContains(t, console.String(), "Found")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
