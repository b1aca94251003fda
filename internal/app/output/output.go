package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MOYARU/bulletin/internal/report"
)

// SaveJSONReport writes every extracted record next to the HTML summary.
func SaveJSONReport(dir, source string, b *report.Builder, generated time.Time) (string, error) {
	type Summary struct {
		High          int `json:"high"`
		Medium        int `json:"medium"`
		Low           int `json:"low"`
		Uncategorized int `json:"uncategorized"`
		Unknown       int `json:"unknown"`
		Total         int `json:"total"`
		Groups        int `json:"groups"`
	}

	type JSONReport struct {
		Source    string          `json:"source"`
		Generated time.Time       `json:"generated"`
		Summary   Summary         `json:"summary"`
		Records   []report.Record `json:"records"`
	}

	records := b.Records()
	summary := Summary{Total: len(records), Groups: b.Len()}
	for _, r := range records {
		switch r.Severity {
		case report.SeverityHigh:
			summary.High++
		case report.SeverityMedium:
			summary.Medium++
		case report.SeverityLow:
			summary.Low++
		case report.SeverityUncategorized:
			summary.Uncategorized++
		default:
			summary.Unknown++
		}
	}

	filename := filepath.Join(dir, strings.TrimSuffix(ReportFilename(source), ".html")+".json")
	file, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(JSONReport{
		Source:    source,
		Generated: generated,
		Summary:   summary,
		Records:   records,
	}); err != nil {
		return "", err
	}
	return filename, nil
}
