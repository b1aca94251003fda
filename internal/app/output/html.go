package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MOYARU/bulletin/internal/report"
)

// ReportFilename names the summary after the last path segment of source.
func ReportFilename(source string) string {
	name := report.SourceName(source)
	if name == "" {
		name = "report"
	}
	return name + ".html"
}

// SaveHTMLReport renders b into dir and returns the written path.
func SaveHTMLReport(dir, source string, b *report.Builder, keywords []string) (string, error) {
	filename := filepath.Join(dir, ReportFilename(source))

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := b.Render(f, source, keywords); err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", filename, err)
	}
	return filename, nil
}
