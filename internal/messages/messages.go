package messages

import (
	"fmt"
)

var uiMessages = map[string]string{
	"Banner":          "bulletin version %s",
	"Target":          "Source: %s",
	"Fetching":        "Fetching bulletin...",
	"Fetched":         "Fetched %d bytes from %s",
	"FoundItems":      "Found %d items",
	"HTMLReportSaved": "HTML summary saved to %s",
	"JSONReportSaved": "JSON records saved to %s",
	"SummaryFailed":   "Summary failed: %v",
	"Cancelled":       "Cancelled.",
	"Usage": `Parse a weekly vulnerability summary bulletin to make it easier to scan.
- Sorts vendor/product alphabetically, even if the bulletin does not.
- Groups all items for the same vendor/product together.
- Hides details for each vendor/product in an expander.
- If the vendor/product of an item contains an interest keyword, that item
  is shown in red and expanded.

Usage: bulletin {url} [flags]
- {url} URL of the bulletin page to be parsed
- output filename is the last section of the URL (typically sbYY-ZZZ)
`,
}

func GetUIMessage(id string, args ...interface{}) string {
	format, ok := uiMessages[id]
	if !ok || format == "" {
		return id
	}
	if len(args) > 0 {
		return fmt.Sprintf(format, args...)
	}
	return format
}
