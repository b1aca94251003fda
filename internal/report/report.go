package report

type Severity string

const (
	SeverityHigh          Severity = "High"
	SeverityMedium        Severity = "Medium"
	SeverityLow           Severity = "Low"
	SeverityUncategorized Severity = "Uncategorized"
	SeverityUnknown       Severity = "Unknown"
)

// Record is one vulnerability row taken from a bulletin table.
type Record struct {
	VendorProduct string   `json:"vendor_product"`
	Description   string   `json:"description"`
	Severity      Severity `json:"severity"`
	ReferenceURL  string   `json:"reference_url"`
}
