package version

const Value = "1.1.0"

// UserAgent identifies as a browser-compatible client; bulletin hosts reject
// bare library agents.
func UserAgent() string {
	return "Mozilla/5.0 (compatible; bulletin/" + Value + ")"
}
