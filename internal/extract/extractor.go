package extract

import (
	"strings"

	"github.com/MOYARU/bulletin/internal/report"
	"golang.org/x/net/html"
)

// Bulletin layout as published (sample: cisa.gov/news-events/bulletins/sb24-099):
//
//	<div id="high_v"> ... <table><tbody>
//	  <tr>
//	    <td class="vendor-product">vendor and product</td>
//	    <td>description</td>
//	    <td>published</td>
//	    <td>CVSS score</td>
//	    <td><a href="source">...</a></td>
//	  </tr>
//	<div id="medium_v"> ... <div id="low_v"> ... <div id="snya_v"> ...
const (
	sectionTag    = "div"
	sectionAttr   = "id"
	cellTag       = "td"
	vendorClass   = "vendor-product"
	anchorTag     = "a"
	referenceAttr = "href"
)

var sectionMarkers = map[string]report.Severity{
	"high_v":   report.SeverityHigh,
	"medium_v": report.SeverityMedium,
	"low_v":    report.SeverityLow,
	"snya_v":   report.SeverityUncategorized,
}

type state int

const (
	stateIdle state = iota
	stateVendor
	stateDescription
	statePublished
	stateScore
	stateSource
)

// Extractor turns tokenizer events into records. It keeps no history: every
// completed row is handed to the emit callback as soon as it is known.
type Extractor struct {
	state   state
	section report.Severity
	content strings.Builder

	vendor      string
	description string

	emit func(report.Record)
}

func New(emit func(report.Record)) *Extractor {
	return &Extractor{
		state:   stateIdle,
		section: report.SeverityUnknown,
		emit:    emit,
	}
}

// Section returns the severity currently in effect.
func (x *Extractor) Section() report.Severity {
	return x.section
}

func (x *Extractor) StartTag(name string, attrs []html.Attribute) {
	switch x.state {
	case stateIdle:
		x.startIdle(name, attrs)
	case stateSource:
		x.startSource(name, attrs)
	default:
		// Line breaks and other inline markup inside a field.
	}
}

func (x *Extractor) EndTag(name string) {
	if x.state == stateIdle || name != cellTag {
		return
	}

	field := x.content.String()
	x.content.Reset()

	switch x.state {
	case stateVendor:
		x.vendor = field
		x.state = stateDescription
	case stateDescription:
		x.description = field
		x.state = statePublished
	case statePublished:
		x.state = stateScore
	case stateScore:
		x.state = stateSource
	case stateSource:
		x.finishRow("")
	}
}

// Text appends a chunk to the current field. Each chunk is trimmed on its
// own, so whitespace between chunks is dropped rather than collapsed.
func (x *Extractor) Text(s string) {
	if x.state == stateIdle {
		return
	}
	x.content.WriteString(strings.TrimSpace(s))
}

func (x *Extractor) startIdle(name string, attrs []html.Attribute) {
	switch name {
	case sectionTag:
		if id, ok := attrValue(attrs, sectionAttr); ok {
			if sev, known := sectionMarkers[id]; known {
				x.section = sev
			}
		}
	case cellTag:
		if hasAttr(attrs, "class", vendorClass) {
			x.content.Reset()
			x.state = stateVendor
		}
	}
}

func (x *Extractor) startSource(name string, attrs []html.Attribute) {
	if name != anchorTag {
		return
	}
	if href, ok := attrValue(attrs, referenceAttr); ok {
		x.finishRow(href)
	}
}

func (x *Extractor) finishRow(url string) {
	rec := report.Record{
		VendorProduct: x.vendor,
		Description:   x.description,
		Severity:      x.section,
		ReferenceURL:  url,
	}
	x.state = stateIdle
	x.content.Reset()
	if x.emit != nil {
		x.emit(rec)
	}
}

func attrValue(attrs []html.Attribute, key string) (string, bool) {
	for _, a := range attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasAttr(attrs []html.Attribute, key, val string) bool {
	for _, a := range attrs {
		if a.Key == key && a.Val == val {
			return true
		}
	}
	return false
}
