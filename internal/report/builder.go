package report

import (
	"cmp"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"slices"
	"strings"

	"github.com/Masterminds/sprig/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Group holds every record sharing one vendor/product key, in arrival order.
type Group struct {
	Key         string
	Records     []Record
	Highlighted bool
}

// Builder folds emitted records into vendor groups.
type Builder struct {
	order   []string
	groups  map[string][]Record
	records []Record
}

func NewBuilder() *Builder {
	return &Builder{groups: make(map[string][]Record)}
}

// Add appends rec to its vendor group. It has the shape of an extractor
// emit callback.
func (b *Builder) Add(rec Record) {
	key := rec.VendorProduct
	if _, ok := b.groups[key]; !ok {
		b.order = append(b.order, key)
	}
	b.groups[key] = append(b.groups[key], rec)
	b.records = append(b.records, rec)
}

// Len returns the number of distinct vendor groups.
func (b *Builder) Len() int {
	return len(b.order)
}

// Records returns every record added, in arrival order.
func (b *Builder) Records() []Record {
	return append(make([]Record, 0, len(b.records)), b.records...)
}

// Groups returns the vendor groups sorted case-insensitively by key. Keys
// that fold to the same text keep first-seen order.
func (b *Builder) Groups(keywords []string) []Group {
	lower := cases.Lower(language.Und)
	folded := make(map[string]string, len(b.order))
	for _, key := range b.order {
		folded[key] = lower.String(key)
	}

	keys := slices.Clone(b.order)
	slices.SortStableFunc(keys, func(a, c string) int {
		return cmp.Compare(folded[a], folded[c])
	})

	out := make([]Group, 0, len(keys))
	for _, key := range keys {
		out = append(out, Group{
			Key:         key,
			Records:     b.groups[key],
			Highlighted: matchesInterest(lower, folded[key], keywords),
		})
	}
	return out
}

func matchesInterest(lower cases.Caser, foldedKey string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(foldedKey, lower.String(kw)) {
			return true
		}
	}
	return false
}

// SourceName returns the last path segment of the source location, the
// name the summary document is titled and saved under.
func SourceName(source string) string {
	p := source
	if u, err := url.Parse(source); err == nil {
		p = u.Path
	}
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}

type documentData struct {
	Name   string
	Source string
	Groups []Group
}

var documentTemplate = template.Must(template.New("summary").Funcs(sprig.FuncMap()).Parse(documentHTML))

// Render writes the grouped summary as a standalone HTML document.
func (b *Builder) Render(w io.Writer, source string, keywords []string) error {
	data := documentData{
		Name:   SourceName(source),
		Source: source,
		Groups: b.Groups(keywords),
	}
	if err := documentTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render summary: %w", err)
	}
	return nil
}

const documentHTML = `<!DOCTYPE html>
<html lang="en" dir="ltr">
<head>
<title>Vulnerability Summary {{ .Name }}</title>
<meta charset="utf-8">
</head>
<body>
<h1>Content from <a href="{{ .Source }}" target="_blank">{{ .Source }}</a></h1>
{{- range .Groups }}
  <details{{ if .Highlighted }} open{{ end }}>
    <summary style="font-size:1.2em; color:{{ ternary "red" "black" .Highlighted }};">{{ .Key }}</summary>
    <div style="margin-left:40px">
{{- range .Records }}{{ .Severity }}: {{ .Description }} <a href="{{ .ReferenceURL }}" target="_blank">{{ .ReferenceURL }}</a><hr>{{ end -}}
    </div>
</details>
{{- end }}
</body>
</html>
`
