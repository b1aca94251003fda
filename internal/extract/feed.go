package extract

import (
	"errors"
	"io"

	"github.com/MOYARU/bulletin/internal/report"
	"golang.org/x/net/html"
)

// Feed tokenizes r and drives x with every open, close and text event.
// Malformed markup is never an error; only a failing reader is.
func Feed(r io.Reader, x *Extractor) error {
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return err
			}
			return nil
		case html.StartTagToken:
			t := z.Token()
			x.StartTag(t.Data, t.Attr)
		case html.SelfClosingTagToken:
			t := z.Token()
			x.StartTag(t.Data, t.Attr)
			x.EndTag(t.Data)
		case html.EndTagToken:
			t := z.Token()
			x.EndTag(t.Data)
		case html.TextToken:
			x.Text(string(z.Text()))
		}
	}
}

// Parse collects every record found in r, in document order.
func Parse(r io.Reader) ([]report.Record, error) {
	var records []report.Record
	x := New(func(rec report.Record) {
		records = append(records, rec)
	})
	if err := Feed(r, x); err != nil {
		return records, err
	}
	return records, nil
}
