package summary

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MOYARU/bulletin/internal/app/output"
	"github.com/MOYARU/bulletin/internal/app/ui"
	"github.com/MOYARU/bulletin/internal/config"
	"github.com/MOYARU/bulletin/internal/engine"
	"github.com/MOYARU/bulletin/internal/extract"
	"github.com/MOYARU/bulletin/internal/logging"
	msges "github.com/MOYARU/bulletin/internal/messages"
	"github.com/MOYARU/bulletin/internal/report"
)

type Options struct {
	Config     config.Config
	OutputDir  string
	JSONOutput bool
	// Out receives console progress lines; nil means stdout.
	Out io.Writer
}

type Result struct {
	Groups   int
	Records  int
	HTMLPath string
	JSONPath string
}

// Run fetches the bulletin at target, extracts its records and writes the
// grouped summary.
func Run(ctx context.Context, target string, opts Options) (Result, error) {
	var res Result

	source, err := engine.NormalizeTarget(target)
	if err != nil {
		return res, err
	}
	target = source.String()
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	fmt.Fprintf(out, "%s%s%s\n", ui.ColorWhite, msges.GetUIMessage("Target", target), ui.ColorReset)
	fmt.Fprintf(out, "%s%s%s\n", ui.ColorGray, msges.GetUIMessage("Fetching"), ui.ColorReset)

	fetched, err := engine.Fetch(ctx, target)
	if err != nil {
		return res, fmt.Errorf("fetch %s: %w", target, err)
	}
	logging.Logger.Debugw("fetched bulletin",
		"url", fetched.FinalURL.String(),
		"status", fetched.StatusCode,
		"bytes", len(fetched.Body),
		"redirected", fetched.Redirected,
		"requests", fetched.Requests,
		"elapsed", fetched.Elapsed,
	)
	fmt.Fprintf(out, "%s%s%s\n", ui.ColorGray, msges.GetUIMessage("Fetched", len(fetched.Body), fetched.FinalURL), ui.ColorReset)

	b, err := Extract(fetched.Body)
	if err != nil {
		return res, err
	}
	res.Groups = b.Len()
	res.Records = len(b.Records())
	logging.Logger.Debugw("extracted records", "records", res.Records, "groups", res.Groups)

	fmt.Fprintf(out, "%s%s%s\n", ui.ColorGreen, msges.GetUIMessage("FoundItems", res.Groups), ui.ColorReset)

	res.HTMLPath, err = output.SaveHTMLReport(opts.OutputDir, target, b, opts.Config.InterestKeywords)
	if err != nil {
		return res, fmt.Errorf("write summary: %w", err)
	}
	fmt.Fprintln(out, msges.GetUIMessage("HTMLReportSaved", res.HTMLPath))

	if opts.JSONOutput {
		res.JSONPath, err = output.SaveJSONReport(opts.OutputDir, target, b, time.Now())
		if err != nil {
			return res, fmt.Errorf("write records: %w", err)
		}
		fmt.Fprintln(out, msges.GetUIMessage("JSONReportSaved", res.JSONPath))
	}
	return res, nil
}

// Extract runs the field extractor over body, pushing every record straight
// into a new builder.
func Extract(body []byte) (*report.Builder, error) {
	b := report.NewBuilder()
	x := extract.New(b.Add)
	if err := extract.Feed(bytes.NewReader(body), x); err != nil {
		return nil, fmt.Errorf("extract records: %w", err)
	}
	return b, nil
}
