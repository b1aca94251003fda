/*
Copyright (c) 2026 moyaru <rbffo@icloud.com>
*/

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/MOYARU/bulletin/internal/app/summary"
	"github.com/MOYARU/bulletin/internal/app/ui"
	"github.com/MOYARU/bulletin/internal/config"
	"github.com/MOYARU/bulletin/internal/logging"
	msges "github.com/MOYARU/bulletin/internal/messages"
	appver "github.com/MOYARU/bulletin/internal/version"
	"github.com/spf13/cobra"
)

var (
	version = appver.Value

	jsonOutput bool
	debug      bool
	noColor    bool
	configPath string
	outputDir  string
)

var rootCmd = &cobra.Command{
	Use:   "bulletin [url]",
	Short: "bulletin groups a weekly vulnerability summary bulletin by vendor/product into a collapsible HTML page.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Fprint(cmd.OutOrStdout(), msges.GetUIMessage("Usage"))
			return nil
		}
		return run(cmd.Context(), args[0])
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func run(ctx context.Context, target string) error {
	if noColor || !ui.ColorEnabled() {
		ui.DisableColor()
	}
	if err := logging.InitLogger(debug); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logging.Sync()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logging.Logger.Debugw("configuration loaded", "interest_keywords", len(cfg.InterestKeywords))

	ctx, cancel := ui.WaitForCancel(ctx)
	defer cancel()

	fmt.Println(msges.GetUIMessage("Banner", version))
	_, err = summary.Run(ctx, target, summary.Options{
		Config:     cfg,
		OutputDir:  outputDir,
		JSONOutput: jsonOutput,
	})
	if err != nil && ctx.Err() != nil {
		fmt.Printf("%s%s%s\n", ui.ColorYellow, msges.GetUIMessage("Cancelled"), ui.ColorReset)
	}
	return err
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Printf("%s%s%s\n", ui.ColorRed, msges.GetUIMessage("SummaryFailed", err), ui.ColorReset)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version

	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Also write the extracted records as JSON")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored console output")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file (default: "+config.DefaultFile+" if present)")
	rootCmd.Flags().StringVar(&outputDir, "out-dir", ".", "Directory the summary is written to")

	rootCmd.Long = `bulletin fetches a weekly vulnerability summary bulletin and writes a grouped,
collapsible HTML summary named after the last section of the URL.

Example:
  bulletin https://www.cisa.gov/news-events/bulletins/sb24-099
  bulletin https://www.cisa.gov/news-events/bulletins/sb24-099 --json
  bulletin https://www.cisa.gov/news-events/bulletins/sb24-099 --config keywords.yaml
`
}
