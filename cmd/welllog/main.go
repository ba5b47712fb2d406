// welllog ingests a LAS well-log file, prepares the curve table, and renders
// the multi-track depth display with a stacked fraction panel into PNG
// figures and a PDF report.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/user/welllog_go/internal/config"
	"github.com/user/welllog_go/internal/pipeline"
)

var (
	lasPath  string
	cfgPath  string
	pdfPath  string
	plotsDir string
	verbose  bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "welllog",
	Short: "Well-log curve preparation and fraction-panel plotting",
	Long: `welllog reads a LAS well-log file, cleans and range-filters the
selected curves, derives a shale-fraction curve from gamma ray, and renders
multi-track depth plots including a stacked water/shale/sand/carbonate
fraction panel. Output is a PDF report and, optionally, standalone PNGs.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if cfgPath != "" {
			var err error
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}
		}
		if pdfPath == "" && plotsDir == "" {
			return fmt.Errorf("nothing to do: set --pdf and/or --plots-dir")
		}

		_, err := pipeline.Run(pipeline.Options{
			LASPath:  lasPath,
			PDFPath:  pdfPath,
			PlotsDir: plotsDir,
			Config:   cfg,
			Logger:   logger,
		})
		return err
	},
}

func init() {
	rootCmd.Flags().StringVar(&lasPath, "las", "", "path to the LAS well-log file (required)")
	rootCmd.Flags().StringVar(&cfgPath, "config", "", "path to a YAML run config (default: built-in KGS setup)")
	rootCmd.Flags().StringVar(&pdfPath, "pdf", "", "path of the PDF report to write")
	rootCmd.Flags().StringVar(&plotsDir, "plots-dir", "", "directory to write standalone PNG figures into")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = rootCmd.MarkFlagRequired("las")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
