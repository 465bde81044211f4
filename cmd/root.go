package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"twinpage/internal/config"
	"twinpage/pkg/logging"
)

var (
	configFile string
	settings   = viper.New()
)

var rootCmd = &cobra.Command{
	Use:           "twinpage",
	Short:         "twinpage - find near-duplicate PDFs by first-page fingerprint",
	Long:          "twinpage compares an average hash of each PDF's first page to find visually identical documents that are not byte-identical.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default ./twinpage.yaml)")
	flags.IntP("threshold", "t", config.DefaultThreshold, "maximum Hamming distance for whole-page matches")
	flags.Float64("dpi", config.DefaultDPI, "render resolution for the first page")
	flags.IntP("workers", "w", 0, "parallel renderers (default: number of CPUs)")
	flags.StringSlice("ext", []string{".pdf"}, "file extensions to include")
	flags.Bool("images", false, "also compare JPEG, PNG and TIFF scans")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Bool("log-json", false, "log as JSON")

	bind := map[string]string{
		"threshold":  "threshold",
		"dpi":        "dpi",
		"workers":    "workers",
		"extensions": "ext",
		"images":     "images",
		"log_level":  "log-level",
		"log_json":   "log-json",
	}
	for key, flag := range bind {
		_ = settings.BindPFlag(key, flags.Lookup(flag))
	}
}

// loadConfig resolves settings for a command run against source.
func loadConfig(cmd *cobra.Command, source string) (config.Config, *logrus.Logger, error) {
	settings.Set("source", source)
	if out := cmd.Flags().Lookup("output"); out != nil && out.Changed {
		settings.Set("output", out.Value.String())
	}

	cfg, err := config.Load(settings, configFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logging.New(cfg.LogLevel, cfg.LogJSON), nil
}
