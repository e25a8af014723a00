// Package cli implements the jmxforge command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/specialistvlad/jmxforge/internal/app"
	"github.com/specialistvlad/jmxforge/internal/config"
	"github.com/specialistvlad/jmxforge/internal/ctxlog"
	"github.com/specialistvlad/jmxforge/internal/hclplan"
	"github.com/specialistvlad/jmxforge/internal/plan"
)

var (
	configPath string
	logLevel   string
	logFormat  string
)

var rootCmd = &cobra.Command{
	Use:           "jmxforge",
	Short:         "Author, validate and convert JMeter test plans",
	Long:          "jmxforge models JMeter test plans as a schema-checked component tree:\nauthor plans in HCL or JSON, validate them, generate .jmx files and parse\nexisting ones back into the editable model.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and returns its terminal error, if any.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the service config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text or json")
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newServeCmd())
}

// setup resolves config and builds the command context with a scoped logger.
func setup() (context.Context, *config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}
	if logLevel != "" {
		cfg.LogLevel = strings.ToLower(logLevel)
	}
	if logFormat != "" {
		cfg.LogFormat = strings.ToLower(logFormat)
	}

	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	return ctxlog.WithLogger(context.Background(), logger), cfg, nil
}

// loadPlan reads a plan from disk, choosing the decoder by file extension:
// .hcl for authored plans, .json for the interchange form.
func loadPlan(ctx context.Context, path string) (*plan.TestPlan, error) {
	switch {
	case strings.HasSuffix(path, ".hcl"):
		return hclplan.NewLoader().Load(ctx, path)
	case strings.HasSuffix(path, ".json"):
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return plan.DecodeJSON(f)
	default:
		return nil, fmt.Errorf("unsupported plan file %s: expected .hcl or .json", path)
	}
}
