package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/specialistvlad/jmxforge/internal/jmx"
	"github.com/specialistvlad/jmxforge/internal/planid"
)

func newGenerateCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "generate <plan-file>",
		Short: "Generate a .jmx document from a plan file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, err := setup()
			if err != nil {
				return err
			}

			p, err := loadPlan(ctx, args[0])
			if err != nil {
				return err
			}

			doc, err := jmx.Generate(p)
			if err != nil {
				return err
			}

			out := outputPath
			if out == "" {
				name := strings.ReplaceAll(p.Name, " ", "_")
				token := strings.TrimPrefix(planid.New(), "comp_")[:8]
				out = filepath.Join(cfg.OutputDir, fmt.Sprintf("%s_%s.jmx", name, token))
			}
			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default: <output-dir>/<plan>_<token>.jmx)")
	return cmd
}
