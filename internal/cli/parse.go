package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/specialistvlad/jmxforge/internal/jmx"
)

func newParseCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "parse <jmx-file>",
		Short: "Parse a .jmx document into the editable plan model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := setup(); err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			result, err := jmx.Parse(string(data))
			if err != nil {
				return err
			}
			for _, issue := range result.Issues {
				fmt.Fprintf(cmd.ErrOrStderr(), "issue: %s\n", issue)
			}

			out := cmd.OutOrStdout()
			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			return result.Plan.EncodeJSON(out)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the plan JSON to a file instead of stdout")
	return cmd
}
