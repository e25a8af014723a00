package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/specialistvlad/jmxforge/internal/validate"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <plan-file>",
		Short: "Validate a plan file against the component catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := setup()
			if err != nil {
				return err
			}

			p, err := loadPlan(ctx, args[0])
			if err != nil {
				return err
			}

			res := validate.Plan(p)
			for _, w := range res.Warnings {
				fmt.Fprintf(cmd.OutOrStdout(), "warning: %s\n", w)
			}
			for _, e := range res.Errors {
				fmt.Fprintf(cmd.OutOrStdout(), "error: %s\n", e)
			}
			if !res.Valid {
				return fmt.Errorf("plan %q is invalid: %d error(s)", p.Name, len(res.Errors))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "plan %q is valid (%d components)\n", p.Name, p.Len())
			return nil
		},
	}
}
