package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-pagesort/pkg/models"
	"github.com/mattsolo1/grove-pagesort/pkg/reorder"
	"github.com/mattsolo1/grove-pagesort/pkg/service"
)

func NewPlanCmd(svc **service.Service) *cobra.Command {
	var orderSource string

	cmd := &cobra.Command{
		Use:   "plan [source]",
		Short: "Preview the moves needed to bring pages into order",
		Long: `Preview the moves needed to bring pages into order.

The source is the current (live) order of pages. By default the target is
its smart-sort order; pass --order to plan against an edited list instead.
Pages missing from the target keep their positions, and names in the target
that match no page are reported as new placeholders. Nothing is changed.

Examples:
  pagesort plan pages.txt
  pagesort sort pages.txt > edited.txt && $EDITOR edited.txt
  pagesort plan pages.txt --order edited.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			live, err := s.ReadLabels(cmd.Context(), sourceArg(args))
			if err != nil {
				return err
			}

			var res reorder.Result
			if orderSource != "" {
				desired, err := s.ReadLabels(cmd.Context(), orderSource)
				if err != nil {
					return fmt.Errorf("read target order: %w", err)
				}
				res = reorder.Plan(live, desired)
			} else {
				res = s.Plan(live)
			}

			if s.Config.Format == models.FormatJSON {
				return outputJSON(cmd.OutOrStdout(), res)
			}
			printPlan(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&orderSource, "order", "", "Target order to plan against instead of the smart-sort order")

	return cmd
}

func printPlan(w io.Writer, res reorder.Result) {
	if !res.Changed() {
		fmt.Fprintln(w, "Already in order, nothing to do")
		return
	}

	if len(res.Moves) > 0 {
		fmt.Fprintf(w, "Would move:\n")
		for _, m := range res.Moves {
			fmt.Fprintf(w, "  %q: %d -> %d\n", m.Label, m.From+1, m.To+1)
		}
	}
	if len(res.Placeholders) > 0 {
		fmt.Fprintf(w, "Would create:\n")
		for _, name := range res.Placeholders {
			fmt.Fprintf(w, "  %q\n", name)
		}
	}
}
