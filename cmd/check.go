package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-pagesort/pkg/models"
	"github.com/mattsolo1/grove-pagesort/pkg/service"
)

func NewCheckCmd(svc **service.Service) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check [source]",
		Short: "Verify that page names are already in smart-sort order",
		Long: `Verify that page names are already in smart-sort order.

Exits with a non-zero status and reports the first out-of-place name when
the source is not sorted. Useful in CI or pre-commit hooks.

Examples:
  pagesort check pages.txt
  pagesort check ~/notes/cards --quiet`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			labels, err := s.ReadLabels(cmd.Context(), sourceArg(args))
			if err != nil {
				return err
			}

			res, checkErr := s.Check(labels)
			if checkErr != nil && !errors.Is(checkErr, service.ErrNotSorted) {
				return checkErr
			}
			if checkErr != nil {
				cmd.SilenceUsage = true
			}

			switch {
			case quiet:
			case s.Config.Format == models.FormatJSON:
				if err := outputJSON(cmd.OutOrStdout(), res); err != nil {
					return err
				}
			case res.Sorted:
				fmt.Fprintf(cmd.OutOrStdout(), "%d names in smart-sort order\n", len(labels))
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "Not sorted at position %d:\n", res.Position)
				fmt.Fprintf(cmd.OutOrStdout(), "  Got:  %q\n", res.Got)
				fmt.Fprintf(cmd.OutOrStdout(), "  Want: %q\n", res.Want)
			}
			return checkErr
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only report through the exit status")

	return cmd
}
