package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-pagesort/pkg/service"
)

func NewSortCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort [source]",
		Short: "Print page names in smart-sort order",
		Long: `Print page names in smart-sort order.

Lines made of hyphens ("---") are dividers: the pages between two dividers
are sorted on their own and dividers never move. Emoji-led and all-caps
names are sticky headers and stay on top of their segment. Every other name
is sorted alphabetically, with names nested under the shortest other name
they end with ("Price Card" follows "Card").

The source is a text file with one name per line, a directory of markdown
pages, a notebook search index (.db), or "-" for stdin (the default).

Examples:
  pagesort sort pages.txt
  pbpaste | pagesort sort
  pagesort sort ~/notes/cards --format json
  pagesort sort ~/.local/share/nb/index.db -W my-project`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			labels, err := s.ReadLabels(cmd.Context(), sourceArg(args))
			if err != nil {
				return err
			}

			return outputLabels(cmd.OutOrStdout(), s.Sort(labels), s.Config.Format)
		},
	}

	return cmd
}

func sourceArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}
