package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-pagesort/pkg/models"
	"github.com/mattsolo1/grove-pagesort/pkg/service"
	"github.com/mattsolo1/grove-pagesort/pkg/smartsort"
)

func NewExplainCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain [source]",
		Short: "Show how page names are segmented and grouped",
		Long: `Show how page names are segmented and grouped.

Prints every segment with its pinned headers, its top-level names and the
children nested under each root, in the order sort would emit them.

Examples:
  pagesort explain pages.txt
  pagesort explain pages.txt --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			labels, err := s.ReadLabels(cmd.Context(), sourceArg(args))
			if err != nil {
				return err
			}

			layout := s.Explain(labels)
			if s.Config.Format == models.FormatJSON {
				return outputJSON(cmd.OutOrStdout(), layout)
			}
			return printLayout(cmd.OutOrStdout(), layout)
		},
	}

	return cmd
}

func printLayout(w io.Writer, layout smartsort.Layout) error {
	var sb strings.Builder
	for i, seg := range layout.Segments {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "Segment %d (%d names)\n", i+1, seg.Len())
		for _, g := range seg.Groups {
			switch g.Role {
			case smartsort.RolePinned:
				fmt.Fprintf(&sb, "  %q [%s]\n", g.Label, g.Kind)
			case smartsort.RoleRoot:
				fmt.Fprintf(&sb, "  %q [root, %d children]\n", g.Label, len(g.Children))
				for _, child := range g.Children {
					fmt.Fprintf(&sb, "    %q\n", child)
				}
			default:
				fmt.Fprintf(&sb, "  %q\n", g.Label)
			}
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
