package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/breedplan/breedtree"
)

func newTemplatesCmd(a *app) *cobra.Command {
	var natured, natureless bool
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the supported leaf layouts and their donor counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all := breedtree.Templates()
			shown := all[:0:0]
			for _, tpl := range all {
				if (natured && !tpl.Natured()) || (natureless && tpl.Natured()) {
					continue
				}
				shown = append(shown, tpl)
			}
			printOut(cmd, a.renderer(cmd).Templates(shown))
			printOut(cmd, "\n")
			return nil
		},
	}
	cmd.Flags().BoolVar(&natured, "natured", false, "Only templates with a nature donor")
	cmd.Flags().BoolVar(&natureless, "natureless", false, "Only templates without a nature donor")
	cmd.MarkFlagsMutuallyExclusive("natured", "natureless")

	return cmd
}
