package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/breedplan/pokemon"
)

func newSpeciesCmd(a *app) *cobra.Command {
	var eggGroup, typ string
	cmd := &cobra.Command{
		Use:   "species [name|number]",
		Short: "Look species up in the catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.catalog()
			if err != nil {
				return err
			}
			r := a.renderer(cmd)

			if len(args) == 1 {
				s, err := cat.Lookup(args[0])
				if err != nil {
					return err
				}
				printOut(cmd, r.Species(s))
				return nil
			}

			list := cat.All()
			if eggGroup != "" {
				g, err := pokemon.ParseEggGroup(eggGroup)
				if err != nil {
					return err
				}
				list = cat.ByEggGroup(g)
			}
			if typ != "" {
				t, err := pokemon.ParseType(typ)
				if err != nil {
					return err
				}
				list = slices.DeleteFunc(list, func(s pokemon.Species) bool {
					return !slices.Contains(s.TypeList(), t)
				})
			}
			for _, s := range list {
				printOut(cmd, fmt.Sprintf("%s\n", s))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&eggGroup, "egg-group", "g", "", "List only species of this egg group")
	cmd.Flags().StringVarP(&typ, "type", "t", "", "List only species of this type")

	return cmd
}
