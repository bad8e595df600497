package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/breedplan/breedtree"
	"github.com/katalvlaran/breedplan/plan"
)

func newPlanCmd(a *app) *cobra.Command {
	var (
		req         plan.Request
		requestPath string
		donorsOnly  bool
	)
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build and print the breeding tree for a request",
		Example: `  breedplan plan --species Charizard --ivs atk,spe,hp --nature adamant
  breedplan plan --request charizard.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if requestPath != "" {
				fromFile, err := plan.LoadRequest(requestPath)
				if err != nil {
					return err
				}
				req = mergeRequest(cmd, fromFile, req)
			}
			cat, err := a.catalog()
			if err != nil {
				return err
			}

			p, err := plan.Build(req, cat, breedtree.WithLogger(a.log))
			if err != nil {
				return err
			}
			a.log.Info().
				Str("species", p.Species.Name).
				Stringer("generations", p.Tree.Generations()).
				Int("donors", p.Donors().Total()).
				Msg("plan built")

			r := a.renderer(cmd)
			if !donorsOnly {
				printOut(cmd, r.Tree(p.Tree))
				printOut(cmd, "\n")
			}
			printOut(cmd, r.Donors(p.Tree))
			printOut(cmd, "\n")

			return nil
		},
	}
	cmd.Flags().StringVarP(&req.Species, "species", "s", "", "Species name or national number")
	cmd.Flags().StringSliceVarP(&req.IVs, "ivs", "i", nil, "Perfect IVs, comma separated (hp,atk,def,spa,spd,spe)")
	cmd.Flags().StringVarP(&req.Nature, "nature", "n", "", "Nature to pass down (optional)")
	cmd.Flags().StringVarP(&requestPath, "request", "r", "", "Read the request from a YAML file")
	cmd.Flags().BoolVar(&donorsOnly, "donors", false, "Print only the donor summary")

	return cmd
}

// mergeRequest overlays the flags the user set explicitly on a file request.
func mergeRequest(cmd *cobra.Command, file, flags plan.Request) plan.Request {
	out := file
	if cmd.Flags().Changed("species") {
		out.Species = flags.Species
	}
	if cmd.Flags().Changed("ivs") {
		out.IVs = flags.IVs
	}
	if cmd.Flags().Changed("nature") {
		out.Nature = flags.Nature
	}
	return out
}
