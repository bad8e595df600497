package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/breedplan/catalog"
	"github.com/katalvlaran/breedplan/config"
	"github.com/katalvlaran/breedplan/logging"
	"github.com/katalvlaran/breedplan/render"
)

// app is the state shared by every subcommand once the root has loaded the
// configuration.
type app struct {
	configPath  string
	catalogPath string
	verbose     bool
	noColor     bool

	cfg config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "breedplan",
		Short:        "Plan the breeding tree for a creature with perfect IVs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.DefaultPath, "Path to the TOML configuration")
	root.PersistentFlags().StringVar(&a.catalogPath, "catalog", "", "Path to the species YAML (overrides the config)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log the tree construction at debug level")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable coloured output")

	root.AddCommand(newPlanCmd(a), newTemplatesCmd(a), newSpeciesCmd(a))

	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	var err error
	if cmd.Flags().Changed("config") {
		a.cfg, err = config.Load(a.configPath)
	} else {
		a.cfg, err = config.LoadOptional(a.configPath)
	}
	if err != nil {
		return err
	}
	if a.catalogPath != "" {
		a.cfg.Catalog = a.catalogPath
	}
	if a.noColor {
		a.cfg.Render.Color = false
		a.cfg.Log.NoColor = true
	}

	lc := a.cfg.Logging()
	logging.ApplyEnv(&lc)
	if a.verbose {
		lc.Level = zerolog.DebugLevel
	}
	a.log = logging.New(cmd.ErrOrStderr(), lc).With().Str("cmd", cmd.Name()).Logger()
	a.log.Debug().Str("config", a.configPath).Str("catalog", a.cfg.Catalog).Msg("configuration loaded")

	return nil
}

// catalog loads the configured catalog, or the builtin one.
func (a *app) catalog() (*catalog.Catalog, error) {
	if a.cfg.Catalog == "" {
		return catalog.Builtin()
	}
	c, err := catalog.Load(a.cfg.Catalog)
	if err != nil {
		return nil, err
	}
	a.log.Debug().Int("species", c.Len()).Str("path", a.cfg.Catalog).Msg("catalog loaded")

	return c, nil
}

func (a *app) renderer(cmd *cobra.Command) *render.Renderer {
	return render.New(render.Options{
		Color:     a.cfg.Render.Color,
		ShowRoles: a.cfg.Render.ShowRoles,
		Output:    cmd.OutOrStdout(),
	})
}

func printOut(cmd *cobra.Command, s string) {
	if _, err := fmt.Fprint(cmd.OutOrStdout(), s); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
