package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipp01105/nlogfacade/config"
	"github.com/philipp01105/nlogfacade/core"
	"github.com/philipp01105/nlogfacade/levels"
)

func (c *command) initLevelsCmd() {
	c.root.AddCommand(&cobra.Command{
		Use:   "levels [expression]",
		Short: "Show the level set of an expression or of the config file",
		Example: `  nlogdemo levels "debug,error"
  nlogdemo levels --config log.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var expr string
			switch {
			case len(args) == 1:
				expr = args[0]
			case c.cfgFile != "":
				cfg, err := config.Load(c.cfgFile)
				if err != nil {
					return err
				}
				expr = cfg.Levels
			}

			set, err := (&config.Config{Levels: expr}).LevelSet()
			if err != nil {
				return err
			}
			printLevels(cmd, set)
			return nil
		},
	})
}

func printLevels(cmd *cobra.Command, set *levels.Set) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, set)
	for _, l := range core.Levels() {
		state := "off"
		if set.Enabled(l) {
			state = "on"
		}
		fmt.Fprintf(out, "  %-5s %s\n", strings.ToLower(l.String()), state)
	}
}
