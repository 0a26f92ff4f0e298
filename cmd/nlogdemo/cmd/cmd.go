package cmd

import (
	"github.com/spf13/cobra"
)

const (
	optionNameConfig      = "config"
	optionNameWatch       = "watch"
	optionNameInterval    = "interval"
	optionNameMetricsAddr = "metrics-addr"
)

func init() {
	cobra.EnableCommandSorting = false
}

type command struct {
	root    *cobra.Command
	cfgFile string
}

type option func(*command)

func newCommand(opts ...option) (c *command, err error) {
	c = &command{
		root: &cobra.Command{
			Use:           "nlogdemo",
			Short:         "Exercise nlogfacade loggers built from a config file",
			SilenceErrors: true,
			SilenceUsage:  true,
		},
	}

	c.root.PersistentFlags().StringVar(&c.cfgFile, optionNameConfig, "", "logging config file (yaml or json)")

	c.initEmitCmd()
	c.initLevelsCmd()

	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func (c *command) Execute() (err error) {
	return c.root.Execute()
}

// Execute parses command line arguments and runs the appropriate functions.
func Execute() (err error) {
	c, err := newCommand()
	if err != nil {
		return err
	}
	return c.Execute()
}
