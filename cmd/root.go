package cmd

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "reflectivei",
	Short:        "Emotional intelligence companion: mood tracking and journaling",
	SilenceUsage: true,
	RunE:         runTUI,
}

func Execute() error { return rootCmd.Execute() }

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/reflectivei/config.yaml)")
	rootCmd.AddCommand(tuiCmd, versionCmd)
}
