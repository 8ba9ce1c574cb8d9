package main

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/seqkit/version"
)

const (
	configF = "config"

	configFlagUsage = "The yaml configuration file."
)

// NewCmd builds the seqkit command tree.
func NewCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:           "seqkit",
		Short:         "Lazy sequence combinators from the command line.",
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, configF, "", configFlagUsage)

	rootCmd.AddCommand(
		newProductCmd(&cfgFile),
		newVersionCmd(),
	)
	return rootCmd
}
