// Package cmd is for command line interactions with the kinswing
// application
package cmd

import (
	"log"

	"github.com/bioconductor-source/KinSwingR/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "kinswing",
	Short: `Predict kinase activity from phosphoproteomic data.
Build kinase PWMs, score peptides against them, and integrate the matches
with fold change into a signed swing activity score per kinase`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	config.SetDefaults()

	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "print stage progress markers to stderr")
	RootCmd.PersistentFlags().Int("threads", config.DefaultThreads, "worker count over kinases")
	RootCmd.PersistentFlags().Int64("seed", config.DefaultSeed, "random seed; negative draws a fresh seed per run")

	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("threads", RootCmd.PersistentFlags().Lookup("threads"))
	viper.BindPFlag("seed", RootCmd.PersistentFlags().Lookup("seed"))
}

// bindStageFlags points viper at the flags of the command about to run.
// Binding in PreRun instead of init keeps commands that share a flag name
// from clobbering each other's values.
func bindStageFlags(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		viper.BindPFlag(name, cmd.Flags().Lookup(name))
	}
}
