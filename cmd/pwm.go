package cmd

import (
	"github.com/bioconductor-source/KinSwingR/config"
	"github.com/bioconductor-source/KinSwingR/internal/swing"
	"github.com/spf13/cobra"
)

// pwmCmd builds one position weight matrix per kinase from a table of
// known kinase-substrate sequences.
var pwmCmd = &cobra.Command{
	Use:   "pwm",
	Short: "Build position weight matrices from a kinase-substrate table",
	Long: `
Build one position weight matrix per kinase from known substrate sequences.

The kinase table is a two column TSV of [kinase, centered sequence]. Each
matrix holds log-odds weights of the per-position residue frequencies
against the aggregate residue composition of all substrates. Wild card
symbols mark positions past a protein terminus and carry no probability
mass.`,
	Run: swing.PWMCmd,
	PreRun: func(cmd *cobra.Command, args []string) {
		bindStageFlags(cmd, "wild-card", "substrate-length", "remove-center", "pseudo-count")
	},
}

func init() {
	RootCmd.AddCommand(pwmCmd)

	pwmCmd.Flags().StringP("kinase-table", "k", "", "input TSV with [kinase, centered substrate sequence] rows")
	pwmCmd.Flags().StringP("out", "o", "", "output JSON file for the PWM set")
	pwmCmd.Flags().String("wild-card", config.DefaultWildCard, "symbol padding positions past a protein terminus")
	pwmCmd.Flags().Int("substrate-length", config.DefaultSubstrateLength, "centered substrate width (odd)")
	pwmCmd.Flags().String("remove-center", "", "drop substrates whose center residue equals this letter")
	pwmCmd.Flags().Float64("pseudo-count", config.DefaultPseudoCount, "pseudo count for the log-odds transform")

	pwmCmd.MarkFlagRequired("kinase-table")
	pwmCmd.MarkFlagRequired("out")
}
