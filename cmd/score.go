package cmd

import (
	"github.com/bioconductor-source/KinSwingR/config"
	"github.com/bioconductor-source/KinSwingR/internal/swing"
	"github.com/spf13/cobra"
)

// scoreCmd scores measured peptides against a stored PWM set.
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score peptides against PWMs with an empirical null",
	Long: `
Score every peptide in the input data against every PWM.

The input data is a four column TSV of [annotation, centered sequence,
fold_change, p_value]. Each (kinase, peptide) pair gets a log-odds match
score and an empirical p-value ranked against random peptides drawn from
the background residue composition.`,
	Run: swing.ScoreCmd,
	PreRun: func(cmd *cobra.Command, args []string) {
		bindStageFlags(cmd, "background", "null-samples", "force-trim")
	},
}

func init() {
	RootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringP("in", "i", "", "input TSV with [annotation, sequence, fold_change, p_value] rows")
	scoreCmd.Flags().StringP("pwm", "p", "", "PWM set JSON written by 'kinswing pwm'")
	scoreCmd.Flags().StringP("out", "o", "", "output TSV file for the match score table")
	scoreCmd.Flags().String("background", config.DefaultBackground, "null model; only \"random\" is supported")
	scoreCmd.Flags().IntP("null-samples", "n", config.DefaultNullSamples, "random peptides per kinase null distribution")
	scoreCmd.Flags().Bool("force-trim", false, "accepted and ignored; peptide trimming is not yet supported")

	scoreCmd.MarkFlagRequired("in")
	scoreCmd.MarkFlagRequired("pwm")
	scoreCmd.MarkFlagRequired("out")
}
