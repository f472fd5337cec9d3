package cmd

import (
	"github.com/bioconductor-source/KinSwingR/config"
	"github.com/bioconductor-source/KinSwingR/internal/swing"
	"github.com/spf13/cobra"
)

// activityCmd integrates match scores and fold changes into swing scores.
var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Compute signed swing activity scores per kinase",
	Long: `
Integrate substrate match significance with measured fold change into one
signed activity score per kinase.

Matches under the PWM p-value cutoff form a kinase's network; members
under the fold-change p-value cutoff push the score toward +1 or -1 by
the sign of their fold change. Significance comes from permuting the
(fold_change, p_value) labels across the peptide population.`,
	Run: swing.ActivityCmd,
	PreRun: func(cmd *cobra.Command, args []string) {
		bindStageFlags(cmd, "p-cut-pwm", "p-cut-fc", "permutations")
	},
}

func init() {
	RootCmd.AddCommand(activityCmd)

	activityCmd.Flags().StringP("in", "i", "", "input TSV with [annotation, sequence, fold_change, p_value] rows")
	activityCmd.Flags().StringP("scores", "s", "", "match score TSV written by 'kinswing score'")
	activityCmd.Flags().StringP("out", "o", "", "output TSV file for the swing table")
	activityCmd.Flags().Float64("p-cut-pwm", config.DefaultPCutPWM, "match p-value cutoff for network edges")
	activityCmd.Flags().Float64("p-cut-fc", config.DefaultPCutFC, "fold-change p-value cutoff for edge weight")
	activityCmd.Flags().Int("permutations", config.DefaultPermutations, "label permutation trials; <= 1 skips significance")

	activityCmd.MarkFlagRequired("in")
	activityCmd.MarkFlagRequired("scores")
	activityCmd.MarkFlagRequired("out")
}
