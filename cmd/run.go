package cmd

import (
	"github.com/bioconductor-source/KinSwingR/config"
	"github.com/bioconductor-source/KinSwingR/internal/swing"
	"github.com/spf13/cobra"
)

// runCmd chains the three stages in their fixed order.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: pwm, score, activity",
	Long: `
Run the three pipeline stages in order with one shared configuration:
build PWMs from the kinase table, score the input peptides against them,
then compute swing activity scores.

Writes <out>.pwm.json, <out>.scores.tsv and <out>.swing.tsv, and prints
the swing table to stdout.`,
	Run: swing.MasterCmd,
	PreRun: func(cmd *cobra.Command, args []string) {
		bindStageFlags(cmd,
			"wild-card", "substrate-length", "remove-center", "pseudo-count",
			"background", "null-samples", "force-trim",
			"p-cut-pwm", "p-cut-fc", "permutations")
	},
}

func init() {
	RootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("kinase-table", "k", "", "input TSV with [kinase, centered substrate sequence] rows")
	runCmd.Flags().StringP("in", "i", "", "input TSV with [annotation, sequence, fold_change, p_value] rows")
	runCmd.Flags().StringP("out", "o", "", "output path prefix")
	runCmd.Flags().String("wild-card", config.DefaultWildCard, "symbol padding positions past a protein terminus")
	runCmd.Flags().Int("substrate-length", config.DefaultSubstrateLength, "centered substrate width (odd)")
	runCmd.Flags().String("remove-center", "", "drop substrates whose center residue equals this letter")
	runCmd.Flags().Float64("pseudo-count", config.DefaultPseudoCount, "pseudo count for the log-odds transform")
	runCmd.Flags().String("background", config.DefaultBackground, "null model; only \"random\" is supported")
	runCmd.Flags().IntP("null-samples", "n", config.DefaultNullSamples, "random peptides per kinase null distribution")
	runCmd.Flags().Bool("force-trim", false, "accepted and ignored; peptide trimming is not yet supported")
	runCmd.Flags().Float64("p-cut-pwm", config.DefaultPCutPWM, "match p-value cutoff for network edges")
	runCmd.Flags().Float64("p-cut-fc", config.DefaultPCutFC, "fold-change p-value cutoff for edge weight")
	runCmd.Flags().Int("permutations", config.DefaultPermutations, "label permutation trials; <= 1 skips significance")

	runCmd.MarkFlagRequired("kinase-table")
	runCmd.MarkFlagRequired("in")
	runCmd.MarkFlagRequired("out")
}
