package swing

import (
	"fmt"
	"os"

	"github.com/bioconductor-source/KinSwingR/config"
	"github.com/spf13/cobra"
)

// PWMCmd builds the PWM set from a kinase table and writes it as JSON.
func PWMCmd(cmd *cobra.Command, args []string) {
	c := config.New()
	in := mustFlag(cmd, "kinase-table")
	out := mustFlag(cmd, "out")

	substrates, err := ReadKinaseTable(in)
	if err != nil {
		stderr.Fatalln(err)
	}

	set, err := buildStage(substrates, c)
	if err != nil {
		stderr.Fatalln(err)
	}

	if err = WritePWMSet(out, set); err != nil {
		stderr.Fatalln(err)
	}
	if c.Verbose {
		stderr.Printf("wrote %d PWMs to %s", len(set.Matrices), out)
	}
}

// ScoreCmd scores the input data against a stored PWM set and writes the
// MatchScore table.
func ScoreCmd(cmd *cobra.Command, args []string) {
	c := config.New()
	in := mustFlag(cmd, "in")
	pwmPath := mustFlag(cmd, "pwm")
	out := mustFlag(cmd, "out")

	peptides, err := ReadInputData(in)
	if err != nil {
		stderr.Fatalln(err)
	}
	set, err := ReadPWMSet(pwmPath)
	if err != nil {
		stderr.Fatalln(err)
	}

	scores, err := scoreStage(peptides, set, c)
	if err != nil {
		stderr.Fatalln(err)
	}

	if err = writeScoresFile(out, scores); err != nil {
		stderr.Fatalln(err)
	}
	if c.Verbose {
		stderr.Printf("wrote %d match scores to %s", len(scores), out)
	}
}

// ActivityCmd computes swing scores from the input data and a stored
// MatchScore table and writes the SwingResult table.
func ActivityCmd(cmd *cobra.Command, args []string) {
	c := config.New()
	in := mustFlag(cmd, "in")
	scorePath := mustFlag(cmd, "scores")
	out := mustFlag(cmd, "out")

	peptides, err := ReadInputData(in)
	if err != nil {
		stderr.Fatalln(err)
	}
	scores, err := ReadScores(scorePath)
	if err != nil {
		stderr.Fatalln(err)
	}

	results, err := swingStage(peptides, scores, c)
	if err != nil {
		stderr.Fatalln(err)
	}

	if err = writeSwingFile(out, results); err != nil {
		stderr.Fatalln(err)
	}
	if c.Verbose {
		stderr.Printf("wrote swing scores for %d kinases to %s", len(results), out)
	}
}

// MasterCmd runs the three stages in their fixed order, forwarding all
// configuration, and writes every intermediate next to the final table.
func MasterCmd(cmd *cobra.Command, args []string) {
	c := config.New()
	kinasePath := mustFlag(cmd, "kinase-table")
	in := mustFlag(cmd, "in")
	prefix := mustFlag(cmd, "out")

	substrates, err := ReadKinaseTable(kinasePath)
	if err != nil {
		stderr.Fatalln(err)
	}
	peptides, err := ReadInputData(in)
	if err != nil {
		stderr.Fatalln(err)
	}

	set, scores, results, err := Run(substrates, peptides, c)
	if err != nil {
		stderr.Fatalln(err)
	}

	if err = WritePWMSet(prefix+".pwm.json", set); err != nil {
		stderr.Fatalln(err)
	}
	if err = writeScoresFile(prefix+".scores.tsv", scores); err != nil {
		stderr.Fatalln(err)
	}
	if err = writeSwingFile(prefix+".swing.tsv", results); err != nil {
		stderr.Fatalln(err)
	}

	if err = WriteSwing(os.Stdout, results); err != nil {
		stderr.Fatalln(err)
	}
}

// Run is the in-memory pipeline: build PWMs, score the peptides, compute
// swing. Each stage returns a fresh table consumed by the next; nothing
// is mutated across stages.
func Run(substrates []Substrate, peptides []Peptide, c *config.Config) (*PWMSet, []MatchScore, []SwingResult, error) {
	if c.Verbose {
		stderr.Println("building position weight matrices")
	}
	set, err := buildStage(substrates, c)
	if err != nil {
		return nil, nil, nil, err
	}

	if c.Verbose {
		stderr.Println("scoring peptides against PWMs")
	}
	scores, err := scoreStage(peptides, set, c)
	if err != nil {
		return nil, nil, nil, err
	}

	if c.Verbose {
		stderr.Println("computing swing activity scores")
	}
	results, err := swingStage(peptides, scores, c)
	if err != nil {
		return nil, nil, nil, err
	}

	return set, scores, results, nil
}

// buildStage maps the configuration onto the PWM builder.
func buildStage(substrates []Substrate, c *config.Config) (*PWMSet, error) {
	wildCard, err := parseWildCard(c.WildCard)
	if err != nil {
		return nil, err
	}

	var removeCenter Residue
	if c.RemoveCenter != "" {
		if len(c.RemoveCenter) != 1 {
			return nil, fmt.Errorf("failed to parse remove-center %q: want a single residue letter", c.RemoveCenter)
		}
		removeCenter = Residue(c.RemoveCenter[0])
	}
	if c.SubstrateLength < 1 || c.SubstrateLength%2 == 0 {
		return nil, fmt.Errorf("failed to parse substrate-length %d: want a positive odd width", c.SubstrateLength)
	}
	if c.PseudoCount <= 0 {
		return nil, fmt.Errorf("failed to parse pseudo-count %v: must be positive", c.PseudoCount)
	}

	return BuildPWM(substrates, PWMOptions{
		SubstrateLength: c.SubstrateLength,
		WildCard:        wildCard,
		RemoveCenter:    removeCenter,
		PseudoCount:     c.PseudoCount,
		Verbose:         c.Verbose,
	})
}

// scoreStage maps the configuration onto the sequence scorer.
func scoreStage(peptides []Peptide, set *PWMSet, c *config.Config) ([]MatchScore, error) {
	// only the random background null is implemented; anything else is a
	// misconfiguration, not a fallback
	if c.Background != "random" {
		return nil, fmt.Errorf("failed to score sequences: background %q is not supported, only \"random\"", c.Background)
	}

	return ScoreSequences(peptides, set, ScoreOptions{
		NullSamples: c.NullSamples,
		Seed:        c.Seed,
		Threads:     c.Threads,
		ForceTrim:   c.ForceTrim,
		Verbose:     c.Verbose,
	})
}

// swingStage maps the configuration onto the swing engine.
func swingStage(peptides []Peptide, scores []MatchScore, c *config.Config) ([]SwingResult, error) {
	return Swing(peptides, scores, SwingOptions{
		PCutPWM:      c.PCutPWM,
		PCutFC:       c.PCutFC,
		Permutations: c.Permutations,
		Seed:         c.Seed,
		Threads:      c.Threads,
		Verbose:      c.Verbose,
	})
}

// parseWildCard validates the configured wild card symbol.
func parseWildCard(s string) (Residue, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("failed to parse wild-card %q: want a single symbol", s)
	}
	r := Residue(s[0])
	if AminoAcids.Contains(r) {
		return 0, fmt.Errorf("failed to parse wild-card %q: collides with an amino acid letter", s)
	}
	return r, nil
}

// mustFlag reads a required string flag, exiting with the command help on
// a missing value.
func mustFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if v == "" || err != nil {
		cmd.Help()
		stderr.Fatalf("\nno %s path set", name)
	}
	return v
}
