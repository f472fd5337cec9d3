package swing

import "math"

// Substrate is one kinase to centered-substrate-sequence pair from the
// kinase table. The phosphosite is at the center of the sequence
// (len/2, 0-indexed); wild card symbols pad positions past a terminus.
type Substrate struct {
	// Kinase is the kinase or kinase-family name
	Kinase string `json:"kinase"`

	// Sequence is the centered substrate sequence
	Sequence string `json:"sequence"`
}

// Center returns the 0-indexed phosphosite position of the sequence.
func (s Substrate) Center() int {
	return len(s.Sequence) / 2
}

// Peptide is one measured phosphopeptide from the input data: a centered
// sequence with its fold change and significance. Peptides are immutable
// through the pipeline; every stage reads them and returns new tables.
type Peptide struct {
	// Annotation identifies the peptide (cleaned, uniquely mapped)
	Annotation string `json:"annotation"`

	// Sequence is the centered peptide sequence
	Sequence string `json:"sequence"`

	// FoldChange is the signed measured change
	FoldChange float64 `json:"foldChange"`

	// PValue is the significance of the fold change
	PValue float64 `json:"pValue"`
}

// MatchScore is the score of one peptide against one kinase's PWM.
type MatchScore struct {
	// Kinase the peptide was scored against
	Kinase string `json:"kinase"`

	// Peptide annotation
	Peptide string `json:"peptide"`

	// RawScore is the odds ratio on the linear scale, 2^LogOdds
	RawScore float64 `json:"rawScore"`

	// LogOdds is the summed log-odds weight over non-wild-card positions
	LogOdds float64 `json:"logOdds"`

	// EmpiricalP is the smoothed rank of LogOdds in the random-peptide
	// null, (1 + #(null >= observed)) / (n + 1)
	EmpiricalP float64 `json:"empiricalP"`
}

// SwingResult is the integrated activity call for one kinase.
type SwingResult struct {
	// Kinase name
	Kinase string `json:"kinase"`

	// Score is the signed swing statistic, NaN when no substrate match
	// passed the PWM significance cutoff
	Score float64 `json:"score"`

	// EmpiricalP is the permutation significance of Score, NaN when
	// permutation was skipped or the null was degenerate
	EmpiricalP float64 `json:"empiricalP"`

	// NSignificant is the count of network substrates that also passed
	// the fold-change significance cutoff
	NSignificant int `json:"nSignificant"`

	// NPermutations is the number of permutation trials run
	NPermutations int `json:"nPermutations"`
}

// NA marks an undefined numeric field (zero-size network, skipped or
// degenerate permutation null). Written as "NA" in output tables.
func NA() float64 {
	return math.NaN()
}

// IsNA reports whether a numeric field is undefined.
func IsNA(v float64) bool {
	return math.IsNaN(v)
}
