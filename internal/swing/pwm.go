package swing

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// PWMOptions are the settings for building position weight matrices.
type PWMOptions struct {
	// SubstrateLength is the centered sequence width of every matrix
	SubstrateLength int

	// WildCard pads positions past a protein terminus
	WildCard Residue

	// RemoveCenter drops substrates whose phosphosite residue equals this
	// letter; zero disables the filter
	RemoveCenter Residue

	// PseudoCount keeps zero-count positions off log(0)
	PseudoCount float64

	// Verbose prints progress and dropped-substrate notices to stderr
	Verbose bool
}

// PWM is one kinase's position weight matrix: log-odds weights of shape
// substrate length x alphabet size, relative to the background model.
type PWM struct {
	// Kinase or kinase-family name
	Kinase string

	// NSubstrates is the substrate count the matrix was built from; a
	// count of 1 still yields a matrix but flags low confidence
	NSubstrates int

	// PseudoCount used during the log-odds transform
	PseudoCount float64

	// WildCard symbol excluded from the probability mass
	WildCard Residue

	weights *mat.Dense
	alpha   Alphabet
}

// Weight returns the log-odds weight at a position for a residue.
func (p *PWM) Weight(pos int, r Residue) float64 {
	i := p.alpha.Index(r)
	if i < 0 {
		return 0
	}
	return p.weights.At(pos, i)
}

// Len returns the number of positions in the matrix.
func (p *PWM) Len() int {
	rows, _ := p.weights.Dims()
	return rows
}

// Score sums the matrix weights of an aligned sequence over every
// non-wild-card position. The sequence must already be centered to the
// matrix length.
func (p *PWM) Score(seq []Residue) float64 {
	score := 0.0
	for i, r := range seq {
		if r == p.WildCard {
			continue
		}
		score += p.Weight(i, r)
	}
	return score
}

// PWMSet bundles the per-kinase matrices with the background model they
// were normalized against. The background is what the scorer draws its
// random peptides from.
type PWMSet struct {
	// Matrices sorted by kinase name
	Matrices []*PWM

	// Background composition over the builder's substrates
	Background *Background

	// SubstrateLength of every matrix
	SubstrateLength int

	// WildCard symbol shared by the set
	WildCard Residue
}

// Get returns the matrix for a kinase, or nil.
func (set *PWMSet) Get(kinase string) *PWM {
	for _, p := range set.Matrices {
		if p.Kinase == kinase {
			return p
		}
	}
	return nil
}

// BuildPWM groups the substrates by kinase and builds one log-odds matrix
// per kinase against a background model estimated from all substrates.
//
// Substrates shorter than the substrate length are dropped with a notice
// (trim-to-fit is not supported); longer ones are trimmed around their
// center. A kinase left with no usable substrates fails the whole build
// with an EmptyKinaseGroupError: a silently empty matrix is worse than a
// hard failure here.
func BuildPWM(substrates []Substrate, opts PWMOptions) (*PWMSet, error) {
	if err := validateSubstrates(substrates); err != nil {
		return nil, err
	}

	bg, err := NewBackground(substrates, AminoAcids, opts.WildCard)
	if err != nil {
		return nil, err
	}

	// group substrates by kinase; a kinase that loses every substrate to
	// filtering still has a (now empty) group and fails below
	groups := make(map[string][][]Residue)
	seen := make(map[string]bool)
	var kinases []string
	for _, s := range substrates {
		if !seen[s.Kinase] {
			seen[s.Kinase] = true
			kinases = append(kinases, s.Kinase)
		}

		aligned, ok := alignSubstrate(s, opts.SubstrateLength, opts.WildCard)
		if !ok {
			if opts.Verbose {
				stderr.Printf("dropping substrate of %s: %d residues is shorter than %d",
					s.Kinase, len(s.Sequence), opts.SubstrateLength)
			}
			continue
		}

		if opts.RemoveCenter != 0 && aligned[opts.SubstrateLength/2] == opts.RemoveCenter {
			if opts.Verbose {
				stderr.Printf("dropping substrate of %s: center residue is %q",
					s.Kinase, string(opts.RemoveCenter))
			}
			continue
		}

		groups[s.Kinase] = append(groups[s.Kinase], aligned)
	}
	sort.Strings(kinases)

	set := &PWMSet{
		Background:      bg,
		SubstrateLength: opts.SubstrateLength,
		WildCard:        opts.WildCard,
	}
	for _, kinase := range kinases {
		seqs := groups[kinase]
		if len(seqs) == 0 {
			return nil, &EmptyKinaseGroupError{Kinase: kinase}
		}

		if opts.Verbose {
			stderr.Printf("building PWM for %s from %d substrates", kinase, len(seqs))
		}
		set.Matrices = append(set.Matrices, buildMatrix(kinase, seqs, bg, opts))
	}

	return set, nil
}

// buildMatrix counts residues per position over one kinase's aligned
// substrates and converts the counts to log-odds against the background,
// log2(prob/background + pseudo). With the default pseudo count of 1 an
// unobserved residue carries a neutral zero weight, so the consensus
// sequence always scores highest. Wild cards are excluded from the
// position's probability mass, so a wild-card-only column also keeps
// neutral zero weights.
func buildMatrix(kinase string, seqs [][]Residue, bg *Background, opts PWMOptions) *PWM {
	alpha := bg.Alphabet
	length := opts.SubstrateLength
	weights := mat.NewDense(length, alpha.Len(), nil)

	for pos := 0; pos < length; pos++ {
		counts := make([]int, alpha.Len())
		n := 0
		for _, seq := range seqs {
			if seq[pos] == opts.WildCard {
				continue
			}
			counts[alpha.Index(seq[pos])]++
			n++
		}

		if n == 0 {
			continue // neutral column
		}
		for i := range counts {
			prob := float64(counts[i]) / float64(n)
			weights.Set(pos, i, math.Log2(prob/bg.Freqs[i]+opts.PseudoCount))
		}
	}

	return &PWM{
		Kinase:      kinase,
		NSubstrates: len(seqs),
		PseudoCount: opts.PseudoCount,
		WildCard:    opts.WildCard,
		weights:     weights,
		alpha:       alpha,
	}
}

// validateSubstrates rejects sequences that cannot be centered on a
// phosphosite. Residue symbols are validated by the background model.
func validateSubstrates(substrates []Substrate) error {
	for _, s := range substrates {
		if len(s.Sequence) == 0 || len(s.Sequence)%2 == 0 {
			return &SequenceLengthError{ID: s.Kinase, Length: len(s.Sequence)}
		}
	}
	return nil
}

// alignSubstrate trims a substrate around its center to the matrix length.
// Shorter substrates are not usable (no trim-to-fit) and return false.
func alignSubstrate(s Substrate, length int, wildCard Residue) ([]Residue, bool) {
	if len(s.Sequence) < length {
		return nil, false
	}
	return centerSequence(s.Sequence, length, wildCard), true
}

// centerSequence aligns a sequence to the given width by its center
// position, trimming overhang and padding missing flanks with the wild
// card. The sequence must have an odd, nonzero length.
func centerSequence(sequence string, length int, wildCard Residue) []Residue {
	out := make([]Residue, length)
	for i := range out {
		out[i] = wildCard
	}

	center := len(sequence) / 2
	half := length / 2
	for d := -half; d <= half; d++ {
		src := center + d
		if src < 0 || src >= len(sequence) {
			continue
		}
		out[half+d] = Residue(sequence[src])
	}
	return out
}

// pwmJSON is the serialized form of a PWM; mat.Dense stays internal.
type pwmJSON struct {
	Kinase      string      `json:"kinase"`
	NSubstrates int         `json:"nSubstrates"`
	PseudoCount float64     `json:"pseudoCount"`
	WildCard    string      `json:"wildCard"`
	Alphabet    string      `json:"alphabet"`
	Weights     [][]float64 `json:"weights"`
}

// MarshalJSON writes the matrix with its weights row per position.
func (p *PWM) MarshalJSON() ([]byte, error) {
	rows, cols := p.weights.Dims()
	weights := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		weights[r] = make([]float64, cols)
		for c := 0; c < cols; c++ {
			weights[r][c] = p.weights.At(r, c)
		}
	}

	residues := make([]byte, p.alpha.Len())
	for i, r := range p.alpha.Residues() {
		residues[i] = byte(r)
	}

	return json.Marshal(pwmJSON{
		Kinase:      p.Kinase,
		NSubstrates: p.NSubstrates,
		PseudoCount: p.PseudoCount,
		WildCard:    string(p.WildCard),
		Alphabet:    string(residues),
		Weights:     weights,
	})
}

// UnmarshalJSON restores a matrix written by MarshalJSON.
func (p *PWM) UnmarshalJSON(data []byte) error {
	var dto pwmJSON
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	if dto.WildCard == "" || dto.Alphabet == "" {
		return fmt.Errorf("failed to parse PWM %s: missing alphabet or wild card", dto.Kinase)
	}

	alpha := NewAlphabet(dto.Alphabet)
	weights := mat.NewDense(len(dto.Weights), alpha.Len(), nil)
	for r, row := range dto.Weights {
		for c, w := range row {
			weights.Set(r, c, w)
		}
	}

	p.Kinase = dto.Kinase
	p.NSubstrates = dto.NSubstrates
	p.PseudoCount = dto.PseudoCount
	p.WildCard = Residue(dto.WildCard[0])
	p.weights = weights
	p.alpha = alpha
	return nil
}
