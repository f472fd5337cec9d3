package swing

import (
	"math/rand"
)

// Background models the expected amino acid composition of substrate
// sequences. It is built from the aggregate non-wild-card residue counts
// over every substrate given to the PWM builder and is used both to turn
// raw position counts into log-odds and to draw the scorer's random
// peptides.
type Background struct {
	// Alphabet the frequencies are defined over
	Alphabet Alphabet `json:"-"`

	// Freqs maps alphabet column index to probability; sums to 1
	Freqs []float64 `json:"freqs"`

	// NResidues is the count of residues the frequencies were estimated
	// from; 0 means the uniform fallback
	NResidues int `json:"nResidues"`

	// cum is the cumulative distribution over Freqs for sampling
	cum []float64
}

// NewBackground estimates residue frequencies from the substrates. A
// residue outside the alphabet that is not the wild card fails with an
// InvalidAlphabetError naming the symbol and the offending record.
// Counts start at one per residue (Laplace's rule), so every frequency is
// positive and an empty substrate set degrades to uniform frequencies.
func NewBackground(substrates []Substrate, alpha Alphabet, wildCard Residue) (*Background, error) {
	counts := make([]int, alpha.Len())
	for i := range counts {
		counts[i] = 1 // Laplace's rule
	}
	observed := 0

	for _, s := range substrates {
		for i := 0; i < len(s.Sequence); i++ {
			r := Residue(s.Sequence[i])
			if r == wildCard {
				continue
			}
			if !alpha.Contains(r) {
				return nil, &InvalidAlphabetError{Symbol: r, Record: s.Kinase + ":" + s.Sequence}
			}
			counts[alpha.Index(r)]++
			observed++
		}
	}

	total := observed + alpha.Len()
	freqs := make([]float64, alpha.Len())
	for i, c := range counts {
		freqs[i] = float64(c) / float64(total)
	}

	return newBackgroundFreqs(alpha, freqs, observed), nil
}

// newBackgroundFreqs builds the model from precomputed frequencies,
// filling in the cumulative distribution used for sampling.
func newBackgroundFreqs(alpha Alphabet, freqs []float64, n int) *Background {
	cum := make([]float64, len(freqs))
	acc := 0.0
	for i, f := range freqs {
		acc += f
		cum[i] = acc
	}

	return &Background{
		Alphabet:  alpha,
		Freqs:     freqs,
		NResidues: n,
		cum:       cum,
	}
}

// Freq returns the background probability of a residue. Residues outside
// the alphabet (including the wild card) have zero probability.
func (b *Background) Freq(r Residue) float64 {
	i := b.Alphabet.Index(r)
	if i < 0 {
		return 0
	}
	return b.Freqs[i]
}

// RandomSequence draws a sequence of the requested length from the
// background composition using the caller's generator. Callers own their
// generator: workers never share one, so results are reproducible
// regardless of thread count.
func (b *Background) RandomSequence(rng *rand.Rand, length int) []Residue {
	seq := make([]Residue, length)
	for i := range seq {
		seq[i] = b.sample(rng.Float64())
	}
	return seq
}

// sample maps a uniform [0,1) draw onto a residue via the cumulative
// distribution.
func (b *Background) sample(u float64) Residue {
	for i, c := range b.cum {
		if u < c {
			return b.Alphabet.residues[i]
		}
	}
	// u landed past the last cumulative bound from rounding
	return b.Alphabet.residues[len(b.cum)-1]
}
