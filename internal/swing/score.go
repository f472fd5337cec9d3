package swing

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"
)

// ScoreOptions are the settings for scoring peptides against a PWM set.
type ScoreOptions struct {
	// NullSamples is the random peptide count behind each kinase's
	// empirical p-value; the smallest reachable p is 1/(NullSamples+1)
	NullSamples int

	// Seed makes the null reproducible; a negative seed draws a fresh
	// one per run
	Seed int64

	// Threads is the worker count over kinases
	Threads int

	// ForceTrim is accepted for interface compatibility and ignored:
	// adaptive peptide trimming is not supported
	ForceTrim bool

	// Verbose prints per-kinase progress to stderr
	Verbose bool
}

// ScoreSequences scores every peptide against every PWM and attaches an
// empirical p-value from a per-kinase null of random background peptides.
//
// Each kinase is an independent work unit with its own random stream
// derived from the seed and the kinase name, so the output is identical
// for any thread count. The returned table is sorted by kinase, then
// peptide.
func ScoreSequences(peptides []Peptide, set *PWMSet, opts ScoreOptions) ([]MatchScore, error) {
	if opts.NullSamples < 1 {
		return nil, fmt.Errorf("failed to score sequences: null sample count must be positive, got %d", opts.NullSamples)
	}
	if err := validatePeptides(peptides, set.Background.Alphabet, set.WildCard); err != nil {
		return nil, err
	}
	if opts.ForceTrim {
		stderr.Println("force-trim is not yet supported and has no effect")
	}

	threads := opts.Threads
	if threads < 1 {
		threads = 1
	}
	seed := resolveSeed(opts.Seed)

	// center every peptide once; alignments are shared by all kinases
	aligned := make([][]Residue, len(peptides))
	for i, p := range peptides {
		a := centerSequence(p.Sequence, set.SubstrateLength, set.WildCard)
		if !scorable(a, set.WildCard) {
			if opts.Verbose {
				stderr.Printf("skipping peptide %s: no non-wild-card positions to score", p.Annotation)
			}
			continue
		}
		aligned[i] = a
	}

	jobs := make(chan *PWM, len(set.Matrices))
	fragments := make(chan []MatchScore, len(set.Matrices))

	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for pwm := range jobs {
				fragments <- scoreKinase(pwm, peptides, aligned, set.Background, opts.NullSamples, seed)
			}
		}()
	}

	for _, pwm := range set.Matrices {
		if opts.Verbose {
			stderr.Printf("scoring %d peptides against %s", len(peptides), pwm.Kinase)
		}
		jobs <- pwm
	}
	close(jobs)
	wg.Wait()
	close(fragments)

	var scores []MatchScore
	for fragment := range fragments {
		scores = append(scores, fragment...)
	}

	// worker completion order must not leak into the table
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Kinase != scores[j].Kinase {
			return scores[i].Kinase < scores[j].Kinase
		}
		return scores[i].Peptide < scores[j].Peptide
	})

	return scores, nil
}

// scoreKinase is one worker unit: build the kinase's null distribution,
// then score and rank every peptide against it.
func scoreKinase(
	pwm *PWM,
	peptides []Peptide,
	aligned [][]Residue,
	bg *Background,
	nullSamples int,
	seed int64,
) []MatchScore {
	rng := rand.New(rand.NewSource(deriveSeed(seed, "score", pwm.Kinase)))

	null := make([]float64, nullSamples)
	for i := range null {
		null[i] = pwm.Score(bg.RandomSequence(rng, pwm.Len()))
	}
	sort.Float64s(null)

	var scores []MatchScore
	for i, p := range peptides {
		if aligned[i] == nil {
			continue // not scorable, no record
		}

		logOdds := pwm.Score(aligned[i])

		// count of null scores >= observed, inclusive
		above := len(null) - sort.SearchFloat64s(null, logOdds)

		scores = append(scores, MatchScore{
			Kinase:     pwm.Kinase,
			Peptide:    p.Annotation,
			RawScore:   math.Exp2(logOdds),
			LogOdds:    logOdds,
			EmpiricalP: float64(1+above) / float64(nullSamples+1),
		})
	}
	return scores
}

// scorable reports whether an aligned peptide has any position a PWM
// weight applies to.
func scorable(aligned []Residue, wildCard Residue) bool {
	for _, r := range aligned {
		if r != wildCard {
			return true
		}
	}
	return false
}

// validatePeptides rejects sequences without a single center position and
// residues outside the alphabet. Validation failures terminate the run:
// a mis-scored dataset is worse than no result.
func validatePeptides(peptides []Peptide, alpha Alphabet, wildCard Residue) error {
	for _, p := range peptides {
		if len(p.Sequence) == 0 || len(p.Sequence)%2 == 0 {
			return &SequenceLengthError{ID: p.Annotation, Length: len(p.Sequence)}
		}
		for i := 0; i < len(p.Sequence); i++ {
			r := Residue(p.Sequence[i])
			if r != wildCard && !alpha.Contains(r) {
				return &InvalidAlphabetError{Symbol: r, Record: p.Annotation}
			}
		}
	}
	return nil
}
