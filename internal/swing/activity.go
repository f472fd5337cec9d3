package swing

import (
	"math/rand"
	"sort"
	"sync"
)

// SwingOptions are the settings for the swing activity statistic.
type SwingOptions struct {
	// PCutPWM is the empirical p-value cutoff for a substrate match to
	// count as a network edge
	PCutPWM float64

	// PCutFC is the fold-change p-value cutoff for an edge to carry
	// directional weight
	PCutFC float64

	// Permutations is the label-permutation trial count behind each
	// kinase's significance; a value <= 1 skips permutation
	Permutations int

	// Seed makes permutation reproducible; negative draws a fresh one
	Seed int64

	// Threads is the worker count over kinases
	Threads int

	// Verbose prints per-kinase progress to stderr
	Verbose bool
}

// label is a peptide's (fold change, p-value) pair. Permutation reassigns
// labels as a unit so the correlation between a fold change and its own
// significance survives under the null.
type label struct {
	foldChange float64
	pValue     float64
}

// Swing integrates per-substrate match significance with measured fold
// change into one signed activity score per kinase, plus an empirical
// significance from permuting peptide labels across the population.
//
// Every kinase present in the match scores appears in the output, sorted
// by name; kinases whose network is empty carry NA scores rather than
// being dropped.
func Swing(peptides []Peptide, scores []MatchScore, opts SwingOptions) ([]SwingResult, error) {
	threads := opts.Threads
	if threads < 1 {
		threads = 1
	}
	seed := resolveSeed(opts.Seed)

	labels := make([]label, len(peptides))
	indexOf := make(map[string]int, len(peptides))
	for i, p := range peptides {
		labels[i] = label{foldChange: p.FoldChange, pValue: p.PValue}
		indexOf[p.Annotation] = i
	}

	// network edges per kinase: substrate matches under the PWM cutoff
	edges := make(map[string][]int)
	seen := make(map[string]bool)
	var kinases []string
	for _, score := range scores {
		if !seen[score.Kinase] {
			seen[score.Kinase] = true
			kinases = append(kinases, score.Kinase)
		}
		if score.EmpiricalP > opts.PCutPWM {
			continue
		}
		if i, ok := indexOf[score.Peptide]; ok {
			edges[score.Kinase] = append(edges[score.Kinase], i)
		}
	}
	sort.Strings(kinases)

	jobs := make(chan string, len(kinases))
	fragments := make(chan SwingResult, len(kinases))

	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for kinase := range jobs {
				fragments <- swingKinase(kinase, edges[kinase], labels, opts, seed)
			}
		}()
	}

	for _, kinase := range kinases {
		if opts.Verbose {
			stderr.Printf("computing swing for %s over %d network substrates", kinase, len(edges[kinase]))
		}
		jobs <- kinase
	}
	close(jobs)
	wg.Wait()
	close(fragments)

	results := make([]SwingResult, 0, len(kinases))
	for result := range fragments {
		results = append(results, result)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Kinase < results[j].Kinase
	})

	return results, nil
}

// swingKinase is one worker unit: the observed swing score for a kinase
// plus, when requested, its label-permutation significance.
func swingKinase(kinase string, network []int, labels []label, opts SwingOptions, seed int64) SwingResult {
	observed, nSig := swingScore(network, labels, opts.PCutFC)

	result := SwingResult{
		Kinase:       kinase,
		Score:        observed,
		EmpiricalP:   NA(),
		NSignificant: nSig,
	}
	if opts.Permutations <= 1 || len(network) == 0 {
		return result
	}

	// match assignments stay fixed under the null; only the (fold change,
	// p-value) labels are resampled across the whole peptide population
	rng := rand.New(rand.NewSource(deriveSeed(seed, "swing", kinase)))
	null := make([]float64, opts.Permutations)
	for t := range null {
		permuted := sampleWithoutReplacement(rng, len(labels), len(network))
		null[t], _ = swingScore(permuted, labels, opts.PCutFC)
	}
	result.NPermutations = len(null)

	if degenerate(null) {
		return result
	}

	above := 0
	for _, v := range null {
		if v >= observed {
			above++
		}
	}
	result.EmpiricalP = float64(1+above) / float64(len(null)+1)

	return result
}

// swingScore is the signed statistic over one network: the difference of
// positively and negatively weighted significant edges, normalized by the
// network size. Edges failing the fold-change cutoff keep zero weight but
// still count toward the size. An empty network has no defined score.
func swingScore(network []int, labels []label, pCutFC float64) (score float64, nSig int) {
	if len(network) == 0 {
		return NA(), 0
	}

	pos, neg := 0, 0
	for _, i := range network {
		l := labels[i]
		if l.pValue > pCutFC {
			continue
		}
		nSig++
		if l.foldChange > 0 {
			pos++
		} else if l.foldChange < 0 {
			neg++
		}
	}

	return float64(pos-neg) / float64(len(network)), nSig
}

// degenerate reports a zero-variance null distribution, which cannot rank
// the observed score.
func degenerate(null []float64) bool {
	for _, v := range null[1:] {
		if v != null[0] {
			return false
		}
	}
	return true
}
