package swing

import (
	"testing"
)

// equalResults compares swing tables treating NA fields as equal, which
// reflect.DeepEqual will not.
func equalResults(a, b []SwingResult) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Kinase != b[i].Kinase ||
			a[i].NSignificant != b[i].NSignificant ||
			a[i].NPermutations != b[i].NPermutations {
			return false
		}
		if !equalNA(a[i].Score, b[i].Score) || !equalNA(a[i].EmpiricalP, b[i].EmpiricalP) {
			return false
		}
	}
	return true
}

func equalNA(a, b float64) bool {
	if IsNA(a) || IsNA(b) {
		return IsNA(a) && IsNA(b)
	}
	return a == b
}

func Test_Swing_singleSubstrate(t *testing.T) {
	// one significant, positively weighted substrate match: the network
	// has one edge and the score pins to +1
	peptides := []Peptide{
		{Annotation: "pep1", Sequence: "AAAMAAAAAAAAAAA", FoldChange: 2, PValue: 0.01},
	}
	scores := []MatchScore{
		{Kinase: "K1", Peptide: "pep1", LogOdds: 12, EmpiricalP: 0.01},
	}

	results, err := Swing(peptides, scores, SwingOptions{PCutPWM: 0.05, PCutFC: 0.05, Permutations: 0, Threads: 1})
	if err != nil {
		t.Fatalf("Swing() err = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Swing() returned %d rows, want 1", len(results))
	}

	r := results[0]
	if r.Kinase != "K1" || r.Score != 1.0 {
		t.Errorf("Swing() = %+v, want K1 with score +1.0", r)
	}
	if !IsNA(r.EmpiricalP) {
		t.Errorf("empirical p = %v, want NA with permutations=0", r.EmpiricalP)
	}
	if r.NSignificant != 1 || r.NPermutations != 0 {
		t.Errorf("Swing() = %+v, want 1 significant substrate and 0 permutations", r)
	}
}

func Test_Swing_emptyNetwork(t *testing.T) {
	// a kinase whose matches all fail the PWM cutoff still appears in
	// the output, with NA fields
	peptides := []Peptide{
		{Annotation: "pep1", Sequence: "AAAAAAASAAAAAAA", FoldChange: 1, PValue: 0.01},
	}
	scores := []MatchScore{
		{Kinase: "K1", Peptide: "pep1", EmpiricalP: 0.01},
		{Kinase: "K2", Peptide: "pep1", EmpiricalP: 0.9},
	}

	results, err := Swing(peptides, scores, SwingOptions{PCutPWM: 0.05, PCutFC: 0.05, Permutations: 10, Seed: 1234, Threads: 1})
	if err != nil {
		t.Fatalf("Swing() err = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Swing() returned %d rows, want both kinases", len(results))
	}

	var k2 SwingResult
	for _, r := range results {
		if r.Kinase == "K2" {
			k2 = r
		}
	}
	if !IsNA(k2.Score) || !IsNA(k2.EmpiricalP) {
		t.Errorf("zero-match kinase = %+v, want NA score and NA p", k2)
	}
	if k2.NSignificant != 0 || k2.NPermutations != 0 {
		t.Errorf("zero-match kinase = %+v, want no substrates and no trials", k2)
	}
}

func swingFixture() ([]Peptide, []MatchScore) {
	peptides := []Peptide{
		{Annotation: "pep1", Sequence: "AAAAAAASAAAAAAA", FoldChange: 2.0, PValue: 0.01},
		{Annotation: "pep2", Sequence: "CAAAAAASAAAAAAA", FoldChange: 1.5, PValue: 0.02},
		{Annotation: "pep3", Sequence: "CCAAAAASAAAAAAA", FoldChange: -1.2, PValue: 0.03},
		{Annotation: "pep4", Sequence: "CCCAAAASAAAAAAA", FoldChange: -0.4, PValue: 0.60},
		{Annotation: "pep5", Sequence: "CCCCAAASAAAAAAA", FoldChange: 0.8, PValue: 0.20},
		{Annotation: "pep6", Sequence: "CCCCCAASAAAAAAA", FoldChange: -2.5, PValue: 0.01},
		{Annotation: "pep7", Sequence: "CCCCCCASAAAAAAA", FoldChange: 0.1, PValue: 0.90},
		{Annotation: "pep8", Sequence: "CCCCCCCSAAAAAAA", FoldChange: 3.1, PValue: 0.04},
	}
	scores := []MatchScore{
		{Kinase: "K1", Peptide: "pep1", EmpiricalP: 0.01},
		{Kinase: "K1", Peptide: "pep3", EmpiricalP: 0.02},
		{Kinase: "K1", Peptide: "pep4", EmpiricalP: 0.04},
		{Kinase: "K1", Peptide: "pep8", EmpiricalP: 0.03},
		{Kinase: "K2", Peptide: "pep2", EmpiricalP: 0.01},
		{Kinase: "K2", Peptide: "pep6", EmpiricalP: 0.02},
		{Kinase: "K2", Peptide: "pep7", EmpiricalP: 0.50},
	}
	return peptides, scores
}

func Test_Swing_weighting(t *testing.T) {
	peptides, scores := swingFixture()

	results, err := Swing(peptides, scores, SwingOptions{PCutPWM: 0.05, PCutFC: 0.05, Permutations: 0, Threads: 1})
	if err != nil {
		t.Fatalf("Swing() err = %v", err)
	}

	// K1 network: pep1 (+), pep3 (-), pep4 (insignificant), pep8 (+)
	// -> (2 - 1) / 4
	k1 := results[0]
	if k1.Kinase != "K1" {
		t.Fatalf("results[0] = %s, want K1 (sorted)", k1.Kinase)
	}
	if want := 0.25; k1.Score != want {
		t.Errorf("K1 score = %v, want %v", k1.Score, want)
	}
	if k1.NSignificant != 3 {
		t.Errorf("K1 significant substrates = %d, want 3", k1.NSignificant)
	}

	// K2 network: pep2 (+), pep6 (-); pep7 failed the PWM cutoff
	// -> (1 - 1) / 2
	k2 := results[1]
	if k2.Score != 0 {
		t.Errorf("K2 score = %v, want 0", k2.Score)
	}

	// a normalized tally of unit contributions stays inside [-1, 1]
	for _, r := range results {
		if !IsNA(r.Score) && (r.Score < -1 || r.Score > 1) {
			t.Errorf("score for %s = %v, outside [-1, 1]", r.Kinase, r.Score)
		}
	}
}

func Test_Swing_permutations(t *testing.T) {
	peptides, scores := swingFixture()
	opts := SwingOptions{PCutPWM: 0.05, PCutFC: 0.05, Permutations: 10, Seed: 1234, Threads: 1}

	first, err := Swing(peptides, scores, opts)
	if err != nil {
		t.Fatalf("Swing() err = %v", err)
	}
	again, err := Swing(peptides, scores, opts)
	if err != nil {
		t.Fatalf("Swing() err = %v", err)
	}
	if !equalResults(first, again) {
		t.Error("Swing() with a fixed seed differs between runs")
	}

	threadedOpts := opts
	threadedOpts.Threads = 4
	threaded, err := Swing(peptides, scores, threadedOpts)
	if err != nil {
		t.Fatalf("Swing() err = %v", err)
	}
	if !equalResults(first, threaded) {
		t.Error("Swing() output depends on thread count")
	}

	for _, r := range first {
		if r.NPermutations != 10 {
			t.Errorf("trials for %s = %d, want 10", r.Kinase, r.NPermutations)
		}
		if !IsNA(r.EmpiricalP) && (r.EmpiricalP < 1.0/11 || r.EmpiricalP > 1) {
			t.Errorf("empirical p for %s = %v, outside [1/11, 1]", r.Kinase, r.EmpiricalP)
		}
	}
}
