package swing

import (
	"math"
	"math/rand"
	"reflect"
	"testing"
)

func Test_NewBackground(t *testing.T) {
	substrates := []Substrate{
		{Kinase: "K1", Sequence: "AAS"},
		{Kinase: "K1", Sequence: "A_S"},
	}

	bg, err := NewBackground(substrates, AminoAcids, '_')
	if err != nil {
		t.Fatalf("NewBackground() err = %v", err)
	}

	if bg.NResidues != 5 {
		t.Errorf("NResidues = %d, want 5 (wild card not counted)", bg.NResidues)
	}

	// 3 As and 2 Ss observed, Laplace smoothed over 20 residues
	total := float64(5 + AminoAcids.Len())
	if got, want := bg.Freq('A'), 4.0/total; got != want {
		t.Errorf("Freq(A) = %v, want %v", got, want)
	}
	if got, want := bg.Freq('S'), 3.0/total; got != want {
		t.Errorf("Freq(S) = %v, want %v", got, want)
	}
	if got, want := bg.Freq('W'), 1.0/total; got != want {
		t.Errorf("Freq(W) = %v, want %v (Laplace floor)", got, want)
	}
	if got := bg.Freq('_'); got != 0 {
		t.Errorf("Freq(_) = %v, want 0: the wild card has no probability mass", got)
	}

	sum := 0.0
	for _, f := range bg.Freqs {
		sum += f
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Errorf("frequencies sum to %v, want 1", sum)
	}
}

func Test_NewBackground_uniformFallback(t *testing.T) {
	bg, err := NewBackground(nil, AminoAcids, '_')
	if err != nil {
		t.Fatalf("NewBackground() err = %v", err)
	}

	want := 1.0 / float64(AminoAcids.Len())
	for _, r := range AminoAcids.Residues() {
		if got := bg.Freq(r); got != want {
			t.Fatalf("Freq(%q) = %v, want uniform %v", string(r), got, want)
		}
	}
}

func Test_NewBackground_invalidSymbol(t *testing.T) {
	_, err := NewBackground([]Substrate{{Kinase: "K9", Sequence: "AAxAA"}}, AminoAcids, '_')
	if err == nil {
		t.Fatal("NewBackground() err = nil, want InvalidAlphabetError")
	}

	invalid, ok := err.(*InvalidAlphabetError)
	if !ok {
		t.Fatalf("NewBackground() err = %T, want *InvalidAlphabetError", err)
	}
	if invalid.Symbol != 'x' || invalid.Record != "K9:AAxAA" {
		t.Errorf("InvalidAlphabetError names %q in %s, want 'x' in K9:AAxAA", string(invalid.Symbol), invalid.Record)
	}
}

func Test_RandomSequence(t *testing.T) {
	substrates := []Substrate{{Kinase: "K1", Sequence: "ACDEFGHIKLMNPQRSTVWYACDEFGHIKLMNPQRSTVWYA"}}
	bg, err := NewBackground(substrates, AminoAcids, '_')
	if err != nil {
		t.Fatalf("NewBackground() err = %v", err)
	}

	a := bg.RandomSequence(rand.New(rand.NewSource(42)), 15)
	b := bg.RandomSequence(rand.New(rand.NewSource(42)), 15)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("RandomSequence() with equal seeds differs: %v vs %v", a, b)
	}
	if len(a) != 15 {
		t.Errorf("RandomSequence() length = %d, want 15", len(a))
	}
	for _, r := range a {
		if !AminoAcids.Contains(r) {
			t.Fatalf("RandomSequence() emitted %q, outside the alphabet", string(r))
		}
	}
}
