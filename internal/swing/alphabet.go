package swing

// Residue is a single amino acid symbol in a substrate or peptide sequence.
type Residue byte

// Alphabet is an ordered set of residues. The order fixes the column index
// of each residue in a PWM.
type Alphabet struct {
	residues []Residue
	index    [256]int
}

// NewAlphabet builds an alphabet from the residues in order.
func NewAlphabet(residues string) Alphabet {
	a := Alphabet{residues: make([]Residue, len(residues))}
	for i := range a.index {
		a.index[i] = -1
	}
	for i := 0; i < len(residues); i++ {
		a.residues[i] = Residue(residues[i])
		a.index[residues[i]] = i
	}
	return a
}

// AminoAcids is the alphabet of the twenty standard amino acids. The wild
// card symbol is not part of the alphabet: it marks positions beyond a
// protein's terminus and never carries probability mass.
var AminoAcids = NewAlphabet("ACDEFGHIKLMNPQRSTVWY")

// Len returns the number of residues in the alphabet.
func (a Alphabet) Len() int {
	return len(a.residues)
}

// Residues returns the residues in column order.
func (a Alphabet) Residues() []Residue {
	return a.residues
}

// Index returns the column index of a residue, or -1 if the residue is not
// in the alphabet.
func (a Alphabet) Index(r Residue) int {
	return a.index[r]
}

// Contains reports whether the residue is in the alphabet.
func (a Alphabet) Contains(r Residue) bool {
	return a.index[r] >= 0
}
