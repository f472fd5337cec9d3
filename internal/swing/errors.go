package swing

import "fmt"

// InvalidAlphabetError is returned when a sequence contains a residue symbol
// outside the configured alphabet (and not the wild card).
type InvalidAlphabetError struct {
	Symbol Residue
	Record string
}

func (e *InvalidAlphabetError) Error() string {
	return fmt.Sprintf("invalid residue %q in %s: not in the amino acid alphabet", string(e.Symbol), e.Record)
}

// EmptyKinaseGroupError is returned when a kinase has no usable substrates
// left after filtering. A silently empty matrix would poison every score
// downstream, so this is a hard failure.
type EmptyKinaseGroupError struct {
	Kinase string
}

func (e *EmptyKinaseGroupError) Error() string {
	return fmt.Sprintf("no usable substrate sequences for kinase %s", e.Kinase)
}

// MalformedInputError is returned when a table row has the wrong column
// count or an unparseable value.
type MalformedInputError struct {
	Path   string
	Line   int
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input in %s at line %d: %s", e.Path, e.Line, e.Reason)
}

// SequenceLengthError is returned when a sequence cannot be centered on a
// phosphosite: it is empty or has an even length (no single center).
type SequenceLengthError struct {
	ID     string
	Length int
}

func (e *SequenceLengthError) Error() string {
	return fmt.Sprintf("sequence for %s has length %d and no single center position", e.ID, e.Length)
}
