package swing

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

// pwmSetJSON is the serialized form of a PWMSet.
type pwmSetJSON struct {
	SubstrateLength int       `json:"substrateLength"`
	WildCard        string    `json:"wildCard"`
	Alphabet        string    `json:"alphabet"`
	BackgroundFreqs []float64 `json:"backgroundFreqs"`
	BackgroundN     int       `json:"backgroundN"`
	Matrices        []*PWM    `json:"matrices"`
}

// WritePWMSet writes the PWM set, including its background model, as JSON.
func WritePWMSet(path string, set *PWMSet) error {
	residues := make([]byte, set.Background.Alphabet.Len())
	for i, r := range set.Background.Alphabet.Residues() {
		residues[i] = byte(r)
	}

	out, err := json.MarshalIndent(pwmSetJSON{
		SubstrateLength: set.SubstrateLength,
		WildCard:        string(set.WildCard),
		Alphabet:        string(residues),
		BackgroundFreqs: set.Background.Freqs,
		BackgroundN:     set.Background.NResidues,
		Matrices:        set.Matrices,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize PWM set: %v", err)
	}

	if err = os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write PWM set: %v", err)
	}
	return nil
}

// ReadPWMSet restores a PWM set written by WritePWMSet.
func ReadPWMSet(path string) (*PWMSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PWM set: %v", err)
	}

	var dto pwmSetJSON
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("failed to parse PWM set %s: %v", path, err)
	}
	if dto.WildCard == "" || dto.Alphabet == "" {
		return nil, fmt.Errorf("failed to parse PWM set %s: missing alphabet or wild card", path)
	}

	alpha := NewAlphabet(dto.Alphabet)
	return &PWMSet{
		Matrices:        dto.Matrices,
		Background:      newBackgroundFreqs(alpha, dto.BackgroundFreqs, dto.BackgroundN),
		SubstrateLength: dto.SubstrateLength,
		WildCard:        Residue(dto.WildCard[0]),
	}, nil
}

// WriteScores writes the MatchScore table as TSV with a header row.
func WriteScores(w io.Writer, scores []MatchScore) error {
	if _, err := fmt.Fprintln(w, "kinase\tpeptide\traw_score\tlog_odds\tempirical_p"); err != nil {
		return fmt.Errorf("failed to write score table: %v", err)
	}
	for _, s := range scores {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			s.Kinase, s.Peptide, formatFloat(s.RawScore), formatFloat(s.LogOdds), formatFloat(s.EmpiricalP))
		if err != nil {
			return fmt.Errorf("failed to write score table: %v", err)
		}
	}
	return nil
}

// WriteSwing writes the SwingResult table as TSV with a header row.
// Undefined scores and p-values are written as NA.
func WriteSwing(w io.Writer, results []SwingResult) error {
	if _, err := fmt.Fprintln(w, "kinase\tswing_score\tempirical_p\tn_significant\tn_permutations"); err != nil {
		return fmt.Errorf("failed to write swing table: %v", err)
	}
	for _, r := range results {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			r.Kinase, formatFloat(r.Score), formatFloat(r.EmpiricalP), r.NSignificant, r.NPermutations)
		if err != nil {
			return fmt.Errorf("failed to write swing table: %v", err)
		}
	}
	return nil
}

// writeScoresFile writes the score table to a new file at path.
func writeScoresFile(path string, scores []MatchScore) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", path, err)
	}
	defer f.Close()
	return WriteScores(f, scores)
}

// writeSwingFile writes the swing table to a new file at path.
func writeSwingFile(path string, results []SwingResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", path, err)
	}
	defer f.Close()
	return WriteSwing(f, results)
}

// formatFloat renders a table value, mapping NA to the literal "NA".
func formatFloat(v float64) string {
	if IsNA(v) {
		return "NA"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
