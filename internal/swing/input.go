package swing

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadKinaseTable reads a two column [kinase, centered sequence] TSV into
// substrates. A header row starting with "kinase" is skipped.
func ReadKinaseTable(path string) ([]Substrate, error) {
	rows, err := readTSV(path)
	if err != nil {
		return nil, err
	}

	var substrates []Substrate
	for i, row := range rows {
		if len(row) != 2 {
			return nil, &MalformedInputError{
				Path:   path,
				Line:   i + 1,
				Reason: fmt.Sprintf("want 2 columns [kinase, sequence], got %d", len(row)),
			}
		}
		if i == 0 && strings.EqualFold(strings.TrimSpace(row[0]), "kinase") {
			continue // header
		}

		substrates = append(substrates, Substrate{
			Kinase:   strings.TrimSpace(row[0]),
			Sequence: strings.ToUpper(strings.TrimSpace(row[1])),
		})
	}

	if len(substrates) == 0 {
		return nil, &MalformedInputError{Path: path, Line: 1, Reason: "no substrate rows"}
	}
	return substrates, nil
}

// ReadInputData reads a four column [annotation, centered sequence, fold
// change, p-value] TSV into peptides. A header row is recognized by its
// unparseable fold-change column.
func ReadInputData(path string) ([]Peptide, error) {
	rows, err := readTSV(path)
	if err != nil {
		return nil, err
	}

	var peptides []Peptide
	for i, row := range rows {
		if len(row) != 4 {
			return nil, &MalformedInputError{
				Path:   path,
				Line:   i + 1,
				Reason: fmt.Sprintf("want 4 columns [annotation, sequence, fold_change, p_value], got %d", len(row)),
			}
		}

		fc, fcErr := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if i == 0 && fcErr != nil {
			continue // header
		}
		if fcErr != nil {
			return nil, &MalformedInputError{
				Path:   path,
				Line:   i + 1,
				Reason: fmt.Sprintf("fold_change %q is not a number", row[2]),
			}
		}

		pv, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
		if err != nil {
			return nil, &MalformedInputError{
				Path:   path,
				Line:   i + 1,
				Reason: fmt.Sprintf("p_value %q is not a number", row[3]),
			}
		}
		if pv < 0 || pv > 1 {
			return nil, &MalformedInputError{
				Path:   path,
				Line:   i + 1,
				Reason: fmt.Sprintf("p_value %v is outside [0,1]", pv),
			}
		}

		peptides = append(peptides, Peptide{
			Annotation: strings.TrimSpace(row[0]),
			Sequence:   strings.ToUpper(strings.TrimSpace(row[1])),
			FoldChange: fc,
			PValue:     pv,
		})
	}

	if len(peptides) == 0 {
		return nil, &MalformedInputError{Path: path, Line: 1, Reason: "no peptide rows"}
	}
	return peptides, nil
}

// ReadScores reads a MatchScore table written by WriteScores.
func ReadScores(path string) ([]MatchScore, error) {
	rows, err := readTSV(path)
	if err != nil {
		return nil, err
	}

	var scores []MatchScore
	for i, row := range rows {
		if len(row) != 5 {
			return nil, &MalformedInputError{
				Path:   path,
				Line:   i + 1,
				Reason: fmt.Sprintf("want 5 columns [kinase, peptide, raw_score, log_odds, empirical_p], got %d", len(row)),
			}
		}

		raw, rawErr := strconv.ParseFloat(row[2], 64)
		if i == 0 && rawErr != nil {
			continue // header
		}

		logOdds, loErr := strconv.ParseFloat(row[3], 64)
		p, pErr := strconv.ParseFloat(row[4], 64)
		if rawErr != nil || loErr != nil || pErr != nil {
			return nil, &MalformedInputError{Path: path, Line: i + 1, Reason: "non-numeric score column"}
		}

		scores = append(scores, MatchScore{
			Kinase:     row[0],
			Peptide:    row[1],
			RawScore:   raw,
			LogOdds:    logOdds,
			EmpiricalP: p,
		})
	}

	if len(scores) == 0 {
		return nil, &MalformedInputError{Path: path, Line: 1, Reason: "no score rows"}
	}
	return scores, nil
}

// readTSV reads every row of a tab separated file, tolerating ragged rows
// so the caller can report the offending line itself.
func readTSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input table: %v", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", path, err)
	}
	return rows, nil
}
