package assessment

import (
	"vitalscope.com/vra/scoring"
	"vitalscope.com/vra/types"
	"vitalscope.com/vra/utils"
)

// Result partitions patient identifiers into the three output sets.
// Membership is evaluated independently per patient, so an identifier
// may land in several sets or none. The only coupling: a data-quality
// patient is never high-risk, whatever its raw total.
type Result struct {
	HighRisk          []string `json:"high_risk_patients"`
	Fever             []string `json:"fever_patients"`
	DataQualityIssues []string `json:"data_quality_issues"`
}

// Assess scores every record and builds the output sets in input order.
// It has no hidden state: the same records and rules always produce the
// same Result.
func Assess(patients []types.RawPatient, rules scoring.Rules) Result {
	// non-nil so empty sets serialize as [] rather than null
	result := Result{
		HighRisk:          []string{},
		Fever:             []string{},
		DataQualityIssues: []string{},
	}
	for _, patient := range patients {
		breakdown := scoring.Evaluate(patient, rules)
		if breakdown.DataQuality {
			result.DataQualityIssues = append(result.DataQualityIssues, patient.ID)
		}
		if breakdown.Fever {
			result.Fever = append(result.Fever, patient.ID)
		}
		if breakdown.Total() > rules.HighRiskOver && !breakdown.DataQuality {
			result.HighRisk = append(result.HighRisk, patient.ID)
		}
	}
	return result
}

// Fingerprint hashes the three identifier lists. Two runs over the same
// fetched collection must report the same value.
func (result Result) Fingerprint() uint64 {
	return utils.HashBytes(
		hashable(result.HighRisk),
		hashable(result.Fever),
		hashable(result.DataQualityIssues),
	)
}

func hashable(ids []string) []byte {
	buf := make([]byte, 0, len(ids)*8)
	for _, id := range ids {
		buf = append(buf, id...)
		buf = append(buf, 0)
	}
	// set separator
	buf = append(buf, 1)
	return buf
}
