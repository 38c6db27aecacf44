package scoring

import (
	"vitalscope.com/vra/types"
)

// Breakdown is the per-patient scoring result. It is derived, never
// stored: re-evaluating the same raw record always reproduces it.
type Breakdown struct {
	BloodPressure int  `json:"blood_pressure"`
	Temperature   int  `json:"temperature"`
	Age           int  `json:"age"`
	Fever         bool `json:"fever"`
	DataQuality   bool `json:"data_quality"`
}

func (breakdown Breakdown) Total() int {
	return breakdown.BloodPressure + breakdown.Temperature + breakdown.Age
}

// BloodPressureScore classifies systolic and diastolic independently
// and keeps the more severe category.
func BloodPressureScore(reading types.BloodPressure, rules Rules) int {
	if !reading.Valid {
		return 0
	}
	systolicStage := 4
	switch {
	case reading.Systolic <= rules.SystolicNormalMax:
		systolicStage = 1
	case reading.Systolic <= rules.SystolicElevatedMax:
		systolicStage = 2
	case reading.Systolic <= rules.SystolicStage1Max:
		systolicStage = 3
	}
	diastolicStage := 4
	switch {
	case reading.Diastolic <= rules.DiastolicNormalMax:
		diastolicStage = 1
	case reading.Diastolic <= rules.DiastolicStage1Max:
		diastolicStage = 3
	}
	if systolicStage > diastolicStage {
		return systolicStage
	}
	return diastolicStage
}

func TemperatureScore(reading types.Temperature, rules Rules) int {
	if !reading.Valid {
		return 0
	}
	switch {
	case reading.Degrees <= rules.TempNormalMax:
		return 0
	case reading.Degrees <= rules.TempLowGradeMax:
		return 1
	}
	return 2
}

// AgeScore never yields 0 for a valid age, so a 0 sub-score always
// means unparseable. Callers must still consult the data-quality flag,
// not the score, to tell the two apart.
func AgeScore(reading types.Age, rules Rules) int {
	if !reading.Valid {
		return 0
	}
	if reading.Years > rules.SeniorAgeOver {
		return 2
	}
	return 1
}

// Evaluate normalizes the three vital fields of one record and derives
// its sub-scores and flags. The fever flag reads the parsed temperature
// directly; it is independent of the temperature banding.
func Evaluate(patient types.RawPatient, rules Rules) Breakdown {
	bloodPressure := ParseBloodPressure(patient.BloodPressure)
	temperature := ParseTemperature(patient.Temperature, rules)
	age := ParseAge(patient.Age, rules)

	return Breakdown{
		BloodPressure: BloodPressureScore(bloodPressure, rules),
		Temperature:   TemperatureScore(temperature, rules),
		Age:           AgeScore(age, rules),
		Fever:         temperature.Valid && temperature.Degrees >= rules.FeverMin,
		DataQuality:   !bloodPressure.Valid || !temperature.Valid || !age.Valid,
	}
}
