package types

// Normalized vitals are tagged variants rather than numeric sentinels:
// a zero sub-score is overloaded between "valid but lowest band" and
// "unparseable", so validity has to travel next to the value.

// BloodPressure is a parsed "SYS/DIA" reading. Valid implies
// Systolic >= Diastolic > 0.
type BloodPressure struct {
	Systolic  int
	Diastolic int
	Valid     bool
}

// Temperature is a parsed Fahrenheit reading inside the sanity range.
type Temperature struct {
	Degrees float64
	Valid   bool
}

// Age is a parsed age in whole years inside the sanity range.
type Age struct {
	Years int
	Valid bool
}

func InvalidBloodPressure() BloodPressure {
	return BloodPressure{}
}

func InvalidTemperature() Temperature {
	return Temperature{}
}

func InvalidAge() Age {
	return Age{}
}
