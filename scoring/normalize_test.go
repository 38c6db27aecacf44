package scoring

import (
	"vitalscope.com/vra/types"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParseBloodPressure(t *testing.T) {
	cases := []struct {
		name string
		raw  interface{}
		want types.BloodPressure
	}{
		{"simple reading", "120/80", types.BloodPressure{Systolic: 120, Diastolic: 80, Valid: true}},
		{"spaces around separator", "150 / 90", types.BloodPressure{Systolic: 150, Diastolic: 90, Valid: true}},
		{"backslash separator", `140\100`, types.BloodPressure{Systolic: 140, Diastolic: 100, Valid: true}},
		{"surrounding whitespace", "  130/85  ", types.BloodPressure{Systolic: 130, Diastolic: 85, Valid: true}},
		{"equal sides", "110/110", types.BloodPressure{Systolic: 110, Diastolic: 110, Valid: true}},
		{"missing diastolic", "150/", types.InvalidBloodPressure()},
		{"missing systolic", "/90", types.InvalidBloodPressure()},
		{"systolic below diastolic", "70/110", types.InvalidBloodPressure()},
		{"trailing unit", "120/80 mmHg", types.InvalidBloodPressure()},
		{"non numeric side", "abc/80", types.InvalidBloodPressure()},
		{"zero diastolic", "120/0", types.InvalidBloodPressure()},
		{"empty", "", types.InvalidBloodPressure()},
		{"absent", nil, types.InvalidBloodPressure()},
		{"number without separator", 120.0, types.InvalidBloodPressure()},
		{"wrong type", true, types.InvalidBloodPressure()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ParseBloodPressure(tc.raw))
		})
	}
}

func TestParseTemperature(t *testing.T) {
	rules := DefaultRules()
	cases := []struct {
		name string
		raw  interface{}
		want types.Temperature
	}{
		{"number", 98.6, types.Temperature{Degrees: 98.6, Valid: true}},
		{"numeric text", "98.6", types.Temperature{Degrees: 98.6, Valid: true}},
		{"degrees fahrenheit suffix", "101.3°F", types.Temperature{Degrees: 101.3, Valid: true}},
		{"celsius letter is cosmetic", "99C", types.Temperature{Degrees: 99, Valid: true}},
		{"padded text", " 99.1 ", types.Temperature{Degrees: 99.1, Valid: true}},
		{"sanity range lower edge", 90.0, types.Temperature{Degrees: 90, Valid: true}},
		{"sanity range upper edge", 115.0, types.Temperature{Degrees: 115, Valid: true}},
		{"below sanity range", "89.9", types.InvalidTemperature()},
		{"above sanity range", "115.1", types.InvalidTemperature()},
		{"not a number", "n/a", types.InvalidTemperature()},
		{"NaN literal", "NaN", types.InvalidTemperature()},
		{"lowercase nan", "nan", types.InvalidTemperature()},
		{"empty", "", types.InvalidTemperature()},
		{"absent", nil, types.InvalidTemperature()},
		{"wrong type", true, types.InvalidTemperature()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ParseTemperature(tc.raw, rules))
		})
	}
}

func TestParseAge(t *testing.T) {
	rules := DefaultRules()
	cases := []struct {
		name string
		raw  interface{}
		want types.Age
	}{
		{"number", 45.0, types.Age{Years: 45, Valid: true}},
		{"fractional number floors", 45.9, types.Age{Years: 45, Valid: true}},
		{"text with unit", "45 years", types.Age{Years: 45, Valid: true}},
		{"fractional text floors", "45.7", types.Age{Years: 45, Valid: true}},
		{"zero is a valid age", 0.0, types.Age{Years: 0, Valid: true}},
		{"sanity range upper edge", 150.0, types.Age{Years: 150, Valid: true}},
		{"above sanity range", "151", types.InvalidAge()},
		{"negative", -1.0, types.InvalidAge()},
		{"spelled out", "forty", types.InvalidAge()},
		{"two decimal points", "4.5.6", types.InvalidAge()},
		{"empty", "", types.InvalidAge()},
		{"absent", nil, types.InvalidAge()},
		{"wrong type", false, types.InvalidAge()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ParseAge(tc.raw, rules))
		})
	}
}
