package scoring

import (
	"vitalscope.com/vra/types"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// The normalizers are pure, total functions: malformed input never
// produces an error, only an invalid variant that feeds the
// data-quality flag.

var bloodPressurePattern = regexp.MustCompile(`^(\d+)\s*[/\\]\s*(\d+)$`)

// coerceText renders a loosely-typed field as text. JSON numbers arrive
// as float64; anything that is not a string or a number has no textual
// reading and stays invalid.
func coerceText(raw interface{}) (string, bool) {
	switch value := raw.(type) {
	case string:
		return value, true
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), true
	}
	return "", false
}

// ParseBloodPressure accepts "SYS/DIA" (or a backslash separator) with
// optional whitespace around the separator. Both sides must be positive
// integers with systolic >= diastolic.
func ParseBloodPressure(raw interface{}) types.BloodPressure {
	text, ok := coerceText(raw)
	if !ok {
		return types.InvalidBloodPressure()
	}
	match := bloodPressurePattern.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return types.InvalidBloodPressure()
	}
	systolic, err := strconv.Atoi(match[1])
	if err != nil {
		return types.InvalidBloodPressure()
	}
	diastolic, err := strconv.Atoi(match[2])
	if err != nil {
		return types.InvalidBloodPressure()
	}
	if systolic <= 0 || diastolic <= 0 || systolic < diastolic {
		return types.InvalidBloodPressure()
	}
	return types.BloodPressure{Systolic: systolic, Diastolic: diastolic, Valid: true}
}

// ParseTemperature takes a number as-is; text readings may carry unit
// decorations ("101.3°F", "99C") which are stripped before parsing.
// No Celsius conversion happens, the letters are cosmetic. The result
// must fall inside the Fahrenheit sanity range.
func ParseTemperature(raw interface{}, rules Rules) types.Temperature {
	var degrees float64
	switch value := raw.(type) {
	case float64:
		degrees = value
	case string:
		stripped := strings.Map(func(r rune) rune {
			switch r {
			case '°', 'F', 'f', 'C', 'c':
				return -1
			}
			return r
		}, value)
		parsed, err := strconv.ParseFloat(strings.TrimSpace(stripped), 64)
		if err != nil {
			return types.InvalidTemperature()
		}
		degrees = parsed
	default:
		return types.InvalidTemperature()
	}
	// positive form so NaN (which ParseFloat accepts) stays invalid
	if !(degrees >= rules.TempSaneMin && degrees <= rules.TempSaneMax) {
		return types.InvalidTemperature()
	}
	return types.Temperature{Degrees: degrees, Valid: true}
}

// ParseAge takes a number as-is; text readings keep only digits and the
// decimal point ("45 years" -> "45") before parsing. Valid ages are
// floored to whole years.
func ParseAge(raw interface{}, rules Rules) types.Age {
	var years float64
	switch value := raw.(type) {
	case float64:
		years = value
	case string:
		stripped := strings.Map(func(r rune) rune {
			if (r >= '0' && r <= '9') || r == '.' {
				return r
			}
			return -1
		}, value)
		parsed, err := strconv.ParseFloat(stripped, 64)
		if err != nil {
			return types.InvalidAge()
		}
		years = parsed
	default:
		return types.InvalidAge()
	}
	if years < float64(rules.AgeSaneMin) || years > float64(rules.AgeSaneMax) {
		return types.InvalidAge()
	}
	return types.Age{Years: int(math.Floor(years)), Valid: true}
}
