package nmea0183

import (
	"math"
	"strconv"
)

// field returns the comma-separated field at idx, or "" when the
// sentence is too short. Short sentences are common enough that missing
// trailing fields are treated the same as empty ones.
func field(fields []string, idx int) string {
	if idx < len(fields) {
		return fields[idx]
	}
	return ""
}

// pickFloat parses the field at idx as a decimal number.
// An empty or missing field yields nil without an error.
func pickFloat(fields []string, idx int, what string) (*float64, error) {
	raw := field(fields, idx)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &InvalidSentenceError{Detail: "invalid " + what + " field: " + raw}
	}
	return &v, nil
}

func pickUint(fields []string, idx int, what string) (*uint32, error) {
	raw := field(fields, idx)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, &InvalidSentenceError{Detail: "invalid " + what + " field: " + raw}
	}
	u := uint32(v)
	return &u, nil
}

func pickUint8(fields []string, idx int, what string) (*uint8, error) {
	v, err := pickUint(fields, idx, what)
	if v == nil || err != nil {
		return nil, err
	}
	u := uint8(*v)
	return &u, nil
}

func pickUint16(fields []string, idx int, what string) (*uint16, error) {
	v, err := pickUint(fields, idx, what)
	if v == nil || err != nil {
		return nil, err
	}
	u := uint16(*v)
	return &u, nil
}

// pickHexUint parses the field at idx as hexadecimal, as used by the ALM
// almanac sentence.
func pickHexUint(fields []string, idx int, what string) (*uint32, error) {
	raw := field(fields, idx)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return nil, &InvalidSentenceError{Detail: "invalid " + what + " field: " + raw}
	}
	u := uint32(v)
	return &u, nil
}

func validCoordinate(raw string) bool {
	dots := 0
	digits := 0
	for i := 0; i < len(raw); i++ {
		switch {
		case raw[i] >= '0' && raw[i] <= '9':
			digits++
		case raw[i] == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

// pickCoordinate parses a latitude (ddmm.mmm) or longitude (dddmm.mmm)
// field together with its hemisphere field. S and W produce negative
// values; an unrecognized hemisphere leaves the value positive.
func pickCoordinate(fields []string, valueIdx, hemiIdx int, what string) (*float64, error) {
	raw := field(fields, valueIdx)
	if raw == "" {
		return nil, nil
	}
	if !validCoordinate(raw) {
		return nil, &InvalidSentenceError{Detail: "invalid " + what + " field: " + raw}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &InvalidSentenceError{Detail: "invalid " + what + " field: " + raw}
	}
	deg := math.Floor(v / 100)
	res := deg + (v-deg*100)/60
	switch field(fields, hemiIdx) {
	case "S", "W":
		res = -res
	}
	return &res, nil
}

// pickMinuteOffset parses a datum offset given in minutes together with
// its hemisphere field. Unlike pickCoordinate the hemisphere must be one
// of the two given characters.
func pickMinuteOffset(fields []string, valueIdx, hemiIdx int, positive, negative, what string) (*float64, error) {
	raw := field(fields, valueIdx)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &InvalidSentenceError{Detail: "invalid " + what + " field: " + raw}
	}
	res := v / 60.0
	switch field(fields, hemiIdx) {
	case positive:
	case negative:
		res = -res
	default:
		return nil, &InvalidSentenceError{
			Detail: "invalid " + what + " hemisphere: " + field(fields, hemiIdx),
		}
	}
	return &res, nil
}
