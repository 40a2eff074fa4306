package nmea0183

import (
	"fmt"
	"strconv"
	"time"
)

// referenceNow anchors date-less timestamps and two-digit years.
// Sentences only carry a time of day (or day of year for an ETA), so a
// fixed reference keeps parse results reproducible.
var referenceNow = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// validUTC builds a UTC timestamp and rejects component combinations
// that time.Date would silently normalize, such as February 30th.
func validUTC(year, month, day, hour, min, sec, nsec int) (time.Time, error) {
	t := time.Date(year, time.Month(month), day, hour, min, sec, nsec, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day ||
		t.Hour() != hour || t.Minute() != min || t.Second() != sec {
		return time.Time{}, &InvalidSentenceError{
			Detail: fmt.Sprintf("invalid date y:%d m:%d d:%d h:%d min:%d s:%d",
				year, month, day, hour, min, sec),
		}
	}
	return t, nil
}

func pick2(s string, i int) (int, error) {
	if i+2 > len(s) {
		return 0, fmt.Errorf("too short")
	}
	return strconv.Atoi(s[i : i+2])
}

// parseHHMMSS parses a HHMMSS time of day, placing it on the date of now.
func parseHHMMSS(raw string, now time.Time) (time.Time, error) {
	hour, err1 := pick2(raw, 0)
	min, err2 := pick2(raw, 2)
	sec, err3 := pick2(raw, 4)
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, &InvalidSentenceError{Detail: "invalid time format: " + raw}
	}
	return validUTC(now.Year(), int(now.Month()), now.Day(), hour, min, sec, 0)
}

// parseHHMMSSFrac parses a HHMMSS.SS time of day with optional decimal
// seconds, placing it on the date part of date.
func parseHHMMSSFrac(raw string, date time.Time) (time.Time, error) {
	hour, err1 := pick2(raw, 0)
	min, err2 := pick2(raw, 2)
	sec, err3 := pick2(raw, 4)
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, &InvalidSentenceError{Detail: "invalid time format: " + raw}
	}
	nsec := 0
	if len(raw) > 6 {
		frac, err := strconv.ParseFloat(raw[6:], 64)
		if err != nil {
			return time.Time{}, &InvalidSentenceError{Detail: "invalid time format: " + raw}
		}
		nsec = int(frac*1e9 + 0.5)
	}
	return validUTC(date.Year(), int(date.Month()), date.Day(), hour, min, sec, nsec)
}

// parseYYMMDDHHMMSS combines YYMMDD and HHMMSS fields into a UTC
// timestamp, resolving the two-digit year against the reference century.
func parseYYMMDDHHMMSS(yymmdd, hhmmss string) (time.Time, error) {
	century := referenceNow.Year() / 100 * 100
	day, err1 := pick2(yymmdd, 0)
	month, err2 := pick2(yymmdd, 2)
	year, err3 := pick2(yymmdd, 4)
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, &InvalidSentenceError{Detail: "invalid date format: " + yymmdd}
	}
	hour, err1 := pick2(hhmmss, 0)
	min, err2 := pick2(hhmmss, 2)
	sec, err3 := pick2(hhmmss, 4)
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, &InvalidSentenceError{Detail: "invalid time format: " + hhmmss}
	}
	return validUTC(century+year, month, day, hour, min, sec, 0)
}

// pickDate builds a midnight UTC date from separate year, month and day
// fields, as used by ZDA.
func pickDate(fields []string, yearIdx, monthIdx, dayIdx int) (time.Time, error) {
	year, err1 := strconv.Atoi(field(fields, yearIdx))
	month, err2 := strconv.Atoi(field(fields, monthIdx))
	day, err3 := strconv.Atoi(field(fields, dayIdx))
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, &InvalidSentenceError{Detail: "invalid date fields"}
	}
	return validUTC(year, month, day, 0, 0, 0, 0)
}

// pickTimezoneSeconds combines local zone hour and minute fields into an
// offset east of UTC in seconds. The minute field inherits the sign of
// the hour field.
func pickTimezoneSeconds(fields []string, hourIdx, minuteIdx int) (int, error) {
	hour, err := strconv.Atoi(field(fields, hourIdx))
	if err != nil {
		return 0, &InvalidSentenceError{Detail: "invalid time zone hour field"}
	}
	minuteRaw := field(fields, minuteIdx)
	if minuteRaw == "" {
		minuteRaw = "0"
	}
	minute, err := strconv.Atoi(minuteRaw)
	if err != nil {
		return 0, &InvalidSentenceError{Detail: "invalid time zone minute field"}
	}
	sign := 1
	if hour < 0 {
		sign = -1
	}
	secs := hour*3600 + sign*minute*60
	if secs <= -86400 || secs >= 86400 {
		return 0, &InvalidSentenceError{
			Detail: fmt.Sprintf("time zone offset out of bounds: %d:%d", hour, minute),
		}
	}
	return secs, nil
}

// pickETA reads the month, day, hour and minute fields of an estimated
// time of arrival and reconstructs a full timestamp around the reference
// time. nil with a nil error means the ETA was not available.
func pickETA(bv *BitVector, start int) (*time.Time, error) {
	return pickETAAt(bv, start, referenceNow)
}

func pickETAAt(bv *BitVector, start int, now time.Time) (*time.Time, error) {
	month := int(bv.Uint(start, 4))
	day := int(bv.Uint(start+4, 5))
	hour := int(bv.Uint(start+9, 5))
	minute := int(bv.Uint(start+14, 6))

	if month == 0 && day == 0 && hour == 24 && minute == 60 {
		return nil, nil
	}
	if month == 0 {
		month = int(now.Month())
	}
	if day == 0 {
		day = now.Day()
	}
	if hour == 24 {
		hour = 23
		minute = 59
	}
	if minute == 60 {
		minute = 59
	}

	// An ETA more than 180 days in the past is assumed to mean next year.
	// Leap days make one of the two candidate years invalid at times.
	thisYear, errThis := validUTC(now.Year(), month, day, hour, minute, 30, 0)
	nextYear, errNext := validUTC(now.Year()+1, month, day, hour, minute, 30, 0)
	switch {
	case errThis != nil && errNext != nil:
		return nil, errThis
	case errThis != nil:
		return &nextYear, nil
	case errNext != nil:
		return &thisYear, nil
	case !thisYear.Before(now.Add(-180 * 24 * time.Hour)):
		return &thisYear, nil
	default:
		return &nextYear, nil
	}
}
