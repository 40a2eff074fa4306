package nmea0183

import (
	"testing"
	"time"
)

func etaBits(b0, b1, b2 byte) *BitVector {
	return &BitVector{data: []byte{b0, b1, b2}, length: 20}
}

func TestPickETA(t *testing.T) {
	// Month 10, day 11, 22:57.
	eta, err := pickETA(etaBits(0xA5, 0xDB, 0x90), 0)
	if err != nil {
		t.Fatalf("pickETA failed: %v", err)
	}
	want := time.Date(2000, time.October, 11, 22, 57, 30, 0, time.UTC)
	if eta == nil || !eta.Equal(want) {
		t.Errorf("eta = %v, want %v", eta, want)
	}

	// All fields at their "not available" value.
	eta, err = pickETA(etaBits(0x00, 0x63, 0xC0), 0)
	if err != nil {
		t.Fatalf("pickETA of unavailable eta failed: %v", err)
	}
	if eta != nil {
		t.Errorf("eta = %v, want nil", *eta)
	}

	// Hour 24 means the time of day is unknown.
	eta, err = pickETA(etaBits(0x22, 0xE0, 0x00), 0)
	if err != nil {
		t.Fatalf("pickETA with hour 24 failed: %v", err)
	}
	want = time.Date(2000, time.February, 5, 23, 59, 30, 0, time.UTC)
	if eta == nil || !eta.Equal(want) {
		t.Errorf("eta = %v, want %v", eta, want)
	}

	// Minute 60 means the minute is unknown.
	eta, err = pickETA(etaBits(0x30, 0xAB, 0xC0), 0)
	if err != nil {
		t.Fatalf("pickETA with minute 60 failed: %v", err)
	}
	want = time.Date(2000, time.March, 1, 10, 59, 30, 0, time.UTC)
	if eta == nil || !eta.Equal(want) {
		t.Errorf("eta = %v, want %v", eta, want)
	}
}

func TestPickETANextYear(t *testing.T) {
	// January 15th seen in September lies over 180 days back, so it
	// means next January.
	now := time.Date(2000, time.September, 1, 0, 0, 0, 0, time.UTC)
	eta, err := pickETAAt(etaBits(0x17, 0x80, 0x00), 0, now)
	if err != nil {
		t.Fatalf("pickETAAt failed: %v", err)
	}
	want := time.Date(2001, time.January, 15, 0, 0, 30, 0, time.UTC)
	if eta == nil || !eta.Equal(want) {
		t.Errorf("eta = %v, want %v", eta, want)
	}
}

func TestPickETALeapDay(t *testing.T) {
	// February 29th 12:00 seen in mid 2003 can only mean 2004.
	now := time.Date(2003, time.June, 1, 0, 0, 0, 0, time.UTC)
	eta, err := pickETAAt(etaBits(0x2E, 0xB0, 0x00), 0, now)
	if err != nil {
		t.Fatalf("pickETAAt failed: %v", err)
	}
	want := time.Date(2004, time.February, 29, 12, 0, 30, 0, time.UTC)
	if eta == nil || !eta.Equal(want) {
		t.Errorf("eta = %v, want %v", eta, want)
	}

	// In mid 2001 neither candidate year has a February 29th.
	now = time.Date(2001, time.June, 1, 0, 0, 0, 0, time.UTC)
	if _, err = pickETAAt(etaBits(0x2E, 0xB0, 0x00), 0, now); err == nil {
		t.Error("February 29th accepted in a pair of non leap years")
	}
}

func TestValidUTC(t *testing.T) {
	if _, err := validUTC(2020, 2, 30, 0, 0, 0, 0); err == nil {
		t.Error("February 30th was accepted")
	}
	if _, err := validUTC(2020, 1, 1, 12, 60, 0, 0); err == nil {
		t.Error("minute 60 was accepted")
	}
	got, err := validUTC(2020, 2, 29, 23, 59, 59, 0)
	if err != nil {
		t.Fatalf("leap day rejected: %v", err)
	}
	want := time.Date(2020, time.February, 29, 23, 59, 59, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseYYMMDDHHMMSS(t *testing.T) {
	got, err := parseYYMMDDHHMMSS("191120", "225446")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := time.Date(2020, time.November, 19, 22, 54, 46, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err = parseYYMMDDHHMMSS("3113", "120000"); err == nil {
		t.Error("truncated date was accepted")
	}
}

var testTimezones = []struct {
	hour, minute string
	seconds      int
	ok           bool
}{
	{"00", "00", 0, true},
	{"05", "30", 5*3600 + 30*60, true},
	{"-03", "00", -3 * 3600, true},
	{"-05", "30", -(5*3600 + 30*60), true},
	{"13", "", 13 * 3600, true},
	{"24", "00", 0, false},
	{"-24", "00", 0, false},
	{"x", "00", 0, false},
}

func TestPickTimezoneSeconds(t *testing.T) {
	for i, test := range testTimezones {
		fields := []string{"ZDA", test.hour, test.minute}
		got, err := pickTimezoneSeconds(fields, 1, 2)
		if test.ok != (err == nil) {
			t.Errorf("%d: offset %s:%s error = %v, want ok = %v", i, test.hour, test.minute, err, test.ok)
		} else if test.ok && got != test.seconds {
			t.Errorf("%d: offset %s:%s = %d, want %d", i, test.hour, test.minute, got, test.seconds)
		}
	}
}
