package feed

import (
	"testing"
	"time"
)

var testPackets = []struct {
	incomplete string
	packet     string
	sentence   string
	used       int
}{
	{"", "", "", -1},
	{"", "!BSVDM,1,1,,A,14S:Eb001ePRmHBTAAFnrmV60PRk,0*1F\r\n", "!BSVDM,1,1,,A,14S:Eb001ePRmHBTAAFnrmV60PRk,0*1F\r\n", 49},
	{"", "!BSVDM,1,1,,A,14S:Eb001ePRmHBTAAFnrmV60PRk,0*1F\n", "!BSVDM,1,1,,A,14S:Eb001ePRmHBTAAFnrmV60PRk,0*1F\r\n", 48},
	{"", "!BSVDM,1,1,,A,14S:Eb001ePRmHBTAAFnrmV60PRk,0*1F!", "!BSVDM,1,1,,A,14S:Eb001ePRmHBTAAFnrmV60PRk,0*1F\r\n", 47},
	{"", "!BSVDM,1,1,,A,14S:Eb001ePRmHBTAAFnrmV60PRk,0*1F", "!BSVDM,1,1,,A,14S:Eb001ePRmHBTAAFnrmV60PRk,0*1F", -1},
	{"", "noise!BSVDM,1,1,,A,14S:Eb001ePRmHBTAAFnrmV60PRk,0*1F!", "!BSVDM,1,1,,A,14S:Eb001ePRmHBTAAFnrmV60PRk,0*1F\r\n", 47},
	{"!", "BSVDM,2,2,7,B,00000000000,2*39\r\n", "!BSVDM,2,2,7,B,00000000000,2*39\r\n", 32},
	{"", "BSVDM,2,2,7,B,00000000000,2*39\r\n", "", -1},
	{"!BSVDM,1,1,,A,33nE", "!BSVDM,1,1,,B,144atH00000Lf9nSffVf49TP00S9,0*1D\r\n", "!BSVDM,1,1,,A,33nE\r\n", 0},
	{"!BSVDM,2,2,8,B,88888888880,2*36", "\r\n!BSVD", "!BSVDM,2,2,8,B,88888888880,2*36\r\n", 2},
	{"!BSVDM,2", ",2,,,2CQSp888880,2*0F\n!next", "!BSVDM,2,2,,,2CQSp888880,2*0F\r\n", 22},
	{"!AIVDM,2,2,,,00", "", "!AIVDM,2,2,,,00", -1},
	// plain sentences use the other start marker
	{"", "$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47\r\n", "$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47\r\n", 67},
	{"", "junk$GPGLL,4916.45,N,12311.12,W,225444,A,D*48\n$GP", "$GPGLL,4916.45,N,12311.12,W,225444,A,D*48\r\n", 42},
	{"$GPZDA,0729", "14.00,31,05,2018,-03,00\n", "$GPZDA,072914.00,31,05,2018,-03,00\r\n", 24},
	{"", "$GPRMC,225446,A,,,,,,,070809,,*23\r\n!AIVDM,1,1,,A,15RTgt0PAso;90TKcjM8h6g208CQ,0*4A\r\n", "$GPRMC,225446,A,,,,,,,070809,,*23\r\n", 35},
}

func TestFirstSentenceInBuffer(t *testing.T) {
	for i, test := range testPackets {
		s, used := FirstSentenceInBuffer([]byte(test.incomplete), []byte(test.packet))
		if string(s) != test.sentence || used != test.used {
			t.Errorf("test %d:\n(%q, %q) ->\nwant (%d, %q), got\n(%d, %q)", i,
				test.incomplete, test.packet,
				test.used, test.sentence,
				used, string(s))
		}
	}
}

func TestScannerAcrossReads(t *testing.T) {
	var sc Scanner
	var got []string
	emit := func(s []byte) { got = append(got, string(s)) }
	sc.Accept([]byte("$GPGGA,123519,,,,,,,,,,,,,*5B\r\n!AIVDM,1,1,,A,15RTgt0PAs"), emit)
	if len(got) != 1 {
		t.Fatalf("after first read: got %d sentences, want 1", len(got))
	}
	sc.Accept([]byte("o;90TKcjM8h6g208CQ,0*4A\r\n"), emit)
	if len(got) != 2 {
		t.Fatalf("after second read: got %d sentences, want 2", len(got))
	}
	if got[0] != "$GPGGA,123519,,,,,,,,,,,,,*5B\r\n" {
		t.Errorf("first sentence: %q", got[0])
	}
	if got[1] != "!AIVDM,1,1,,A,15RTgt0PAso;90TKcjM8h6g208CQ,0*4A\r\n" {
		t.Errorf("second sentence: %q", got[1])
	}
}

func TestDuplicateFilter(t *testing.T) {
	df := NewDuplicateFilter(time.Minute)
	defer df.Close()
	a := []byte("!AIVDM,1,1,,A,15RTgt0PAso;90TKcjM8h6g208CQ,0*4A\r\n")
	b := []byte("!AIVDM,1,1,,A,38Id705000rRVJhE7cl9n;160000,0*40\r\n")
	if df.IsDuplicate(a) {
		t.Error("first occurrence reported as duplicate")
	}
	if !df.IsDuplicate(a) {
		t.Error("second occurrence not reported as duplicate")
	}
	if df.IsDuplicate(b) {
		t.Error("different sentence reported as duplicate")
	}
}
