package nmea0183

import "testing"

var testDeArmor = []struct {
	char  byte
	value uint8
}{
	{'0', 0},
	{'9', 9},
	{':', 10},
	{'A', 17},
	{'W', 39},
	{'`', 40},
	{'a', 41},
	{'w', 63},
}

func TestDeArmorByte(t *testing.T) {
	for _, test := range testDeArmor {
		if got := deArmorByte(test.char); got != test.value {
			t.Errorf("deArmorByte(%q) = %d, want %d", test.char, got, test.value)
		}
	}
}

func TestBitVectorUint(t *testing.T) {
	bv := DecodeArmor("w7")
	if bv.Len() != 12 {
		t.Errorf("Len() = %d, want 12", bv.Len())
	}
	if got := bv.Uint(0, 6); got != 63 {
		t.Errorf("Uint(0, 6) = %d, want 63", got)
	}
	if got := bv.Uint(6, 6); got != 7 {
		t.Errorf("Uint(6, 6) = %d, want 7", got)
	}
	if got := bv.Uint(0, 12); got != 63<<6|7 {
		t.Errorf("Uint(0, 12) = %d, want %d", got, 63<<6|7)
	}
	// Bits spanning the byte boundary.
	if got := bv.Uint(3, 6); got != 0x38 {
		t.Errorf("Uint(3, 6) = %d, want 56", got)
	}
	// Reads past the end yield zero bits.
	if got := bv.Uint(6, 12); got != 7<<6 {
		t.Errorf("Uint(6, 12) = %d, want %d", got, 7<<6)
	}
	if got := bv.Uint(100, 6); got != 0 {
		t.Errorf("Uint(100, 6) = %d, want 0", got)
	}
}

var testBitVectorInt = []struct {
	payload string
	want    int64
}{
	{"w", -1},
	{"P", -32},
	{"O", 31},
	{"0", 0},
	{"1", 1},
}

func TestBitVectorInt(t *testing.T) {
	for _, test := range testBitVectorInt {
		bv := DecodeArmor(test.payload)
		if got := bv.Int(0, 6); got != test.want {
			t.Errorf("Int of %q = %d, want %d", test.payload, got, test.want)
		}
	}
}

func TestBitVectorText(t *testing.T) {
	// Values 8, 5, 13, 10 map to the AIS letters H, E, M, J.
	if got := DecodeArmor("85=:").Text(0, 4); got != "HEMJ" {
		t.Errorf("Text = %q, want HEMJ", got)
	}
	// A zero character terminates the string.
	if got := DecodeArmor("E0E").Text(0, 3); got != "U" {
		t.Errorf("Text with @ terminator = %q, want U", got)
	}
	// Trailing spaces are trimmed.
	if got := DecodeArmor("1PP").Text(0, 3); got != "A" {
		t.Errorf("Text with trailing spaces = %q, want A", got)
	}
}

func TestBitVectorSlice(t *testing.T) {
	bv := DecodeArmor("w7")
	s := bv.Slice(6, 12)
	if s.Len() != 6 {
		t.Errorf("Slice(6, 12).Len() = %d, want 6", s.Len())
	}
	if got := s.Uint(0, 6); got != 7 {
		t.Errorf("Slice(6, 12).Uint(0, 6) = %d, want 7", got)
	}
	// Out-of-range bounds are clamped.
	if got := bv.Slice(-3, 100).Len(); got != 12 {
		t.Errorf("Slice(-3, 100).Len() = %d, want 12", got)
	}
	if got := bv.Slice(10, 4).Len(); got != 0 {
		t.Errorf("Slice(10, 4).Len() = %d, want 0", got)
	}
}
