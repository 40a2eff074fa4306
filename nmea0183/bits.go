package nmea0183

import "strings"

// BitVector is the de-armored payload of an AIS sentence: a read-only bit
// sequence indexed MSB first. Reads past the end yield zero bits because
// encoders in the wild truncate trailing reserved fields, and rejecting
// those messages would throw away otherwise usable data.
type BitVector struct {
	data   []byte
	length int
}

func deArmorByte(b byte) uint8 {
	v := b - 48
	if v > 40 {
		v -= 8
	}
	return v & 0x3f
}

// DecodeArmor undoes the six-bit ASCII armoring of an AIS payload.
// Each character contributes its low six bits, most significant first.
// It never fails; characters outside the armor alphabet produce garbage
// bits that downstream sentinel checks are expected to catch.
func DecodeArmor(payload string) *BitVector {
	bv := &BitVector{
		data:   make([]byte, (len(payload)*6+7)/8),
		length: len(payload) * 6,
	}
	pos := 0
	for i := 0; i < len(payload); i++ {
		v := deArmorByte(payload[i])
		for bit := 5; bit >= 0; bit-- {
			if v&(1<<uint(bit)) != 0 {
				bv.data[pos/8] |= 0x80 >> uint(pos%8)
			}
			pos++
		}
	}
	return bv
}

// Len returns the number of bits in the vector.
func (bv *BitVector) Len() int { return bv.length }

func (bv *BitVector) bit(pos int) uint64 {
	if pos < 0 || pos >= bv.length {
		return 0
	}
	return uint64(bv.data[pos/8]>>uint(7-pos%8)) & 1
}

// Uint reads length bits starting at start as an unsigned integer,
// MSB first. Bits beyond the end of the vector read as zero.
func (bv *BitVector) Uint(start, length int) uint64 {
	res := uint64(0)
	for pos := start; pos < start+length; pos++ {
		res = (res << 1) | bv.bit(pos)
	}
	return res
}

// Int reads length bits starting at start and interprets them as a
// two's-complement signed integer of that width.
func (bv *BitVector) Int(start, length int) int64 {
	raw := bv.Uint(start, length)
	signBit := uint64(1) << uint(length-1)
	if raw&signBit != 0 {
		return int64(raw&(signBit-1)) - int64(signBit)
	}
	return int64(raw)
}

// Text reads charCount six-bit characters starting at start.
// Value 0 terminates the string, 1-31 map to '@'+value (the AIS upper
// range) and 32-63 map directly to ASCII. Trailing spaces are trimmed.
func (bv *BitVector) Text(start, charCount int) string {
	var sb strings.Builder
	sb.Grow(charCount)
	for i := 0; i < charCount; i++ {
		ch := bv.Uint(start+i*6, 6)
		if ch == 0 {
			break
		}
		if ch < 32 {
			sb.WriteByte(byte(64 + ch))
		} else {
			sb.WriteByte(byte(ch))
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

// Slice copies the bits from start (inclusive) to end (exclusive) into a
// new vector. Out-of-range bounds are clamped.
func (bv *BitVector) Slice(start, end int) *BitVector {
	if start < 0 {
		start = 0
	}
	if end > bv.length {
		end = bv.length
	}
	if end < start {
		end = start
	}
	out := &BitVector{
		data:   make([]byte, (end-start+7)/8),
		length: end - start,
	}
	for pos := start; pos < end; pos++ {
		if bv.bit(pos) != 0 {
			out.data[(pos-start)/8] |= 0x80 >> uint((pos-start)%8)
		}
	}
	return out
}
