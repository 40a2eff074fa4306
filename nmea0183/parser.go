// Package nmea0183 parses NMEA 0183 sentences, including multi-fragment
// AIS VDM/VDO messages, into typed records.
package nmea0183

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"
)

// Parser decodes NMEA 0183 sentences one line at a time. Multi-sentence
// messages (two-fragment AIS payloads, GSV groups and type 24 static
// data) are buffered inside the parser, so a single Parser should see
// the whole stream of one receiver.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	// Stored payload fragments and GSV group members.
	fragments map[string]string

	// Type 24 part A reports waiting for their part B, and vice versa,
	// keyed by MMSI.
	partials map[uint32]*VesselStaticData

	log *zap.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger makes the parser report recoverable decoding oddities to
// log instead of dropping them silently.
func WithLogger(log *zap.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// NewParser returns an empty parser ready to receive sentences.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		fragments: make(map[string]string),
		partials:  make(map[uint32]*VesselStaticData),
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Reset drops all buffered multi-sentence state.
func (p *Parser) Reset() {
	p.fragments = make(map[string]string)
	p.partials = make(map[uint32]*VesselStaticData)
}

// ParseSentence decodes a single NMEA 0183 sentence. When the sentence
// is one part of a multi-sentence message and the rest has not been
// seen yet, Incomplete is returned and the decoded message follows once
// the final part arrives.
func (p *Parser) ParseSentence(line string) (Message, error) {
	s, err := frameSentence(line)
	if err != nil {
		return nil, err
	}

	switch s.typ {
	case "$GGA":
		return decodeGGA(s)
	case "$RMC":
		return decodeRMC(s)
	case "$GNS":
		return decodeGNS(s)
	case "$GSA":
		return decodeGSA(s)
	case "$GSV":
		return p.decodeGSV(s)
	case "$VTG":
		return decodeVTG(s)
	case "$GLL":
		return decodeGLL(s)
	case "$ALM":
		return decodeALM(s)
	case "$DTM":
		return decodeDTM(s)
	case "$MSS":
		return decodeMSS(s)
	case "$STN":
		return decodeSTN(s)
	case "$VBW":
		return decodeVBW(s)
	case "$ZDA":
		return decodeZDA(s)
	case "$DPT":
		return decodeDPT(s)
	case "$DBS":
		return decodeDBS(s)
	case "$MTW":
		return decodeMTW(s)
	case "$VHW":
		return decodeVHW(s)
	case "$HDT":
		return decodeHDT(s)
	case "$MWV":
		return decodeMWV(s)
	case "!VDM", "!VDO":
		return p.decodeVDM(s, s.typ == "!VDO")
	default:
		return nil, &UnsupportedSentenceTypeError{
			Detail: "unsupported sentence type: " + s.typ,
		}
	}
}

func fragmentKey(sentenceType string, messageID uint64, count, number uint8, channel string) string {
	return fmt.Sprintf("%s,%d,%d,%d,%s", sentenceType, count, number, messageID, channel)
}

// decodeVDM reassembles and decodes an encapsulated AIS sentence. Only
// messages split over at most two fragments are supported; longer
// groups are dropped with a warning.
func (p *Parser) decodeVDM(s sentence, own bool) (Message, error) {
	countRaw := field(s.fields, 1)
	count, err := strconv.ParseUint(countRaw, 10, 8)
	if err != nil {
		return nil, &InvalidSentenceError{Detail: "failed to parse fragment count: " + countRaw}
	}
	numberRaw := field(s.fields, 2)
	number, err := strconv.ParseUint(numberRaw, 10, 8)
	if err != nil {
		return nil, &InvalidSentenceError{Detail: "failed to parse fragment count: " + numberRaw}
	}
	payload := field(s.fields, 5)

	var bv *BitVector
	switch {
	case count == 1:
		bv = DecodeArmor(payload)
	case count == 2:
		messageID, err := strconv.ParseUint(field(s.fields, 3), 10, 64)
		if err != nil {
			p.log.Warn("fragment message id missing", zap.String("type", s.typ))
			break
		}
		channel := field(s.fields, 4)
		key1 := fragmentKey(s.typ, messageID, uint8(count), 1, channel)
		key2 := fragmentKey(s.typ, messageID, uint8(count), 2, channel)
		switch number {
		case 1:
			if stored, ok := p.fragments[key2]; ok {
				delete(p.fragments, key2)
				bv = DecodeArmor(payload + stored)
			} else {
				p.fragments[key1] = payload
			}
		case 2:
			if stored, ok := p.fragments[key1]; ok {
				delete(p.fragments, key1)
				bv = DecodeArmor(stored + payload)
			} else {
				p.fragments[key2] = payload
			}
		default:
			p.log.Warn("unexpected fragment number",
				zap.Uint64("number", number), zap.Uint64("count", count))
		}
	default:
		p.log.Warn("fragment count greater than supported",
			zap.Uint64("count", count))
	}
	if bv == nil {
		return Incomplete{}, nil
	}

	messageType := bv.Uint(0, 6)
	switch messageType {
	case 1, 2, 3:
		return p.decodeT1T2T3(bv, s.source, own)
	case 4:
		return p.decodeT4(bv, s.source, own)
	case 5:
		return p.decodeT5(bv, s.source, own)
	case 6:
		return p.decodeT6(bv, s.source, own)
	case 9:
		return p.decodeT9(bv, s.source, own)
	case 10:
		return p.decodeT10(bv, s.source, own)
	case 11:
		return p.decodeT11(bv, s.source, own)
	case 12:
		return p.decodeT12(bv, s.source, own)
	case 13:
		return p.decodeT13(bv, s.source, own)
	case 14:
		return p.decodeT14(bv, s.source, own)
	case 15:
		return p.decodeT15(bv, s.source, own)
	case 16:
		return p.decodeT16(bv, s.source, own)
	case 17:
		return p.decodeT17(bv, s.source, own)
	case 18:
		return p.decodeT18(bv, s.source, own)
	case 19:
		return p.decodeT19(bv, s.source, own)
	case 20:
		return p.decodeT20(bv, s.source, own)
	case 21:
		return p.decodeT21(bv, s.source, own)
	case 22:
		return p.decodeT22(bv, s.source, own)
	case 23:
		return p.decodeT23(bv, s.source, own)
	case 24:
		return p.decodeT24(bv, s.source, own)
	case 25:
		return p.decodeT25(bv, s.source, own)
	case 26:
		return p.decodeT26(bv, s.source, own)
	case 27:
		return p.decodeT27(bv, s.source, own)
	default:
		// Types 7 and 8 carry binary application payloads and are not
		// decoded.
		return nil, &UnsupportedSentenceTypeError{
			Detail: fmt.Sprintf("unsupported %s message type: %d", s.typ, messageType),
		}
	}
}
