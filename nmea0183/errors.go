package nmea0183

// The three error kinds returned by Parser.ParseSentence.
// Callers that need to distinguish them can use errors.As:
// a CorruptedSentenceError means the line is damaged beyond use,
// an InvalidSentenceError means the structure or a field value is wrong,
// and an UnsupportedSentenceTypeError means the sentence is fine but
// no decoder is registered for it.

// CorruptedSentenceError is returned when a sentence carries a checksum
// and it doesn't match the sentence body.
type CorruptedSentenceError struct {
	Detail string
}

func (e *CorruptedSentenceError) Error() string {
	return "corrupted NMEA sentence: " + e.Detail
}

// InvalidSentenceError is returned for structurally malformed sentences:
// missing fields, unparseable numbers or dates, too short talker IDs, or
// mismatching type 24 part A/B records.
type InvalidSentenceError struct {
	Detail string
}

func (e *InvalidSentenceError) Error() string {
	return "invalid NMEA sentence: " + e.Detail
}

// UnsupportedSentenceTypeError is returned for syntactically valid
// sentences whose type (or AIS message type number) has no decoder.
type UnsupportedSentenceTypeError struct {
	Detail string
}

func (e *UnsupportedSentenceTypeError) Error() string {
	return "unsupported sentence type: " + e.Detail
}
