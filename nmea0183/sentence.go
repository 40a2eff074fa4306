package nmea0183

import (
	"fmt"
	"strings"
)

// NavigationSystem identifies the constellation a '$' sentence was
// derived from, taken from the talker prefix.
type NavigationSystem uint8

const (
	SystemCombination NavigationSystem = iota
	SystemGps
	SystemGlonass
	SystemGalileo
	SystemBeidou
	SystemNavic
	SystemQzss
	SystemProprietary
	SystemOther
)

func (ns NavigationSystem) String() string {
	switch ns {
	case SystemCombination:
		return "combination"
	case SystemGps:
		return "GPS"
	case SystemGlonass:
		return "GLONASS"
	case SystemGalileo:
		return "Galileo"
	case SystemBeidou:
		return "BeiDou"
	case SystemNavic:
		return "NavIC"
	case SystemQzss:
		return "QZSS"
	case SystemProprietary:
		return "proprietary"
	default:
		return "other"
	}
}

// Station identifies the kind of AIS station that produced a '!' sentence.
type Station uint8

const (
	StationBase Station = iota
	StationDependent
	StationMobile
	StationAidToNavigation
	StationReceiving
	StationLimited
	StationTransmitting
	StationRepeater
	StationOther
)

func (s Station) String() string {
	switch s {
	case StationBase:
		return "base station"
	case StationDependent:
		return "dependent base station"
	case StationMobile:
		return "mobile station"
	case StationAidToNavigation:
		return "aid to navigation station"
	case StationReceiving:
		return "receiving station"
	case StationLimited:
		return "limited base station"
	case StationTransmitting:
		return "transmitting station"
	case StationRepeater:
		return "repeater station"
	default:
		return "other station"
	}
}

// sentence is a framed and checksum-verified NMEA 0183 sentence with the
// talker prefix classified and the type token normalized to marker plus
// the three-letter suffix, e.g. "$GGA" or "!VDM". fields keeps the
// talker and type token at index 0 so that field numbers match the
// one-based numbering of the standard.
type sentence struct {
	typ    string
	system NavigationSystem // valid when typ starts with '$'
	source Station          // valid when typ starts with '!'
	fields []string
}

func xorChecksum(s string) uint8 {
	var sum uint8
	for i := 0; i < len(s); i++ {
		sum ^= s[i]
	}
	return sum
}

// frameSentence validates the marker and checksum of line and splits it
// into comma-separated fields. A sentence without a '*' suffix is
// accepted without verification.
func frameSentence(line string) (sentence, error) {
	line = strings.TrimRight(line, "\r\n")
	if len(line) < 2 || (line[0] != '$' && line[0] != '!') {
		return sentence{}, &CorruptedSentenceError{Detail: "missing $ or ! prefix"}
	}
	body := line[1:]
	if star := strings.LastIndexByte(body, '*'); star >= 0 {
		sum := body[star+1:]
		body = body[:star]
		// A truncated checksum is treated like a missing one. Anything
		// that is not the two uppercase hex digits of the body checksum,
		// lowercase included, is a mismatch.
		if len(sum) >= 2 {
			want := fmt.Sprintf("%02X", xorChecksum(body))
			if sum[:2] != want {
				return sentence{}, &CorruptedSentenceError{
					Detail: fmt.Sprintf("checksum mismatch, expected %s got %s", want, sum[:2]),
				}
			}
		}
	}

	fields := strings.Split(body, ",")
	token := fields[0]
	if len(token) < 3 {
		return sentence{}, &InvalidSentenceError{Detail: "sentence type token too short"}
	}

	s := sentence{
		typ:    string(line[0]) + token[len(token)-3:],
		fields: fields,
	}
	if line[0] == '$' {
		s.system = classifySystem(token)
	} else {
		s.source = classifyStation(token)
	}
	return s, nil
}

func classifySystem(token string) NavigationSystem {
	if strings.HasPrefix(token, "P") {
		return SystemProprietary
	}
	if len(token) < 2 {
		return SystemOther
	}
	switch token[:2] {
	case "GN":
		return SystemCombination
	case "GP":
		return SystemGps
	case "GL":
		return SystemGlonass
	case "GA":
		return SystemGalileo
	case "BD":
		return SystemBeidou
	case "GI":
		return SystemNavic
	case "QZ":
		return SystemQzss
	default:
		return SystemOther
	}
}

func classifyStation(token string) Station {
	if len(token) < 2 {
		return StationOther
	}
	switch token[:2] {
	case "AB":
		return StationBase
	case "AD":
		return StationDependent
	case "AI":
		return StationMobile
	case "AN":
		return StationAidToNavigation
	case "AR":
		return StationReceiving
	case "AS":
		return StationLimited
	case "AT":
		return StationTransmitting
	case "AX":
		return StationRepeater
	default:
		return StationOther
	}
}
