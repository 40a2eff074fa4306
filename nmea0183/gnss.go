package nmea0183

import (
	"fmt"
	"strings"
)

// decodeGGA decodes a GGA fix sentence.
func decodeGGA(s sentence) (Message, error) {
	r := &GgaData{Source: s.system}
	if ts, err := parseHHMMSS(field(s.fields, 1), referenceNow); err == nil {
		r.Timestamp = &ts
	}
	var err error
	if r.Latitude, err = pickCoordinate(s.fields, 2, 3, "latitude"); err != nil {
		return nil, err
	}
	if r.Longitude, err = pickCoordinate(s.fields, 4, 5, "longitude"); err != nil {
		return nil, err
	}
	quality, err := pickUint(s.fields, 6, "quality indicator")
	if err != nil {
		return nil, err
	}
	if quality != nil {
		r.Quality = ggaQuality(*quality)
	}
	if r.SatelliteCount, err = pickUint8(s.fields, 7, "satellite count"); err != nil {
		return nil, err
	}
	if r.Hdop, err = pickFloat(s.fields, 8, "HDOP"); err != nil {
		return nil, err
	}
	if r.Altitude, err = pickFloat(s.fields, 9, "altitude"); err != nil {
		return nil, err
	}
	if r.GeoidSeparation, err = pickFloat(s.fields, 11, "geoid separation"); err != nil {
		return nil, err
	}
	if r.AgeOfDgps, err = pickFloat(s.fields, 13, "age of DGPS"); err != nil {
		return nil, err
	}
	if r.RefStationID, err = pickUint16(s.fields, 14, "reference station id"); err != nil {
		return nil, err
	}
	return r, nil
}

// decodeRMC decodes an RMC recommended minimum sentence.
func decodeRMC(s sentence) (Message, error) {
	r := &RmcData{Source: s.system}
	if ts, err := parseYYMMDDHHMMSS(field(s.fields, 9), field(s.fields, 1)); err == nil {
		r.Timestamp = &ts
	}
	switch status := field(s.fields, 2); status {
	case "A":
		r.StatusActive = boolPtr(true)
	case "V":
		r.StatusActive = boolPtr(false)
	case "":
	default:
		return nil, &InvalidSentenceError{
			Detail: "invalid RMC navigation receiver status: " + status,
		}
	}
	var err error
	if r.Latitude, err = pickCoordinate(s.fields, 3, 4, "latitude"); err != nil {
		return nil, err
	}
	if r.Longitude, err = pickCoordinate(s.fields, 5, 6, "longitude"); err != nil {
		return nil, err
	}
	if r.SpeedKnots, err = pickFloat(s.fields, 7, "speed"); err != nil {
		return nil, err
	}
	if r.Bearing, err = pickFloat(s.fields, 8, "bearing"); err != nil {
		return nil, err
	}
	variation, err := pickFloat(s.fields, 10, "variation")
	if err != nil {
		return nil, err
	}
	if variation != nil {
		switch side := field(s.fields, 11); side {
		case "E":
			r.Variation = variation
		case "W":
			r.Variation = f64Ptr(-*variation)
		default:
			return nil, &InvalidSentenceError{Detail: "invalid RMC variation side: " + side}
		}
	}
	return r, nil
}

// decodeGNS decodes a GNS fix sentence. The mode field carries one
// character per navigation system, GPS and GLONASS first.
func decodeGNS(s sentence) (Message, error) {
	r := &GnsData{Source: s.system}
	if ts, err := parseHHMMSS(field(s.fields, 1), referenceNow); err == nil {
		r.Timestamp = &ts
	}
	var err error
	if r.Latitude, err = pickCoordinate(s.fields, 2, 3, "latitude"); err != nil {
		return nil, err
	}
	if r.Longitude, err = pickCoordinate(s.fields, 4, 5, "longitude"); err != nil {
		return nil, err
	}
	modes := field(s.fields, 6)
	if len(modes) > 0 {
		r.GpsMode = gnsMode(modes[0])
	}
	if len(modes) > 1 {
		r.GlonassMode = gnsMode(modes[1])
	}
	for i := 2; i < len(modes); i++ {
		r.OtherModes = append(r.OtherModes, gnsMode(modes[i]))
	}
	if r.SatelliteCount, err = pickUint8(s.fields, 7, "satellite count"); err != nil {
		return nil, err
	}
	if r.Hdop, err = pickFloat(s.fields, 8, "HDOP"); err != nil {
		return nil, err
	}
	if r.Altitude, err = pickFloat(s.fields, 9, "altitude"); err != nil {
		return nil, err
	}
	if r.GeoidSeparation, err = pickFloat(s.fields, 10, "geoid separation"); err != nil {
		return nil, err
	}
	if r.AgeOfDgps, err = pickFloat(s.fields, 11, "age of DGPS"); err != nil {
		return nil, err
	}
	if r.RefStationID, err = pickUint16(s.fields, 12, "reference station id"); err != nil {
		return nil, err
	}
	return r, nil
}

// decodeGSA decodes a GSA DOP and active satellites sentence.
func decodeGSA(s sentence) (Message, error) {
	r := &GsaData{Source: s.system}
	switch mode := field(s.fields, 1); mode {
	case "A":
		r.Mode1Automatic = boolPtr(true)
	case "M":
		r.Mode1Automatic = boolPtr(false)
	case "":
	default:
		return nil, &InvalidSentenceError{Detail: "invalid GSA mode: " + mode}
	}
	switch fix := field(s.fields, 2); fix {
	case "1":
		m := GsaFixNotAvailable
		r.Mode2Fix = &m
	case "2":
		m := GsaFix2D
		r.Mode2Fix = &m
	case "3":
		m := GsaFix3D
		r.Mode2Fix = &m
	case "":
	default:
		return nil, &InvalidSentenceError{Detail: "invalid GSA fix type: " + fix}
	}
	for i := 3; i < 15; i++ {
		prn, err := pickUint8(s.fields, i, "PRN number")
		if err != nil {
			return nil, err
		}
		if prn != nil {
			r.PrnNumbers = append(r.PrnNumbers, *prn)
		}
	}
	var err error
	if r.Pdop, err = pickFloat(s.fields, 15, "PDOP"); err != nil {
		return nil, err
	}
	if r.Hdop, err = pickFloat(s.fields, 16, "HDOP"); err != nil {
		return nil, err
	}
	if r.Vdop, err = pickFloat(s.fields, 17, "VDOP"); err != nil {
		return nil, err
	}
	return r, nil
}

func gsvKey(token string, count, num uint32) string {
	return fmt.Sprintf("%s,%d,%d", token, count, num)
}

// decodeGSV decodes a GSV satellites in view sentence. Sentences are
// buffered until the whole group has been seen, then the combined
// listing is returned.
func (p *Parser) decodeGSV(s sentence) (Message, error) {
	count, err := pickUint(s.fields, 1, "GSV sentence count")
	if err != nil {
		return nil, err
	}
	num, err := pickUint(s.fields, 2, "GSV sentence number")
	if err != nil {
		return nil, err
	}
	var msgCount, msgNum uint32
	if count != nil {
		msgCount = *count
	}
	if num != nil {
		msgNum = *num
	}
	token := field(s.fields, 0)
	p.fragments[gsvKey(token, msgCount, msgNum)] = strings.Join(s.fields, ",")

	for i := uint32(1); i <= msgCount; i++ {
		if _, ok := p.fragments[gsvKey(token, msgCount, i)]; !ok {
			return Incomplete{}, nil
		}
	}

	var report GsvReport
	for i := uint32(1); i <= msgCount; i++ {
		key := gsvKey(token, msgCount, i)
		fields := strings.Split(p.fragments[key], ",")
		delete(p.fragments, key)
		for j := 0; j < 4; j++ {
			prn, err := pickUint8(fields, 4+4*j, "PRN number")
			if prn == nil || err != nil {
				continue
			}
			sat := GsvData{Source: s.system, PrnNumber: *prn}
			sat.Elevation, _ = pickUint8(fields, 4+4*j+1, "elevation")
			sat.Azimuth, _ = pickUint16(fields, 4+4*j+2, "azimuth")
			sat.Snr, _ = pickUint8(fields, 4+4*j+3, "SNR")
			report = append(report, sat)
		}
	}
	return report, nil
}

// decodeVTG decodes a VTG track and ground speed sentence. Malformed
// numeric fields are treated as absent.
func decodeVTG(s sentence) (Message, error) {
	r := &VtgData{Source: s.system}
	r.CogTrue, _ = pickFloat(s.fields, 1, "true course")
	r.CogMagnetic, _ = pickFloat(s.fields, 3, "magnetic course")
	r.SogKnots, _ = pickFloat(s.fields, 5, "speed")
	r.SogKph, _ = pickFloat(s.fields, 7, "speed")
	if mode, err := faaMode(field(s.fields, 9)); err == nil {
		r.FaaMode = &mode
	}
	return r, nil
}

// decodeGLL decodes a GLL geographic position sentence.
func decodeGLL(s sentence) (Message, error) {
	r := &GllData{Source: s.system}
	var err error
	if r.Latitude, err = pickCoordinate(s.fields, 1, 2, "latitude"); err != nil {
		return nil, err
	}
	if r.Longitude, err = pickCoordinate(s.fields, 3, 4, "longitude"); err != nil {
		return nil, err
	}
	if ts, err := parseHHMMSS(field(s.fields, 5), referenceNow); err == nil {
		r.Timestamp = &ts
	}
	switch field(s.fields, 6) {
	case "A":
		r.DataValid = boolPtr(true)
	case "V":
		r.DataValid = boolPtr(false)
	}
	if mode, err := faaMode(field(s.fields, 7)); err == nil {
		r.FaaMode = &mode
	}
	return r, nil
}

// decodeALM decodes an ALM almanac sentence. All payload fields are
// hexadecimal.
func decodeALM(s sentence) (Message, error) {
	r := &AlmData{Source: s.system}
	pickHex8 := func(idx int, what string) (*uint8, error) {
		v, err := pickHexUint(s.fields, idx, what)
		if v == nil || err != nil {
			return nil, err
		}
		return u8Ptr(uint8(*v)), nil
	}
	pickHex16 := func(idx int, what string) (*uint16, error) {
		v, err := pickHexUint(s.fields, idx, what)
		if v == nil || err != nil {
			return nil, err
		}
		return u16Ptr(uint16(*v)), nil
	}
	var err error
	if r.Prn, err = pickHex8(3, "PRN number"); err != nil {
		return nil, err
	}
	week, err := pickHex16(4, "week number")
	if err != nil {
		return nil, err
	}
	if week != nil {
		r.WeekNumber = u16Ptr(*week & 0x3ff)
	}
	if r.HealthBits, err = pickHex8(5, "health bits"); err != nil {
		return nil, err
	}
	if r.Eccentricity, err = pickHex16(6, "eccentricity"); err != nil {
		return nil, err
	}
	if r.ReferenceTime, err = pickHex8(7, "reference time"); err != nil {
		return nil, err
	}
	if r.Sigma, err = pickHex16(8, "inclination angle"); err != nil {
		return nil, err
	}
	if r.OmegaDot, err = pickHex16(9, "rate of right ascension"); err != nil {
		return nil, err
	}
	if r.RootA, err = pickHexUint(s.fields, 10, "semi-major axis root"); err != nil {
		return nil, err
	}
	if r.Omega, err = pickHexUint(s.fields, 11, "argument of perigee"); err != nil {
		return nil, err
	}
	if r.OmegaO, err = pickHexUint(s.fields, 12, "ascending node longitude"); err != nil {
		return nil, err
	}
	if r.Mo, err = pickHexUint(s.fields, 13, "mean anomaly"); err != nil {
		return nil, err
	}
	if r.Af0, err = pickHex16(14, "clock parameter 0"); err != nil {
		return nil, err
	}
	if r.Af1, err = pickHex16(15, "clock parameter 1"); err != nil {
		return nil, err
	}
	return r, nil
}

// decodeDTM decodes a DTM datum reference sentence. The position offsets
// are given in minutes.
func decodeDTM(s sentence) (Message, error) {
	r := &DtmData{
		Source:     s.system,
		DatumID:    field(s.fields, 1),
		DatumSubID: field(s.fields, 2),
		RefDatumID: field(s.fields, 8),
	}
	var err error
	if r.LatOffset, err = pickMinuteOffset(s.fields, 3, 4, "N", "S", "latitude offset"); err != nil {
		return nil, err
	}
	if r.LonOffset, err = pickMinuteOffset(s.fields, 5, 6, "E", "W", "longitude offset"); err != nil {
		return nil, err
	}
	if r.AltOffset, err = pickFloat(s.fields, 7, "altitude offset"); err != nil {
		return nil, err
	}
	return r, nil
}

// decodeMSS decodes an MSS beacon receiver signal sentence.
func decodeMSS(s sentence) (Message, error) {
	r := &MssData{Source: s.system}
	var err error
	if r.SignalStrength, err = pickUint8(s.fields, 1, "signal strength"); err != nil {
		return nil, err
	}
	if r.Snr, err = pickUint8(s.fields, 2, "SNR"); err != nil {
		return nil, err
	}
	if r.Frequency, err = pickFloat(s.fields, 3, "frequency"); err != nil {
		return nil, err
	}
	if r.BitRate, err = pickUint(s.fields, 4, "bit rate"); err != nil {
		return nil, err
	}
	if r.Channel, err = pickUint(s.fields, 5, "channel"); err != nil {
		return nil, err
	}
	return r, nil
}

// decodeSTN decodes an STN multiple data ID sentence.
func decodeSTN(s sentence) (Message, error) {
	talker, err := pickUint8(s.fields, 1, "talker id")
	if err != nil {
		return nil, err
	}
	return &StnData{Source: s.system, TalkerID: talker}, nil
}

// decodeVBW decodes a VBW dual ground and water speed sentence.
func decodeVBW(s sentence) (Message, error) {
	r := &VbwData{Source: s.system}
	var err error
	if r.LonWaterSpeedKnots, err = pickFloat(s.fields, 1, "water speed"); err != nil {
		return nil, err
	}
	if r.TrWaterSpeedKnots, err = pickFloat(s.fields, 2, "water speed"); err != nil {
		return nil, err
	}
	r.WaterSpeedValid = validityFlag(field(s.fields, 3))
	if r.LonGroundSpeedKnots, err = pickFloat(s.fields, 4, "ground speed"); err != nil {
		return nil, err
	}
	if r.TrGroundSpeedKnots, err = pickFloat(s.fields, 5, "ground speed"); err != nil {
		return nil, err
	}
	r.GroundSpeedValid = validityFlag(field(s.fields, 6))
	return r, nil
}

// validityFlag maps an A/V style status field. Anything besides A is
// treated as invalid, and an empty field as unknown.
func validityFlag(raw string) *bool {
	switch raw {
	case "A":
		return boolPtr(true)
	case "":
		return nil
	default:
		return boolPtr(false)
	}
}

// decodeZDA decodes a ZDA time and date sentence.
func decodeZDA(s sentence) (Message, error) {
	r := &ZdaData{Source: s.system}
	date, err := pickDate(s.fields, 4, 3, 2)
	if err != nil {
		return nil, err
	}
	if ts, err := parseHHMMSSFrac(field(s.fields, 1), date); err == nil {
		r.TimestampUTC = &ts
	}
	if offset, err := pickTimezoneSeconds(s.fields, 5, 6); err == nil {
		r.TimezoneOffsetSeconds = &offset
	}
	return r, nil
}

// decodeDPT decodes a DPT depth of water sentence.
func decodeDPT(s sentence) (Message, error) {
	r := &DptData{}
	var err error
	if r.DepthRelativeToTransducer, err = pickFloat(s.fields, 1, "depth"); err != nil {
		return nil, err
	}
	if r.TransducerOffset, err = pickFloat(s.fields, 2, "transducer offset"); err != nil {
		return nil, err
	}
	return r, nil
}

// decodeDBS decodes a DBS depth below surface sentence.
func decodeDBS(s sentence) (Message, error) {
	r := &DbsData{}
	var err error
	if r.DepthFeet, err = pickFloat(s.fields, 1, "depth"); err != nil {
		return nil, err
	}
	if r.DepthMeters, err = pickFloat(s.fields, 3, "depth"); err != nil {
		return nil, err
	}
	if r.DepthFathoms, err = pickFloat(s.fields, 5, "depth"); err != nil {
		return nil, err
	}
	return r, nil
}

// decodeMTW decodes an MTW water temperature sentence.
func decodeMTW(s sentence) (Message, error) {
	temp, err := pickFloat(s.fields, 1, "temperature")
	if err != nil {
		return nil, err
	}
	return &MtwData{Temperature: temp}, nil
}

// decodeVHW decodes a VHW water speed and heading sentence.
func decodeVHW(s sentence) (Message, error) {
	r := &VhwData{}
	var err error
	if r.HeadingTrue, err = pickFloat(s.fields, 1, "heading"); err != nil {
		return nil, err
	}
	if r.HeadingMagnetic, err = pickFloat(s.fields, 3, "heading"); err != nil {
		return nil, err
	}
	if r.SpeedThroughWaterKnots, err = pickFloat(s.fields, 5, "water speed"); err != nil {
		return nil, err
	}
	if r.SpeedThroughWaterKmh, err = pickFloat(s.fields, 7, "water speed"); err != nil {
		return nil, err
	}
	return r, nil
}

// decodeHDT decodes an HDT true heading sentence.
func decodeHDT(s sentence) (Message, error) {
	heading, err := pickFloat(s.fields, 1, "heading")
	if err != nil {
		return nil, err
	}
	return &HdtData{HeadingTrue: heading}, nil
}

// decodeMWV decodes an MWV wind speed and angle sentence. The speed is
// converted to both knots and km/h regardless of the unit sent.
func decodeMWV(s sentence) (Message, error) {
	r := &MwvData{}
	var err error
	if r.WindAngle, err = pickFloat(s.fields, 1, "wind angle"); err != nil {
		return nil, err
	}
	switch field(s.fields, 2) {
	case "R":
		r.Relative = boolPtr(true)
	case "T":
		r.Relative = boolPtr(false)
	}
	speed, err := pickFloat(s.fields, 3, "wind speed")
	if err != nil {
		return nil, err
	}
	if speed != nil {
		switch field(s.fields, 4) {
		case "N":
			r.WindSpeedKnots = speed
			r.WindSpeedKmh = f64Ptr(*speed * 1.852)
		case "M":
			r.WindSpeedKnots = f64Ptr(*speed * 1.943844)
			r.WindSpeedKmh = f64Ptr(*speed * 3.6)
		case "K":
			r.WindSpeedKnots = f64Ptr(*speed * 0.539957)
			r.WindSpeedKmh = speed
		}
	}
	return r, nil
}
