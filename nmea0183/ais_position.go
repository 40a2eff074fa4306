package nmea0183

import "go.uber.org/zap"

// Position payloads encode unavailable values as sentinels instead of a
// presence bit. These constants are the raw "not available" values.
const (
	latitudeSentinel  = 0x3412140
	longitudeSentinel = 0x6791AC0
	cogSentinel       = 0xE10
	headingSentinel   = 511
	sogSentinel       = 1023
)

func pickLatitude(bv *BitVector, start, length int) *float64 {
	raw := bv.Int(start, length)
	if raw == latitudeSentinel {
		return nil
	}
	v := float64(raw) / 600000.0
	return &v
}

func pickLongitude(bv *BitVector, start, length int) *float64 {
	raw := bv.Int(start, length)
	if raw == longitudeSentinel {
		return nil
	}
	v := float64(raw) / 600000.0
	return &v
}

func pickSogKnots(bv *BitVector, start int) *float64 {
	raw := bv.Uint(start, 10)
	if raw >= sogSentinel {
		return nil
	}
	v := float64(raw) * 0.1
	return &v
}

func pickCog(bv *BitVector, start int) *float64 {
	raw := bv.Uint(start, 12)
	if raw == cogSentinel {
		return nil
	}
	v := float64(raw) * 0.1
	return &v
}

func pickHeading(bv *BitVector, start int) *float64 {
	raw := bv.Uint(start, 9)
	if raw == headingSentinel {
		return nil
	}
	v := float64(raw)
	return &v
}

// positioningSystemMeta decodes the state hidden in the UTC second
// field of position reports.
func positioningSystemMeta(seconds uint64) *PositioningSystemMeta {
	var m PositioningSystemMeta
	switch seconds {
	case 60:
		return nil
	case 61:
		m = PositioningManualInputMode
	case 62:
		m = PositioningDeadReckoningMode
	case 63:
		m = PositioningInoperative
	default:
		m = PositioningOperative
	}
	return &m
}

func boolPtr(v bool) *bool     { return &v }
func u8Ptr(v uint8) *uint8     { return &v }
func u16Ptr(v uint16) *uint16  { return &v }
func u32Ptr(v uint32) *uint32  { return &v }
func f64Ptr(v float64) *float64 { return &v }

// decodeT1T2T3 decodes message types 1, 2 and 3, the Class A position
// reports.
func (p *Parser) decodeT1T2T3(bv *BitVector, st Station, own bool) (Message, error) {
	d := &VesselDynamicData{
		OwnVessel:            own,
		Station:              st,
		AisType:              ClassA,
		Mmsi:                 uint32(bv.Uint(8, 30)),
		NavStatus:            navigationStatus(bv.Uint(38, 4)),
		SogKnots:             pickSogKnots(bv, 50),
		HighPositionAccuracy: bv.Uint(60, 1) != 0,
		Latitude:             pickLatitude(bv, 89, 27),
		Longitude:            pickLongitude(bv, 61, 28),
		Cog:                  pickCog(bv, 116),
		HeadingTrue:          pickHeading(bv, 128),
		TimestampSeconds:     uint8(bv.Uint(137, 6)),
		RaimFlag:             bv.Uint(148, 1) != 0,
		RadioStatus:          u32Ptr(uint32(bv.Uint(149, 19))),
	}
	d.PositioningSystemMeta = positioningSystemMeta(bv.Uint(137, 6))

	// The 8-bit rate of turn field holds 4.733 * sqrt(rot) in degrees
	// per minute, -128 meaning not available and ±127 meaning turning
	// faster than the sensor range.
	rotRaw := bv.Int(42, 8)
	switch {
	case rotRaw >= -126 && rotRaw < 0:
		v := float64(-rotRaw) * 708.0 / 126.0 / 4.733
		d.Rot = f64Ptr(-(v * v))
	case rotRaw >= 0 && rotRaw <= 126:
		v := float64(rotRaw) * 708.0 / 126.0 / 4.733
		d.Rot = f64Ptr(v * v)
	}
	switch {
	case rotRaw == -128:
	case rotRaw <= -2:
		dir := RotPort
		d.RotDirection = &dir
	case rotRaw < 2:
		dir := RotCenter
		d.RotDirection = &dir
	case rotRaw < 128:
		dir := RotStarboard
		d.RotDirection = &dir
	}

	switch raw := bv.Uint(143, 2); raw {
	case 0:
	case 1, 2:
		d.SpecialManoeuvre = boolPtr(true)
	default:
		p.log.Warn("unrecognized manoeuvre indicator value", zap.Uint64("value", raw))
	}
	return d, nil
}

// decodeT18 decodes message type 18, the standard Class B position
// report.
func (p *Parser) decodeT18(bv *BitVector, st Station, own bool) (Message, error) {
	return &VesselDynamicData{
		OwnVessel:            own,
		Station:              st,
		AisType:              ClassB,
		Mmsi:                 uint32(bv.Uint(8, 30)),
		NavStatus:            NavNotDefined,
		SogKnots:             pickSogKnots(bv, 46),
		HighPositionAccuracy: bv.Uint(56, 1) != 0,
		Longitude:            pickLongitude(bv, 57, 28),
		Latitude:             pickLatitude(bv, 85, 27),
		Cog:                  pickCog(bv, 112),
		HeadingTrue:          pickHeading(bv, 124),
		TimestampSeconds:     uint8(bv.Uint(133, 6)),
		ClassBDisplay:        boolPtr(bv.Uint(141, 1) != 0),
		ClassBDsc:            boolPtr(bv.Uint(142, 1) != 0),
		ClassBBandFlag:       boolPtr(bv.Uint(143, 1) != 0),
		ClassBMsg22Flag:      boolPtr(bv.Uint(144, 1) != 0),
		ClassBModeFlag:       boolPtr(bv.Uint(145, 1) != 0),
		RaimFlag:             bv.Uint(141, 1) != 0,
		RadioStatus:          u32Ptr(uint32(bv.Uint(149, 19))),
	}, nil
}

// decodeT19 decodes message type 19, the extended Class B position
// report which also carries a static data tail.
func (p *Parser) decodeT19(bv *BitVector, st Station, own bool) (Message, error) {
	d := &ExtendedClassBPositionReport{
		OwnVessel:            own,
		Station:              st,
		Mmsi:                 uint32(bv.Uint(8, 30)),
		SogKnots:             pickSogKnots(bv, 46),
		HighPositionAccuracy: bv.Uint(56, 1) != 0,
		Longitude:            pickLongitude(bv, 57, 28),
		Latitude:             pickLatitude(bv, 85, 27),
		Cog:                  pickCog(bv, 112),
		HeadingTrue:          pickHeading(bv, 124),
		TimestampSeconds:     uint8(bv.Uint(133, 6)),
		Regional:             uint8(bv.Uint(139, 4)),
		Name:                 bv.Text(143, 20),
		ShipType:             shipType(bv.Uint(263, 8)),
		CargoType:            cargoType(bv.Uint(263, 8)),
		DimensionToBow:       u16Ptr(uint16(bv.Uint(271, 9))),
		DimensionToStern:     u16Ptr(uint16(bv.Uint(280, 9))),
		DimensionToPort:      u16Ptr(uint16(bv.Uint(289, 6))),
		DimensionToStarboard: u16Ptr(uint16(bv.Uint(295, 6))),
		RaimFlag:             bv.Uint(305, 1) != 0,
		Dte:                  bv.Uint(306, 1) == 0,
		AssignedModeFlag:     bv.Uint(307, 1) != 0,
	}
	if raw := bv.Uint(301, 4); raw != 0 {
		fix := positionFixType(raw)
		d.PositionFixType = &fix
	}
	return d, nil
}

// decodeT27 decodes message type 27, the long range broadcast position
// report with reduced resolution.
func (p *Parser) decodeT27(bv *BitVector, st Station, own bool) (Message, error) {
	d := &VesselDynamicData{
		OwnVessel:            own,
		Station:              st,
		AisType:              ClassA,
		Mmsi:                 uint32(bv.Uint(8, 30)),
		NavStatus:            navigationStatus(bv.Uint(40, 4)),
		HighPositionAccuracy: bv.Uint(38, 1) != 0,
		RaimFlag:             bv.Uint(39, 1) != 0,
		CurrentGnssPosition:  boolPtr(bv.Uint(62, 1) == 0),
	}
	if raw := bv.Uint(62, 6); raw != 63 {
		d.SogKnots = f64Ptr(float64(raw))
	}
	if raw := bv.Int(44, 18); raw != 181000 {
		d.Latitude = f64Ptr(float64(raw) / 600.0)
	}
	if raw := bv.Int(62, 17); raw != 181000 {
		d.Longitude = f64Ptr(float64(raw) / 600.0)
	}
	if raw := bv.Uint(62, 17); raw != 91000 {
		d.Cog = f64Ptr(float64(raw) * 0.1)
	}
	return d, nil
}
