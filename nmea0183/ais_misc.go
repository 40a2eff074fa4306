package nmea0183

// decodeT4 decodes message type 4, the base station report.
func (p *Parser) decodeT4(bv *BitVector, st Station, own bool) (Message, error) {
	r, err := p.baseStationReport(bv, st, own)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// decodeT11 decodes message type 11. The layout matches type 4 but the
// message is a response to a UTC date inquiry.
func (p *Parser) decodeT11(bv *BitVector, st Station, own bool) (Message, error) {
	r, err := p.baseStationReport(bv, st, own)
	if err != nil {
		return nil, err
	}
	return &UtcDateResponse{BaseStationReport: *r}, nil
}

func (p *Parser) baseStationReport(bv *BitVector, st Station, own bool) (*BaseStationReport, error) {
	ts, err := validUTC(
		int(bv.Uint(38, 14)),
		int(bv.Uint(52, 4)),
		int(bv.Uint(56, 5)),
		int(bv.Uint(61, 5)),
		int(bv.Uint(66, 6)),
		int(bv.Uint(72, 6)),
		0,
	)
	if err != nil {
		return nil, err
	}
	r := &BaseStationReport{
		OwnVessel:            own,
		Station:              st,
		Mmsi:                 uint32(bv.Uint(8, 30)),
		Timestamp:            &ts,
		HighPositionAccuracy: bv.Uint(78, 1) != 0,
		Latitude:             pickLatitude(bv, 107, 27),
		Longitude:            pickLongitude(bv, 79, 28),
		RaimFlag:             bv.Uint(148, 1) != 0,
		RadioStatus:          uint32(bv.Uint(149, 19)),
	}
	if raw := bv.Uint(134, 4); raw != 0 {
		fix := positionFixType(raw)
		r.PositionFixType = &fix
	}
	return r, nil
}

// decodeT6 decodes message type 6, the binary addressed message. The
// application payload is left undecoded.
func (p *Parser) decodeT6(bv *BitVector, st Station, own bool) (Message, error) {
	return &BinaryAddressedMessage{
		OwnVessel:       own,
		Station:         st,
		Mmsi:            uint32(bv.Uint(8, 30)),
		SequenceNumber:  uint8(bv.Uint(38, 2)),
		DestinationMmsi: uint32(bv.Uint(40, 30)),
		RetransmitFlag:  bv.Uint(70, 1) != 0,
		Dac:             uint16(bv.Uint(72, 10)),
		Fid:             uint8(bv.Uint(82, 6)),
	}, nil
}

// decodeT9 decodes message type 9, the SAR aircraft position report.
func (p *Parser) decodeT9(bv *BitVector, st Station, own bool) (Message, error) {
	r := &StandardSarAircraftPositionReport{
		OwnVessel:            own,
		Station:              st,
		Mmsi:                 uint32(bv.Uint(8, 30)),
		HighPositionAccuracy: bv.Uint(60, 1) != 0,
		Latitude:             pickLatitude(bv, 89, 27),
		Longitude:            pickLongitude(bv, 61, 28),
		Cog:                  pickCog(bv, 116),
		TimestampSeconds:     uint8(bv.Uint(128, 6)),
		Regional:             uint8(bv.Uint(134, 8)),
		Dte:                  bv.Uint(142, 1) == 0,
		Assigned:             bv.Uint(146, 1) != 0,
		RaimFlag:             bv.Uint(147, 1) != 0,
		RadioStatus:          uint32(bv.Uint(148, 20)),
	}
	if raw := uint16(bv.Uint(38, 12)); raw != 4095 {
		r.Altitude = &raw
	}
	if raw := uint16(bv.Uint(50, 10)); raw != 1023 {
		r.SogKnots = &raw
	}
	return r, nil
}

// decodeT10 decodes message type 10, the UTC date inquiry.
func (p *Parser) decodeT10(bv *BitVector, st Station, own bool) (Message, error) {
	return &UtcDateInquiry{
		OwnVessel:       own,
		Station:         st,
		SourceMmsi:      uint32(bv.Uint(8, 30)),
		DestinationMmsi: uint32(bv.Uint(40, 30)),
	}, nil
}

// decodeT12 decodes message type 12, the addressed safety related
// message.
func (p *Parser) decodeT12(bv *BitVector, st Station, own bool) (Message, error) {
	return &AddressedSafetyRelatedMessage{
		OwnVessel:       own,
		Station:         st,
		SourceMmsi:      uint32(bv.Uint(8, 30)),
		SequenceNumber:  uint8(bv.Uint(38, 2)),
		DestinationMmsi: uint32(bv.Uint(40, 30)),
		RetransmitFlag:  bv.Uint(70, 1) != 0,
		Text:            bv.Text(72, 156),
	}, nil
}

// decodeT13 decodes message type 13, the safety related acknowledgement.
func (p *Parser) decodeT13(bv *BitVector, st Station, own bool) (Message, error) {
	return &SafetyRelatedAcknowledgement{
		OwnVessel:  own,
		Station:    st,
		SourceMmsi: uint32(bv.Uint(8, 30)),
		Mmsi1:      uint32(bv.Uint(40, 30)),
		Mmsi1Seq:   uint8(bv.Uint(70, 2)),
		Mmsi2:      uint32(bv.Uint(72, 30)),
		Mmsi2Seq:   uint8(bv.Uint(102, 2)),
		Mmsi3:      uint32(bv.Uint(104, 30)),
		Mmsi3Seq:   uint8(bv.Uint(134, 2)),
		Mmsi4:      uint32(bv.Uint(136, 30)),
		Mmsi4Seq:   uint8(bv.Uint(166, 2)),
	}, nil
}

// decodeT14 decodes message type 14, the safety related broadcast
// message.
func (p *Parser) decodeT14(bv *BitVector, st Station, own bool) (Message, error) {
	return &SafetyRelatedBroadcastMessage{
		OwnVessel: own,
		Station:   st,
		Mmsi:      uint32(bv.Uint(8, 30)),
		Text:      bv.Text(40, 161),
	}, nil
}

// interrogationCase classifies type 15 and 20 payloads by length. The
// 160-bit form is ambiguous between cases 3 and 4 until the second
// message type block is inspected.
func interrogationCase(bv *BitVector) InterrogationCase {
	switch {
	case bv.Len() >= 160:
		if bv.Uint(90, 18) == 0 {
			return Case3
		}
		return Case4
	case bv.Len() >= 110:
		return Case2
	default:
		return Case1
	}
}

// decodeT15 decodes message type 15, the interrogation.
func (p *Parser) decodeT15(bv *BitVector, st Station, own bool) (Message, error) {
	c := interrogationCase(bv)
	r := &Interrogation{
		OwnVessel: own,
		Station:   st,
		Case:      c,
		Mmsi:      uint32(bv.Uint(8, 30)),
		Mmsi1:     uint32(bv.Uint(40, 30)),
		Type1_1:   uint8(bv.Uint(70, 6)),
		Offset1_1: uint16(bv.Uint(76, 12)),
	}
	if c == Case2 || c == Case4 {
		t := uint8(bv.Uint(90, 6))
		o := uint16(bv.Uint(96, 12))
		r.Type1_2 = &t
		r.Offset1_2 = &o
	}
	if c == Case3 || c == Case4 {
		r.Mmsi2 = u32Ptr(uint32(bv.Uint(110, 30)))
	}
	if c == Case4 {
		t := uint8(bv.Uint(140, 6))
		o := uint16(bv.Uint(146, 12))
		r.Type2_1 = &t
		r.Offset2_1 = &o
	}
	return r, nil
}

// decodeT16 decodes message type 16, the assignment mode command.
func (p *Parser) decodeT16(bv *BitVector, st Station, own bool) (Message, error) {
	single := bv.Len() < 144
	r := &AssignmentModeCommand{
		OwnVessel:                own,
		Station:                  st,
		AssignedForSingleStation: single,
		Mmsi:                     uint32(bv.Uint(8, 30)),
		Mmsi1:                    uint32(bv.Uint(40, 30)),
		Offset1:                  uint16(bv.Uint(70, 12)),
		Increment1:               uint16(bv.Uint(82, 10)),
	}
	if !single {
		o := uint16(bv.Uint(122, 12))
		i := uint16(bv.Uint(134, 10))
		r.Mmsi2 = u32Ptr(uint32(bv.Uint(92, 30)))
		r.Offset2 = &o
		r.Increment2 = &i
	}
	return r, nil
}

// decodeT17 decodes message type 17, the DGNSS broadcast binary message.
// Position resolution is a tenth of a minute.
func (p *Parser) decodeT17(bv *BitVector, st Station, own bool) (Message, error) {
	r := &DgnssBroadcastBinaryMessage{
		OwnVessel: own,
		Station:   st,
		Mmsi:      uint32(bv.Uint(8, 30)),
		Payload:   bv.Slice(80, bv.Len()),
	}
	if raw := bv.Int(58, 17); raw != 0xd548 {
		r.Latitude = f64Ptr(float64(raw) / 600.0)
	}
	if raw := bv.Int(40, 18); raw != 0x1a838 {
		r.Longitude = f64Ptr(float64(raw) / 600.0)
	}
	return r, nil
}

// decodeT20 decodes message type 20, the data link management message.
func (p *Parser) decodeT20(bv *BitVector, st Station, own bool) (Message, error) {
	return &DataLinkManagementMessage{
		OwnVessel:  own,
		Station:    st,
		Case:       interrogationCase(bv),
		Mmsi:       uint32(bv.Uint(8, 30)),
		Offset1:    uint16(bv.Uint(40, 12)),
		Number1:    uint8(bv.Uint(52, 4)),
		Timeout1:   uint8(bv.Uint(56, 3)),
		Increment1: uint16(bv.Uint(59, 11)),
		Offset2:    uint16(bv.Uint(70, 12)),
		Number2:    uint8(bv.Uint(82, 4)),
		Timeout2:   uint8(bv.Uint(86, 3)),
		Increment2: uint16(bv.Uint(89, 11)),
		Offset3:    uint16(bv.Uint(100, 12)),
		Number3:    uint8(bv.Uint(112, 4)),
		Timeout3:   uint8(bv.Uint(116, 3)),
		Increment3: uint16(bv.Uint(119, 11)),
		Offset4:    uint16(bv.Uint(130, 12)),
		Number4:    uint8(bv.Uint(142, 4)),
		Timeout4:   uint8(bv.Uint(146, 3)),
		Increment4: uint16(bv.Uint(149, 11)),
	}, nil
}

// decodeT21 decodes message type 21, the aid to navigation report. The
// name extension field is appended to the base name.
func (p *Parser) decodeT21(bv *BitVector, st Station, own bool) (Message, error) {
	fix := positionFixType(bv.Uint(249, 4))
	return &AidToNavigationReport{
		OwnVessel:            own,
		Station:              st,
		Mmsi:                 uint32(bv.Uint(8, 30)),
		AidType:              navAidType(bv.Uint(38, 5)),
		Name:                 bv.Text(43, 20) + bv.Text(272, 14),
		HighPositionAccuracy: bv.Uint(163, 1) != 0,
		Latitude:             pickLatitude(bv, 192, 27),
		Longitude:            pickLongitude(bv, 164, 28),
		DimensionToBow:       u16Ptr(uint16(bv.Uint(219, 9))),
		DimensionToStern:     u16Ptr(uint16(bv.Uint(228, 9))),
		DimensionToPort:      u16Ptr(uint16(bv.Uint(237, 6))),
		DimensionToStarboard: u16Ptr(uint16(bv.Uint(243, 6))),
		PositionFixType:      &fix,
		TimestampSeconds:     uint8(bv.Uint(253, 6)),
		OffPositionIndicator: bv.Uint(243, 1) != 0,
		Regional:             uint8(bv.Uint(260, 8)),
		RaimFlag:             bv.Uint(268, 1) != 0,
		VirtualAidFlag:       bv.Uint(269, 1) != 0,
		AssignedModeFlag:     bv.Uint(270, 1) != 0,
	}, nil
}

// decodeT22 decodes message type 22, the channel management message.
func (p *Parser) decodeT22(bv *BitVector, st Station, own bool) (Message, error) {
	addressed := bv.Uint(139, 1) != 0
	r := &ChannelManagement{
		OwnVessel:    own,
		Station:      st,
		Mmsi:         uint32(bv.Uint(8, 30)),
		ChannelA:     uint16(bv.Uint(40, 12)),
		ChannelB:     uint16(bv.Uint(52, 12)),
		TxRxMode:     uint8(bv.Uint(64, 4)),
		Power:        bv.Uint(68, 1) != 0,
		Addressed:    addressed,
		ChannelABand: bv.Uint(140, 1) != 0,
		ChannelBBand: bv.Uint(141, 1) != 0,
		ZoneSize:     uint8(bv.Uint(142, 3)),
	}
	if addressed {
		r.Dest1Mmsi = u32Ptr(uint32(bv.Uint(69, 30)))
		r.Dest2Mmsi = u32Ptr(uint32(bv.Uint(104, 30)))
	} else {
		r.NeLat = f64Ptr(float64(bv.Int(87, 17)) / 600.0)
		r.NeLon = f64Ptr(float64(bv.Int(69, 18)) / 600.0)
		r.SwLat = f64Ptr(float64(bv.Int(122, 17)) / 600.0)
		r.SwLon = f64Ptr(float64(bv.Int(104, 18)) / 600.0)
	}
	return r, nil
}

// decodeT23 decodes message type 23, the group assignment command.
func (p *Parser) decodeT23(bv *BitVector, st Station, own bool) (Message, error) {
	txrx := uint8(bv.Uint(144, 2))
	r := &GroupAssignmentCommand{
		OwnVessel:   own,
		Station:     st,
		Mmsi:        uint32(bv.Uint(8, 30)),
		NeLat:       f64Ptr(float64(bv.Int(58, 17)) / 600.0),
		NeLon:       f64Ptr(float64(bv.Int(40, 18)) / 600.0),
		SwLat:       f64Ptr(float64(bv.Int(93, 17)) / 600.0),
		SwLon:       f64Ptr(float64(bv.Int(75, 18)) / 600.0),
		StationType: StationType(bv.Uint(110, 4)),
		ShipType:    shipType(bv.Uint(114, 8)),
		CargoType:   cargoType(bv.Uint(114, 8)),
		TxRxMode:    txrx,
		Interval:    StationInterval(bv.Uint(146, 4)),
	}
	if raw := uint8(bv.Uint(144, 4)); raw != 0 {
		r.Quiet = &raw
	}
	return r, nil
}

// decodeT25 decodes message type 25, the single slot binary message.
func (p *Parser) decodeT25(bv *BitVector, st Station, own bool) (Message, error) {
	r := &SingleSlotBinaryMessage{
		OwnVessel: own,
		Station:   st,
		Mmsi:      uint32(bv.Uint(8, 30)),
	}
	r.DestMmsi, r.AppID, r.Data = binaryPayload(bv, bv.Len())
	return r, nil
}

// decodeT26 decodes message type 26, the multiple slot binary message.
// The last 20 bits carry the radio status.
func (p *Parser) decodeT26(bv *BitVector, st Station, own bool) (Message, error) {
	radioStart := bv.Len() - 20
	if radioStart < 0 {
		radioStart = 0
	}
	r := &MultipleSlotBinaryMessage{
		OwnVessel: own,
		Station:   st,
		Mmsi:      uint32(bv.Uint(8, 30)),
		Radio:     uint32(bv.Uint(radioStart, 20)),
	}
	r.DestMmsi, r.AppID, r.Data = binaryPayload(bv, radioStart)
	return r, nil
}

// binaryPayload picks the addressing header shared by types 25 and 26
// and slices out the free form data up to end.
func binaryPayload(bv *BitVector, end int) (destMmsi *uint32, appID *uint16, data *BitVector) {
	addressed := bv.Uint(38, 1) != 0
	structured := bv.Uint(39, 1) != 0
	switch {
	case addressed:
		destMmsi = u32Ptr(uint32(bv.Uint(40, 30)))
		data = bv.Slice(70, end)
	case structured:
		id := uint16(bv.Uint(70, 16))
		appID = &id
		data = bv.Slice(86, end)
	default:
		data = bv.Slice(40, end)
	}
	return destMmsi, appID, data
}
