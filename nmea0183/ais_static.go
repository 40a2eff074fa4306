package nmea0183

import "fmt"

// decodeT5 decodes message type 5, ship static and voyage related data.
func (p *Parser) decodeT5(bv *BitVector, _ Station, own bool) (Message, error) {
	d := &VesselStaticData{
		OwnVessel:            own,
		AisType:              ClassB,
		Mmsi:                 uint32(bv.Uint(8, 30)),
		AisVersionIndicator:  uint8(bv.Uint(38, 2)),
		CallSign:             bv.Text(70, 7),
		Name:                 bv.Text(112, 20),
		ShipType:             shipType(bv.Uint(232, 8)),
		CargoType:            cargoType(bv.Uint(232, 8)),
		DimensionToBow:       u16Ptr(uint16(bv.Uint(240, 9))),
		DimensionToStern:     u16Ptr(uint16(bv.Uint(249, 9))),
		DimensionToPort:      u16Ptr(uint16(bv.Uint(258, 6))),
		DimensionToStarboard: u16Ptr(uint16(bv.Uint(264, 6))),
		Draught10:            u8Ptr(uint8(bv.Uint(294, 8))),
		Destination:          bv.Text(302, 20),
	}
	if raw := uint32(bv.Uint(40, 30)); raw != 0 {
		d.ImoNumber = &raw
	}
	if raw := bv.Uint(270, 4); raw != 0 {
		fix := positionFixType(raw)
		d.PositionFixType = &fix
	}
	eta, err := pickETA(bv, 274)
	if err != nil {
		return nil, err
	}
	d.Eta = eta
	return d, nil
}

// decodeT24 decodes message type 24, the two part Class B static data
// report. The first part seen is stored by MMSI and Incomplete is
// returned; the merged record is returned when the other part arrives.
func (p *Parser) decodeT24(bv *BitVector, _ Station, own bool) (Message, error) {
	var partA, partB bool
	switch raw := bv.Uint(38, 2); raw {
	case 0:
		partA = true
	case 1:
		partB = true
	default:
		return nil, &InvalidSentenceError{
			Detail: fmt.Sprintf("type 24 part number has unexpected value: %d", raw),
		}
	}

	d := VesselStaticData{
		OwnVessel: own,
		AisType:   ClassB,
		Mmsi:      uint32(bv.Uint(8, 30)),
	}
	if partA {
		d.Name = bv.Text(40, 120)
		d.CargoType = CargoUndefined
	}
	if partB {
		d.ShipType = shipType(bv.Uint(40, 8))
		d.CargoType = cargoType(bv.Uint(40, 8))
		d.EquipmentVendorID = bv.Text(48, 3)
		d.EquipmentModel = u8Ptr(uint8(bv.Uint(66, 4)))
		d.EquipmentSerialNumber = u32Ptr(uint32(bv.Uint(70, 20)))
		d.CallSign = bv.Text(90, 7)
		d.DimensionToBow = u16Ptr(uint16(bv.Uint(132, 9)))
		d.DimensionToStern = u16Ptr(uint16(bv.Uint(141, 9)))
		d.DimensionToPort = u16Ptr(uint16(bv.Uint(150, 6)))
		d.DimensionToStarboard = u16Ptr(uint16(bv.Uint(156, 6)))
		d.MothershipMmsi = u32Ptr(uint32(bv.Uint(132, 30)))
	}

	if stored, ok := p.partials[d.Mmsi]; ok {
		delete(p.partials, d.Mmsi)
		merged, err := d.merge(stored)
		if err != nil {
			return nil, err
		}
		return merged, nil
	}
	p.partials[d.Mmsi] = &d
	return Incomplete{}, nil
}

// merge combines two halves of a type 24 report. Fields present in the
// receiver win over fields from other.
func (d *VesselStaticData) merge(other *VesselStaticData) (*VesselStaticData, error) {
	switch {
	case d.AisType != other.AisType:
		return nil, &InvalidSentenceError{
			Detail: fmt.Sprintf("mismatching AIS classes: %v != %v", d.AisType, other.AisType),
		}
	case d.Mmsi != other.Mmsi:
		return nil, &InvalidSentenceError{
			Detail: fmt.Sprintf("mismatching MMSI numbers: %d != %d", d.Mmsi, other.Mmsi),
		}
	case (d.ImoNumber == nil) != (other.ImoNumber == nil),
		d.ImoNumber != nil && other.ImoNumber != nil && *d.ImoNumber != *other.ImoNumber:
		return nil, &InvalidSentenceError{
			Detail: fmt.Sprintf("mismatching IMO numbers for MMSI %d", d.Mmsi),
		}
	case d.AisVersionIndicator != other.AisVersionIndicator:
		return nil, &InvalidSentenceError{
			Detail: fmt.Sprintf("mismatching AIS version indicators: %d != %d",
				d.AisVersionIndicator, other.AisVersionIndicator),
		}
	}

	merged := *d
	if merged.ImoNumber == nil {
		merged.ImoNumber = other.ImoNumber
	}
	if merged.CallSign == "" {
		merged.CallSign = other.CallSign
	}
	if merged.Name == "" {
		merged.Name = other.Name
	}
	if merged.ShipType == ShipNotAvailable {
		merged.ShipType = other.ShipType
	}
	if merged.CargoType == CargoUndefined {
		merged.CargoType = other.CargoType
	}
	if merged.EquipmentVendorID == "" {
		merged.EquipmentVendorID = other.EquipmentVendorID
	}
	if merged.EquipmentModel == nil {
		merged.EquipmentModel = other.EquipmentModel
	}
	if merged.EquipmentSerialNumber == nil {
		merged.EquipmentSerialNumber = other.EquipmentSerialNumber
	}
	if merged.DimensionToBow == nil {
		merged.DimensionToBow = other.DimensionToBow
	}
	if merged.DimensionToStern == nil {
		merged.DimensionToStern = other.DimensionToStern
	}
	if merged.DimensionToPort == nil {
		merged.DimensionToPort = other.DimensionToPort
	}
	if merged.DimensionToStarboard == nil {
		merged.DimensionToStarboard = other.DimensionToStarboard
	}
	if merged.PositionFixType == nil {
		merged.PositionFixType = other.PositionFixType
	}
	if merged.Eta == nil {
		merged.Eta = other.Eta
	}
	if merged.Draught10 == nil {
		merged.Draught10 = other.Draught10
	}
	if merged.Destination == "" {
		merged.Destination = other.Destination
	}
	if merged.MothershipMmsi == nil {
		merged.MothershipMmsi = other.MothershipMmsi
	}
	return &merged, nil
}
