package nmea0183

import "time"

// AisClass tells whether a vessel carries a Class A or Class B
// transponder, where the message type reveals it.
type AisClass uint8

const (
	ClassUnknown AisClass = iota
	ClassA
	ClassB
)

func (c AisClass) String() string {
	switch c {
	case ClassA:
		return "Class A"
	case ClassB:
		return "Class B"
	default:
		return "unknown"
	}
}

// NavigationStatus is the 4-bit navigation status of a position report.
type NavigationStatus uint8

const (
	NavUnderWayUsingEngine NavigationStatus = iota
	NavAtAnchor
	NavNotUnderCommand
	NavRestrictedManoeuverability
	NavConstrainedByDraught
	NavMoored
	NavAground
	NavEngagedInFishing
	NavUnderWaySailing
	NavReserved9
	NavReserved10
	NavReserved11
	NavReserved12
	NavReserved13
	NavAisSartIsActive
	NavNotDefined
)

func navigationStatus(raw uint64) NavigationStatus {
	if raw > 15 {
		return NavNotDefined
	}
	return NavigationStatus(raw)
}

func (ns NavigationStatus) String() string {
	switch ns {
	case NavUnderWayUsingEngine:
		return "under way using engine"
	case NavAtAnchor:
		return "at anchor"
	case NavNotUnderCommand:
		return "not under command"
	case NavRestrictedManoeuverability:
		return "restricted manoeuverability"
	case NavConstrainedByDraught:
		return "constrained by draught"
	case NavMoored:
		return "moored"
	case NavAground:
		return "aground"
	case NavEngagedInFishing:
		return "engaged in fishing"
	case NavUnderWaySailing:
		return "under way sailing"
	case NavAisSartIsActive:
		return "ais sart is active"
	case NavNotDefined:
		return "(not defined)"
	default:
		return "(reserved)"
	}
}

// RotDirection is the direction of turn when turning more than 5°/30s.
type RotDirection uint8

const (
	RotPort RotDirection = iota
	RotCenter
	RotStarboard
)

func (r RotDirection) String() string {
	switch r {
	case RotPort:
		return "port"
	case RotStarboard:
		return "starboard"
	default:
		return "center"
	}
}

// PositioningSystemMeta is positioning system state information encoded
// in the UTC second field of a position report.
type PositioningSystemMeta uint8

const (
	PositioningOperative PositioningSystemMeta = iota
	PositioningManualInputMode
	PositioningDeadReckoningMode
	PositioningInoperative
)

func (p PositioningSystemMeta) String() string {
	switch p {
	case PositioningOperative:
		return "operative"
	case PositioningManualInputMode:
		return "manual input mode"
	case PositioningDeadReckoningMode:
		return "dead reckoning mode"
	default:
		return "inoperative"
	}
}

// ShipType is the high part of the combined ship and cargo type field.
type ShipType uint8

const (
	ShipNotAvailable           ShipType = 0
	ShipReserved1              ShipType = 10
	ShipWingInGround           ShipType = 20
	ShipFishing                ShipType = 30
	ShipTowing                 ShipType = 31
	ShipTowingLong             ShipType = 32
	ShipDredgingOrUnderwaterOps ShipType = 33
	ShipDivingOps              ShipType = 34
	ShipMilitaryOps            ShipType = 35
	ShipSailing                ShipType = 36
	ShipPleasureCraft          ShipType = 37
	ShipReserved38             ShipType = 38
	ShipReserved39             ShipType = 39
	ShipHighSpeedCraft         ShipType = 40
	ShipPilot                  ShipType = 50
	ShipSearchAndRescue        ShipType = 51
	ShipTug                    ShipType = 52
	ShipPortTender             ShipType = 53
	ShipAntiPollutionEquipment ShipType = 54
	ShipLawEnforcement         ShipType = 55
	ShipSpareLocal56           ShipType = 56
	ShipSpareLocal57           ShipType = 57
	ShipMedicalTransport       ShipType = 58
	ShipNoncombatant           ShipType = 59
	ShipPassenger              ShipType = 60
	ShipCargo                  ShipType = 70
	ShipTanker                 ShipType = 80
	ShipOther                  ShipType = 90
)

func shipType(raw uint64) ShipType {
	switch {
	case raw < 10:
		return ShipNotAvailable
	case raw < 20:
		return ShipReserved1
	case raw < 30:
		return ShipWingInGround
	case raw < 40:
		return ShipType(raw)
	case raw < 50:
		return ShipHighSpeedCraft
	case raw < 60:
		return ShipType(raw)
	case raw < 70:
		return ShipPassenger
	case raw < 80:
		return ShipCargo
	case raw < 90:
		return ShipTanker
	case raw < 100:
		return ShipOther
	default:
		return ShipNotAvailable
	}
}

func (s ShipType) String() string {
	switch s {
	case ShipNotAvailable:
		return "(not available)"
	case ShipReserved1, ShipReserved38, ShipReserved39:
		return "(reserved)"
	case ShipWingInGround:
		return "wing in ground"
	case ShipFishing:
		return "fishing"
	case ShipTowing:
		return "towing"
	case ShipTowingLong:
		return "towing, long"
	case ShipDredgingOrUnderwaterOps:
		return "dredging or underwater ops"
	case ShipDivingOps:
		return "diving ops"
	case ShipMilitaryOps:
		return "military ops"
	case ShipSailing:
		return "sailing"
	case ShipPleasureCraft:
		return "pleasure craft"
	case ShipHighSpeedCraft:
		return "high-speed craft"
	case ShipPilot:
		return "pilot"
	case ShipSearchAndRescue:
		return "search and rescue"
	case ShipTug:
		return "tug"
	case ShipPortTender:
		return "port tender"
	case ShipAntiPollutionEquipment:
		return "anti-pollution equipment"
	case ShipLawEnforcement:
		return "law enforcement"
	case ShipSpareLocal56, ShipSpareLocal57:
		return "(local)"
	case ShipMedicalTransport:
		return "medical transport"
	case ShipNoncombatant:
		return "noncombatant"
	case ShipPassenger:
		return "passenger"
	case ShipCargo:
		return "cargo"
	case ShipTanker:
		return "tanker"
	case ShipOther:
		return "other"
	default:
		return "(not available)"
	}
}

// CargoType is the low part of the combined ship and cargo type field.
type CargoType uint8

const (
	CargoUndefined CargoType = iota + 10
	CargoHazardousCategoryA
	CargoHazardousCategoryB
	CargoHazardousCategoryC
	CargoHazardousCategoryD
	CargoReserved5
	CargoReserved6
	CargoReserved7
	CargoReserved8
	CargoReserved9
)

func cargoType(raw uint64) CargoType {
	// Ship type ranges 3x and 5x name specific vessels and carry no
	// cargo category in the low digit.
	switch raw / 10 {
	case 1, 2, 4, 6, 7, 8, 9:
		return CargoType(10 + raw%10)
	default:
		return CargoUndefined
	}
}

func (c CargoType) String() string {
	switch c {
	case CargoHazardousCategoryA:
		return "hazardous category A"
	case CargoHazardousCategoryB:
		return "hazardous category B"
	case CargoHazardousCategoryC:
		return "hazardous category C"
	case CargoHazardousCategoryD:
		return "hazardous category D"
	case CargoReserved5, CargoReserved6, CargoReserved7, CargoReserved8, CargoReserved9:
		return "(reserved)"
	default:
		return "undefined"
	}
}

// PositionFixType is the EPFD position fix device type.
type PositionFixType uint8

const (
	FixUndefined PositionFixType = iota
	FixGps
	FixGlonass
	FixGpsGlonass
	FixLoranC
	FixChayka
	FixIntegratedNavigationSystem
	FixSurveyed
	FixGalileo
)

func positionFixType(raw uint64) PositionFixType {
	if raw > 8 {
		return FixUndefined
	}
	return PositionFixType(raw)
}

func (p PositionFixType) String() string {
	switch p {
	case FixGps:
		return "GPS"
	case FixGlonass:
		return "GLONASS"
	case FixGpsGlonass:
		return "GPS/GLONASS"
	case FixLoranC:
		return "Loran-C"
	case FixChayka:
		return "Chayka"
	case FixIntegratedNavigationSystem:
		return "integrated navigation system"
	case FixSurveyed:
		return "surveyed"
	case FixGalileo:
		return "Galileo"
	default:
		return "undefined"
	}
}

// VesselDynamicData is a position report decoded from AIS message types
// 1, 2, 3, 18, 19 and 27.
type VesselDynamicData struct {
	// OwnVessel is true when the report came in a VDO sentence.
	OwnVessel bool

	Station Station

	AisType AisClass

	Mmsi uint32

	NavStatus NavigationStatus

	// Rate of turn in degrees per minute when the sensor value is known.
	Rot *float64

	RotDirection *RotDirection

	SogKnots *float64

	// True when position accuracy is 10 m or better.
	HighPositionAccuracy bool

	Latitude  *float64
	Longitude *float64

	// Course over ground in degrees.
	Cog *float64

	HeadingTrue *float64

	// UTC second when the report was generated (0-59).
	TimestampSeconds uint8

	PositioningSystemMeta *PositioningSystemMeta

	// Type 27 only: true when the position is a current GNSS position.
	CurrentGnssPosition *bool

	SpecialManoeuvre *bool

	RaimFlag bool

	ClassBUnitFlag  *bool
	ClassBDisplay   *bool
	ClassBDsc       *bool
	ClassBBandFlag  *bool
	ClassBMsg22Flag *bool
	ClassBModeFlag  *bool
	ClassBCssFlag   *bool

	RadioStatus *uint32
}

// VesselStaticData is static and voyage related data decoded from AIS
// message types 5 and 24. String fields are empty when not transmitted.
type VesselStaticData struct {
	OwnVessel bool

	AisType AisClass

	Mmsi uint32

	AisVersionIndicator uint8

	ImoNumber *uint32

	CallSign string

	Name string

	ShipType  ShipType
	CargoType CargoType

	EquipmentVendorID     string
	EquipmentModel        *uint8
	EquipmentSerialNumber *uint32

	DimensionToBow       *uint16
	DimensionToStern     *uint16
	DimensionToPort      *uint16
	DimensionToStarboard *uint16

	PositionFixType *PositionFixType

	Eta *time.Time

	// Maximum present static draught in decimetres.
	Draught10 *uint8

	Destination string

	MothershipMmsi *uint32
}

// NavAidType classifies an aid to navigation in a type 21 report.
type NavAidType uint8

const (
	NavAidNotSpecified NavAidType = iota
	NavAidReferencePoint
	NavAidRacon
	NavAidFixedStructure
	NavAidReserved4
	NavAidLightWithoutSectors
	NavAidLightWithSectors
	NavAidLeadingLightFront
	NavAidLeadingLightRear
	NavAidBeaconCardinalNorth
	NavAidBeaconCardinalEast
	NavAidBeaconCardinalSouth
	NavAidBeaconCardinalWest
	NavAidBeaconLateralPort
	NavAidBeaconLateralStarboard
	NavAidBeaconLateralPreferredChannelPort
	NavAidBeaconLateralPreferredChannelStarboard
	NavAidBeaconIsolatedDanger
	NavAidBeaconSafeWater
	NavAidBeaconSpecialMark
	NavAidCardinalMarkNorth
	NavAidCardinalMarkEast
	NavAidCardinalMarkSouth
	NavAidCardinalMarkWest
	NavAidPortHandMark
	NavAidStarboardHandMark
	NavAidPreferredChannelPort
	NavAidPreferredChannelStarboard
	NavAidIsolatedDanger
	NavAidSafeWater
	NavAidSpecialMark
	NavAidLightVessel
)

func navAidType(raw uint64) NavAidType {
	if raw > 31 {
		return NavAidNotSpecified
	}
	return NavAidType(raw)
}

func (n NavAidType) String() string {
	switch n {
	case NavAidReferencePoint:
		return "reference point"
	case NavAidRacon:
		return "racon"
	case NavAidFixedStructure:
		return "fixed structure"
	case NavAidReserved4:
		return "(reserved)"
	case NavAidLightWithoutSectors:
		return "light, without sectors"
	case NavAidLightWithSectors:
		return "light, with sectors"
	case NavAidLeadingLightFront:
		return "leading light front"
	case NavAidLeadingLightRear:
		return "leading light rear"
	case NavAidBeaconCardinalNorth:
		return "beacon, cardinal N"
	case NavAidBeaconCardinalEast:
		return "beacon, cardinal E"
	case NavAidBeaconCardinalSouth:
		return "beacon, cardinal S"
	case NavAidBeaconCardinalWest:
		return "beacon, cardinal W"
	case NavAidBeaconLateralPort:
		return "beacon, lateral port"
	case NavAidBeaconLateralStarboard:
		return "beacon, lateral starboard"
	case NavAidBeaconLateralPreferredChannelPort:
		return "beacon, preferred channel port"
	case NavAidBeaconLateralPreferredChannelStarboard:
		return "beacon, preferred channel starboard"
	case NavAidBeaconIsolatedDanger:
		return "beacon, isolated danger"
	case NavAidBeaconSafeWater:
		return "beacon, safe water"
	case NavAidBeaconSpecialMark:
		return "beacon, special mark"
	case NavAidCardinalMarkNorth:
		return "cardinal mark N"
	case NavAidCardinalMarkEast:
		return "cardinal mark E"
	case NavAidCardinalMarkSouth:
		return "cardinal mark S"
	case NavAidCardinalMarkWest:
		return "cardinal mark W"
	case NavAidPortHandMark:
		return "port hand mark"
	case NavAidStarboardHandMark:
		return "starboard hand mark"
	case NavAidPreferredChannelPort:
		return "preferred channel port"
	case NavAidPreferredChannelStarboard:
		return "preferred channel starboard"
	case NavAidIsolatedDanger:
		return "isolated danger"
	case NavAidSafeWater:
		return "safe water"
	case NavAidSpecialMark:
		return "special mark"
	case NavAidLightVessel:
		return "light vessel"
	default:
		return "not specified"
	}
}

// StationType classifies stations addressed by a group assignment
// command.
type StationType uint8

const (
	StationTypeAllTypes StationType = iota
	StationTypeReserved1
	StationTypeAllTypesOfClassBMobile
	StationTypeSarAirborneMobile
	StationTypeAidToNavigation
	StationTypeClassBShipBorneMobile
	StationTypeRegional6
	StationTypeRegional7
	StationTypeRegional8
	StationTypeRegional9
	StationTypeReserved10
	StationTypeReserved11
	StationTypeReserved12
	StationTypeReserved13
	StationTypeReserved14
	StationTypeReserved15
)

// StationInterval is the reporting interval assigned by a group
// assignment command.
type StationInterval uint8

const (
	IntervalAutonomous StationInterval = iota
	Interval10min
	Interval6min
	Interval3min
	Interval1min
	Interval30sec
	Interval15sec
	Interval10sec
	Interval5sec
	IntervalNextShorter
	IntervalNextLonger
	IntervalReserved11
	IntervalReserved12
	IntervalReserved13
	IntervalReserved14
	IntervalReserved15
)

// InterrogationCase distinguishes the four interrogation layouts of a
// type 15 message, determined by the payload length.
type InterrogationCase uint8

const (
	// Case1 interrogates one station for one message type.
	Case1 InterrogationCase = iota
	// Case2 interrogates one station for two message types.
	Case2
	// Case3 interrogates two stations for one message type each.
	Case3
	// Case4 interrogates the first station for two message types and
	// the second station for one.
	Case4
)
