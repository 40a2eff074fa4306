package nmea0183

import "time"

// BaseStationReport is an AIS type 4 base station report. A type 11 UTC
// date response carries the same layout and is returned as
// UtcDateResponse.
type BaseStationReport struct {
	OwnVessel bool

	Station Station

	Mmsi uint32

	Timestamp *time.Time

	HighPositionAccuracy bool

	Latitude  *float64
	Longitude *float64

	PositionFixType *PositionFixType

	RaimFlag bool

	RadioStatus uint32
}

// UtcDateResponse is an AIS type 11 message, sent in response to a UTC
// date inquiry.
type UtcDateResponse struct {
	BaseStationReport
}

// BinaryAddressedMessage is an AIS type 6 message. The application
// payload is identified by the DAC and FI fields.
type BinaryAddressedMessage struct {
	OwnVessel bool

	Station Station

	Mmsi uint32

	SequenceNumber uint8

	DestinationMmsi uint32

	RetransmitFlag bool

	Dac uint16

	Fid uint8
}

// StandardSarAircraftPositionReport is an AIS type 9 search and rescue
// aircraft position report.
type StandardSarAircraftPositionReport struct {
	OwnVessel bool

	Station Station

	Mmsi uint32

	// Altitude in metres, nil when not available.
	Altitude *uint16

	SogKnots *uint16

	HighPositionAccuracy bool

	Latitude  *float64
	Longitude *float64

	Cog *float64

	TimestampSeconds uint8

	Regional uint8

	Dte bool

	Assigned bool

	RaimFlag bool

	RadioStatus uint32
}

// UtcDateInquiry is an AIS type 10 message.
type UtcDateInquiry struct {
	OwnVessel bool

	Station Station

	SourceMmsi uint32

	DestinationMmsi uint32
}

// AddressedSafetyRelatedMessage is an AIS type 12 message.
type AddressedSafetyRelatedMessage struct {
	OwnVessel bool

	Station Station

	SourceMmsi uint32

	SequenceNumber uint8

	DestinationMmsi uint32

	RetransmitFlag bool

	Text string
}

// SafetyRelatedAcknowledgement is an AIS type 13 message.
type SafetyRelatedAcknowledgement struct {
	OwnVessel bool

	Station Station

	SourceMmsi uint32

	Mmsi1    uint32
	Mmsi1Seq uint8
	Mmsi2    uint32
	Mmsi2Seq uint8
	Mmsi3    uint32
	Mmsi3Seq uint8
	Mmsi4    uint32
	Mmsi4Seq uint8
}

// SafetyRelatedBroadcastMessage is an AIS type 14 message.
type SafetyRelatedBroadcastMessage struct {
	OwnVessel bool

	Station Station

	Mmsi uint32

	Text string
}

// Interrogation is an AIS type 15 message. Which of the optional fields
// are set depends on Case.
type Interrogation struct {
	OwnVessel bool

	Station Station

	Case InterrogationCase

	Mmsi uint32

	Mmsi1 uint32

	Type1_1   uint8
	Offset1_1 uint16

	Type1_2   *uint8
	Offset1_2 *uint16

	Mmsi2 *uint32

	Type2_1   *uint8
	Offset2_1 *uint16
}

// AssignmentModeCommand is an AIS type 16 message.
type AssignmentModeCommand struct {
	OwnVessel bool

	Station Station

	// True when only one station is assigned.
	AssignedForSingleStation bool

	Mmsi uint32

	Mmsi1      uint32
	Offset1    uint16
	Increment1 uint16

	Mmsi2      *uint32
	Offset2    *uint16
	Increment2 *uint16
}

// DgnssBroadcastBinaryMessage is an AIS type 17 message carrying
// differential GNSS corrections.
type DgnssBroadcastBinaryMessage struct {
	OwnVessel bool

	Station Station

	Mmsi uint32

	Latitude  *float64
	Longitude *float64

	Payload *BitVector
}

// DataLinkManagementMessage is an AIS type 20 message reserving slots
// for base stations. Case tells how many of the four reservation blocks
// are present.
type DataLinkManagementMessage struct {
	OwnVessel bool

	Station Station

	Case InterrogationCase

	Mmsi uint32

	Offset1    uint16
	Number1    uint8
	Timeout1   uint8
	Increment1 uint16

	Offset2    uint16
	Number2    uint8
	Timeout2   uint8
	Increment2 uint16

	Offset3    uint16
	Number3    uint8
	Timeout3   uint8
	Increment3 uint16

	Offset4    uint16
	Number4    uint8
	Timeout4   uint8
	Increment4 uint16
}

// AidToNavigationReport is an AIS type 21 message.
type AidToNavigationReport struct {
	OwnVessel bool

	Station Station

	Mmsi uint32

	AidType NavAidType

	Name string

	HighPositionAccuracy bool

	Latitude  *float64
	Longitude *float64

	DimensionToBow       *uint16
	DimensionToStern     *uint16
	DimensionToPort      *uint16
	DimensionToStarboard *uint16

	PositionFixType *PositionFixType

	TimestampSeconds uint8

	OffPositionIndicator bool

	Regional uint8

	RaimFlag bool

	VirtualAidFlag bool

	AssignedModeFlag bool
}

// ChannelManagement is an AIS type 22 message. Broadcast messages name a
// coverage rectangle, addressed ones name two destination stations.
type ChannelManagement struct {
	OwnVessel bool

	Station Station

	Mmsi uint32

	ChannelA uint16
	ChannelB uint16

	TxRxMode uint8

	// True for high transmission power.
	Power bool

	NeLat *float64
	NeLon *float64
	SwLat *float64
	SwLon *float64

	Dest1Mmsi *uint32
	Dest2Mmsi *uint32

	Addressed bool

	ChannelABand bool
	ChannelBBand bool

	ZoneSize uint8
}

// GroupAssignmentCommand is an AIS type 23 message.
type GroupAssignmentCommand struct {
	OwnVessel bool

	Station Station

	Mmsi uint32

	NeLat *float64
	NeLon *float64
	SwLat *float64
	SwLon *float64

	StationType StationType

	ShipType  ShipType
	CargoType CargoType

	TxRxMode uint8

	Interval StationInterval

	// Quiet time in minutes, nil when none commanded.
	Quiet *uint8
}

// ExtendedClassBPositionReport is an AIS type 19 message, a Class B
// position report extended with a static data tail.
type ExtendedClassBPositionReport struct {
	OwnVessel bool

	Station Station

	Mmsi uint32

	SogKnots *float64

	HighPositionAccuracy bool

	Latitude  *float64
	Longitude *float64

	Cog *float64

	HeadingTrue *float64

	TimestampSeconds uint8

	Regional uint8

	Name string

	ShipType  ShipType
	CargoType CargoType

	DimensionToBow       *uint16
	DimensionToStern     *uint16
	DimensionToPort      *uint16
	DimensionToStarboard *uint16

	PositionFixType *PositionFixType

	RaimFlag bool

	Dte bool

	AssignedModeFlag bool
}

// SingleSlotBinaryMessage is an AIS type 25 message.
type SingleSlotBinaryMessage struct {
	OwnVessel bool

	Station Station

	Mmsi uint32

	DestMmsi *uint32

	AppID *uint16

	Data *BitVector
}

// MultipleSlotBinaryMessage is an AIS type 26 message.
type MultipleSlotBinaryMessage struct {
	OwnVessel bool

	Station Station

	Mmsi uint32

	DestMmsi *uint32

	AppID *uint16

	Data *BitVector

	Radio uint32
}
