package nmea0183

import "time"

// FaaMode is the FAA mode indicator present in NMEA 2.3 and later
// versions of several sentences.
type FaaMode uint8

const (
	FaaAutonomous FaaMode = iota
	FaaDifferential
	FaaEstimated
	FaaNotValid
	FaaSimulator
)

func faaMode(raw string) (FaaMode, error) {
	switch raw {
	case "A":
		return FaaAutonomous, nil
	case "D":
		return FaaDifferential, nil
	case "E":
		return FaaEstimated, nil
	case "N":
		return FaaNotValid, nil
	default:
		return FaaNotValid, &InvalidSentenceError{Detail: "unrecognized FAA mode: " + raw}
	}
}

func (m FaaMode) String() string {
	switch m {
	case FaaAutonomous:
		return "A"
	case FaaDifferential:
		return "D"
	case FaaEstimated:
		return "E"
	case FaaNotValid:
		return "N"
	default:
		return "?"
	}
}

// GgaQualityIndicator is the GGA fix quality field.
type GgaQualityIndicator uint8

const (
	GgaQualityInvalid GgaQualityIndicator = iota
	GgaQualityGpsFix
	GgaQualityDGpsFix
	GgaQualityPpsFix
	GgaQualityRealTimeKinematic
	GgaQualityRealTimeKinematicFloat
	GgaQualityDeadReckoning
	GgaQualityManualInputMode
	GgaQualitySimulationMode
)

func ggaQuality(raw uint32) GgaQualityIndicator {
	if raw > 8 {
		return GgaQualityInvalid
	}
	return GgaQualityIndicator(raw)
}

// GnsModeIndicator is a per-constellation mode character of a GNS
// sentence.
type GnsModeIndicator uint8

const (
	GnsModeInvalid GnsModeIndicator = iota
	GnsModeAutonomous
	GnsModeDifferential
	GnsModePrecise
	GnsModeRealTimeKinematic
	GnsModeRealTimeKinematicFloat
	GnsModeDeadReckoning
	GnsModeManualInputMode
	GnsModeSimulationMode
)

func gnsMode(ch byte) GnsModeIndicator {
	switch ch {
	case 'A':
		return GnsModeAutonomous
	case 'D':
		return GnsModeDifferential
	case 'P':
		return GnsModePrecise
	case 'R':
		return GnsModeRealTimeKinematic
	case 'F':
		return GnsModeRealTimeKinematicFloat
	case 'E':
		return GnsModeDeadReckoning
	case 'M':
		return GnsModeManualInputMode
	case 'S':
		return GnsModeSimulationMode
	default:
		return GnsModeInvalid
	}
}

// GsaFixMode is the GSA fix dimension field.
type GsaFixMode uint8

const (
	GsaFixNotAvailable GsaFixMode = iota + 1
	GsaFix2D
	GsaFix3D
)

// GgaData is a GGA global positioning system fix.
type GgaData struct {
	Source NavigationSystem

	Timestamp *time.Time

	Latitude  *float64
	Longitude *float64

	Quality GgaQualityIndicator

	SatelliteCount *uint8

	Hdop *float64

	// Altitude above mean sea level in metres.
	Altitude *float64

	GeoidSeparation *float64

	AgeOfDgps *float64

	RefStationID *uint16
}

// RmcData is an RMC recommended minimum sentence.
type RmcData struct {
	Source NavigationSystem

	Timestamp *time.Time

	StatusActive *bool

	Latitude  *float64
	Longitude *float64

	SpeedKnots *float64

	Bearing *float64

	// Magnetic variation in degrees, negative for west.
	Variation *float64
}

// GnsData is a GNS fix for one or several navigation systems.
type GnsData struct {
	Source NavigationSystem

	Timestamp *time.Time

	Latitude  *float64
	Longitude *float64

	GpsMode     GnsModeIndicator
	GlonassMode GnsModeIndicator
	OtherModes  []GnsModeIndicator

	SatelliteCount *uint8

	Hdop *float64

	Altitude *float64

	GeoidSeparation *float64

	AgeOfDgps *float64

	RefStationID *uint16
}

// GsaData is a GSA DOP and active satellites sentence.
type GsaData struct {
	Source NavigationSystem

	// True for automatic 2D/3D selection.
	Mode1Automatic *bool

	Mode2Fix *GsaFixMode

	PrnNumbers []uint8

	Pdop *float64
	Hdop *float64
	Vdop *float64
}

// GsvData describes a single satellite in view from a GSV sentence
// group.
type GsvData struct {
	Source NavigationSystem

	PrnNumber uint8

	// Elevation in degrees, 90 at most.
	Elevation *uint8

	// Azimuth in degrees from true north.
	Azimuth *uint16

	// Signal to noise ratio in dB, nil when not tracking.
	Snr *uint8
}

// GsvReport is the complete satellites-in-view listing assembled from a
// group of GSV sentences.
type GsvReport []GsvData

// VtgData is a VTG track and ground speed sentence.
type VtgData struct {
	Source NavigationSystem

	CogTrue     *float64
	CogMagnetic *float64

	SogKnots *float64
	SogKph   *float64

	FaaMode *FaaMode
}

// GllData is a GLL geographic position sentence.
type GllData struct {
	Source NavigationSystem

	Latitude  *float64
	Longitude *float64

	Timestamp *time.Time

	DataValid *bool

	FaaMode *FaaMode
}

// AlmData is an ALM GPS almanac sentence. All numeric fields of the
// sentence are hexadecimal.
type AlmData struct {
	Source NavigationSystem

	Prn *uint8

	WeekNumber *uint16

	HealthBits *uint8

	Eccentricity *uint16

	ReferenceTime *uint8

	// Inclination angle (sigma).
	Sigma *uint16

	// Rate of right ascension (omega dot).
	OmegaDot *uint16

	// Square root of semi-major axis (root a).
	RootA *uint32

	// Argument of perigee (omega).
	Omega *uint32

	// Ascending node longitude (omega 0).
	OmegaO *uint32

	// Mean anomaly (m0).
	Mo *uint32

	Af0 *uint16
	Af1 *uint16
}

// DtmData is a DTM datum reference sentence.
type DtmData struct {
	Source NavigationSystem

	DatumID    string
	DatumSubID string

	// Offsets from the reference datum in degrees and metres.
	LatOffset *float64
	LonOffset *float64
	AltOffset *float64

	RefDatumID string
}

// MssData is an MSS beacon receiver signal sentence.
type MssData struct {
	Source NavigationSystem

	SignalStrength *uint8

	Snr *uint8

	Frequency *float64

	BitRate *uint32

	Channel *uint32
}

// StnData is an STN multiple data ID sentence.
type StnData struct {
	Source NavigationSystem

	TalkerID *uint8
}

// VbwData is a VBW dual ground and water speed sentence.
type VbwData struct {
	Source NavigationSystem

	LonWaterSpeedKnots *float64
	TrWaterSpeedKnots  *float64
	WaterSpeedValid    *bool

	LonGroundSpeedKnots *float64
	TrGroundSpeedKnots  *float64
	GroundSpeedValid    *bool
}

// ZdaData is a ZDA time and date sentence.
type ZdaData struct {
	Source NavigationSystem

	TimestampUTC *time.Time

	// Local zone offset east of UTC in seconds.
	TimezoneOffsetSeconds *int
}

// DptData is a DPT depth of water sentence.
type DptData struct {
	DepthRelativeToTransducer *float64

	// Positive offsets give the distance from transducer to water line,
	// negative ones the distance to the keel.
	TransducerOffset *float64
}

// DbsData is a DBS depth below surface sentence.
type DbsData struct {
	DepthMeters  *float64
	DepthFeet    *float64
	DepthFathoms *float64
}

// MtwData is an MTW water temperature sentence.
type MtwData struct {
	// Water temperature in degrees Celsius.
	Temperature *float64
}

// VhwData is a VHW water speed and heading sentence.
type VhwData struct {
	HeadingTrue     *float64
	HeadingMagnetic *float64

	SpeedThroughWaterKnots *float64
	SpeedThroughWaterKmh   *float64
}

// HdtData is an HDT true heading sentence.
type HdtData struct {
	HeadingTrue *float64
}

// MwvData is an MWV wind speed and angle sentence.
type MwvData struct {
	// Wind angle in degrees, 0 to 359.
	WindAngle *float64

	// True for relative wind, false for true wind.
	Relative *bool

	WindSpeedKnots *float64
	WindSpeedKmh   *float64
}
