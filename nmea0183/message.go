package nmea0183

// Message is a decoded NMEA 0183 message returned by
// Parser.ParseSentence. Type switch on it to get at the concrete
// record.
type Message interface {
	isMessage()
}

// Incomplete reports that the sentence was stored as part of a
// multi-sentence message. The assembled result is returned once the
// remaining fragments arrive.
type Incomplete struct{}

func (Incomplete) isMessage() {}

func (*VesselDynamicData) isMessage()                 {}
func (*VesselStaticData) isMessage()                  {}
func (*BaseStationReport) isMessage()                 {}
func (*UtcDateResponse) isMessage()                   {}
func (*BinaryAddressedMessage) isMessage()            {}
func (*StandardSarAircraftPositionReport) isMessage() {}
func (*UtcDateInquiry) isMessage()                    {}
func (*AddressedSafetyRelatedMessage) isMessage()     {}
func (*SafetyRelatedAcknowledgement) isMessage()      {}
func (*SafetyRelatedBroadcastMessage) isMessage()     {}
func (*Interrogation) isMessage()                     {}
func (*AssignmentModeCommand) isMessage()             {}
func (*DgnssBroadcastBinaryMessage) isMessage()       {}
func (*DataLinkManagementMessage) isMessage()         {}
func (*AidToNavigationReport) isMessage()             {}
func (*ExtendedClassBPositionReport) isMessage()      {}
func (*ChannelManagement) isMessage()                 {}
func (*GroupAssignmentCommand) isMessage()            {}
func (*SingleSlotBinaryMessage) isMessage()           {}
func (*MultipleSlotBinaryMessage) isMessage()         {}

func (*GgaData) isMessage() {}
func (*RmcData) isMessage() {}
func (*GnsData) isMessage() {}
func (*GsaData) isMessage() {}
func (GsvReport) isMessage() {}
func (*VtgData) isMessage() {}
func (*GllData) isMessage() {}
func (*AlmData) isMessage() {}
func (*DtmData) isMessage() {}
func (*MssData) isMessage() {}
func (*StnData) isMessage() {}
func (*VbwData) isMessage() {}
func (*ZdaData) isMessage() {}
func (*DptData) isMessage() {}
func (*DbsData) isMessage() {}
func (*MtwData) isMessage() {}
func (*VhwData) isMessage() {}
func (*HdtData) isMessage() {}
func (*MwvData) isMessage() {}

// LatLon is implemented by records that carry a geographical position.
type LatLon interface {
	// Lat returns the latitude in degrees, nil when not available.
	Lat() *float64
	// Lon returns the longitude in degrees, nil when not available.
	Lon() *float64
}

func (d *VesselDynamicData) Lat() *float64 { return d.Latitude }
func (d *VesselDynamicData) Lon() *float64 { return d.Longitude }

func (r *BaseStationReport) Lat() *float64 { return r.Latitude }
func (r *BaseStationReport) Lon() *float64 { return r.Longitude }

func (r *AidToNavigationReport) Lat() *float64 { return r.Latitude }
func (r *AidToNavigationReport) Lon() *float64 { return r.Longitude }

func (g *GgaData) Lat() *float64 { return g.Latitude }
func (g *GgaData) Lon() *float64 { return g.Longitude }

func (r *RmcData) Lat() *float64 { return r.Latitude }
func (r *RmcData) Lon() *float64 { return r.Longitude }

func (g *GnsData) Lat() *float64 { return g.Latitude }
func (g *GnsData) Lon() *float64 { return g.Longitude }

func (g *GllData) Lat() *float64 { return g.Latitude }
func (g *GllData) Lon() *float64 { return g.Longitude }
