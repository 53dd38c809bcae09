package sor

// This file is component G: the plain, hidden-behaviour-free data
// model. Optional blocks are modelled as pointer-typed fields — nil
// means absent, distinguishable from a present-but-empty block, per
// spec.md §9. Sequences carry their own length; redundant wire-format
// count fields are derived from sequence length at write time wherever
// spec.md allows it (see each block's EncodeXxx for where it does not).

// SorFile is the root aggregate: exactly one MapBlock and, optionally,
// one of each standard block, plus an ordered sequence of proprietary
// blocks. SorFile owns everything it references; there is no sharing
// and no cycles.
type SorFile struct {
	Map                *MapBlock
	GeneralParameters  *GeneralParametersBlock
	SupplierParameters *SupplierParametersBlock
	FixedParameters    *FixedParametersBlock
	KeyEvents          *KeyEventsBlock
	LinkParameters     *LinkParametersBlock
	DataPoints         *DataPointsBlock
	ProprietaryBlocks  []ProprietaryBlock
	Checksum           *ChecksumBlock
}

// MapBlock is the file index: the mandatory first block, listing every
// block in the file including itself.
type MapBlock struct {
	RevisionNumber uint16
	BlockSize      uint32
	BlockCount     uint16
	BlockInfo      []BlockInfo
}

// BlockInfo names one block's identifier, revision and encoded size, as
// recorded in the map.
type BlockInfo struct {
	Identifier     string
	RevisionNumber uint16
	Size           int32
}

// GeneralParametersBlock carries free-form acquisition identifiers and
// a handful of numeric fields describing the fibre under test.
type GeneralParametersBlock struct {
	RevisionNumber       uint16
	Language             string // 2 characters
	CableID              string
	FiberID              string
	FiberType            uint16
	NominalWavelength    uint16 // nm
	OriginatingLocation  string
	TerminatingLocation  string
	CableCode            string
	CurrentDataFlag      string // 2 characters
	UserOffset           int32  // 100-ps units
	UserOffsetDistance   int32
	Operator             string
	Comment              string
}

// SupplierParametersBlock carries vendor/instrument identification as
// six NUL-terminated strings: supplier name, mainframe id, mainframe
// serial number, optical module id, optical module serial number, and
// software revision.
type SupplierParametersBlock struct {
	RevisionNumber   uint16
	SupplierName     string
	OTDRMainframeID  string
	OTDRMainframeSN  string
	OTDRModuleID     string
	OTDRModuleSN     string
	SoftwareRevision string
}

// FixedParametersBlock carries acquisition metadata: the multi-pulse
// acquisition arrays (pulse_widths_used / data_spacing /
// n_data_points_for_pulse_widths_used) all share length P
// (TotalNPulseWidthsUsed).
type FixedParametersBlock struct {
	RevisionNumber    uint16
	DateTimeStamp     uint32 // Unix epoch seconds
	UnitsOfDistance   string // 2 characters
	ActualWavelength  uint16
	AcquisitionOffset int32

	TotalNPulseWidthsUsed         uint16
	PulseWidthsUsed               []uint16
	DataSpacing                   []int32
	NDataPointsForPulseWidthsUsed []uint32

	GroupIndex             uint32
	BackscatterCoefficient int16
	NumberOfAverages       uint32
	AveragingTime          uint16
	AcquisitionRange       int32
	FrontPanelOffset       int32
	NoiseFloorLevel        uint16
	NoiseFloorScaleFactor  int16
	PowerOffset            uint16
	LossThreshold          uint16
	ReflectanceThreshold   uint16
	EndOfFibreThreshold    uint16
	TraceType              string // 2 characters
	WindowCoordinate1      int32
	WindowCoordinate2      int32
	WindowCoordinate3      int32
	WindowCoordinate4      int32
}

// KeyEventsBlock lists every detected feature on the trace, plus the
// trailing LastKeyEvent summary.
type KeyEventsBlock struct {
	RevisionNumber   uint16
	NumberOfKeyEvents uint16
	KeyEvents        []KeyEvent
	LastKeyEvent     LastKeyEvent
}

// KeyEvent describes a single detected feature: a splice, connector,
// end-of-fibre, or similar.
type KeyEvent struct {
	EventNumber                uint16
	PropagationTime             int32 // 100-ps units
	AttenuationCoefficientLeadIn int16
	EventLoss                  int16
	EventReflectance           int32
	EventCode                  string // 6 bytes, see DecodeEventCode
	LossMeasurementTechnique   string // 2 characters
	MarkerLocation1            int32
	MarkerLocation2            int32
	MarkerLocation3            int32
	MarkerLocation4            int32
	MarkerLocation5            int32
	Comment                    string
}

// LastKeyEvent extends KeyEvent with end-to-end and optical-return-loss
// figures, each anchored by two marker positions.
type LastKeyEvent struct {
	KeyEvent
	EndToEndLoss             int16
	EndToEndMarkerPosition1  int32
	EndToEndMarkerPosition2  int32
	OpticalReturnLoss        int16
	OpticalReturnLossMarkerPosition1 int32
	OpticalReturnLossMarkerPosition2 int32
}

// EventCode decomposes a KeyEvent's raw 6-character event code into its
// documented fields. Characters outside the documented alphabets are
// retained verbatim in Raw and passed through unchanged in the
// subfields; a subfield is left at its zero value only when Raw is too
// short to hold it — this codec never normalizes vendor quirks
// (spec.md §1 Non-goals).
type EventCode struct {
	Raw             string // always exactly 6 bytes on the wire
	ReflectivityClass byte  // '0', '1', or '2'
	SourceCode        byte  // one of 'A','M','E','F','O','D'
	LandmarkNumber    string // bytes 3-6, or "9999" fill
}

// DecodeEventCode splits a raw 6-byte event code into its documented
// subfields without validating or normalizing its contents.
func DecodeEventCode(raw string) EventCode {
	ec := EventCode{Raw: raw}
	if len(raw) >= 1 {
		ec.ReflectivityClass = raw[0]
	}
	if len(raw) >= 2 {
		ec.SourceCode = raw[1]
	}
	if len(raw) >= 6 {
		ec.LandmarkNumber = raw[2:6]
	}
	return ec
}

// LinkParametersBlock is read-side only: the writer emits no body for
// it (spec.md §4.D, §9).
type LinkParametersBlock struct {
	RevisionNumber     uint16
	NumberOfLandmarks  uint16
	Landmarks          []Landmark
}

// Landmark describes one cataloged feature along the link (manholes,
// slack loops, and similar), as modelled by LinkParameters.
type Landmark struct {
	LandmarkNumber    uint16
	LandmarkCode      string // 2 characters
	LandmarkLocation  int32
	RelatedEventNumber uint16
	GPSLongitude      int32
	GPSLatitude       int32
	FiberCorrectionFactorLeadIn int16
	SheathMarkerEntranceLocation int32
	SheathMarkerLeadInDistance int32
	Units             string // 2 characters
	LandmarkCode2     string
	Comment           string
}

// DataPointsBlock carries the raw backscatter trace samples, split
// across one or more scale factors.
type DataPointsBlock struct {
	RevisionNumber            uint16
	NumberOfDataPoints        uint32
	TotalNumberScaleFactorsUsed uint16
	ScaleFactors              []DataPointsAtScaleFactor
}

// DataPointsAtScaleFactor is one contiguous run of samples sharing a
// scale factor. ScaleFactor is stored as 1000x the actual value;
// callers apply it externally (spec.md §1 Non-goals — no physics here).
type DataPointsAtScaleFactor struct {
	NPoints     uint32
	ScaleFactor uint16
	Data        []uint16
}

// ProprietaryBlock preserves the opaque bytes of any block whose
// identifier is not in the standard catalog, verbatim and in order.
type ProprietaryBlock struct {
	Header string
	Data   []byte
}

// ChecksumBlock carries the file's optional trailing checksum value.
type ChecksumBlock struct {
	RevisionNumber uint16
	Checksum       int16
}
