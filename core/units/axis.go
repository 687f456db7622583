package units

// NumberFormat is the notation used to write a world coordinate.
type NumberFormat string

const (
	FormatDegrees NumberFormat = "d"   // decimal degrees
	FormatHMS     NumberFormat = "hms" // hours, minutes, seconds
	FormatDMS     NumberFormat = "dms" // degrees, minutes, seconds
)

// String returns the string representation of the NumberFormat
func (f NumberFormat) String() string {
	return string(f)
}

// SpatialAxis selects the legal range of a world coordinate.
type SpatialAxis string

const (
	AxisX SpatialAxis = "x" // longitude-like
	AxisY SpatialAxis = "y" // latitude-like
)

// String returns the string representation of the SpatialAxis
func (a SpatialAxis) String() string {
	return string(a)
}
