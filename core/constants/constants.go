package constants

import "github.com/cartavis/carta-go/core/units"

// Scaling is a colormap scaling type.
type Scaling int

const (
	Linear Scaling = iota
	Log
	Sqrt
	Square
	Power
	Gamma
)

var Scalings = define("constants.Scaling",
	Member[Scaling]{"LINEAR", Linear},
	Member[Scaling]{"LOG", Log},
	Member[Scaling]{"SQRT", Sqrt},
	Member[Scaling]{"SQUARE", Square},
	Member[Scaling]{"POWER", Power},
	Member[Scaling]{"GAMMA", Gamma},
)

// CoordinateSystem is a celestial coordinate system.
type CoordinateSystem string

const (
	SystemAuto     CoordinateSystem = "Auto"
	SystemEcliptic CoordinateSystem = "Ecliptic"
	SystemFK4      CoordinateSystem = "FK4"
	SystemFK5      CoordinateSystem = "FK5"
	SystemGalactic CoordinateSystem = "Galactic"
	SystemICRS     CoordinateSystem = "ICRS"
)

var CoordinateSystems = define("constants.CoordinateSystem",
	Member[CoordinateSystem]{"AUTO", SystemAuto},
	Member[CoordinateSystem]{"ECLIPTIC", SystemEcliptic},
	Member[CoordinateSystem]{"FK4", SystemFK4},
	Member[CoordinateSystem]{"FK5", SystemFK5},
	Member[CoordinateSystem]{"GALACTIC", SystemGalactic},
	Member[CoordinateSystem]{"ICRS", SystemICRS},
)

// LabelType places axis labels inside or outside the image.
type LabelType string

const (
	LabelInternal LabelType = "Internal"
	LabelExternal LabelType = "External"
)

var LabelTypes = define("constants.LabelType",
	Member[LabelType]{"INTERNAL", LabelInternal},
	Member[LabelType]{"EXTERNAL", LabelExternal},
)

// BeamType is the beam rendering style.
type BeamType string

const (
	BeamOpen  BeamType = "Open"
	BeamSolid BeamType = "Solid"
)

var BeamTypes = define("constants.BeamType",
	Member[BeamType]{"OPEN", BeamOpen},
	Member[BeamType]{"SOLID", BeamSolid},
)

// SmoothingMode is a contour smoothing mode.
type SmoothingMode int

const (
	NoSmoothing SmoothingMode = iota
	BlockAverage
	GaussianBlur
)

var SmoothingModes = define("constants.SmoothingMode",
	Member[SmoothingMode]{"NO_SMOOTHING", NoSmoothing},
	Member[SmoothingMode]{"BLOCK_AVERAGE", BlockAverage},
	Member[SmoothingMode]{"GAUSSIAN_BLUR", GaussianBlur},
)

// ContourDashMode is a contour dash style.
type ContourDashMode string

const (
	DashNone         ContourDashMode = "None"
	DashDashed       ContourDashMode = "Dashed"
	DashNegativeOnly ContourDashMode = "NegativeOnly"
)

var ContourDashModes = define("constants.ContourDashMode",
	Member[ContourDashMode]{"NONE", DashNone},
	Member[ContourDashMode]{"DASHED", DashDashed},
	Member[ContourDashMode]{"NEGATIVE_ONLY", DashNegativeOnly},
)

// Polarization matches the POLARIZATIONS enum of the frontend.
type Polarization int

const (
	PolYX       Polarization = -8
	PolXY       Polarization = -7
	PolYY       Polarization = -6
	PolXX       Polarization = -5
	PolLR       Polarization = -4
	PolRL       Polarization = -3
	PolLL       Polarization = -2
	PolRR       Polarization = -1
	PolI        Polarization = 1
	PolQ        Polarization = 2
	PolU        Polarization = 3
	PolV        Polarization = 4
	PolPTotal   Polarization = 13
	PolPLinear  Polarization = 14
	PolPFTotal  Polarization = 15
	PolPFLinear Polarization = 16
	PolPAngle   Polarization = 17
)

var Polarizations = define("constants.Polarization",
	Member[Polarization]{"YX", PolYX},
	Member[Polarization]{"XY", PolXY},
	Member[Polarization]{"YY", PolYY},
	Member[Polarization]{"XX", PolXX},
	Member[Polarization]{"LR", PolLR},
	Member[Polarization]{"RL", PolRL},
	Member[Polarization]{"LL", PolLL},
	Member[Polarization]{"RR", PolRR},
	Member[Polarization]{"I", PolI},
	Member[Polarization]{"Q", PolQ},
	Member[Polarization]{"U", PolU},
	Member[Polarization]{"V", PolV},
	Member[Polarization]{"PTOTAL", PolPTotal},
	Member[Polarization]{"PLINEAR", PolPLinear},
	Member[Polarization]{"PFTOTAL", PolPFTotal},
	Member[Polarization]{"PFLINEAR", PolPFLinear},
	Member[Polarization]{"PANGLE", PolPAngle},
)

// SpatialAxes enumerates the spatial axes.
var SpatialAxes = define("constants.SpatialAxis",
	Member[units.SpatialAxis]{"X", units.AxisX},
	Member[units.SpatialAxis]{"Y", units.AxisY},
)

// NumberFormats enumerates the world coordinate notations.
var NumberFormats = define("constants.NumberFormat",
	Member[units.NumberFormat]{"DEGREES", units.FormatDegrees},
	Member[units.NumberFormat]{"HMS", units.FormatHMS},
	Member[units.NumberFormat]{"DMS", units.FormatDMS},
)

// Auto is the sentinel accepted in place of a number where the frontend
// chooses a value itself.
type Auto string

// AutoValue is the only member of Autos.
const AutoValue Auto = "auto"

var Autos = define("constants.Auto", Member[Auto]{"AUTO", AutoValue})
