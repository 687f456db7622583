package constants

// Overlay is the path of an overlay element store, relative to the overlay
// store.
type Overlay string

const (
	OverlayGlobal   Overlay = "global"
	OverlayTitle    Overlay = "title"
	OverlayGrid     Overlay = "grid"
	OverlayBorder   Overlay = "border"
	OverlayTicks    Overlay = "ticks"
	OverlayAxes     Overlay = "axes"
	OverlayNumbers  Overlay = "numbers"
	OverlayLabels   Overlay = "labels"
	OverlayColorbar Overlay = "colorbar"
	// OverlayBeam has an extra layer of indirection.
	OverlayBeam Overlay = "beam.settingsForDisplay"
)

var Overlays = define("constants.Overlay",
	Member[Overlay]{"GLOBAL", OverlayGlobal},
	Member[Overlay]{"TITLE", OverlayTitle},
	Member[Overlay]{"GRID", OverlayGrid},
	Member[Overlay]{"BORDER", OverlayBorder},
	Member[Overlay]{"TICKS", OverlayTicks},
	Member[Overlay]{"AXES", OverlayAxes},
	Member[Overlay]{"NUMBERS", OverlayNumbers},
	Member[Overlay]{"LABELS", OverlayLabels},
	Member[Overlay]{"COLORBAR", OverlayColorbar},
	Member[Overlay]{"BEAM", OverlayBeam},
)

// PaletteColor is a theme-aware color used for overlay elements.
type PaletteColor string

const (
	PaletteBlue      PaletteColor = "auto-blue"
	PaletteOrange    PaletteColor = "auto-orange"
	PaletteGreen     PaletteColor = "auto-green"
	PaletteRed       PaletteColor = "auto-red"
	PaletteVermilion PaletteColor = "auto-vermilion"
	PaletteRose      PaletteColor = "auto-rose"
	PaletteViolet    PaletteColor = "auto-violet"
	PaletteSepia     PaletteColor = "auto-sepia"
	PaletteIndigo    PaletteColor = "auto-indigo"
	PaletteGray      PaletteColor = "auto-gray"
	PaletteLime      PaletteColor = "auto-lime"
	PaletteTurquoise PaletteColor = "auto-turquoise"
	PaletteForest    PaletteColor = "auto-forest"
	PaletteGold      PaletteColor = "auto-gold"
	PaletteCobalt    PaletteColor = "auto-cobalt"
	PaletteLightGray PaletteColor = "auto-light_gray"
	PaletteDarkGray  PaletteColor = "auto-dark_gray"
	PaletteWhite     PaletteColor = "auto-white"
	PaletteBlack     PaletteColor = "auto-black"
)

var PaletteColors = define("constants.PaletteColor",
	Member[PaletteColor]{"BLUE", PaletteBlue},
	Member[PaletteColor]{"ORANGE", PaletteOrange},
	Member[PaletteColor]{"GREEN", PaletteGreen},
	Member[PaletteColor]{"RED", PaletteRed},
	Member[PaletteColor]{"VERMILION", PaletteVermilion},
	Member[PaletteColor]{"ROSE", PaletteRose},
	Member[PaletteColor]{"VIOLET", PaletteViolet},
	Member[PaletteColor]{"SEPIA", PaletteSepia},
	Member[PaletteColor]{"INDIGO", PaletteIndigo},
	Member[PaletteColor]{"GRAY", PaletteGray},
	Member[PaletteColor]{"LIME", PaletteLime},
	Member[PaletteColor]{"TURQUOISE", PaletteTurquoise},
	Member[PaletteColor]{"FOREST", PaletteForest},
	Member[PaletteColor]{"GOLD", PaletteGold},
	Member[PaletteColor]{"COBALT", PaletteCobalt},
	Member[PaletteColor]{"LIGHT_GRAY", PaletteLightGray},
	Member[PaletteColor]{"DARK_GRAY", PaletteDarkGray},
	Member[PaletteColor]{"WHITE", PaletteWhite},
	Member[PaletteColor]{"BLACK", PaletteBlack},
)

// Palette maps each palette color to its hex value in one theme.
type Palette map[PaletteColor]string

// LightPalette is the light theme palette.
var LightPalette = Palette{
	PaletteDarkGray:  "#252a31",
	PaletteGray:      "#738091",
	PaletteLightGray: "#dce0e5",
	PaletteBlue:      "#215db0",
	PaletteGreen:     "#1c6e42",
	PaletteOrange:    "#935610",
	PaletteRed:       "#ac2f33",
	PaletteVermilion: "#b83211",
	PaletteRose:      "#c22762",
	PaletteViolet:    "#7c327c",
	PaletteIndigo:    "#634dbf",
	PaletteCobalt:    "#2458b3",
	PaletteTurquoise: "#007067",
	PaletteForest:    "#238c2c",
	PaletteLime:      "#5a701a",
	PaletteGold:      "#866103",
	PaletteSepia:     "#7a542e",
	PaletteWhite:     "#ffffff",
	PaletteBlack:     "#000000",
}

// DarkPalette is the dark theme palette.
var DarkPalette = Palette{
	PaletteDarkGray:  "#383e47",
	PaletteGray:      "#abb3bf",
	PaletteLightGray: "#edeff2",
	PaletteBlue:      "#4c90f0",
	PaletteGreen:     "#32a467",
	PaletteOrange:    "#ec9a3c",
	PaletteRed:       "#e76a6e",
	PaletteVermilion: "#eb6847",
	PaletteRose:      "#f5498b",
	PaletteViolet:    "#bd6bbd",
	PaletteIndigo:    "#9881f3",
	PaletteCobalt:    "#4580e6",
	PaletteTurquoise: "#13c9ba",
	PaletteForest:    "#43bf4d",
	PaletteLime:      "#b6d94c",
	PaletteGold:      "#f0b726",
	PaletteSepia:     "#af855a",
	PaletteWhite:     "#ffffff",
	PaletteBlack:     "#000000",
}
