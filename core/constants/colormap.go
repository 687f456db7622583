package constants

import "strings"

// Colormap is a raster or contour colormap name.
type Colormap string

// Frequently used colormaps.
const (
	Viridis Colormap = "viridis"
	Inferno Colormap = "inferno"
	Magma   Colormap = "magma"
	Plasma  Colormap = "plasma"
	Gray    Colormap = "gray"
)

var colormapNames = []string{
	"accent", "afmhot", "autumn", "binary", "Blues", "bone", "BrBG", "brg", "BuGn", "BuPu",
	"bwr", "CMRmap", "cool", "coolwarm", "copper", "cubehelix", "dark2", "flag",
	"gist_earth", "gist_gray", "gist_heat", "gist_ncar", "gist_rainbow", "gist_stern",
	"gist_yarg", "GnBu", "gnuplot", "gnuplot2", "gray", "greens", "greys", "hot", "hsv",
	"inferno", "jet", "magma", "nipy_spectral", "ocean", "oranges", "OrRd", "paired",
	"pastel1", "pastel2", "pink", "PiYG", "plasma", "PRGn", "prism", "PuBu", "PuBuGn",
	"PuOr", "PuRd", "purples", "rainbow", "RdBu", "RdGy", "RdPu", "RdYlBu", "RdYlGn",
	"reds", "seismic", "set1", "set2", "set3", "spectral", "spring", "summer", "tab10",
	"tab20", "tab20b", "tab20c", "terrain", "viridis", "winter", "Wistia", "YlGn", "YlGnBu",
	"YlOrBr", "YlOrRd",
}

// Colormaps enumerates every colormap. Member names are the upper-cased
// colormap names, for example VIRIDIS.
var Colormaps = func() *Enum[Colormap] {
	members := make([]Member[Colormap], len(colormapNames))
	for i, n := range colormapNames {
		members[i] = Member[Colormap]{Name: strings.ToUpper(n), Value: Colormap(n)}
	}
	return define("constants.Colormap", members...)
}()
