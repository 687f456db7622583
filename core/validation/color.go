package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ColorNames are the named colors understood by HTML.
var ColorNames = []string{
	"aliceblue", "antiquewhite", "aqua", "aquamarine", "azure", "beige", "bisque", "black",
	"blanchedalmond", "blue", "blueviolet", "brown", "burlywood", "cadetblue", "chartreuse",
	"chocolate", "coral", "cornflowerblue", "cornsilk", "crimson", "cyan", "darkblue",
	"darkcyan", "darkgoldenrod", "darkgray", "darkgrey", "darkgreen", "darkkhaki",
	"darkmagenta", "darkolivegreen", "darkorange", "darkorchid", "darkred", "darksalmon",
	"darkseagreen", "darkslateblue", "darkslategray", "darkslategrey", "darkturquoise",
	"darkviolet", "deeppink", "deepskyblue", "dimgray", "dimgrey", "dodgerblue",
	"firebrick", "floralwhite", "forestgreen", "fuchsia", "gainsboro", "ghostwhite", "gold",
	"goldenrod", "gray", "grey", "green", "greenyellow", "honeydew", "hotpink", "indianred",
	"indigo", "ivory", "khaki", "lavender", "lavenderblush", "lawngreen", "lemonchiffon",
	"lightblue", "lightcoral", "lightcyan", "lightgoldenrodyellow", "lightgray",
	"lightgrey", "lightgreen", "lightpink", "lightsalmon", "lightseagreen", "lightskyblue",
	"lightslategray", "lightslategrey", "lightsteelblue", "lightyellow", "lime",
	"limegreen", "linen", "magenta", "maroon", "mediumaquamarine", "mediumblue",
	"mediumorchid", "mediumpurple", "mediumseagreen", "mediumslateblue",
	"mediumspringgreen", "mediumturquoise", "mediumvioletred", "midnightblue", "mintcream",
	"mistyrose", "moccasin", "navajowhite", "navy", "oldlace", "olive", "olivedrab",
	"orange", "orangered", "orchid", "palegoldenrod", "palegreen", "paleturquoise",
	"palevioletred", "papayawhip", "peachpuff", "peru", "pink", "plum", "powderblue",
	"purple", "red", "rosybrown", "royalblue", "saddlebrown", "salmon", "sandybrown",
	"seagreen", "seashell", "sienna", "silver", "skyblue", "slateblue", "slategray",
	"slategrey", "snow", "springgreen", "steelblue", "tan", "teal", "thistle", "tomato",
	"turquoise", "violet", "wheat", "white", "whitesmoke", "yellow", "yellowgreen",
}

var (
	colorTupleRe = regexp.MustCompile(`^(hsla?|rgba?)\((.*)\)$`)
	whitespaceRe = regexp.MustCompile(`\s`)
)

// TupleColor accepts rgb(), rgba(), hsl() and hsla() color strings.
type TupleColor struct{}

// NewTupleColor creates a TupleColor descriptor.
func NewTupleColor() *TupleColor {
	return &TupleColor{}
}

// Validate parses the tuple and checks every component.
func (p *TupleColor) Validate(value any, _ Receiver) error {
	s, ok := asString(value)
	if !ok {
		return shapeError("%s has type %s but a string was expected.", formatValue(value), typeName(value))
	}
	s = whitespaceRe.ReplaceAllString(s, "")
	m := colorTupleRe.FindStringSubmatch(s)
	if m == nil {
		return rangeError("%s is not %s.", s, p.Description())
	}
	fn, params := m[1], strings.Split(m[2], ",")

	var err error
	switch fn {
	case "rgb":
		err = checkRGB(params)
	case "rgba":
		err = checkRGBA(params)
	case "hsl":
		err = checkHSL(params)
	case "hsla":
		err = checkHSLA(params)
	}
	if err != nil {
		return rangeError("%s is not a valid %s color tuple: %v", s, strings.ToUpper(fn), err)
	}
	return nil
}

// Description returns "an HTML color tuple".
func (p *TupleColor) Description() string {
	return "an HTML color tuple"
}

// JSONSchema returns a string schema with the html-color-tuple format.
func (p *TupleColor) JSONSchema() map[string]any {
	return map[string]any{"type": "string", "format": FormatColorTuple, "description": p.Description()}
}

func checkLength(params []string, n int) error {
	if len(params) != n {
		return fmt.Errorf("expected %d parameters but got %d.", n, len(params))
	}
	return nil
}

func checkPercentage(param string) error {
	num, ok := strings.CutSuffix(param, "%")
	if ok {
		if v, err := strconv.ParseFloat(num, 64); err == nil && v >= 0 && v <= 100 {
			return nil
		}
	}
	return fmt.Errorf("%s is not a valid percentage.", param)
}

func checkBetween(param string, lo, hi float64) error {
	v, err := strconv.ParseFloat(param, 64)
	if err != nil || v < lo || v > hi {
		return fmt.Errorf("%s is not a number between %s and %s.", param, formatFloat(lo), formatFloat(hi))
	}
	return nil
}

func checkRGB(params []string) error {
	if err := checkLength(params, 3); err != nil {
		return err
	}
	if allOf(params, checkPercentage) == nil {
		return nil
	}
	if allOf(params, func(p string) error { return checkBetween(p, 0, 255) }) == nil {
		return nil
	}
	return errors.New("parameters must either all be percentages or all be numbers between 0 and 255.")
}

func checkRGBA(params []string) error {
	if err := checkLength(params, 4); err != nil {
		return err
	}
	if err := checkRGB(params[:3]); err != nil {
		return err
	}
	return checkBetween(params[3], 0, 1)
}

func checkHSL(params []string) error {
	if err := checkLength(params, 3); err != nil {
		return err
	}
	if err := checkBetween(params[0], 0, 360); err != nil {
		return err
	}
	if err := checkPercentage(params[1]); err != nil {
		return err
	}
	return checkPercentage(params[2])
}

func checkHSLA(params []string) error {
	if err := checkLength(params, 4); err != nil {
		return err
	}
	if err := checkHSL(params[:3]); err != nil {
		return err
	}
	return checkBetween(params[3], 0, 1)
}

func allOf(params []string, check func(string) error) error {
	for _, p := range params {
		if err := check(p); err != nil {
			return err
		}
	}
	return nil
}

// NewColor returns a descriptor for any HTML color specification: a named
// color, a 3- or 6-digit hex triplet, or a color tuple.
func NewColor() *Union {
	names := make([]any, len(ColorNames))
	for i, n := range ColorNames {
		names[i] = n
	}
	return NewUnion(
		NewOneOf(names...).Normalized(Lower),
		NewString("^#[0-9a-f]{6}$", IgnoreCase),
		NewString("^#[0-9a-f]{3}$", IgnoreCase),
		NewTupleColor(),
	).Described("an HTML color specification")
}
