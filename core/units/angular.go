package units

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cartavis/carta-go/core/invariant"
)

// SizeUnit is one angular size unit: the tokens it accepts on input, the
// token it emits on output and its scale factors.
type SizeUnit struct {
	Name   string   // Human-readable name used in error messages
	Tokens []string // Accepted input tokens; "" accepts a bare number
	Output string   // Token appended to canonical output

	// OutputFactor scales a value in this unit to the value written
	// before Output.
	OutputFactor float64

	// ArcsecFactor scales a value in this unit to arcseconds.
	ArcsecFactor float64

	symbolRe *regexp.Regexp // nil when the unit has no symbol tokens
	wordRe   *regexp.Regexp // nil when the unit has no word tokens
}

// Built-in units. Sub-arcsecond units are written out as scaled arcseconds
// because the frontend only understands deg, ' and ".
var (
	Degrees = newSizeUnit("degree", "deg", 1, 3600,
		"deg", "degree", "degrees")
	Arcmin = newSizeUnit("arcminute", "'", 1, 60,
		"'", "arcminutes", "arcminute", "arcmin", "amin", "′")
	Arcsec = newSizeUnit("arcsecond", `"`, 1, 1,
		`"`, `""`, "", "arcseconds", "arcsecond", "arcsec", "asec", "″")
	Milliarcsec = newSizeUnit("milliarcsecond", `"`, 1e-3, 1e-3,
		"milliarcseconds", "milliarcsecond", "milliarcsec", "mas")
	Microarcsec = newSizeUnit("microarcsecond", `"`, 1e-6, 1e-6,
		"microarcseconds", "microarcsecond", "microarcsec", "µas", "uas")
)

var sizeRegistry = newSizeUnitRegistry(Degrees, Arcmin, Arcsec, Milliarcsec, Microarcsec)

// SizeUnits returns the registered units in registration order.
func SizeUnits() []*SizeUnit {
	out := make([]*SizeUnit, len(sizeRegistry.units))
	copy(out, sizeRegistry.units)
	return out
}

// LookupSizeUnit returns the unit owning token. Lookup ignores case.
func LookupSizeUnit(token string) (*SizeUnit, bool) {
	return sizeRegistry.lookup(token)
}

// isSymbol reports whether a token is written directly after the number:
// single characters and letterless tokens such as "". Tokens with letters
// may be separated from the number by whitespace.
func isSymbol(token string) bool {
	return utf8.RuneCountInString(token) <= 1 || strings.IndexFunc(token, unicode.IsLetter) < 0
}

func newSizeUnit(name, output string, outputFactor, arcsecFactor float64, tokens ...string) *SizeUnit {
	invariant.Precondition(len(tokens) > 0, "size unit %q has no tokens", name)
	invariant.Positive(outputFactor, "outputFactor")
	invariant.Positive(arcsecFactor, "arcsecFactor")

	u := &SizeUnit{
		Name:         name,
		Tokens:       tokens,
		Output:       output,
		OutputFactor: outputFactor,
		ArcsecFactor: arcsecFactor,
	}

	var symbols, words []string
	for _, t := range tokens {
		if isSymbol(t) {
			symbols = append(symbols, t)
		} else {
			words = append(words, t)
		}
	}
	if len(symbols) > 0 {
		u.symbolRe = regexp.MustCompile(`(?i)^(` + numberPattern + `)(` + alternation(symbols) + `)$`)
	}
	if len(words) > 0 {
		u.wordRe = regexp.MustCompile(`(?i)^(` + numberPattern + `)\s*(` + alternation(words) + `)$`)
	}
	return u
}

// alternation builds a regexp alternation of literal tokens, longest first,
// so that a prefix token never shadows a longer one.
func alternation(tokens []string) string {
	sorted := append([]string(nil), tokens...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return utf8.RuneCountInString(sorted[i]) > utf8.RuneCountInString(sorted[j])
	})
	quoted := make([]string, len(sorted))
	for i, t := range sorted {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return strings.Join(quoted, "|")
}

type sizeUnitRegistry struct {
	units    []*SizeUnit
	byToken  map[string]*SizeUnit
	symbolRe *regexp.Regexp
	wordRe   *regexp.Regexp
}

func newSizeUnitRegistry(units ...*SizeUnit) *sizeUnitRegistry {
	r := &sizeUnitRegistry{
		units:   units,
		byToken: make(map[string]*SizeUnit),
	}
	var symbols, words []string
	for _, u := range units {
		for _, t := range u.Tokens {
			key := strings.ToLower(t)
			owner, dup := r.byToken[key]
			invariant.Invariant(!dup, "size unit token %q registered by both %s and %s", t, ownerName(owner), u.Name)
			r.byToken[key] = u
			if isSymbol(t) {
				symbols = append(symbols, t)
			} else {
				words = append(words, t)
			}
		}
	}
	r.symbolRe = regexp.MustCompile(`(?i)^(` + numberPattern + `)(` + alternation(symbols) + `)$`)
	r.wordRe = regexp.MustCompile(`(?i)^(` + numberPattern + `)\s*(` + alternation(words) + `)$`)
	return r
}

func ownerName(u *SizeUnit) string {
	if u == nil {
		return "<nil>"
	}
	return u.Name
}

func (r *sizeUnitRegistry) lookup(token string) (*SizeUnit, bool) {
	if u, ok := r.byToken[strings.ToLower(token)]; ok {
		return u, true
	}
	// Case folding in the regexp engine is wider than ToLower for a few
	// runes (µ and μ fold together), so fall back to a folding scan.
	for _, u := range r.units {
		for _, t := range u.Tokens {
			if strings.EqualFold(t, token) {
				return u, true
			}
		}
	}
	return nil, false
}

// match tries the word grammar first, then the symbol grammar, and returns
// the numeric part and the matched token.
func matchSize(wordRe, symbolRe *regexp.Regexp, value string) (number, token string, ok bool) {
	for _, re := range []*regexp.Regexp{wordRe, symbolRe} {
		if re == nil {
			continue
		}
		if m := re.FindStringSubmatch(value); m != nil {
			return m[1], m[2], true
		}
	}
	return "", "", false
}

// AngularSize is an angular extent expressed in a specific unit.
type AngularSize struct {
	Value float64
	Unit  *SizeUnit
}

// NewAngularSize returns an AngularSize of value in unit.
func NewAngularSize(value float64, unit *SizeUnit) AngularSize {
	invariant.NotNil(unit, "unit")
	return AngularSize{Value: value, Unit: unit}
}

// ValidAngularSize reports whether value is in any recognized angular size
// format.
func ValidAngularSize(value string) bool {
	_, _, ok := matchSize(sizeRegistry.wordRe, sizeRegistry.symbolRe, value)
	return ok
}

// ParseAngularSize parses value using every registered unit. The unit is
// chosen by the token following the number; a bare number is arcseconds.
func ParseAngularSize(value string) (AngularSize, error) {
	number, token, ok := matchSize(sizeRegistry.wordRe, sizeRegistry.symbolRe, value)
	if !ok {
		return AngularSize{}, unrecognized(value, "angular size")
	}
	unit, ok := sizeRegistry.lookup(token)
	if !ok {
		return AngularSize{}, unrecognized(value, "angular size")
	}
	return parseSizeNumber(value, number, unit)
}

// Valid reports whether value is written in this unit.
func (u *SizeUnit) Valid(value string) bool {
	_, _, ok := matchSize(u.wordRe, u.symbolRe, value)
	return ok
}

// Parse parses value, accepting only this unit's own tokens.
func (u *SizeUnit) Parse(value string) (AngularSize, error) {
	number, _, ok := matchSize(u.wordRe, u.symbolRe, value)
	if !ok {
		return AngularSize{}, unrecognized(value, u.Name)
	}
	return parseSizeNumber(value, number, u)
}

// String returns the unit name
func (u *SizeUnit) String() string {
	return u.Name
}

func parseSizeNumber(value, number string, unit *SizeUnit) (AngularSize, error) {
	v, err := parseFloat(number)
	if err != nil {
		return AngularSize{}, unrecognized(value, unit.Name)
	}
	return AngularSize{Value: v, Unit: unit}, nil
}

// AngularSizeFromArcsec picks the most readable unit for an arcsecond value:
// milliarcseconds below 0.002", arcseconds below 2', arcminutes below 2deg
// and degrees above that.
func AngularSizeFromArcsec(arcsec float64) AngularSize {
	var unit *SizeUnit
	switch abs := math.Abs(arcsec); {
	case abs < 0.002:
		unit = Milliarcsec
	case abs < 120:
		unit = Arcsec
	case abs < 7200:
		unit = Arcmin
	default:
		unit = Degrees
	}
	return unit.FromArcsec(arcsec)
}

// FromArcsec converts an arcsecond value into this unit.
func (u *SizeUnit) FromArcsec(arcsec float64) AngularSize {
	return AngularSize{Value: arcsec / u.ArcsecFactor, Unit: u}
}

// Arcsec returns the size in arcseconds.
func (s AngularSize) Arcsec() float64 {
	return s.Value * s.Unit.ArcsecFactor
}

// In converts the size into unit.
func (s AngularSize) In(unit *SizeUnit) AngularSize {
	return unit.FromArcsec(s.Arcsec())
}

// Equal reports whether two sizes describe the same extent, allowing for
// float rounding introduced by unit conversion.
func (s AngularSize) Equal(other AngularSize) bool {
	a, b := s.Arcsec(), other.Arcsec()
	if a == b {
		return true
	}
	return math.Abs(a-b) <= 1e-12*math.Max(math.Abs(a), math.Abs(b))
}

// String returns the canonical frontend form, for example 30' or 4.5".
func (s AngularSize) String() string {
	return formatNumber(s.Value*s.Unit.OutputFactor) + s.Unit.Output
}

func unrecognized(value, what string) *ParseError {
	return &ParseError{
		Value: value,
		Err:   ErrUnrecognizedFormat,
		Msg:   fmt.Sprintf("%q is not in a recognized %s format", value, what),
	}
}
