package units

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDegreesCoordinateBounds(t *testing.T) {
	tests := []struct {
		input string
		axis  SpatialAxis
		err   error
	}{
		{"359", AxisX, nil},
		{"0", AxisX, nil},
		{"359.999", AxisX, nil},
		{"360", AxisX, ErrOutOfRange},
		{"361", AxisX, ErrOutOfRange},
		{"-1", AxisX, ErrOutOfRange},
		{"91", AxisY, ErrOutOfRange},
		{"90", AxisY, nil},
		{"-90", AxisY, nil},
		{"-90.5", AxisY, ErrOutOfRange},
		{"12 deg", AxisX, nil},
		{"-12degrees", AxisY, nil},
		{"12:00:00", AxisX, ErrUnrecognizedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input+"/"+tt.axis.String(), func(t *testing.T) {
			_, err := DegreesNotation.Parse(tt.input, tt.axis)
			if tt.err == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("error = %v, want %v", err, tt.err)
			}
		})
	}
}

func TestDegreeUnitKeepsSign(t *testing.T) {
	c, err := DegreesNotation.Parse("-12.5 deg", AxisY)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.(DegreesCoordinate).Degrees; got != -12.5 {
		t.Errorf("degrees = %v, want -12.5", got)
	}
}

func TestSexagesimalBounds(t *testing.T) {
	tests := []struct {
		notation *Notation
		input    string
		axis     SpatialAxis
		err      error
	}{
		{HMSNotation, "23:00:00", AxisX, nil},
		{HMSNotation, "23:00:00", AxisY, ErrOutOfRange},
		{HMSNotation, "6:00:00", AxisY, nil},
		{HMSNotation, "-6:00:00", AxisY, nil},
		{HMSNotation, "6:00:01", AxisY, ErrOutOfRange},
		{HMSNotation, "-6:01:00", AxisY, ErrOutOfRange},
		{HMSNotation, "-1:00:00", AxisX, ErrOutOfRange},
		{HMSNotation, "24:00:00", AxisX, ErrUnrecognizedFormat},
		{DMSNotation, "359:59:59", AxisX, nil},
		{DMSNotation, "360:00:00", AxisX, ErrOutOfRange},
		{DMSNotation, "90:00:00", AxisY, nil},
		{DMSNotation, "90:00:00.1", AxisY, ErrOutOfRange},
		{DMSNotation, "-89d59m", AxisY, nil},
		{DMSNotation, "91d", AxisY, ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.notation.Name+" "+tt.input+"/"+tt.axis.String(), func(t *testing.T) {
			_, err := tt.notation.Parse(tt.input, tt.axis)
			if tt.err == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("error = %v, want %v", err, tt.err)
			}
		})
	}
}

func TestParseWorldCoordinateFormatting(t *testing.T) {
	tests := []struct {
		input  string
		axis   SpatialAxis
		want   string
		format NumberFormat
	}{
		{"12:34:56.789", AxisX, "12:34:56.789", FormatHMS},
		{"12h34m56.789s", AxisX, "12:34:56.789", FormatHMS},
		{"1:2:3", AxisX, "1:02:03", FormatHMS},
		{"::", AxisX, "0:00:00", FormatHMS},
		{"", AxisX, "0:00:00", FormatHMS},
		{"-0:30:00", AxisY, "-0:30:00", FormatHMS},
		{"10m", AxisX, "0:10:00", FormatHMS},
		{"100d", AxisX, "100:00:00", FormatDMS},
		{"12:34:56.0000001", AxisX, "12:34:56.0000001", FormatHMS},
		{"12:34:59.9999999", AxisX, "12:34:59.9999999", FormatHMS},
		{"12:34:59.9999999999", AxisX, "12:35:00", FormatHMS},
		{"12:59:59.9999999999", AxisX, "13:00:00", FormatHMS},
		{"23:59:59.9999999999", AxisX, "0:00:00", FormatHMS},
		{"-5:59:59.9999999999", AxisY, "-6:00:00", FormatHMS},
		{"359d59m59.9999999999s", AxisX, "0:00:00", FormatDMS},
		{"123.4", AxisX, "123.4", FormatDegrees},
		{"123 deg", AxisX, "123", FormatDegrees},
		{"-45.25", AxisY, "-45.25", FormatDegrees},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := ParseWorldCoordinate(tt.input, tt.axis)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Format() != tt.format {
				t.Errorf("format = %s, want %s", c.Format(), tt.format)
			}
			if diff := cmp.Diff(tt.want, c.String()); diff != "" {
				t.Errorf("formatted mismatch (-want +got):\n%s", diff)
			}
			if _, err := ParseWorldCoordinate(c.String(), tt.axis); err != nil {
				t.Errorf("formatted %q does not parse: %v", c.String(), err)
			}
		})
	}
}

func TestParseWorldCoordinateErrors(t *testing.T) {
	if _, err := ParseWorldCoordinate("100h", AxisX); !errors.Is(err, ErrUnrecognizedFormat) {
		t.Errorf("100h: got %v, want ErrUnrecognizedFormat", err)
	}
	if _, err := ParseWorldCoordinate("400d", AxisX); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("400d: got %v, want ErrOutOfRange", err)
	}
	if _, err := ParseWorldCoordinate("10h", AxisY); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("10h on y: got %v, want ErrOutOfRange", err)
	}

	var perr *ParseError
	_, err := ParseWorldCoordinate("abc", AxisX)
	if !errors.As(err, &perr) || perr.Value != "abc" {
		t.Errorf("expected *ParseError for abc, got %v", err)
	}
}

func TestValidWorldCoordinate(t *testing.T) {
	valid := []string{
		"123", "123.4", "12:34:56", "12:34:56.7", "01:02:03", "1:02:03", "0:01:02",
		"00:12:34", "00:00:00", "12:34:5", "12:34:5.678", "12h34m56.789s", "1:2:3",
		":1:2", ":12:34", "::1", "::", "1::", ":2:", "12h34m", "10h", "10d", "100d",
		"10m", "10s", "1.2s", "1m2s", "1h2s", "", "123 deg", "123 degree", "123 degrees",
	}
	for _, v := range valid {
		if !ValidWorldCoordinate(v) {
			t.Errorf("ValidWorldCoordinate(%q) = false, want true", v)
		}
	}

	invalid := []string{
		"123abc", "abc", "12:345:67", "12:34:567", "12:34", "123:45:67", "hms", "hm",
		"ms", "h", "m", "s", "hs", "12hms", "12h34ms", "h12m34s", "100h", "12:34:56,7",
	}
	for _, v := range invalid {
		if ValidWorldCoordinate(v) {
			t.Errorf("ValidWorldCoordinate(%q) = true, want false", v)
		}
	}
}

func TestNotationFor(t *testing.T) {
	for _, n := range Notations() {
		got, err := NotationFor(n.Format)
		if err != nil || got != n {
			t.Errorf("NotationFor(%s) = %v, %v", n.Format, got, err)
		}
	}
	if _, err := NotationFor("xyz"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestSexagesimalString(t *testing.T) {
	c := SexagesimalCoordinate{Notation: FormatDMS, Major: 1, Minutes: 2, Seconds: 3.5}
	if got := c.String(); got != "1:02:03.5" {
		t.Errorf("got %q", got)
	}
	major, minutes, seconds := c.Tuple()
	if major != 1 || minutes != 2 || seconds != 3.5 {
		t.Errorf("Tuple() = %v, %v, %v", major, minutes, seconds)
	}
}
