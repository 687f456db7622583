package units

import (
	"errors"
	"testing"
)

func TestParsePixelValue(t *testing.T) {
	valid := map[string]float64{
		"123px":     123,
		"123 pix":   123,
		"12.5pixel": 12.5,
		"-4 pixels": -4,
		"12.5PX":    12.5,
		"0 px":      0,
	}
	for input, want := range valid {
		if !ValidPixelValue(input) {
			t.Errorf("ValidPixelValue(%q) = false", input)
		}
		got, err := ParsePixelValue(input)
		if err != nil {
			t.Errorf("ParsePixelValue(%q): %v", input, err)
			continue
		}
		if got.Value != want {
			t.Errorf("ParsePixelValue(%q) = %v, want %v", input, got.Value, want)
		}
	}

	for _, input := range []string{"", "123", "px", "123 arcsec", "12p"} {
		if _, err := ParsePixelValue(input); !errors.Is(err, ErrUnrecognizedFormat) {
			t.Errorf("ParsePixelValue(%q) error = %v, want ErrUnrecognizedFormat", input, err)
		}
	}
}

func TestPixelValueString(t *testing.T) {
	if got := (PixelValue{Value: 12.5}).String(); got != "12.5px" {
		t.Errorf("got %q", got)
	}
}
