package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cartavis/carta-go/core/units"
	"github.com/cartavis/carta-go/internal/config"
)

// parsed is one line of size or coord output.
type parsed struct {
	Input     string   `json:"input"`
	Canonical string   `json:"canonical,omitempty"`
	Arcsec    *float64 `json:"arcsec,omitempty"`
	Format    string   `json:"format,omitempty"`
	Error     string   `json:"error,omitempty"`
}

func (a *app) printParsed(results []parsed) error {
	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}

	if a.cfg.Output == config.OutputJSON {
		enc := json.NewEncoder(a.out)
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
	} else {
		for _, r := range results {
			switch {
			case r.Error != "":
				_, _ = fmt.Fprintf(a.out, "%s\t%s\n", r.Input, Colorize(r.Error, ColorRed, a.useColor))
			case r.Arcsec != nil:
				_, _ = fmt.Fprintf(a.out, "%s\t%s\t%s\"\n", r.Input, r.Canonical, strconv.FormatFloat(*r.Arcsec, 'g', -1, 64))
			default:
				_, _ = fmt.Fprintf(a.out, "%s\t%s\t%s\n", r.Input, r.Canonical, r.Format)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d values could not be parsed: %w", failed, len(results), errReported)
	}
	return nil
}

func newSizeCmd(a *app) *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "size VALUE...",
		Short: "Parse angular sizes and print their canonical form",
		Long: `Parse angular sizes such as 2arcmin, 1.5 deg, 30" or 500mas and print
the canonical form and the value in arcseconds. Pixel sizes (123px) are
echoed in canonical form.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var target *units.SizeUnit
			if unit != "" {
				u, ok := units.LookupSizeUnit(unit)
				if !ok {
					return &CLIError{
						Type:    "input",
						Message: fmt.Sprintf("unknown size unit %q", unit),
						Hint:    "Units: " + sizeUnitNames(),
					}
				}
				target = u
			}

			results := make([]parsed, 0, len(args))
			for _, v := range args {
				results = append(results, parseSize(v, target))
			}
			return a.printParsed(results)
		},
	}

	cmd.Flags().StringVarP(&unit, "unit", "u", "", "Convert to this unit (deg, arcmin, arcsec, mas, uas)")
	return cmd
}

func parseSize(v string, target *units.SizeUnit) parsed {
	if px, err := units.ParsePixelValue(v); err == nil {
		return parsed{Input: v, Canonical: px.String(), Format: "pixels"}
	}
	size, err := units.ParseAngularSize(v)
	if err != nil {
		return parsed{Input: v, Error: err.Error()}
	}
	if target != nil {
		size = size.In(target)
	}
	arcsec := size.Arcsec()
	return parsed{Input: v, Canonical: size.String(), Arcsec: &arcsec}
}

func sizeUnitNames() string {
	var names []string
	for _, u := range units.SizeUnits() {
		names = append(names, u.Name)
	}
	return strings.Join(names, ", ")
}

func newCoordCmd(a *app) *cobra.Command {
	var (
		axis   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "coord VALUE...",
		Short: "Parse world coordinates and print their canonical form",
		Long: `Parse world coordinates in degrees (10.5, 10.5deg), H:M:S (12:34:56.7,
12h34m56.7s) or D:M:S (-30:15:00, -30d15m0s) notation. With --axis the value
must also lie within the range for that axis; with --format only that
notation is accepted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spatial := units.SpatialAxis(strings.ToLower(axis))
			if spatial != "" && spatial != units.AxisX && spatial != units.AxisY {
				return &CLIError{Type: "input", Message: fmt.Sprintf("invalid axis %q", axis), Hint: "Use x or y"}
			}

			var notation *units.Notation
			if format != "" {
				n, err := units.NotationFor(units.NumberFormat(strings.ToLower(format)))
				if err != nil {
					return &CLIError{Type: "input", Message: err.Error(), Hint: "Use d, hms or dms"}
				}
				notation = n
			}

			results := make([]parsed, 0, len(args))
			for _, v := range args {
				results = append(results, parseCoordinate(v, spatial, notation))
			}
			return a.printParsed(results)
		},
	}

	cmd.Flags().StringVarP(&axis, "axis", "a", "", "Check the range for this axis (x or y)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Only accept this notation (d, hms or dms)")
	return cmd
}

func parseCoordinate(v string, axis units.SpatialAxis, notation *units.Notation) parsed {
	if notation == nil {
		if px, err := units.ParsePixelValue(v); err == nil {
			return parsed{Input: v, Canonical: px.String(), Format: "pixels"}
		}
	}

	var (
		c   units.WorldCoordinate
		err error
	)
	if notation != nil {
		c, err = notation.Parse(v, axis)
	} else {
		c, err = units.ParseWorldCoordinate(v, axis)
	}
	if err != nil {
		return parsed{Input: v, Error: err.Error()}
	}
	return parsed{Input: v, Canonical: c.String(), Format: c.Format().String()}
}
