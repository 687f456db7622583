package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/cartavis/carta-go/core/schema"
	"github.com/cartavis/carta-go/internal/catalog"
)

// baseVersion is assumed for methods that do not record a version.
const baseVersion = "v1.0.0"

func newDescribeCmd(a *app) *cobra.Command {
	var since string

	cmd := &cobra.Command{
		Use:   "describe [METHOD...]",
		Short: "Print the documentation of validated methods",
		Long: `Print the rendered documentation of the named methods, or list every
method when none is named. Names may be qualified (image.set_channel) or
bare when unambiguous.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if since != "" && !semver.IsValid(since) {
				return &CLIError{
					Type:    "input",
					Message: fmt.Sprintf("invalid version %q", since),
					Hint:    "Versions look like v1.2.0",
				}
			}

			if len(args) == 0 {
				for _, name := range a.catalog.Names() {
					e, _ := a.catalog.Lookup(name)
					if !introducedSince(e, since) {
						continue
					}
					_, _ = fmt.Fprintf(a.out, "%s\t%s\n", name, summary(e.Signature.Doc()))
				}
				return nil
			}

			for i, name := range args {
				e, err := a.lookup(name)
				if err != nil {
					return err
				}
				if i > 0 {
					_, _ = fmt.Fprintln(a.out)
				}
				a.printEntry(e)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&since, "since", "", "Only list methods introduced at or after this version")
	return cmd
}

func introducedSince(e catalog.Entry, since string) bool {
	if since == "" {
		return true
	}
	v := e.Signature.Since()
	if v == "" {
		v = baseVersion
	}
	return semver.Compare(v, since) >= 0
}

func summary(doc string) string {
	first, _, _ := strings.Cut(doc, "\n")
	return first
}

func (a *app) printEntry(e catalog.Entry) {
	sig := e.Signature
	names := make([]string, 0, len(sig.Params()))
	for _, p := range sig.Params() {
		if p.HasDefault {
			names = append(names, fmt.Sprintf("%s=%v", p.Name, displayDefault(p.Default)))
		} else {
			names = append(names, p.Name)
		}
	}

	_, _ = fmt.Fprintf(a.out, "%s(%s)\n", Colorize(e.Name(), ColorGreen, a.useColor), strings.Join(names, ", "))
	if v := sig.Since(); v != "" {
		_, _ = fmt.Fprintf(a.out, "%s\n", Colorize("since "+v, ColorGray, a.useColor))
	}
	if doc := sig.Doc(); doc != "" {
		_, _ = fmt.Fprintf(a.out, "\n%s\n", doc)
	}
}

func displayDefault(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return fmt.Sprintf("%q", x)
	default:
		return fmt.Sprint(x)
	}
}

func newSchemaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schema METHOD",
		Short: "Print the JSON Schema of a method's keyword arguments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.lookup(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(a.out)
			enc.SetIndent("", "  ")
			return enc.Encode(schema.ForSignature(e.Signature))
		},
	}
}
