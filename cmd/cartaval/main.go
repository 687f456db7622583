// Command cartaval parses angular sizes and world coordinates, documents
// the validated image and session methods, and checks call files against
// their signatures.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/cartavis/carta-go/core/schema"
	"github.com/cartavis/carta-go/core/signature"
	"github.com/cartavis/carta-go/internal/catalog"
	"github.com/cartavis/carta-go/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// app holds state shared by every subcommand, resolved once the flags are
// parsed.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath  string
	debug       bool
	noColor     bool
	showMetrics bool

	cfg       config.Config
	logger    *slog.Logger
	registry  *prometheus.Registry
	metrics   *signature.Metrics
	catalog   *catalog.Registry
	validator *schema.Validator
	useColor  bool
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	rootCmd := &cobra.Command{
		Use:           "cartaval [command]",
		Short:         "Validate CARTA method arguments, sizes and coordinates",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to config file (default: ./cartaval.yaml if present)")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug output")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&a.showMetrics, "metrics", false, "Print validation counters to stderr on exit")

	rootCmd.AddCommand(
		newSizeCmd(a),
		newCoordCmd(a),
		newDescribeCmd(a),
		newSchemaCmd(a),
		newCheckCmd(a),
	)

	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	return withErrorReporting(rootCmd, a)
}

// withErrorReporting formats any error returned by a subcommand, since
// cobra prints nothing once errors are silenced, and prints metrics when
// requested whether or not the command failed.
func withErrorReporting(root *cobra.Command, a *app) *cobra.Command {
	for _, sub := range root.Commands() {
		run := sub.RunE
		if run == nil {
			continue
		}
		sub.RunE = func(cmd *cobra.Command, args []string) error {
			err := run(cmd, args)
			if err != nil && !errors.Is(err, errReported) {
				FormatError(a.errOut, err, a.useColor)
			}
			if a.showMetrics {
				writeMetrics(a.errOut, a.registry)
			}
			return err
		}
	}
	return root
}

func (a *app) setup() error {
	a.useColor = ShouldUseColor(a.noColor)

	cfg, err := config.LoadFromPath(a.configPath)
	if err != nil {
		FormatError(a.errOut, err, a.useColor)
		return err
	}
	if a.debug {
		cfg.Debug = true
	}
	a.cfg = cfg

	a.logger = signature.NewLogger(a.errOut, cfg.Debug)
	a.registry = prometheus.NewRegistry()
	a.metrics = signature.NewMetrics(a.registry)
	a.catalog = catalog.Standard(signature.WithLogger(a.logger), signature.WithMetrics(a.metrics))
	a.validator = schema.NewValidator(&a.cfg.Schema)

	a.logger.Debug("configured", "workers", cfg.Workers, "output", cfg.Output, "debounce", cfg.Debounce)
	return nil
}

// lookup resolves a method name, accepting unqualified names when they are
// unambiguous.
func (a *app) lookup(name string) (catalog.Entry, error) {
	if e, ok := a.catalog.Lookup(name); ok {
		return e, nil
	}
	var found []catalog.Entry
	for _, group := range []catalog.Group{catalog.GroupImage, catalog.GroupSession} {
		if e, ok := a.catalog.Lookup(string(group) + "." + name); ok {
			found = append(found, e)
		}
	}
	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		cliErr := &CLIError{Type: "lookup", Message: fmt.Sprintf("unknown method %q", name)}
		if s := a.catalog.Suggest(name); s != "" {
			cliErr.Hint = fmt.Sprintf("Did you mean %q?", s)
		}
		return catalog.Entry{}, cliErr
	default:
		return catalog.Entry{}, &CLIError{
			Type:    "lookup",
			Message: fmt.Sprintf("method %q is ambiguous", name),
			Hint:    fmt.Sprintf("Use %q or %q", found[0].Name(), found[1].Name()),
		}
	}
}
