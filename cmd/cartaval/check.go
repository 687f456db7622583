package main

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/cartavis/carta-go/core/signature"
	"github.com/cartavis/carta-go/core/validation"
	"github.com/cartavis/carta-go/internal/config"
)

// callFile is a YAML or JSON document of method calls. State supplies the
// receiver attributes read by deferred descriptors; a call's own state is
// merged over it.
type callFile struct {
	State map[string]any `yaml:"state"`
	Calls []call         `yaml:"calls"`
}

type call struct {
	Method string         `yaml:"method"`
	State  map[string]any `yaml:"state"`
	Args   []any          `yaml:"args"`
	Kwargs map[string]any `yaml:"kwargs"`
}

type callResult struct {
	File   string `json:"file"`
	Index  int    `json:"index"`
	Method string `json:"method"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
}

type fileReport struct {
	Path    string
	Results []callResult
	Err     error
}

func (r fileReport) failed() bool {
	if r.Err != nil {
		return true
	}
	for _, res := range r.Results {
		if !res.OK {
			return true
		}
	}
	return false
}

func newCheckCmd(a *app) *cobra.Command {
	var (
		watch      bool
		withSchema bool
	)

	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate method calls listed in YAML or JSON files",
		Long: `Validate every call in the given files against the method signatures.

A call file looks like:

  state:
    depth: 10
    polarizations: [1, 2, 3, 4]
  calls:
    - method: image.set_channel
      args: [3]
    - method: set_colormap
      kwargs: {colormap: viridis, invert: true}

Files are checked concurrently. With --watch the files are re-checked
whenever they change.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			reports, err := a.checkFiles(ctx, args, withSchema)
			if err != nil {
				return err
			}
			failed := a.printReports(reports)

			if watch {
				return a.watch(ctx, args, func(changed []string) {
					reports, err := a.checkFiles(ctx, changed, withSchema)
					if err != nil {
						FormatError(a.errOut, err, a.useColor)
						return
					}
					a.printReports(reports)
				})
			}
			if failed {
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-check files when they change")
	cmd.Flags().BoolVar(&withSchema, "schema", false, "Also validate keyword-only calls against the generated JSON Schema")
	return cmd
}

// checkFiles validates each file concurrently, bounded by the configured
// worker count. Reports are returned in argument order.
func (a *app) checkFiles(ctx context.Context, paths []string, withSchema bool) ([]fileReport, error) {
	reports := make([]fileReport, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = a.checkFile(path, withSchema)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func (a *app) checkFile(path string, withSchema bool) fileReport {
	report := fileReport{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		report.Err = err
		return report
	}
	var file callFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		report.Err = fmt.Errorf("parse %s: %w", path, err)
		return report
	}

	for i, c := range file.Calls {
		res := callResult{File: path, Index: i, Method: c.Method}
		if err := a.checkCall(file.State, c, withSchema); err != nil {
			res.Error = err.Error()
		} else {
			res.OK = true
		}
		report.Results = append(report.Results, res)
	}
	a.logger.Debug("checked file", "path", path, "calls", len(file.Calls))
	return report
}

func (a *app) checkCall(state map[string]any, c call, withSchema bool) error {
	e, err := a.lookup(c.Method)
	if err != nil {
		return err
	}

	recv := validation.AttrMap{}
	maps.Copy(recv, state)
	maps.Copy(recv, c.State)

	args := signature.Args{Positional: c.Args, Keyword: c.Kwargs}
	if err := e.Signature.Validate(recv, args); err != nil {
		return err
	}
	if withSchema && len(c.Args) == 0 {
		kwargs := c.Kwargs
		if kwargs == nil {
			kwargs = map[string]any{}
		}
		if err := a.validator.ValidateSignature(e.Signature, kwargs); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	return nil
}

// printReports writes every result and reports whether any failed.
func (a *app) printReports(reports []fileReport) bool {
	failed := false
	enc := json.NewEncoder(a.out)
	for _, r := range reports {
		if r.failed() {
			failed = true
		}
		if r.Err != nil {
			FormatError(a.errOut, r.Err, a.useColor)
			continue
		}
		for _, res := range r.Results {
			if a.cfg.Output == config.OutputJSON {
				_ = enc.Encode(res)
				continue
			}
			if res.OK {
				_, _ = fmt.Fprintf(a.out, "%s:%d\t%s\t%s\n", res.File, res.Index, res.Method, Colorize("ok", ColorGreen, a.useColor))
			} else {
				_, _ = fmt.Fprintf(a.out, "%s:%d\t%s\t%s\n", res.File, res.Index, res.Method, Colorize(res.Error, ColorRed, a.useColor))
			}
		}
	}
	return failed
}
