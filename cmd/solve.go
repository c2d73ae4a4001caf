package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"quadviz/internal/api/handler/v1handler"
	"quadviz/internal/config"
	"quadviz/internal/visualizer"
	"quadviz/pkg/export"
	"quadviz/pkg/quadratic"

	"github.com/fatih/color"
	"github.com/go-faster/jx"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric/noop"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

const (
	outputHuman = "human"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

type solveOptions struct {
	coeffs  visualizer.Coefficients
	output  string
	exports []string
	outDir  string
}

// report is the machine-readable form of an analysis.
type report struct {
	Equation    string `yaml:"equation"`
	Description string `yaml:"description"`

	quadratic.Analysis `yaml:",inline"`
}

func parseFormats(names []string) ([]export.Format, error) {
	known := export.DefaultRegistry()
	seen := map[export.Format]bool{}

	var formats []export.Format
	for _, name := range names {
		f := export.Format(strings.ToLower(strings.TrimSpace(name)))
		if f == "" || seen[f] {
			continue
		}
		if _, ok := known[f]; !ok {
			return nil, fmt.Errorf("unknown export format %q", name)
		}
		seen[f] = true
		formats = append(formats, f)
	}

	return formats, nil
}

func printHuman(w io.Writer, res *quadratic.Analysis) {
	title := color.New(color.FgCyan, color.Bold)
	label := color.New(color.Bold)

	natureColor := color.New(color.FgGreen)
	switch res.Nature {
	case quadratic.NatureEqual:
		natureColor = color.New(color.FgYellow)
	case quadratic.NatureComplex:
		natureColor = color.New(color.FgMagenta)
	}

	title.Fprintln(w, res.Equation())
	label.Fprint(w, "Roots: ")
	natureColor.Fprintln(w, res.Nature.Describe())
	fmt.Fprintln(w)
	for _, line := range res.Explanation {
		fmt.Fprintln(w, "  "+line)
	}
}

func printJSON(w io.Writer, res *quadratic.Analysis) error {
	var e jx.Encoder
	e.SetIdent(2)
	v1handler.VisualizationToV1Specs(&visualizer.Visualization{Analysis: res}).Encode(&e)

	_, err := fmt.Fprintln(w, e.String())

	return err
}

func printYAML(w io.Writer, res *quadratic.Analysis) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report{
		Equation:    res.Equation(),
		Description: res.Nature.Describe(),
		Analysis:    *res,
	}); err != nil {
		return fmt.Errorf("could not encode yaml: %w", err)
	}

	return enc.Close()
}

// writeArtifacts exports every format concurrently into dir and returns the
// written paths in format order.
func writeArtifacts(ctx context.Context,
	vis visualizer.Visualizer,
	coeffs visualizer.Coefficients,
	formats []export.Format,
	dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create output directory: %w", err)
	}

	paths := make([]string, len(formats))

	g, ctx := errgroup.WithContext(ctx)
	for i, f := range formats {
		g.Go(func() error {
			art, err := vis.Export(ctx, coeffs, f)
			if err != nil {
				return fmt.Errorf("could not export %s: %w", f, err)
			}

			path := filepath.Join(dir, art.Filename)
			if err := os.WriteFile(path, art.Body, 0o644); err != nil { //nolint: gosec
				return fmt.Errorf("could not write %s: %w", path, err)
			}

			paths[i] = path

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return paths, nil
}

func runSolve(ctx context.Context, w io.Writer, vis visualizer.Visualizer, opts solveOptions) error {
	formats, err := parseFormats(opts.exports)
	if err != nil {
		return err
	}

	res, err := vis.Visualize(ctx, opts.coeffs)
	if err != nil {
		return err
	}

	switch opts.output {
	case outputHuman:
		printHuman(w, res.Analysis)
	case outputJSON:
		err = printJSON(w, res.Analysis)
	case outputYAML:
		err = printYAML(w, res.Analysis)
	default:
		err = fmt.Errorf("unknown output %q", opts.output)
	}
	if err != nil {
		return err
	}

	if len(formats) == 0 {
		return nil
	}

	paths, err := writeArtifacts(ctx, vis, opts.coeffs, formats, opts.outDir)
	if err != nil {
		return err
	}
	if opts.output == outputHuman {
		for _, p := range paths {
			color.New(color.FgGreen).Fprintf(w, "wrote %s\n", p)
		}
	}

	return nil
}

func solveCommand(cfg *config.Config) *cobra.Command {
	var opts solveOptions

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Analyses one equation and optionally exports its artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			vis, err := visualizer.New(visualizer.GraphOptions(cfg), export.DefaultRegistry(), noop.NewMeterProvider())
			if err != nil {
				return fmt.Errorf("could not create visualizer: %w", err)
			}

			return runSolve(cmd.Context(), cmd.OutOrStdout(), vis, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.coeffs.A, "a", 0, "quadratic coefficient (non-zero)")
	cmd.Flags().Float64Var(&opts.coeffs.B, "b", 0, "linear coefficient")
	cmd.Flags().Float64Var(&opts.coeffs.C, "c", 0, "constant term")
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputHuman, "output format: human, json or yaml")
	cmd.Flags().StringSliceVar(&opts.exports, "export", nil, "artifacts to write: png, pptx, pdf")
	cmd.Flags().StringVar(&opts.outDir, "out", ".", "directory to write artifacts into")
	_ = cmd.MarkFlagRequired("a")

	return cmd
}
