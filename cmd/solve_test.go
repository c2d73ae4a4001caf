package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"quadviz/internal/visualizer"
	mockvisualizer "quadviz/internal/visualizer/mock"
	"quadviz/pkg/export"
	"quadviz/pkg/graph"
	"quadviz/pkg/quadratic"
	"quadviz/pkg/serrors"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func newSmallVisualizer(t *testing.T) visualizer.Visualizer {
	t.Helper()
	vis, err := visualizer.New(graph.Options{Width: 2, Height: 1.5, DPI: 40}, export.DefaultRegistry(), noop.NewMeterProvider())
	require.NoError(t, err)

	return vis
}

func TestParseFormats(t *testing.T) {
	formats, err := parseFormats([]string{"PDF", " png ", "pdf", ""})
	require.NoError(t, err)
	require.Equal(t, []export.Format{export.FormatPDF, export.FormatPNG}, formats)

	_, err = parseFormats([]string{"docx"})
	require.Error(t, err)
}

func TestRunSolve_Human(t *testing.T) {
	var out bytes.Buffer
	err := runSolve(context.Background(), &out, newSmallVisualizer(t), solveOptions{
		coeffs: visualizer.Coefficients{A: 1, B: 2, C: 1},
		output: outputHuman,
	})
	require.NoError(t, err)
	require.Contains(t, out.String(), "y = 1.0x² + 2.0x + 1.0\n")
	require.Contains(t, out.String(), "Roots: real and equal\n")
	require.Contains(t, out.String(), "  Discriminant (D) = 2.0² - 4(1.0)(1.0) = 0.0\n")
}

func TestRunSolve_JSON(t *testing.T) {
	var out bytes.Buffer
	err := runSolve(context.Background(), &out, newSmallVisualizer(t), solveOptions{
		coeffs: visualizer.Coefficients{A: 1, B: -3, C: 2},
		output: outputJSON,
	})
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &body))
	require.Equal(t, "DISTINCT", body["nature"])
	require.Equal(t, []any{2.0, 1.0}, body["roots"])
	require.NotContains(t, body, "graph")
}

func TestRunSolve_YAML(t *testing.T) {
	var out bytes.Buffer
	err := runSolve(context.Background(), &out, newSmallVisualizer(t), solveOptions{
		coeffs: visualizer.Coefficients{A: 1, B: 0, C: 1},
		output: outputYAML,
	})
	require.NoError(t, err)

	var body struct {
		Equation string             `yaml:"equation"`
		Nature   string             `yaml:"nature"`
		Complex  *quadratic.Complex `yaml:"complex"`
		Vertex   quadratic.Point    `yaml:"vertex"`
	}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &body))
	require.Equal(t, "y = 1.0x² + 0.0x + 1.0", body.Equation)
	require.Equal(t, "COMPLEX", body.Nature)
	require.NotNil(t, body.Complex)
	require.Equal(t, 1.0, body.Complex.Imag)
	require.Equal(t, 1.0, body.Vertex.Y)
}

func TestRunSolve_Exports(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "artifacts")

	var out bytes.Buffer
	err := runSolve(context.Background(), &out, newSmallVisualizer(t), solveOptions{
		coeffs:  visualizer.Coefficients{A: 2, B: 1, C: -3},
		output:  outputHuman,
		exports: []string{"png", "pptx", "pdf"},
		outDir:  dir,
	})
	require.NoError(t, err)

	for _, name := range []string{"quadratic_graph.png", export.SlidesFilename, export.DocumentFilename} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		require.Positive(t, info.Size(), name)
		require.Contains(t, out.String(), "wrote "+filepath.Join(dir, name))
	}
}

func TestRunSolve_Errors(t *testing.T) {
	var out bytes.Buffer

	err := runSolve(context.Background(), &out, newSmallVisualizer(t), solveOptions{
		coeffs: visualizer.Coefficients{A: 0, B: 1, C: 1},
		output: outputHuman,
	})
	require.ErrorIs(t, err, serrors.ErrInvalidInput)

	err = runSolve(context.Background(), &out, newSmallVisualizer(t), solveOptions{
		coeffs: visualizer.Coefficients{A: 1, B: 1, C: 1},
		output: "xml",
	})
	require.Error(t, err)

	ctrl := gomock.NewController(t)
	vis := mockvisualizer.NewMockVisualizer(ctrl)
	res, aerr := quadratic.Analyze(1, 1, 1)
	require.NoError(t, aerr)
	vis.EXPECT().Visualize(gomock.Any(), gomock.Any()).Return(&visualizer.Visualization{Analysis: res}, nil)
	vis.EXPECT().Export(gomock.Any(), gomock.Any(), export.FormatPDF).
		Return(nil, serrors.With(serrors.ErrExportFailure, "boom"))

	err = runSolve(context.Background(), &out, vis, solveOptions{
		coeffs:  visualizer.Coefficients{A: 1, B: 1, C: 1},
		output:  outputJSON,
		exports: []string{"pdf"},
		outDir:  t.TempDir(),
	})
	require.ErrorIs(t, err, serrors.ErrExportFailure)
}
