package graph_test

import (
	"bytes"
	"context"
	"image/png"
	"quadviz/pkg/graph"
	"quadviz/pkg/logger"
	"quadviz/pkg/quadratic"
	"quadviz/pkg/serrors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func analyze(t *testing.T, a, b, c float64) *quadratic.Analysis {
	t.Helper()
	res, err := quadratic.Analyze(a, b, c)
	require.NoError(t, err)

	return res
}

func TestRender_FixedSizePNG(t *testing.T) {
	r := graph.NewRenderer(graph.DefaultOptions(), nil)
	w, h := graph.DefaultOptions().Pixels()
	require.Equal(t, 980, w)
	require.Equal(t, 560, h)

	cases := []struct {
		name    string
		a, b, c float64
	}{
		{"distinct", 1, -3, 2},
		{"equal", 1, 2, 1},
		{"complex", 1, 0, 1},
		{"very steep", 1e6, 0, -5},
		{"very flat", 1e-6, 3, 0},
		{"vertex far from origin", -2, 400, 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			img := r.Render(context.Background(), analyze(t, tc.a, tc.b, tc.c))
			require.NotEmpty(t, img)

			decoded, err := png.Decode(bytes.NewReader(img))
			require.NoError(t, err)
			require.Equal(t, w, decoded.Bounds().Dx())
			require.Equal(t, h, decoded.Bounds().Dy())
		})
	}
}

func TestRender_CustomSize(t *testing.T) {
	opts := graph.Options{Width: 4, Height: 3, DPI: 50}
	img := graph.NewRenderer(opts, nil).Render(context.Background(), analyze(t, 2, 1, -1))

	decoded, err := png.Decode(bytes.NewReader(img))
	require.NoError(t, err)
	require.Equal(t, 200, decoded.Bounds().Dx())
	require.Equal(t, 150, decoded.Bounds().Dy())
}

func TestRender_IndependentBuffers(t *testing.T) {
	r := graph.NewRenderer(graph.DefaultOptions(), nil)
	res := analyze(t, 1, -3, 2)

	first := r.Render(context.Background(), res)
	second := r.Render(context.Background(), res)
	require.Equal(t, first, second)

	first[0] = ^first[0]
	require.NotEqual(t, first[0], second[0], "renders must not share buffers")
}

func TestPlot_OverflowIsRenderFailure(t *testing.T) {
	r := graph.NewRenderer(graph.DefaultOptions(), nil)

	// the curve overflows to +Inf away from the vertex
	img, err := r.Plot(1e307, 0, 0, quadratic.Point{}, nil)
	require.Nil(t, img)
	require.ErrorIs(t, err, serrors.ErrRenderFailure)
}

func TestRender_FailureIsLoggedAndEmpty(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	var observed error
	calls := 0
	r := graph.NewRenderer(graph.DefaultOptions(), func(_ context.Context, elapsed time.Duration, err error) {
		calls++
		observed = err
		require.GreaterOrEqual(t, elapsed, time.Duration(0))
	})

	img := r.Render(ctx, analyze(t, 1e307, 0, 0))
	require.Empty(t, img)
	require.Equal(t, 1, calls)
	require.ErrorIs(t, observed, serrors.ErrRenderFailure)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "graph error", entries[0].Message)
}
