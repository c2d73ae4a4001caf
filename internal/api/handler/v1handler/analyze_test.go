package v1handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quadviz/internal/api/handler/v1handler"
	"quadviz/internal/api/specs/v1specs"
	"quadviz/internal/visualizer"
	mockvisualizer "quadviz/internal/visualizer/mock"
	"quadviz/pkg/quadratic"
	"quadviz/pkg/serrors"

	"github.com/go-faster/jx"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHandler(t *testing.T) (*mockvisualizer.MockVisualizer, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	vis := mockvisualizer.NewMockVisualizer(ctrl)

	h := v1handler.New(v1handler.Deps{Visualizer: vis})
	srv, err := v1specs.NewServer(h,
		v1specs.WithErrorHandler(h.HandleError),
		v1specs.WithPathPrefix("/v1"))
	require.NoError(t, err)

	return vis, srv
}

func visualization(t *testing.T, a, b, c float64, graph []byte) *visualizer.Visualization {
	t.Helper()
	res, err := quadratic.Analyze(a, b, c)
	require.NoError(t, err)

	return &visualizer.Visualization{Analysis: res, Graph: graph}
}

func post(h http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func decodeAnalysis(t *testing.T, body []byte) v1specs.Analysis {
	t.Helper()
	var res v1specs.Analysis
	require.NoError(t, res.Decode(jx.DecodeBytes(body)))
	require.NoError(t, res.Validate())

	return res
}

func TestAnalyze_Distinct(t *testing.T) {
	vis, h := newTestHandler(t)
	graph := []byte("\x89PNG fake")
	vis.EXPECT().
		Visualize(gomock.Any(), visualizer.Coefficients{A: 1, B: -3, C: 2}).
		Return(visualization(t, 1, -3, 2, graph), nil)

	rec := post(h, `{"c": 2, "extra": [1, {"x": null}], "a": 1, "b": -3e0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	body := decodeAnalysis(t, rec.Body.Bytes())
	require.Equal(t, "y = 1.0x² + -3.0x + 2.0", body.Equation)
	require.Equal(t, 1.0, body.Discriminant)
	require.Equal(t, v1specs.AnalysisNatureDISTINCT, body.Nature)
	require.Equal(t, "real and distinct", body.Description)
	require.Equal(t, []float64{2, 1}, body.Roots)
	require.False(t, body.Complex.IsSet())
	require.Equal(t, v1specs.Point{X: 1.5, Y: -0.25}, body.Vertex)
	require.Len(t, body.Explanation, 6)
	require.Equal(t, graph, body.Graph)
}

func TestAnalyze_ComplexWithoutGraph(t *testing.T) {
	vis, h := newTestHandler(t)
	vis.EXPECT().
		Visualize(gomock.Any(), visualizer.Coefficients{A: 1, B: 0, C: 1}).
		Return(visualization(t, 1, 0, 1, nil), nil)

	rec := post(h, `{"a":1,"b":0,"c":1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"roots":[]`)
	require.NotContains(t, rec.Body.String(), `"graph"`)

	body := decodeAnalysis(t, rec.Body.Bytes())
	require.Equal(t, v1specs.AnalysisNatureCOMPLEX, body.Nature)
	require.Empty(t, body.Roots)
	require.Equal(t, v1specs.NewOptComplex(v1specs.Complex{Real: 0, Imaginary: 1}), body.Complex)
	require.Nil(t, body.Graph)
}

func TestAnalyze_InvalidBody(t *testing.T) {
	_, h := newTestHandler(t)

	for _, body := range []string{
		``,
		`[]`,
		`{"a": 1, "b": 2}`,
		`{"a": "1", "b": 2, "c": 3}`,
		`{"a": 1, "b": 2, "c": null}`,
		`{"a": 1, "b": 2, "c": 3} {}`,
	} {
		rec := post(h, body)
		require.Equal(t, http.StatusBadRequest, rec.Code, body)
		require.JSONEq(t, `{"code":"INVALID_INPUT","message":"invalid request body"}`, rec.Body.String(), body)
	}
}

func TestAnalyze_UnsupportedContentType(t *testing.T) {
	_, h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(`{"a":1,"b":2,"c":3}`))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyze_ZeroA(t *testing.T) {
	vis, h := newTestHandler(t)
	vis.EXPECT().
		Visualize(gomock.Any(), visualizer.Coefficients{A: 0, B: 1, C: 1}).
		Return(nil, serrors.With(serrors.ErrInvalidInput, "coefficient 'a' must not be zero"))

	rec := post(h, `{"a":0,"b":1,"c":1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"code":"INVALID_INPUT","message":"coefficient 'a' must not be zero"}`, rec.Body.String())
}

func TestAnalyze_Cancelled(t *testing.T) {
	vis, _ := newTestHandler(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	vis.EXPECT().
		Visualize(gomock.Any(), gomock.Any()).
		Return(nil, context.Canceled)

	h := v1handler.New(v1handler.Deps{Visualizer: vis})
	_, err := h.Analyze(ctx, &v1specs.Coefficients{A: 1, B: 1, C: 1})
	require.ErrorIs(t, err, serrors.ErrTimeout)
	require.Equal(t, http.StatusGatewayTimeout, h.NewError(ctx, err).StatusCode)
}

func TestAnalyze_MethodNotAllowed(t *testing.T) {
	_, h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/analyze", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Equal(t, "POST", rec.Header().Get("Allow"))

	req = httptest.NewRequest(http.MethodPost, "/v1/nope", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVisualizationToV1Specs(t *testing.T) {
	res := v1handler.VisualizationToV1Specs(visualization(t, 1, 2, 1, []byte{}))
	require.Equal(t, v1specs.AnalysisNatureEQUAL, res.Nature)
	require.Equal(t, []float64{-1}, res.Roots)
	require.Nil(t, res.Graph)
	require.NoError(t, res.Validate())
}
