package v1handler

import (
	"context"

	"quadviz/internal/api/specs/v1specs"
	"quadviz/internal/visualizer"
	"quadviz/pkg/serrors"
)

// MaxBodyBytes bounds the size of an analyze request body.
const MaxBodyBytes = 4 << 10

// VisualizationToV1Specs converts a visualization to its v1 API form. Roots
// and explanation are never nil so they always encode as arrays.
func VisualizationToV1Specs(v *visualizer.Visualization) *v1specs.Analysis {
	res := v.Analysis

	out := &v1specs.Analysis{
		Equation:     res.Equation(),
		A:            res.A,
		B:            res.B,
		C:            res.C,
		Discriminant: res.Discriminant,
		Nature:       v1specs.AnalysisNature(res.Nature),
		Description:  res.Nature.Describe(),
		Roots:        append([]float64{}, res.Roots...),
		Vertex:       v1specs.Point{X: res.Vertex.X, Y: res.Vertex.Y},
		Explanation:  append([]string{}, res.Explanation...),
	}
	if res.Complex != nil {
		out.Complex = v1specs.NewOptComplex(v1specs.Complex{
			Real:      res.Complex.Real,
			Imaginary: res.Complex.Imag,
		})
	}
	if len(v.Graph) > 0 {
		out.Graph = v.Graph
	}

	return out
}

// Analyze implements the analyze operation.
func (h Handler) Analyze(ctx context.Context, req *v1specs.Coefficients) (*v1specs.Analysis, error) {
	res, err := h.deps.Visualizer.Visualize(ctx, visualizer.Coefficients{A: req.A, B: req.B, C: req.C})
	if err != nil {
		return nil, toTimeout(ctx, err)
	}

	return VisualizationToV1Specs(res), nil
}

// toTimeout reports a cancelled request as serrors.ErrTimeout.
func toTimeout(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return serrors.Wrap(serrors.ErrTimeout, err, "request timed out")
	}

	return err
}
