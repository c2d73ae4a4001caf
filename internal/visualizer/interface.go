package visualizer

import (
	"context"

	"quadviz/pkg/export"
)

//go:generate mockgen -package mockvisualizer -source=interface.go -destination=mock/mockvisualizer.go *
type Visualizer interface {
	Visualize(ctx context.Context, coeffs Coefficients) (*Visualization, error)
	Export(ctx context.Context, coeffs Coefficients, format export.Format) (*export.Artifact, error)
}
