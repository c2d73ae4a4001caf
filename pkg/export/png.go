package export

import (
	"context"

	"quadviz/pkg/serrors"
)

const (
	PNGFilename    = "quadratic_graph.png"
	PNGContentType = "image/png"
)

// PNG serves the rendered graph as-is.
type PNG struct{}

func (PNG) Export(_ context.Context, in Input) (*Artifact, error) {
	if len(in.Graph) == 0 {
		return nil, serrors.With(serrors.ErrExportFailure, "graph is empty")
	}

	body := make([]byte, len(in.Graph))
	copy(body, in.Graph)

	return &Artifact{Filename: PNGFilename, ContentType: PNGContentType, Body: body}, nil
}
