// Package export turns an analysis and its graph into downloadable
// artifacts: the raw PNG, a slide deck and a PDF document, plus the HTML
// fragment shown on the interactive page.
//
// Each exporter owns its visual template; nothing is shared between them.
// Exporters work entirely in memory and never touch the filesystem.
package export

import (
	"context"
	"fmt"

	"quadviz/pkg/quadratic"
	"quadviz/pkg/serrors"
)

// Format names a downloadable artifact type.
type Format string

const (
	FormatPNG    Format = "png"
	FormatSlides Format = "pptx"
	FormatPDF    Format = "pdf"
)

// Label is the user-facing name of the format.
func (f Format) Label() string {
	switch f {
	case FormatPNG:
		return "PNG"
	case FormatSlides:
		return "presentation"
	case FormatPDF:
		return "PDF"
	default:
		return string(f)
	}
}

// Input is what every exporter consumes.
type Input struct {
	Analysis *quadratic.Analysis
	// Graph is the PNG rendering of the analysis; it may be empty when
	// rendering failed.
	Graph []byte
}

// Artifact is a finished download.
type Artifact struct {
	Filename    string
	ContentType string
	Body        []byte
}

// Exporter produces one kind of artifact.
type Exporter interface {
	Export(ctx context.Context, in Input) (*Artifact, error)
}

// Registry maps formats to exporters.
type Registry map[Format]Exporter

// DefaultRegistry returns the PNG, slides and PDF exporters.
func DefaultRegistry() Registry {
	return Registry{
		FormatPNG:    PNG{},
		FormatSlides: Slides{},
		FormatPDF:    Document{},
	}
}

// Export runs the exporter registered for f. Failures are reported as
// serrors.ErrExportFailure, and an unknown format as serrors.ErrNotFound.
func (r Registry) Export(ctx context.Context, f Format, in Input) (*Artifact, error) {
	exp, ok := r[f]
	if !ok {
		return nil, serrors.With(serrors.ErrNotFound, "unknown export format %q", f)
	}

	art, err := exp.Export(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("could not export %s: %w", f, err)
	}

	return art, nil
}

func requireAnalysis(in Input) error {
	if in.Analysis == nil {
		return serrors.With(serrors.ErrExportFailure, "missing analysis")
	}

	return nil
}
