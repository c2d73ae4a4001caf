package export

import (
	"bytes"
	"context"
	"strings"

	"quadviz/pkg/serrors"

	"github.com/go-pdf/fpdf"
)

const (
	DocumentFilename    = "quadratic_summary.pdf"
	DocumentContentType = "application/pdf"

	graphImageName = "graph"
)

// core PDF fonts are cp1252; these glyphs have no cp1252 code point.
//
//nolint: gochecknoglobals
var documentReplacer = strings.NewReplacer("√", "sqrt ")

// Document lays the explanation out as text cells on an A4 page followed by
// the graph.
type Document struct{}

func (Document) Export(_ context.Context, in Input) (*Artifact, error) {
	if err := requireAnalysis(in); err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Quadratic Equation Summary", true)
	pdf.SetCreator("quadviz", true)
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, line := range in.Analysis.Explanation {
		pdf.MultiCell(0, 10, tr(documentReplacer.Replace(line)), "", "", false)
	}

	if len(in.Graph) > 0 {
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(graphImageName, opts, bytes.NewReader(in.Graph))
		pdf.ImageOptions(graphImageName, 10, 0, 180, 0, true, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, serrors.Wrap(serrors.ErrExportFailure, err, "could not write pdf")
	}

	return &Artifact{Filename: DocumentFilename, ContentType: DocumentContentType, Body: buf.Bytes()}, nil
}
