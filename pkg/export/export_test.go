package export_test

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/xml"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"quadviz/pkg/export"
	"quadviz/pkg/quadratic"
	"quadviz/pkg/serrors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func samplePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 20, 10))
	img.Set(5, 5, color.RGBA{R: 0xff, A: 0xff})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func sampleInput(t *testing.T) export.Input {
	t.Helper()
	res, err := quadratic.Analyze(1, -3, 2)
	require.NoError(t, err)

	return export.Input{Analysis: res, Graph: samplePNG(t)}
}

func xmlText(t *testing.T, s string) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, xml.EscapeText(&b, []byte(s)))

	return b.String()
}

func TestHTML(t *testing.T) {
	in := sampleInput(t)
	in.Analysis.Explanation = []string{"a < b", "x = 1"}

	view := export.HTML(in)
	require.Equal(t, "<pre>a &lt; b</pre><br><br><pre>x = 1</pre>", string(view.Explanation))
	require.Equal(t, []string{"a < b", "x = 1"}, view.Lines)

	decoded, err := base64.StdEncoding.DecodeString(view.ImageBase64)
	require.NoError(t, err)
	require.Equal(t, in.Graph, decoded)
}

func TestHTML_NoGraph(t *testing.T) {
	in := sampleInput(t)
	in.Graph = nil

	view := export.HTML(in)
	require.Empty(t, view.ImageBase64)
	require.Equal(t, 6, strings.Count(string(view.Explanation), "<pre>"))
}

func TestPNG(t *testing.T) {
	in := sampleInput(t)

	art, err := export.PNG{}.Export(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, "quadratic_graph.png", art.Filename)
	require.Equal(t, "image/png", art.ContentType)
	require.Equal(t, in.Graph, art.Body)

	art.Body[0] = 0
	require.NotEqual(t, in.Graph[0], art.Body[0], "artifact must own its bytes")

	_, err = export.PNG{}.Export(context.Background(), export.Input{Analysis: in.Analysis})
	require.ErrorIs(t, err, serrors.ErrExportFailure)
}

func TestSlides(t *testing.T) {
	in := sampleInput(t)

	art, err := export.Slides{}.Export(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, "Quadratic_Eq_Best_Presentation.pptx", art.Filename)
	require.Equal(t, "application/vnd.openxmlformats-officedocument.presentationml.presentation", art.ContentType)

	zr, err := zip.NewReader(bytes.NewReader(art.Body), int64(len(art.Body)))
	require.NoError(t, err)

	slides := map[string]string{}
	var media []byte
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		_ = rc.Close()

		switch {
		case strings.HasPrefix(f.Name, "ppt/slides/slide"):
			slides[f.Name] = string(b)
		case f.Name == "ppt/media/image1.png":
			media = b
		}
	}

	require.Len(t, slides, 6)
	require.Contains(t, slides["ppt/slides/slide1.xml"], "Quadratic Equation Visualizer")
	require.Contains(t, slides["ppt/slides/slide2.xml"], "What is a Quadratic Equation?")
	require.Contains(t, slides["ppt/slides/slide3.xml"], "Steps &amp; Solution")
	for _, line := range in.Analysis.Explanation {
		require.Contains(t, slides["ppt/slides/slide3.xml"], xmlText(t, line))
	}
	require.Contains(t, slides["ppt/slides/slide3.xml"], "Since D &gt; 0, roots are real and distinct.")
	require.Contains(t, slides["ppt/slides/slide4.xml"], "Graph of the Equation")
	require.Contains(t, slides["ppt/slides/slide4.xml"], "<p:pic>")
	require.Contains(t, slides["ppt/slides/slide5.xml"], "What Did We Learn?")
	require.Contains(t, slides["ppt/slides/slide6.xml"], "Thank You!")
	require.Contains(t, slides["ppt/slides/slide6.xml"], `val="FFD166"`)
	require.Equal(t, in.Graph, media)
}

func TestSlides_NoGraph(t *testing.T) {
	in := sampleInput(t)
	in.Graph = nil

	art, err := export.Slides{}.Export(context.Background(), in)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(art.Body), int64(len(art.Body)))
	require.NoError(t, err)
	for _, f := range zr.File {
		require.NotContains(t, f.Name, "ppt/media/")
	}
}

func TestDocument(t *testing.T) {
	in := sampleInput(t)

	art, err := export.Document{}.Export(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, "quadratic_summary.pdf", art.Filename)
	require.Equal(t, "application/pdf", art.ContentType)
	require.True(t, bytes.HasPrefix(art.Body, []byte("%PDF-")))
	require.Contains(t, string(art.Body), "/Subtype /Image")
}

func TestDocument_InvalidGraph(t *testing.T) {
	in := sampleInput(t)
	in.Graph = []byte("not a png")

	_, err := export.Document{}.Export(context.Background(), in)
	require.ErrorIs(t, err, serrors.ErrExportFailure)
}

func TestExportersLeaveNoFiles(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("TMPDIR", dir)

	in := sampleInput(t)
	reg := export.DefaultRegistry()
	for _, f := range []export.Format{export.FormatPNG, export.FormatSlides, export.FormatPDF} {
		_, err := reg.Export(context.Background(), f, in)
		require.NoError(t, err)
	}

	bad := in
	bad.Graph = []byte("broken")
	_, err = reg.Export(context.Background(), export.FormatPDF, bad)
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestRegistry(t *testing.T) {
	reg := export.DefaultRegistry()

	_, err := reg.Export(context.Background(), export.Format("docx"), sampleInput(t))
	require.ErrorIs(t, err, serrors.ErrNotFound)

	_, err = reg.Export(context.Background(), export.FormatSlides, export.Input{})
	require.ErrorIs(t, err, serrors.ErrExportFailure)

	require.Equal(t, "presentation", export.FormatSlides.Label())
	require.Equal(t, "PDF", export.FormatPDF.Label())
	require.Equal(t, "PNG", export.FormatPNG.Label())
}
