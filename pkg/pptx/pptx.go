// Package pptx writes minimal PresentationML (.pptx) decks: blank slides
// holding filled rectangles, text boxes and PNG pictures. It produces just
// enough of the Office Open XML package for PowerPoint, LibreOffice and
// Keynote to open the file.
package pptx

import (
	"archive/zip"
	"bytes"
	"embed"
	"encoding/xml"
	"fmt"
	"io"
	"text/template"
)

//go:embed parts
var parts embed.FS

//nolint: gochecknoglobals
var templates = template.Must(template.New("pptx").Funcs(template.FuncMap{
	"xml": escape,
}).ParseFS(parts, "parts/*.tmpl"))

const (
	// EMUPerInch is the number of English Metric Units in an inch.
	EMUPerInch = 914400
	// SlideWidth and SlideHeight are the 4:3 slide dimensions (10in x 7.5in).
	SlideWidth  = 10 * EMUPerInch
	SlideHeight = 7.5 * EMUPerInch
)

// Inches converts inches to EMU.
func Inches(in float64) int64 { return int64(in * EMUPerInch) }

// Box positions a shape on a slide, in EMU.
type Box struct {
	X, Y, W, H int64
}

// InchBox builds a Box from inch measurements.
func InchBox(x, y, w, h float64) Box {
	return Box{X: Inches(x), Y: Inches(y), W: Inches(w), H: Inches(h)}
}

// FullSlide covers the whole slide.
func FullSlide() Box { return Box{W: SlideWidth, H: SlideHeight} }

// Color is an RRGGBB hex string.
type Color string

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color { return Color(fmt.Sprintf("%02X%02X%02X", r, g, b)) }

// Align is a paragraph alignment.
type Align string

const (
	AlignLeft   Align = ""
	AlignCenter Align = "ctr"
	AlignRight  Align = "r"
)

// Paragraph is a single-run paragraph of styled text.
type Paragraph struct {
	Text  string
	Size  float64 // points
	Bold  bool
	Color Color
	Align Align
	Font  string
}

type paragraphView struct {
	Paragraph
	Size int // hundredths of a point
}

// Rect is a filled rectangle without outline.
type Rect struct {
	Fill Color
}

type textView struct {
	Paragraphs []paragraphView
}

type pictureView struct {
	RelID string
	Media string
}

type shape struct {
	ID      int
	Name    string
	Box     Box
	Rect    *Rect
	Text    *textView
	Picture *pictureView

	png []byte
}

// Slide is a blank slide. Shapes are stacked in the order they are added.
type Slide struct {
	shapes []shape
}

func (s *Slide) add(sh shape) {
	// id 1 is the slide's shape tree
	sh.ID = len(s.shapes) + 2
	s.shapes = append(s.shapes, sh)
}

// AddRect adds a filled rectangle.
func (s *Slide) AddRect(box Box, fill Color) {
	s.add(shape{Name: fmt.Sprintf("Rectangle %d", len(s.shapes)+2), Box: box, Rect: &Rect{Fill: fill}})
}

// AddTextBox adds a text box holding paragraphs.
func (s *Slide) AddTextBox(box Box, paragraphs ...Paragraph) {
	tv := &textView{Paragraphs: make([]paragraphView, len(paragraphs))}
	for i, p := range paragraphs {
		tv.Paragraphs[i] = paragraphView{Paragraph: p, Size: int(p.Size * 100)}
	}
	s.add(shape{Name: fmt.Sprintf("TextBox %d", len(s.shapes)+2), Box: box, Text: tv})
}

// AddPicture adds a PNG image stretched to box.
func (s *Slide) AddPicture(box Box, png []byte) {
	s.add(shape{Name: fmt.Sprintf("Picture %d", len(s.shapes)+2), Box: box, png: png, Picture: &pictureView{}})
}

// Deck is an in-memory presentation.
type Deck struct {
	Title  string
	Author string

	slides []*Slide
}

// New returns an empty deck.
func New(title, author string) *Deck {
	return &Deck{Title: title, Author: author}
}

// AddSlide appends a blank slide and returns it for drawing.
func (d *Deck) AddSlide() *Slide {
	s := &Slide{}
	d.slides = append(d.slides, s)

	return s
}


type slideView struct {
	Number int
	ID     int
	RelID  string
	Shapes []shape
}

type deckView struct {
	Title      string
	Author     string
	Width      int64
	Height     int64
	Slides     []slideView
	ThemeRelID string
}

// Write encodes the deck as a .pptx package to w.
func (d *Deck) Write(w io.Writer) error {
	view := deckView{
		Title:      d.Title,
		Author:     d.Author,
		Width:      SlideWidth,
		Height:     SlideHeight,
		Slides:     make([]slideView, len(d.slides)),
		ThemeRelID: fmt.Sprintf("rId%d", len(d.slides)+2),
	}

	var media []file
	for i, s := range d.slides {
		shapes := make([]shape, len(s.shapes))
		copy(shapes, s.shapes)
		rel := 2
		for j := range shapes {
			if shapes[j].Picture == nil {
				continue
			}
			name := fmt.Sprintf("image%d.png", len(media)+1)
			shapes[j].Picture = &pictureView{RelID: fmt.Sprintf("rId%d", rel), Media: name}
			media = append(media, file{name: "ppt/media/" + name, data: shapes[j].png})
			rel++
		}
		view.Slides[i] = slideView{
			Number: i + 1,
			ID:     256 + i,
			RelID:  fmt.Sprintf("rId%d", i+2),
			Shapes: shapes,
		}
	}

	zw := zip.NewWriter(w)

	static := []struct{ name, part string }{
		{"_rels/.rels", "parts/root.rels"},
		{"ppt/slideMasters/slideMaster1.xml", "parts/slideMaster.xml"},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", "parts/slideMaster.xml.rels"},
		{"ppt/slideLayouts/slideLayout1.xml", "parts/slideLayout.xml"},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", "parts/slideLayout.xml.rels"},
		{"ppt/theme/theme1.xml", "parts/theme.xml"},
	}
	for _, s := range static {
		data, err := parts.ReadFile(s.part)
		if err != nil {
			return fmt.Errorf("could not read %s: %w", s.part, err)
		}
		if err := writeFile(zw, file{name: s.name, data: data}); err != nil {
			return err
		}
	}

	rendered := []renderedPart{
		{"[Content_Types].xml", "content_types.xml.tmpl", view},
		{"docProps/core.xml", "core.xml.tmpl", view},
		{"docProps/app.xml", "app.xml.tmpl", view},
		{"ppt/presentation.xml", "presentation.xml.tmpl", view},
		{"ppt/_rels/presentation.xml.rels", "presentation.xml.rels.tmpl", view},
	}
	for _, s := range view.Slides {
		rendered = append(rendered,
			renderedPart{fmt.Sprintf("ppt/slides/slide%d.xml", s.Number), "slide.xml.tmpl", s},
			renderedPart{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", s.Number), "slide.xml.rels.tmpl", s},
		)
	}
	for _, r := range rendered {
		var buf bytes.Buffer
		if err := templates.ExecuteTemplate(&buf, r.tmpl, r.data); err != nil {
			return fmt.Errorf("could not render %s: %w", r.name, err)
		}
		if err := writeFile(zw, file{name: r.name, data: buf.Bytes()}); err != nil {
			return err
		}
	}

	for _, m := range media {
		if err := writeFile(zw, m); err != nil {
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("could not finish pptx archive: %w", err)
	}

	return nil
}

type renderedPart struct {
	name string
	tmpl string
	data any
}

type file struct {
	name string
	data []byte
}

func writeFile(zw *zip.Writer, f file) error {
	fw, err := zw.CreateHeader(&zip.FileHeader{Name: f.name, Method: zip.Deflate})
	if err != nil {
		return fmt.Errorf("could not add %s: %w", f.name, err)
	}
	if _, err := fw.Write(f.data); err != nil {
		return fmt.Errorf("could not write %s: %w", f.name, err)
	}

	return nil
}

func escape(s string) (string, error) {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buf.String(), nil
}
