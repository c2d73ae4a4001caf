package export

import (
	"bytes"
	"context"

	"quadviz/pkg/pptx"
	"quadviz/pkg/serrors"
)

const (
	SlidesFilename    = "Quadratic_Eq_Best_Presentation.pptx"
	SlidesContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
)

// slide deck theme
//
//nolint: gochecknoglobals
var (
	deckMain      = pptx.RGB(36, 41, 78)
	deckLight     = pptx.RGB(240, 245, 255)
	deckDark      = pptx.RGB(36, 41, 78)
	deckHighlight = pptx.RGB(255, 209, 102)
	deckWhite     = pptx.RGB(255, 255, 255)
	deckSubtitle  = pptx.RGB(170, 220, 255)
	deckFooter    = pptx.RGB(180, 180, 255)
)

const deckFont = "Calibri"

// Slides builds a six-slide deck: title, concept, solution steps, graph,
// summary and closing.
type Slides struct{}

func (Slides) Export(_ context.Context, in Input) (*Artifact, error) {
	if err := requireAnalysis(in); err != nil {
		return nil, err
	}

	deck := pptx.New("Quadratic Equation Visualizer", "quadviz")

	intro := deck.AddSlide()
	intro.AddRect(pptx.FullSlide(), deckDark)
	intro.AddTextBox(pptx.InchBox(1, 2, 8, 1.5), pptx.Paragraph{
		Text: "📘 Quadratic Equation Visualizer", Size: 48, Color: deckWhite, Align: pptx.AlignCenter, Font: deckFont,
	})
	intro.AddTextBox(pptx.InchBox(1, 3.2, 8, 1), pptx.Paragraph{
		Text: "Created with Go, Math & Magic ✨", Size: 24, Color: deckSubtitle, Align: pptx.AlignCenter, Font: deckFont,
	})
	intro.AddTextBox(pptx.InchBox(1, 4.2, 8, 1), pptx.Paragraph{
		Text: in.Analysis.Equation(), Size: 20, Color: deckFooter, Align: pptx.AlignCenter, Font: deckFont,
	})

	addContentSlide(deck, "🎯 What is a Quadratic Equation?", []string{
		"y = ax² + bx + c where a ≠ 0",
		"Forms a parabola when graphed",
		"Discriminant D = b² - 4ac tells root nature",
	}, deckLight, deckMain, deckMain)

	addContentSlide(deck, "🧠 Steps & Solution", in.Analysis.Explanation, deckLight, deckMain, deckMain)

	graphSlide := deck.AddSlide()
	graphSlide.AddTextBox(pptx.InchBox(1, 0.3, 8, 1), pptx.Paragraph{
		Text: "📈 Graph of the Equation", Size: 32, Color: deckMain, Align: pptx.AlignCenter, Font: deckFont,
	})
	if len(in.Graph) > 0 {
		graphSlide.AddPicture(pptx.InchBox(1, 1.5, 7.5, 4.5), in.Graph)
	}

	addContentSlide(deck, "💡 What Did We Learn?", []string{
		"• Quadratic equations create parabolas",
		"• The vertex is a key turning point",
		"• Discriminant tells the nature of roots",
		"• Go can visualize everything!",
	}, deckLight, deckMain, deckMain)

	addContentSlide(deck, "🙏 Thank You!", []string{
		"Made with ❤️ using Go.",
		"Explore. Visualize. Learn.",
	}, deckDark, deckHighlight, deckWhite)

	var buf bytes.Buffer
	if err := deck.Write(&buf); err != nil {
		return nil, serrors.Wrap(serrors.ErrExportFailure, err, "could not write slide deck")
	}

	return &Artifact{Filename: SlidesFilename, ContentType: SlidesContentType, Body: buf.Bytes()}, nil
}

func addContentSlide(deck *pptx.Deck, title string, body []string, bg, titleColor, bodyColor pptx.Color) {
	s := deck.AddSlide()
	s.AddRect(pptx.FullSlide(), bg)
	s.AddTextBox(pptx.InchBox(0.5, 0.2, 9, 1), pptx.Paragraph{
		Text: title, Size: 36, Bold: true, Color: titleColor, Align: pptx.AlignCenter, Font: deckFont,
	})

	paragraphs := make([]pptx.Paragraph, len(body))
	for i, line := range body {
		paragraphs[i] = pptx.Paragraph{Text: line, Size: 22, Color: bodyColor, Font: deckFont}
	}
	s.AddTextBox(pptx.InchBox(0.8, 1.4, 8.4, 5.5), paragraphs...)
}
