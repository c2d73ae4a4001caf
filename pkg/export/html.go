package export

import (
	"encoding/base64"
	"html"
	"html/template"
	"strings"
)

// HTMLView is the data the interactive page needs to show a result.
type HTMLView struct {
	// Explanation holds each line escaped and wrapped in <pre>, separated by
	// blank lines.
	Explanation template.HTML
	// Lines are the plain explanation lines.
	Lines []string
	// ImageBase64 is the standard base64 encoding of the graph, empty when
	// rendering failed.
	ImageBase64 string
}

// HTML builds the page fragment for in.
func HTML(in Input) HTMLView {
	var lines []string
	if in.Analysis != nil {
		lines = in.Analysis.Explanation
	}

	wrapped := make([]string, len(lines))
	for i, line := range lines {
		wrapped[i] = "<pre>" + html.EscapeString(line) + "</pre>"
	}

	return HTMLView{
		Explanation: template.HTML(strings.Join(wrapped, "<br><br>")), //nolint: gosec
		Lines:       lines,
		ImageBase64: base64.StdEncoding.EncodeToString(in.Graph),
	}
}
