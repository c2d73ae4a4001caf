// Package webhandler serves the interactive HTML page and the artifact
// downloads posted from it.
package webhandler

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"math"
	"net/http"
	"strconv"
	"strings"

	"quadviz/internal/visualizer"
	"quadviz/pkg/controller"
	"quadviz/pkg/export"
	"quadviz/pkg/logger"
	"quadviz/pkg/quadratic"
	"quadviz/pkg/serrors"

	"go.uber.org/zap"
)

//go:embed templates/index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML)) //nolint: gochecknoglobals

const (
	MsgInvalidNumbers = "Please enter valid numerical values for a, b, and c."
	MsgZeroA          = "Coefficient 'a' must not be zero."
	msgExportFailed   = "Something went wrong while generating the %s."
)

var (
	errInvalidNumbers = serrors.With(serrors.ErrInvalidInput, MsgInvalidNumbers) //nolint: gochecknoglobals
	errZeroA          = serrors.With(serrors.ErrInvalidInput, MsgZeroA)          //nolint: gochecknoglobals
)

type download struct {
	Action string
	Label  string
	Format export.Format
}

// downloads lists the artifact routes in page order.
//
//nolint: gochecknoglobals
var downloads = []download{
	{Action: "/download_png", Label: "Download PNG", Format: export.FormatPNG},
	{Action: "/download_ppt", Label: "Download PPT", Format: export.FormatSlides},
	{Action: "/download_pdf", Label: "Download PDF", Format: export.FormatPDF},
}

type Deps struct {
	Visualizer visualizer.Visualizer
	Flasher    *controller.Flasher
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts the page and download routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Index)
	mux.HandleFunc("POST /{$}", h.Solve)
	for _, d := range downloads {
		mux.HandleFunc("POST "+d.Action, h.Download(d.Format))
	}
}

type page struct {
	Flash       *controller.Flash
	A, B, C     string
	Explanation template.HTML
	ImageBase64 string
	Downloads   []download
}

// ParseCoefficients reads a, b and c from a submitted form. Values follow
// the usual float syntax with surrounding whitespace allowed; missing,
// malformed and non-finite values are rejected, as is a = 0.
func ParseCoefficients(form interface{ Get(key string) string }) (visualizer.Coefficients, error) {
	var vals [3]float64
	for i, name := range []string{"a", "b", "c"} {
		v, err := strconv.ParseFloat(strings.TrimSpace(form.Get(name)), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return visualizer.Coefficients{}, errInvalidNumbers
		}
		vals[i] = v
	}
	if vals[0] == 0 {
		return visualizer.Coefficients{}, errZeroA
	}

	return visualizer.Coefficients{A: vals[0], B: vals[1], C: vals[2]}, nil
}

// Index renders the empty form.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(r.Context(), w, h.page(w, r))
}

// Solve renders the explanation and graph for the submitted coefficients,
// or redirects back to the form with a flash message when they are invalid.
func (h *Handler) Solve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	coeffs, err := h.parse(r)
	if err != nil {
		h.redirect(ctx, w, r, err, MsgInvalidNumbers)

		return
	}

	res, err := h.deps.Visualizer.Visualize(ctx, coeffs)
	if err != nil {
		h.redirect(ctx, w, r, err, MsgInvalidNumbers)

		return
	}

	p := h.page(w, r)
	p.A, p.B, p.C = quadratic.Natural(coeffs.A), quadratic.Natural(coeffs.B), quadratic.Natural(coeffs.C)
	p.Explanation = res.View.Explanation
	p.ImageBase64 = res.View.ImageBase64
	p.Downloads = downloads
	h.render(ctx, w, p)
}

// Download returns the handler that streams format as an attachment.
func (h *Handler) Download(format export.Format) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithFields(r.Context(), zap.String("format", string(format)))

		coeffs, err := h.parse(r)
		if err != nil {
			h.redirect(ctx, w, r, err, MsgInvalidNumbers)

			return
		}

		art, err := h.deps.Visualizer.Export(ctx, coeffs, format)
		if err != nil {
			h.redirect(ctx, w, r, err, fmt.Sprintf(msgExportFailed, format.Label()))

			return
		}

		w.Header().Set("Content-Type", art.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", art.Filename))
		w.Header().Set("Content-Length", strconv.Itoa(len(art.Body)))
		if _, err := w.Write(art.Body); err != nil {
			logger.Debug(ctx, "could not write artifact", zap.Error(err))
		}
	}
}

func (h *Handler) parse(r *http.Request) (visualizer.Coefficients, error) {
	if err := r.ParseForm(); err != nil {
		return visualizer.Coefficients{}, errInvalidNumbers
	}

	return ParseCoefficients(r.PostForm)
}

// page starts a page carrying the pending flash message, if any.
func (h *Handler) page(w http.ResponseWriter, r *http.Request) page {
	var p page
	if f, ok := h.deps.Flasher.Pop(w, r); ok {
		p.Flash = f
	}

	return p
}

// redirect flashes a message chosen from err and sends the client back to
// the form. Invalid input gets its own message; anything else gets fallback.
func (h *Handler) redirect(ctx context.Context, w http.ResponseWriter, r *http.Request, err error, fallback string) {
	msg := fallback
	switch {
	case errors.Is(err, errZeroA):
		msg = MsgZeroA
	case errors.Is(err, serrors.ErrInvalidInput):
		msg = MsgInvalidNumbers
	}

	if errors.Is(err, serrors.ErrInvalidInput) {
		logger.Debug(ctx, "rejected coefficients", zap.Error(err))
	} else {
		logger.Error(ctx, "request failed", zap.Error(err))
	}

	if err := h.deps.Flasher.Set(w, controller.Flash{Category: controller.FlashError, Message: msg}); err != nil {
		logger.Error(ctx, "could not set flash", zap.Error(err))
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) render(ctx context.Context, w http.ResponseWriter, p page) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, p); err != nil {
		logger.Error(ctx, "could not render page", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		logger.Debug(ctx, "could not write page", zap.Error(err))
	}
}
