// Package v1handler implements the generated v1 API on top of the visualizer.
package v1handler

import (
	"context"
	"errors"
	"net/http"

	"quadviz/internal/api/specs/v1specs"
	"quadviz/internal/visualizer"
	"quadviz/pkg/logger"
	"quadviz/pkg/serrors"

	"github.com/go-faster/jx"
	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"
)

type Deps struct {
	Visualizer visualizer.Visualizer
}

type Handler struct {
	deps Deps
}

// Ensure Handler implements v1specs.Handler.
var _ v1specs.Handler = (*Handler)(nil)

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// NewError maps err to a status code and a client-safe message chosen by its
// semantic kind. Causes never leak into the response.
func (h Handler) NewError(ctx context.Context, err error) *v1specs.ErrorStatusCode {
	kind := serrors.KindOf(err)

	status, fallback := http.StatusInternalServerError, "internal error"
	switch {
	case errors.Is(kind, serrors.ErrInvalidInput):
		status, fallback = http.StatusBadRequest, "invalid input"
	case errors.Is(kind, serrors.ErrNotFound):
		status, fallback = http.StatusNotFound, "resource not found"
	case errors.Is(kind, serrors.ErrTimeout):
		status, fallback = http.StatusGatewayTimeout, "request timed out"
	case errors.Is(kind, serrors.ErrRenderFailure):
		fallback = "could not render graph"
	case errors.Is(kind, serrors.ErrExportFailure):
		fallback = "could not export artifact"
	}

	message := fallback
	if status < http.StatusInternalServerError {
		message = serrors.MessageOf(err, fallback)
		logger.Warn(ctx, "request rejected", zap.Error(err))
	} else {
		logger.Error(ctx, "request failed", zap.Error(err))
	}

	return &v1specs.ErrorStatusCode{
		StatusCode: status,
		Response: v1specs.Error{
			Code:    v1specs.ErrorCode(kind.Error()),
			Message: message,
		},
	}
}

// HandleError answers failures raised by the generated server before a
// handler method runs. A body that cannot be decoded is reported as invalid
// input, everything else goes through NewError unchanged.
func (h Handler) HandleError(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	var decodeErr *ogenerrors.DecodeRequestError
	if errors.As(err, &decodeErr) {
		err = serrors.Wrap(serrors.ErrInvalidInput, err, "invalid request body")
	}

	res := h.NewError(ctx, err)

	e := new(jx.Encoder)
	res.Response.Encode(e)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(res.StatusCode)
	if _, err := w.Write(e.Bytes()); err != nil {
		logger.Debug(ctx, "could not write error response", zap.Error(err))
	}
}
