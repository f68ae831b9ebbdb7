package http

import (
	"bytes"
	"fmt"
	"html"
	"net/http"

	"go.uber.org/zap"

	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/usecase"
)

type PageHandler struct {
	service *usecase.PageService
	logger  *zap.Logger
	isDev   bool
}

func NewPageHandler(service *usecase.PageService, logger *zap.Logger, isDev bool) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageHandler{
		service: service,
		logger:  logger,
		isDev:   isDev,
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			err := fmt.Errorf("panic while rendering %s: %v", req.URL.Path, rec)
			h.logger.Error("render panic",
				zap.String("path", req.URL.Path),
				zap.Any("panic", rec),
				zap.Stack("stack"),
			)
			h.serveError(w, err)
		}
	}()

	output := h.service.ServePage(req.Context(), usecase.ServePageInput{
		RequestPath: req.URL.Path,
	})

	if output.Error != nil {
		h.logger.Error("render failed",
			zap.String("path", req.URL.Path),
			zap.Stringer("route", output.Match.Kind),
			zap.Error(output.Error),
		)
		h.serveError(w, output.Error)
		return
	}

	h.serveHTML(w, req, output.Status, output.HTML)
}

func (h *PageHandler) serveHTML(w http.ResponseWriter, req *http.Request, status int, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write([]byte(html))
}

func (h *PageHandler) serveError(w http.ResponseWriter, err error) {
	data := core.ErrorData{
		Message: err.Error(),
		IsDev:   h.isDev,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var buf bytes.Buffer
	if err := core.ErrorTemplate.Execute(&buf, data); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(data.Message) + "</pre></body></html>"))
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(buf.Bytes())
}
