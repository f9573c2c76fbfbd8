package handlers

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/joe135730/Concensor-sub001/internal/telemetry"
	"github.com/joe135730/Concensor-sub001/internal/templates/pages"
)

// Home renders the landing page.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "home", http.StatusOK, pages.Home())
}

// Login renders the login page.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if code := r.URL.Query().Get("error"); code != "" {
		h.logger.Info("login page shown after failed sign-in", "error_code", code)
	}
	h.render(w, r, "login", http.StatusOK, pages.Login())
}

// NotFound renders the 404 page.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "not_found", http.StatusNotFound, pages.NotFound())
}

// render writes the page only once it has rendered completely, so a failure
// can still be answered with a clean 500.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, name string, status int, page templ.Component) {
	ctx, span := telemetry.Tracer().Start(r.Context(), "page.render",
		trace.WithAttributes(attribute.String("page.name", name)),
	)
	defer span.End()

	var buf bytes.Buffer
	err := page.Render(ctx, &buf)
	h.metrics.ObserveRender(name, err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		h.logger.Error("failed to render page", "page", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("failed to write page", "page", name, "error", err)
	}
}
