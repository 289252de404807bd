package rest

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type pages struct {
	logger *slog.Logger
	port   string
}

func (that *pages) landing(w http.ResponseWriter, _ *http.Request) {
	that.render(w, http.StatusOK, "landing.html", map[string]any{
		"Games": games,
		"Port":  that.port,
	})
}

func (that *pages) notFound(w http.ResponseWriter, _ *http.Request) {
	that.render(w, http.StatusNotFound, "notfound.html", nil)
}

// render executes into a buffer first so a template error can still become a 500.
func (that *pages) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		that.logger.With("method", "render").Error("failed to render page", "page", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
