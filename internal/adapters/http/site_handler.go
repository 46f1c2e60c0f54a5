// Package http serves a compiled site for local preview.
package http

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/foliate-press/foliate/internal/core"
)

// NewSiteHandler returns a router that serves the static output
// directory the build produced. Permalinks resolve to their directory
// index, exactly as a production file server would resolve them.
func NewSiteHandler(outputDir string, log *slog.Logger) http.Handler {
	h := &siteHandler{outputDir: outputDir, log: log}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Get("/*", h.serve)

	return r
}

type siteHandler struct {
	outputDir string
	log       *slog.Logger
}

func (h *siteHandler) serve(w http.ResponseWriter, req *http.Request) {
	rel, ok := h.resolve(req.URL.Path)
	if !ok {
		http.NotFound(w, req)
		return
	}

	full := filepath.Join(h.outputDir, rel)
	data, err := os.ReadFile(full)
	if err != nil {
		h.log.Error("serve page", slog.String("path", full), slog.Any("err", err))
		h.renderError(w, err)
		return
	}

	w.Header().Set("Content-Type", core.GetContentType(rel))
	_, _ = w.Write(data)
}

// resolve maps a request path to a file below the output directory.
// Directory requests fall through to their index.html.
func (h *siteHandler) resolve(reqPath string) (string, bool) {
	cleaned := filepath.Clean("/" + reqPath)
	if strings.Contains(cleaned, "..") {
		return "", false
	}
	rel := strings.TrimPrefix(cleaned, "/")

	if rel == "" {
		rel = "index.html"
	}

	full := filepath.Join(h.outputDir, rel)
	info, err := os.Stat(full)
	switch {
	case err == nil && info.IsDir():
		rel = filepath.Join(rel, "index.html")
	case err != nil:
		if filepath.Ext(rel) != "" {
			return "", false
		}
		rel = filepath.Join(rel, "index.html")
	}

	if _, err := os.Stat(filepath.Join(h.outputDir, rel)); err != nil {
		return "", false
	}
	return rel, true
}

func (h *siteHandler) renderError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_ = core.ErrorTemplate.Execute(w, core.ErrorData{Message: err.Error(), IsDev: true})
}
