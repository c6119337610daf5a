package api

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/deepfield-ai/pitchviz"
	"github.com/deepfield-ai/pitchviz/slogger"
	"github.com/deepfield-ai/pitchviz/toolkit"
)

// contentTypes maps served file extensions to their MIME types. Anything
// else is refused rather than sniffed.
var contentTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".svg":  "image/svg+xml",
}

// handler holds shared dependencies for all endpoint handlers.
type handler struct {
	root   string
	logger slogger.Logger
	pizza  pitchviz.Tool
	radar  pitchviz.Tool
}

func newHandler(cfg Config) *handler {
	return &handler{
		root:   cfg.Root,
		logger: cfg.Logger,
		pizza: toolkit.NewPizzaChartTool(toolkit.PizzaChartToolOptions{
			BaseDir: filepath.Join(cfg.Root, "plots"),
			Logger:  cfg.Logger,
		}),
		radar: toolkit.NewRadarChartTool(toolkit.RadarChartToolOptions{
			BaseDir: filepath.Join(cfg.Root, "plots"),
			Logger:  cfg.Logger,
		}),
	}
}

// HealthCheck returns basic health status.
func (h *handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GetViz serves a previously rendered chart image. The path parameter is
// relative to the server root and must not escape it.
func (h *handler) GetViz(w http.ResponseWriter, r *http.Request) {
	relPath := r.URL.Query().Get("path")
	if relPath == "" {
		writeError(w, http.StatusBadRequest, "path query parameter is required")
		return
	}

	if filepath.IsAbs(relPath) || !filepath.IsLocal(filepath.FromSlash(relPath)) {
		writeError(w, http.StatusForbidden, "access denied")
		return
	}

	ext := strings.ToLower(filepath.Ext(relPath))
	contentType, ok := contentTypes[ext]
	if !ok {
		writeError(w, http.StatusForbidden, "unsupported file type")
		return
	}

	fullPath := filepath.Join(h.root, filepath.FromSlash(relPath))
	info, err := os.Stat(fullPath)
	if err != nil || info.IsDir() {
		writeError(w, http.StatusNotFound, "file not found")
		return
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		writeError(w, http.StatusNotFound, "file not found")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// PostPizzaChart renders a pizza chart from a JSON body and responds with
// the tool result, including the base64 image payload.
func (h *handler) PostPizzaChart(w http.ResponseWriter, r *http.Request) {
	h.renderChart(w, r, h.pizza)
}

// PostRadarChart renders a radar chart from a JSON body.
func (h *handler) PostRadarChart(w http.ResponseWriter, r *http.Request) {
	h.renderChart(w, r, h.radar)
}

func (h *handler) renderChart(w http.ResponseWriter, r *http.Request, tool pitchviz.Tool) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	result, err := tool.Call(r.Context(), body)
	if err != nil {
		h.logger.Error("chart render failed", "tool", tool.Name(), "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	status := http.StatusOK
	if result.IsError {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
