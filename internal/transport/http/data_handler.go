package http

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"creekwatch/internal/exporter"
)

// DataHandler serves the generated JSON documents
type DataHandler struct {
	dataDir string
	logger  *slog.Logger
}

// NewDataHandler creates a new data handler over the output directory
func NewDataHandler(dataDir string, logger *slog.Logger) *DataHandler {
	return &DataHandler{
		dataDir: dataDir,
		logger:  logger.With(slog.String("handler", "data")),
	}
}

// Routes returns the data API routes
func (h *DataHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/stations", h.serveDocument(exporter.StationsFile))
	r.Get("/measurements", h.serveDocument(exporter.MeasurementsFile))
	r.Get("/latest", h.serveDocument(exporter.LatestValuesFile))
	return r
}

// serveDocument streams a generated document byte-for-byte. Serving the file
// instead of re-marshaling guarantees the API and the on-disk artifact never
// disagree.
func (h *DataHandler) serveDocument(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(h.dataDir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			h.logger.WarnContext(r.Context(), "artifact not available",
				slog.String("document", name),
				slog.String("error", err.Error()))
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, map[string]string{
				"error":    "data not generated yet",
				"document": name,
			})
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
