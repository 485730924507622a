package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-kit/log"

	"github.com/snake14v/SQL-LEARNX/internal/curriculum"
	"github.com/snake14v/SQL-LEARNX/internal/evaluator"
)

// Tutor is the service the handler exposes.
type Tutor interface {
	Modules() []curriculum.Module
	SelectModule(ctx context.Context, title string) curriculum.Lesson
	LessonForModule(ctx context.Context, id string) (curriculum.Lesson, bool)
	RunQuery(ctx context.Context, text string) evaluator.QueryResult
}

// Config wires dependencies for the HTTP handler.
type Config struct {
	Tutor  Tutor
	Logger log.Logger
}

// NewHandler builds an HTTP handler for the tutorial API.
func NewHandler(cfg Config) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	h := &handler{
		tutor:  cfg.Tutor,
		logger: log.With(logger, "component", "api"),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/modules", h.handleModules)
	mux.HandleFunc("/v1/modules/", h.handleModuleLesson)
	mux.HandleFunc("/v1/lesson", h.handleLesson)
	mux.HandleFunc("/v1/query", h.handleQuery)
	return withRequestID(mux)
}

type handler struct {
	tutor  Tutor
	logger log.Logger
}

func (h *handler) handleModules(w http.ResponseWriter, r *http.Request) {
	if h.tutor == nil {
		writeError(w, http.StatusInternalServerError, "service_unavailable")
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, modulesResponse{Modules: h.tutor.Modules()})
}

func (h *handler) handleModuleLesson(w http.ResponseWriter, r *http.Request) {
	if h.tutor == nil {
		writeError(w, http.StatusInternalServerError, "service_unavailable")
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/v1/modules/")
	id, ok := strings.CutSuffix(rest, "/lesson")
	id = strings.TrimSpace(id)
	if !ok || id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	lesson, found := h.tutor.LessonForModule(r.Context(), id)
	if !found {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, lesson)
}
