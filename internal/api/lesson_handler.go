package api

import "net/http"

// handleLesson looks a lesson up by module title. Unknown titles get the
// default lesson, so the response is always 200.
func (h *handler) handleLesson(w http.ResponseWriter, r *http.Request) {
	if h.tutor == nil {
		writeError(w, http.StatusInternalServerError, "service_unavailable")
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	title := r.URL.Query().Get("title")
	writeJSON(w, http.StatusOK, h.tutor.SelectModule(r.Context(), title))
}
