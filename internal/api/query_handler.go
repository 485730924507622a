package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-kit/log/level"
)

const maxQueryBody = 64 << 10

func (h *handler) handleQuery(w http.ResponseWriter, r *http.Request) {
	if h.tutor == nil {
		writeError(w, http.StatusInternalServerError, "service_unavailable")
		return
	}
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req queryRequest
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxQueryBody))
	if err := decoder.Decode(&req); err != nil {
		level.Debug(h.logger).Log("msg", "invalid query request", "request_id", w.Header().Get(requestIDHeader), "err", err)
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	writeJSON(w, http.StatusOK, h.tutor.RunQuery(r.Context(), req.Query))
}
