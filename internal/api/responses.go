package api

import (
	"encoding/json"
	"net/http"

	"github.com/snake14v/SQL-LEARNX/internal/curriculum"
)

type errorResponse struct {
	Error string `json:"error"`
}

type modulesResponse struct {
	Modules []curriculum.Module `json:"modules"`
}

type queryRequest struct {
	Query string `json:"query"`
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, errorResponse{Error: code})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		status = http.StatusInternalServerError
		data, _ = json.Marshal(errorResponse{Error: "encode_failed"})
	}
	writeBytes(w, status, data)
}

func writeBytes(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}
