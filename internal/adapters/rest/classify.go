package rest

import (
	"net/http"
)

type classifyRequest struct {
	Text  string `json:"text" validate:"required"`
	Model string `json:"model"`
}

// Classify handles POST /classify. It always answers with a preset.
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, h.svc.Classify(r.Context(), req.Text, req.Model))
}
