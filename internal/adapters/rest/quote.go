package rest

import (
	"net/http"

	"github.com/ewilliams-labs/moodmate/internal/core/domain"
)

type quoteRequest struct {
	Bucket  string `json:"bucket" validate:"required"`
	Context string `json:"context"`
	Model   string `json:"model"`
}

type quoteResponse struct {
	Quote string `json:"quote"`
	// Empty is true when the model answered with nothing usable.
	Empty bool `json:"empty"`
}

// Quote handles POST /quote. A model failure is a 502. An empty answer is a
// 200 with "empty": true.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	bucket, err := domain.ParseBucket(req.Bucket)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	q, err := h.svc.Quote(r.Context(), bucket, req.Context, req.Model)
	if err != nil {
		writeErrorWithCode(w, http.StatusBadGateway, err.Error(), errCodeModelUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, quoteResponse{Quote: q, Empty: q == ""})
}
