package rest

import (
	"errors"
	"net/http"

	"github.com/ewilliams-labs/moodmate/internal/core/domain"
)

type recommendRequest struct {
	Bucket  string   `json:"bucket" validate:"required"`
	Energy  *float64 `json:"energy" validate:"required,gte=0,lte=1"`
	Valence *float64 `json:"valence" validate:"required,gte=0,lte=1"`
	Limit   int      `json:"limit" validate:"gte=0,lte=50"`
}

type tracksResponse struct {
	Tracks []domain.TrackRecord `json:"tracks"`
}

// Recommend handles POST /recommendations. An empty track list is a valid
// answer; only missing catalog credentials fail the request.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	bucket, err := domain.ParseBucket(req.Bucket)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tracks, err := h.svc.Recommend(r.Context(), bucket, *req.Energy, *req.Valence, req.Limit)
	if err != nil {
		writeRecommendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tracksResponse{Tracks: tracks})
}

func writeRecommendError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrMissingCredentials) {
		writeErrorWithCode(w, http.StatusServiceUnavailable, err.Error(), errCodeCatalogUnavailable)
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}
