package rest

import (
	"net/http"

	"github.com/ewilliams-labs/moodmate/internal/core/domain"
	"github.com/ewilliams-labs/moodmate/internal/core/services"
)

type suggestRequest struct {
	Text  string `json:"text" validate:"required"`
	Model string `json:"model"`
	Limit int    `json:"limit" validate:"gte=0,lte=50"`
	Music bool   `json:"music"`
	Quote bool   `json:"quote"`
}

type suggestResponse struct {
	Preset domain.Preset         `json:"preset"`
	Tracks *[]domain.TrackRecord `json:"tracks,omitempty"`
	Quote  *quoteResponse        `json:"quote,omitempty"`
	Errors map[string]string     `json:"errors,omitempty"`
}

// Suggest handles POST /suggest. Parts that fail are reported under errors
// while the rest of the answer is still returned.
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	s := h.svc.Suggest(r.Context(), services.SuggestRequest{
		Text:  req.Text,
		Model: req.Model,
		Limit: req.Limit,
		Music: req.Music,
		Quote: req.Quote,
	})

	resp := suggestResponse{Preset: s.Preset}
	if req.Music && s.TracksErr == nil {
		resp.Tracks = &s.Tracks
	}
	if req.Quote && s.QuoteErr == nil {
		resp.Quote = &quoteResponse{Quote: s.Quote, Empty: s.Quote == ""}
	}
	if s.TracksErr != nil || s.QuoteErr != nil {
		resp.Errors = map[string]string{}
		if s.TracksErr != nil {
			resp.Errors["tracks"] = s.TracksErr.Error()
		}
		if s.QuoteErr != nil {
			resp.Errors["quote"] = s.QuoteErr.Error()
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
