package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/devconnect-app/backend/services"
)

type searchHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   services.SearchService
}

func newSearchHandler(service services.SearchService) searchHandler {
	logger := log.With().Str("handlerName", "searchHandler").Logger()

	return searchHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

// search answers GET /api/search?q= with matching people and projects
func (h searchHandler) search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, SearchResponse{
			People:   newUserProfiles(result.People),
			Projects: newProjectResponses(result.Projects),
		})
	}
}
