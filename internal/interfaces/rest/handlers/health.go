package handlers

import (
	"net/http"

	"github.com/DanielPopoola/goody-commerce-relay/internal/interfaces/rest"
)

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// Health godoc
//
//	@Summary	Liveness probe
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Router		/health [get]
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	rest.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
