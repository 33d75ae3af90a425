package http

import (
	"net/http"

	"github.com/jb131997/gymdesk/internal/connect"
	"github.com/jb131997/gymdesk/internal/logger"
	"github.com/jb131997/gymdesk/internal/service"
	"github.com/jb131997/gymdesk/internal/utils"
)

// Handler carries the service bundle, the per-gym embedding session
// registry, and the version string exposed by the version endpoint.
type Handler struct {
	services *service.Services
	sessions *connect.Registry
	version  string

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *connect.Registry, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		sessions: sessions,
		version:  version,
		logger:   logger,
	}
}

// gymID extracts the authenticated profile UUID placed in the context by the
// auth middleware. A missing value means the handler was reached without the
// middleware; the request is rejected with 401.
func gymID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok || id == "" {
		logger.FromRequest(r).Error().Msg("no authenticated gym in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return "", false
	}
	return id, true
}
