package http

import (
	"errors"
	"net/http"

	"github.com/jb131997/gymdesk/internal/connect"
	"github.com/jb131997/gymdesk/internal/logger"
	"github.com/jb131997/gymdesk/internal/service"
	"github.com/jb131997/gymdesk/internal/stripe"
	"github.com/jb131997/gymdesk/internal/utils"
)

// getStripeAccountInfo serves the raw account-info operation: the embedding
// client secret plus the connected account snapshot. A gym whose account is
// not provisioned yet gets 404 so callers can retry.
func (h *Handler) getStripeAccountInfo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	gym, ok := gymID(w, r)
	if !ok {
		return
	}

	info, err := h.services.AccountService.FetchAccountInfo(r.Context(), gym)
	if err != nil {
		if errors.Is(err, stripe.ErrAccountNotFound) {
			http.Error(w, stripe.ErrAccountNotFound.Error(), http.StatusNotFound)
			return
		}
		log.Err(err).Str("func", "*Handler.getStripeAccountInfo").Msg("error fetching account info")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, info, http.StatusOK)
}

func (h *Handler) createConnectAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	gym, ok := gymID(w, r)
	if !ok {
		return
	}

	account, err := h.services.AccountService.ConnectAccount(r.Context(), gym)
	if err != nil {
		if errors.Is(err, service.ErrAccountAlreadyConnected) {
			http.Error(w, service.ErrAccountAlreadyConnected.Error(), http.StatusConflict)
			return
		}
		log.Err(err).Str("func", "*Handler.createConnectAccount").Msg("error creating connect account")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, account, http.StatusCreated)
}

// stripeSessionResponse is the wire shape of the embedding session state.
type stripeSessionResponse struct {
	PublishableKey string `json:"publishableKey,omitempty"`
	ClientSecret   string `json:"clientSecret,omitempty"`
	Account        any    `json:"account,omitempty"`
	Loading        bool   `json:"loading"`
	Error          string `json:"error,omitempty"`
}

func sessionStateResponse(m *connect.SessionManager) stripeSessionResponse {
	state := m.State()

	resp := stripeSessionResponse{
		Loading: state.Loading,
		Error:   state.Error,
	}
	if state.Account != nil {
		resp.Account = state.Account
	}
	if state.Client != nil {
		resp.PublishableKey = state.Client.PublishableKey
		resp.ClientSecret = state.Client.FetchClientSecret()
	}
	return resp
}

// getStripeSession runs the session establishment protocol when no session
// is held yet, then returns the manager state.
func (h *Handler) getStripeSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	gym, ok := gymID(w, r)
	if !ok {
		return
	}

	manager := h.sessions.For(gym)
	if state := manager.State(); state.Client == nil && state.Error == "" {
		if err := manager.Initialize(r.Context(), gym); err != nil {
			log.Err(err).Str("func", "*Handler.getStripeSession").Msg("session initialization failed")
		}
	}

	utils.WriteJSON(w, sessionStateResponse(manager), http.StatusOK)
}

// reinitializeStripeSession drops the held session and restarts the
// protocol from attempt 0.
func (h *Handler) reinitializeStripeSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	gym, ok := gymID(w, r)
	if !ok {
		return
	}

	manager := h.sessions.For(gym)
	if err := manager.Reinitialize(r.Context(), gym); err != nil {
		log.Err(err).Str("func", "*Handler.reinitializeStripeSession").Msg("session reinitialization failed")
	}

	utils.WriteJSON(w, sessionStateResponse(manager), http.StatusOK)
}
