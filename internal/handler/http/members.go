package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jb131997/gymdesk/internal/logger"
	"github.com/jb131997/gymdesk/internal/service"
	"github.com/jb131997/gymdesk/internal/store"
	"github.com/jb131997/gymdesk/internal/utils"
	"github.com/jb131997/gymdesk/internal/validators"
	"github.com/jb131997/gymdesk/models"
)

// memberResponse is the wire shape of a member: stored digit-only phone
// numbers go out formatted for display.
type memberResponse struct {
	models.Member
	Phone string `json:"phone,omitempty"`
}

func toMemberResponse(m models.Member) memberResponse {
	return memberResponse{Member: m, Phone: validators.FormatPhone(m.Phone)}
}

func toMemberResponses(members []models.Member) []memberResponse {
	out := make([]memberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, toMemberResponse(m))
	}
	return out
}

func (h *Handler) createMember(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	gym, ok := gymID(w, r)
	if !ok {
		return
	}

	var member models.Member
	if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
		log.Err(err).Str("func", "*Handler.createMember").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	member.GymID = gym

	created, err := h.services.MemberService.CreateMember(r.Context(), member)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			log.Err(err).Str("func", "*Handler.createMember").Msg("invalid member data")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Err(err).Str("func", "*Handler.createMember").Msg("error creating member")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, toMemberResponse(created), http.StatusCreated)
}

func (h *Handler) getMember(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	gym, ok := gymID(w, r)
	if !ok {
		return
	}

	member, err := h.services.MemberService.GetMember(r.Context(), chi.URLParam(r, "id"), gym)
	if err != nil {
		if errors.Is(err, store.ErrMemberNotFound) {
			http.Error(w, "member not found", http.StatusNotFound)
			return
		}
		log.Err(err).Str("func", "*Handler.getMember").Msg("error getting member")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, toMemberResponse(member), http.StatusOK)
}

func (h *Handler) listMembers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	gym, ok := gymID(w, r)
	if !ok {
		return
	}

	filter := store.MemberFilter{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("search"),
	}

	members, err := h.services.MemberService.ListMembers(r.Context(), gym, filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listMembers").Msg("error listing members")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, toMemberResponses(members), http.StatusOK)
}

func (h *Handler) updateMember(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	gym, ok := gymID(w, r)
	if !ok {
		return
	}

	var update models.MemberUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateMember").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	update.ID = chi.URLParam(r, "id")
	update.GymID = gym

	updated, err := h.services.MemberService.UpdateMember(r.Context(), update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrMemberNotFound):
			http.Error(w, "member not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.updateMember").Msg("error updating member")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, toMemberResponse(updated), http.StatusOK)
}

func (h *Handler) deleteMember(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	gym, ok := gymID(w, r)
	if !ok {
		return
	}

	if err := h.services.MemberService.DeleteMember(r.Context(), chi.URLParam(r, "id"), gym); err != nil {
		if errors.Is(err, store.ErrMemberNotFound) {
			http.Error(w, "member not found", http.StatusNotFound)
			return
		}
		log.Err(err).Str("func", "*Handler.deleteMember").Msg("error deleting member")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
