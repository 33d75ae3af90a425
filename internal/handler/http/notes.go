package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jb131997/gymdesk/internal/logger"
	"github.com/jb131997/gymdesk/internal/service"
	"github.com/jb131997/gymdesk/internal/store"
	"github.com/jb131997/gymdesk/internal/utils"
	"github.com/jb131997/gymdesk/models"
)

func (h *Handler) addNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	gym, ok := gymID(w, r)
	if !ok {
		return
	}

	var note models.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		log.Err(err).Str("func", "*Handler.addNote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	note.MemberID = chi.URLParam(r, "id")
	note.GymID = gym

	created, err := h.services.NoteService.AddNote(r.Context(), note)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			http.Error(w, "note content is required", http.StatusBadRequest)
			return
		}
		log.Err(err).Str("func", "*Handler.addNote").Msg("error adding note")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	gym, ok := gymID(w, r)
	if !ok {
		return
	}

	notes, err := h.services.NoteService.ListNotes(r.Context(), chi.URLParam(r, "id"), gym)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listNotes").Msg("error listing notes")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	gym, ok := gymID(w, r)
	if !ok {
		return
	}

	noteID, err := strconv.ParseInt(chi.URLParam(r, "noteID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid note ID", http.StatusBadRequest)
		return
	}

	if err := h.services.NoteService.DeleteNote(r.Context(), noteID, gym); err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			http.Error(w, "note not found", http.StatusNotFound)
			return
		}
		log.Err(err).Str("func", "*Handler.deleteNote").Msg("error deleting note")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) logActivity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	gym, ok := gymID(w, r)
	if !ok {
		return
	}

	var activity models.Activity
	if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
		log.Err(err).Str("func", "*Handler.logActivity").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	activity.MemberID = chi.URLParam(r, "id")
	activity.GymID = gym

	created, err := h.services.NoteService.LogActivity(r.Context(), activity)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			http.Error(w, "unknown activity type", http.StatusBadRequest)
			return
		}
		log.Err(err).Str("func", "*Handler.logActivity").Msg("error logging activity")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	gym, ok := gymID(w, r)
	if !ok {
		return
	}

	activities, err := h.services.NoteService.ListActivities(r.Context(), chi.URLParam(r, "id"), gym)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listActivities").Msg("error listing activities")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, activities, http.StatusOK)
}
