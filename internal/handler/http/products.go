package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jb131997/gymdesk/internal/logger"
	"github.com/jb131997/gymdesk/internal/service"
	"github.com/jb131997/gymdesk/internal/store"
	"github.com/jb131997/gymdesk/internal/stripe"
	"github.com/jb131997/gymdesk/internal/utils"
	"github.com/jb131997/gymdesk/models"
)

// errorResponse is the {error} body returned by catalog endpoints.
type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	gym, ok := gymID(w, r)
	if !ok {
		return
	}

	var input models.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Str("func", "*Handler.createProduct").Msg("Invalid JSON was passed")
		utils.WriteJSON(w, errorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	created, err := h.services.ProductService.CreateProduct(r.Context(), gym, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Str("func", "*Handler.createProduct").Msg("invalid product data")
			utils.WriteJSON(w, errorResponse{Error: err.Error()}, http.StatusBadRequest)
			return
		case errors.Is(err, stripe.ErrAccountNotFound):
			utils.WriteJSON(w, errorResponse{Error: stripe.ErrAccountNotFound.Error()}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Str("func", "*Handler.createProduct").Msg("error creating product")
			utils.WriteJSON(w, errorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.CreateProductResponse{Success: true, Product: created}, http.StatusOK)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	gym, ok := gymID(w, r)
	if !ok {
		return
	}

	products, err := h.services.ProductService.ListProducts(r.Context(), gym)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listProducts").Msg("error listing products")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, products, http.StatusOK)
}

// updateProduct toggles a catalog entry's active flag.
func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	gym, ok := gymID(w, r)
	if !ok {
		return
	}

	var body struct {
		Active *bool `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Active == nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ProductService.SetActive(r.Context(), chi.URLParam(r, "id"), gym, *body.Active); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		log.Err(err).Str("func", "*Handler.updateProduct").Msg("error updating product")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
