package httpapi

import (
	"net/http"
	"time"
)

func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.admin.ListProducts(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	result := make([]productResponse, 0, len(products))
	for _, p := range products {
		result = append(result, h.toProductResponse(p))
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	product, err := h.admin.CreateProduct(r.Context(), req.toInput())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.toProductResponse(product))
}

func (h *Handler) handleGetPrice(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	price, err := h.engine.GetEffectivePrice(r.Context(), id)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toPriceResponse(price))
}

// handleExplainEligibility evaluates at the "at" query parameter, defaulting to now
func (h *Handler) handleExplainEligibility(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	at := h.clock.Now()
	if s := r.URL.Query().Get("at"); s != "" {
		at, err = time.Parse(time.RFC3339, s)
		if err != nil {
			writeError(r.Context(), w, ErrInvalidTime)
			return
		}
	}

	explanations, err := h.engine.ExplainEligibility(r.Context(), id, at)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	result := make([]explanationResponse, 0, len(explanations))
	for _, e := range explanations {
		result = append(result, h.toExplanationResponse(e))
	}
	writeJSON(w, http.StatusOK, result)
}
