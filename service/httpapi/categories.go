package httpapi

import (
	"net/http"

	"github.com/QuangTung97/promo-pricing/service/admin"
)

func (h *Handler) handleListProductCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.admin.ListProductCategories(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	result := make([]productCategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, toProductCategoryResponse(c))
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleCreateProductCategory(w http.ResponseWriter, r *http.Request) {
	var req productCategoryRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	category, err := h.admin.CreateProductCategory(r.Context(), req.Name)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProductCategoryResponse(category))
}

func (h *Handler) handleDeleteProductCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	if err := h.admin.DeleteProductCategory(r.Context(), id); err != nil {
		writeError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListCampaignCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.admin.ListCampaignCategories(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	result := make([]campaignCategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, toCampaignCategoryResponse(c))
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleCreateCampaignCategory(w http.ResponseWriter, r *http.Request) {
	var req campaignCategoryRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	category, err := h.admin.CreateCampaignCategory(r.Context(), admin.CampaignCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCampaignCategoryResponse(category))
}

func (h *Handler) handleDeleteCampaignCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	if err := h.admin.DeleteCampaignCategory(r.Context(), id); err != nil {
		writeError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
