package httpapi

import (
	"net/http"
)

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.admin.ListCampaigns(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	now := h.clock.Now()
	result := make([]campaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		result = append(result, h.toCampaignResponse(c, now))
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	campaign, err := h.admin.CreateCampaign(r.Context(), req.toInput())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.toCampaignResponse(campaign, h.clock.Now()))
}

func (h *Handler) handleActivateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	campaign, err := h.admin.ActivateCampaign(r.Context(), id)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toCampaignResponse(campaign, h.clock.Now()))
}

func (h *Handler) handleDeactivateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	campaign, err := h.admin.DeactivateCampaign(r.Context(), id)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toCampaignResponse(campaign, h.clock.Now()))
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	if err := h.admin.DeleteCampaign(r.Context(), id); err != nil {
		writeError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
