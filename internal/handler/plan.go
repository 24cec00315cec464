package handler

import (
	"net/http"
	"strings"

	"github.com/Dan9191/finplan-service/internal/models"
	"github.com/Dan9191/finplan-service/internal/utils"
	"github.com/gorilla/mux"
)

func readProfile(w http.ResponseWriter, r *http.Request) (models.UserProfile, bool) {
	p := models.DefaultProfile()
	if err := utils.ReadJSON(r, &p, false); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid profile: "+err.Error())
		return models.UserProfile{}, false
	}
	p.RiskProfile = models.RiskTier(strings.ToLower(string(p.RiskProfile)))
	return p, true
}

// Plan computes a planning result for the posted profile
func (h *Handler) Plan(w http.ResponseWriter, r *http.Request) {
	p, ok := readProfile(w, r)
	if !ok {
		return
	}
	res, fp, err := h.svc.Plan(p)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	etag := `"` + fp + `"`
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	utils.WriteJSON(w, http.StatusOK, res)
}

// PlanDashboard returns the dashboard view model for the posted profile
func (h *Handler) PlanDashboard(w http.ResponseWriter, r *http.Request) {
	p, ok := readProfile(w, r)
	if !ok {
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.svc.PlanDashboard(p))
}

// PlanReport returns the PDF blueprint for the posted profile
func (h *Handler) PlanReport(w http.ResponseWriter, r *http.Request) {
	p, ok := readProfile(w, r)
	if !ok {
		return
	}
	pdf, err := h.svc.PlanReport(p)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="financial-blueprint.pdf"`)
	writeBytes(w, "application/pdf", pdf)
}

// Instruments lists the investment catalog
func (h *Handler) Instruments(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.svc.Instruments())
}

// Instrument returns one catalog entry
func (h *Handler) Instrument(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.Instrument(mux.Vars(r)["id"])
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, rec)
}

// Allocation returns the allocation policy of a risk tier
func (h *Handler) Allocation(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.svc.Allocation(mux.Vars(r)["tier"]))
}
