package handler

import (
	"net/http"
	"strconv"

	"github.com/Dan9191/finplan-service/internal/middleware"
	"github.com/Dan9191/finplan-service/internal/utils"
	"github.com/Dan9191/finplan-service/internal/wizard"
	"github.com/gorilla/mux"
)

type startResponse struct {
	Token   string `json:"token"`
	Session any    `json:"session"`
}

type emailRequest struct {
	To string `json:"to"`
}

func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "missing session")
	}
	return id, ok
}

func readFields(w http.ResponseWriter, r *http.Request) (wizard.Fields, bool) {
	var f wizard.Fields
	if err := utils.ReadJSON(r, &f, true); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid fields: "+err.Error())
		return wizard.Fields{}, false
	}
	return f, true
}

// StartWizard opens a session and returns its bearer token
func (h *Handler) StartWizard(w http.ResponseWriter, r *http.Request) {
	view, token, err := h.svc.StartSession(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, startResponse{Token: token, Session: view})
}

// GetWizard returns the current session state
func (h *Handler) GetWizard(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	view, err := h.svc.Session(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, view)
}

// GoToStep jumps to the step in the path, submitting the current step's fields
func (h *Handler) GoToStep(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	step, err := strconv.Atoi(mux.Vars(r)["step"])
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "step must be a number")
		return
	}
	f, ok := readFields(w, r)
	if !ok {
		return
	}
	res, err := h.svc.GoTo(r.Context(), id, step, f)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, res)
}

// NextStep advances the wizard
func (h *Handler) NextStep(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	f, ok := readFields(w, r)
	if !ok {
		return
	}
	res, err := h.svc.Next(r.Context(), id, f)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, res)
}

// PrevStep moves the wizard back
func (h *Handler) PrevStep(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	f, ok := readFields(w, r)
	if !ok {
		return
	}
	res, err := h.svc.Prev(r.Context(), id, f)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, res)
}

// RestartWizard resets the session
func (h *Handler) RestartWizard(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	res, err := h.svc.Restart(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, res)
}

// EndWizard deletes the session
func (h *Handler) EndWizard(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	if err := h.svc.EndSession(r.Context(), id); err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// WizardDashboard returns the results view
func (h *Handler) WizardDashboard(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	d, err := h.svc.SessionDashboard(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, d)
}

// AllocationChart returns the donut chart
func (h *Handler) AllocationChart(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	svg, err := h.svc.AllocationChart(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeBytes(w, "image/svg+xml", svg)
}

// ProjectionChart returns the growth bar chart
func (h *Handler) ProjectionChart(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	svg, err := h.svc.ProjectionChart(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeBytes(w, "image/svg+xml", svg)
}

// WizardReport returns the PDF blueprint
func (h *Handler) WizardReport(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	pdf, err := h.svc.SessionReport(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="financial-blueprint.pdf"`)
	writeBytes(w, "application/pdf", pdf)
}

// EmailPlan sends the plan summary to an address
func (h *Handler) EmailPlan(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req emailRequest
	if err := utils.ReadJSON(r, &req, false); err != nil || req.To == "" {
		utils.WriteError(w, http.StatusBadRequest, "a recipient address is required")
		return
	}
	if err := h.svc.EmailPlan(r.Context(), id, req.To); err != nil {
		h.writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusAccepted, map[string]string{"status": "sent"})
}
