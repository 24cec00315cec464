package handler

import (
	"errors"
	"net/http"

	"github.com/Dan9191/finplan-service/internal/middleware"
	"github.com/Dan9191/finplan-service/internal/service"
	"github.com/Dan9191/finplan-service/internal/utils"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Router wires every route. Wizard routes other than session creation
// require the bearer token issued by POST /wizard.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.LoggingMiddleware(h.log))

	// Public routes
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/plan", h.Plan).Methods("POST")
	r.HandleFunc("/plan/dashboard", h.PlanDashboard).Methods("POST")
	r.HandleFunc("/plan/report", h.PlanReport).Methods("POST")
	r.HandleFunc("/instruments", h.Instruments).Methods("GET")
	r.HandleFunc("/instruments/{id}", h.Instrument).Methods("GET")
	r.HandleFunc("/allocations/{tier}", h.Allocation).Methods("GET")
	r.HandleFunc("/topics", h.Topics).Methods("GET")
	r.HandleFunc("/topics/categories", h.TopicCategories).Methods("GET")
	r.HandleFunc("/topics/{id}", h.Topic).Methods("GET")
	r.HandleFunc("/wizard", h.StartWizard).Methods("POST")

	// Protected routes
	wz := r.PathPrefix("/wizard").Subrouter()
	wz.Use(middleware.SessionMiddleware(h.svc.Tokens()))
	wz.HandleFunc("", h.GetWizard).Methods("GET")
	wz.HandleFunc("", h.EndWizard).Methods("DELETE")
	wz.HandleFunc("/steps/{step}", h.GoToStep).Methods("POST")
	wz.HandleFunc("/next", h.NextStep).Methods("POST")
	wz.HandleFunc("/prev", h.PrevStep).Methods("POST")
	wz.HandleFunc("/restart", h.RestartWizard).Methods("POST")
	wz.HandleFunc("/dashboard", h.WizardDashboard).Methods("GET")
	wz.HandleFunc("/charts/allocation.svg", h.AllocationChart).Methods("GET")
	wz.HandleFunc("/charts/projection.svg", h.ProjectionChart).Methods("GET")
	wz.HandleFunc("/report.pdf", h.WizardReport).Methods("GET")
	wz.HandleFunc("/email", h.EmailPlan).Methods("POST")

	return r
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrInstrumentNotFound),
		errors.Is(err, service.ErrTopicNotFound):
		utils.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrPlanNotReady):
		utils.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrMailerDisabled):
		utils.WriteError(w, http.StatusServiceUnavailable, err.Error())
	default:
		h.log.Errorf("Request failed: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeBytes(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
