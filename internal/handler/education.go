package handler

import (
	"net/http"
	"strconv"

	"github.com/Dan9191/finplan-service/internal/utils"
	"github.com/gorilla/mux"
)

// Topics lists topics, optionally of one category
func (h *Handler) Topics(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.svc.Topics(r.URL.Query().Get("category")))
}

// TopicCategories returns the topic tabs
func (h *Handler) TopicCategories(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.svc.Tabs())
}

// Topic returns a topic as JSON, markdown or HTML
func (h *Handler) Topic(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	q := r.URL.Query()
	simple, _ := strconv.ParseBool(q.Get("simple"))

	switch format := q.Get("format"); format {
	case "", "json":
		t, err := h.svc.Topic(id)
		if err != nil {
			h.writeServiceError(w, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, t)
	case "markdown", "html":
		body, err := h.svc.RenderTopic(id, simple, format == "html")
		if err != nil {
			h.writeServiceError(w, err)
			return
		}
		ct := "text/markdown; charset=utf-8"
		if format == "html" {
			ct = "text/html; charset=utf-8"
		}
		writeBytes(w, ct, []byte(body))
	default:
		utils.WriteError(w, http.StatusBadRequest, "unsupported format "+strconv.Quote(format))
	}
}
