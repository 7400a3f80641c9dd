package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"promana-go/internal/hypermedia"
)

var linkRelations = map[string]string{
	"add-cost":        "Creates a cost under the project.",
	"add-hours":       "Books time against one of the project's tasks.",
	"add-member":      "Adds a member to the collection, or assigns an existing member to a project task.",
	"add-phase":       "Creates a phase under the project.",
	"add-project":     "Creates a project.",
	"add-task":        "Creates a task under the phase.",
	"delete":          "Deletes the resource. References to it are cleared, dependents are kept.",
	"delete-member":   "Removes a member assignment. The href is a template over the member name.",
	"manager":         "The member managing the project.",
	"member":          "The member resource behind an assignment or hour entry.",
	"members-all":     "The collection of all members.",
	"phase":           "The phase a cost belongs to.",
	"phase-tasks":     "The tasks of a phase.",
	"project-costs":   "The costs of a project.",
	"project-hours":   "The hour entries of a project.",
	"project-members": "Members assigned to any task of the project.",
	"project-phases":  "The phases of a project.",
	"projects-all":    "The collection of all projects.",
	"task-members":    "Members assigned to a task.",
}

func (h *Handlers) Entry(w http.ResponseWriter, r *http.Request) {
	doc := hypermedia.New().WithPromana()
	doc.AddControl("self", entryURL())
	doc.AddControl("promana:projects-all", projectsURL(), hypermedia.WithTitle("All projects"))
	doc.AddControl("promana:members-all", membersURL(), hypermedia.WithTitle("All members"))
	writeMason(w, http.StatusOK, doc)
}

func (h *Handlers) LinkRelations(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(linkRelations))
	for name := range linkRelations {
		names = append(names, name)
	}
	sort.Strings(names)

	doc := hypermedia.NewCollection().WithPromana()
	doc.AddControl("self", hypermedia.LinkRelationsPath)
	doc.AddControl("up", entryURL())
	for _, name := range names {
		doc.AddItem(hypermedia.New().
			Set("name", hypermedia.Namespace+":"+name).
			Set("description", linkRelations[name]))
	}
	writeMason(w, http.StatusOK, doc)
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.PingContext(ctx); err != nil {
		h.log.InternalError("health: ping store failed", err, "request_id", chimw.GetReqID(r.Context()))
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
