package handler

import (
	"net/http"

	"promana-go/internal/domain/projects"
	"promana-go/internal/hypermedia"
	"promana-go/pkg/optional"
)

type phaseRequest struct {
	Name     optional.Value[string] `json:"name"`
	Deadline optional.Value[string] `json:"deadline"`
	Status   optional.Value[string] `json:"status"`
}

func (req phaseRequest) input() (projects.PhaseInput, error) {
	deadline, err := parseDate("deadline", req.Deadline)
	if err != nil {
		return projects.PhaseInput{}, err
	}
	return projects.PhaseInput{
		Name:     req.Name,
		Deadline: deadline,
		Status:   req.Status,
	}, nil
}

func phaseDocument(phase projects.Phase) *hypermedia.Document {
	var status *string
	if phase.Status != nil {
		s := string(*phase.Status)
		status = &s
	}
	return hypermedia.New().
		Set("name", phase.Name).
		Set("deadline", formatDate(phase.Deadline)).
		Set("status", status)
}

func (h *Handlers) ListPhases(w http.ResponseWriter, r *http.Request) {
	projectName := pathParam(r, "project")
	items, err := h.Projects.ListPhases(r.Context(), projectName)
	if err != nil {
		h.fail(w, r, "phases.list", err)
		return
	}

	doc := hypermedia.NewCollection().WithPromana()
	doc.AddControl("self", phasesURL(projectName))
	doc.AddControl("up", projectURL(projectName))
	addControl(doc, "promana:add-phase", phasesURL(projectName), "Add new phase", phaseSchema())
	for _, phase := range items {
		doc.AddItem(phaseDocument(phase).AddControl("self", phaseURL(projectName, phase.Name)))
	}
	writeMason(w, http.StatusOK, doc)
}

func (h *Handlers) GetPhase(w http.ResponseWriter, r *http.Request) {
	projectName := pathParam(r, "project")
	phase, err := h.Projects.GetPhase(r.Context(), projectName, pathParam(r, "phase"))
	if err != nil {
		h.fail(w, r, "phases.get", err)
		return
	}

	self := phaseURL(projectName, phase.Name)
	doc := phaseDocument(*phase).WithPromana()
	doc.AddControl("self", self)
	doc.AddControl("collection", phasesURL(projectName))
	doc.AddControl("up", projectURL(projectName))
	doc.AddControl("promana:phase-tasks", tasksURL(projectName, phase.Name))
	editControl(doc, self, "Edit phase", phaseSchema())
	deleteControl(doc, "promana:delete", self, "Delete phase")
	writeMason(w, http.StatusOK, doc)
}

func (h *Handlers) CreatePhase(w http.ResponseWriter, r *http.Request) {
	var req phaseRequest
	if err := h.readBody(r, phaseSchemaName, &req); err != nil {
		h.fail(w, r, "phases.create", err)
		return
	}
	input, err := req.input()
	if err != nil {
		h.fail(w, r, "phases.create", err)
		return
	}

	projectName := pathParam(r, "project")
	phase, err := h.Projects.CreatePhase(r.Context(), projectName, input)
	if err != nil {
		h.fail(w, r, "phases.create", err)
		return
	}
	writeCreated(w, phaseURL(projectName, phase.Name))
}

func (h *Handlers) UpdatePhase(w http.ResponseWriter, r *http.Request) {
	var req phaseRequest
	if err := h.readBody(r, phaseSchemaName, &req); err != nil {
		h.fail(w, r, "phases.update", err)
		return
	}
	input, err := req.input()
	if err != nil {
		h.fail(w, r, "phases.update", err)
		return
	}

	projectName := pathParam(r, "project")
	phase, err := h.Projects.UpdatePhase(r.Context(), projectName, pathParam(r, "phase"), input)
	if err != nil {
		h.fail(w, r, "phases.update", err)
		return
	}
	writeNoContent(w, phaseURL(projectName, phase.Name))
}

func (h *Handlers) DeletePhase(w http.ResponseWriter, r *http.Request) {
	if err := h.Projects.DeletePhase(r.Context(), pathParam(r, "project"), pathParam(r, "phase")); err != nil {
		h.fail(w, r, "phases.delete", err)
		return
	}
	writeNoContent(w, "")
}
