package handler

import (
	"net/http"

	"promana-go/internal/domain/projects"
	"promana-go/internal/hypermedia"
	"promana-go/pkg/optional"
)

type projectRequest struct {
	Name          optional.Value[string]  `json:"name"`
	Start         optional.Value[string]  `json:"start"`
	End           optional.Value[string]  `json:"end"`
	Budget        optional.Value[float64] `json:"budget"`
	AvgHourlyCost optional.Value[float64] `json:"avg_hourly_cost"`
	TotalHours    optional.Value[float64] `json:"total_hours"`
	TotalCosts    optional.Value[float64] `json:"total_costs"`
	Status        optional.Value[string]  `json:"status"`
	Manager       optional.Value[string]  `json:"project_manager"`
}

func (req projectRequest) input() (projects.ProjectInput, error) {
	start, err := parseDate("start", req.Start)
	if err != nil {
		return projects.ProjectInput{}, err
	}
	end, err := parseDate("end", req.End)
	if err != nil {
		return projects.ProjectInput{}, err
	}
	return projects.ProjectInput{
		Name:          req.Name,
		Start:         start,
		End:           end,
		Budget:        req.Budget,
		AvgHourlyCost: req.AvgHourlyCost,
		TotalHours:    req.TotalHours,
		TotalCosts:    req.TotalCosts,
		Status:        req.Status,
		Manager:       req.Manager,
	}, nil
}

func projectDocument(project projects.Project) *hypermedia.Document {
	var manager *string
	if project.Manager != nil {
		manager = &project.Manager.Name
	}
	return hypermedia.New().
		Set("name", project.Name).
		Set("start", formatDate(project.Start)).
		Set("end", formatDate(project.End)).
		Set("budget", project.Budget).
		Set("avg_hourly_cost", project.AvgHourlyCost).
		Set("total_hours", project.TotalHours).
		Set("total_costs", project.TotalCosts).
		Set("status", string(project.Status)).
		Set("project_manager", manager)
}

func (h *Handlers) ListProjects(w http.ResponseWriter, r *http.Request) {
	items, err := h.Projects.ListProjects(r.Context())
	if err != nil {
		h.fail(w, r, "projects.list", err)
		return
	}

	doc := hypermedia.NewCollection().WithPromana()
	doc.AddControl("self", projectsURL())
	doc.AddControl("up", entryURL())
	doc.AddControl("promana:members-all", membersURL())
	addControl(doc, "promana:add-project", projectsURL(), "Add new project", projectSchema())
	for _, project := range items {
		doc.AddItem(projectDocument(project).AddControl("self", projectURL(project.Name)))
	}
	writeMason(w, http.StatusOK, doc)
}

func (h *Handlers) GetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.Projects.GetProject(r.Context(), pathParam(r, "project"))
	if err != nil {
		h.fail(w, r, "projects.get", err)
		return
	}

	name := project.Name
	doc := projectDocument(*project).WithPromana()
	doc.AddControl("self", projectURL(name))
	doc.AddControl("collection", projectsURL())
	doc.AddControl("promana:project-members", projectMembersURL(name))
	doc.AddControl("promana:project-phases", phasesURL(name))
	doc.AddControl("promana:project-costs", costsURL(name))
	doc.AddControl("promana:project-hours", hoursURL(name))
	if project.Manager != nil {
		doc.AddControl("promana:manager", memberURL(project.Manager.Name))
	}
	editControl(doc, projectURL(name), "Edit project", projectSchema())
	deleteControl(doc, "promana:delete", projectURL(name), "Delete project")
	writeMason(w, http.StatusOK, doc)
}

func (h *Handlers) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := h.readBody(r, projectSchemaName, &req); err != nil {
		h.fail(w, r, "projects.create", err)
		return
	}
	input, err := req.input()
	if err != nil {
		h.fail(w, r, "projects.create", err)
		return
	}

	project, err := h.Projects.CreateProject(r.Context(), input)
	if err != nil {
		h.fail(w, r, "projects.create", err)
		return
	}
	writeCreated(w, projectURL(project.Name))
}

func (h *Handlers) UpdateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := h.readBody(r, projectSchemaName, &req); err != nil {
		h.fail(w, r, "projects.update", err)
		return
	}
	input, err := req.input()
	if err != nil {
		h.fail(w, r, "projects.update", err)
		return
	}

	project, err := h.Projects.UpdateProject(r.Context(), pathParam(r, "project"), input)
	if err != nil {
		h.fail(w, r, "projects.update", err)
		return
	}
	writeNoContent(w, projectURL(project.Name))
}

func (h *Handlers) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.Projects.DeleteProject(r.Context(), pathParam(r, "project")); err != nil {
		h.fail(w, r, "projects.delete", err)
		return
	}
	writeNoContent(w, "")
}
