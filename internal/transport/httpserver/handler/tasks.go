package handler

import (
	"net/http"

	"promana-go/internal/domain/projects"
	"promana-go/internal/hypermedia"
	"promana-go/pkg/optional"
)

type taskRequest struct {
	Name       optional.Value[string]  `json:"name"`
	TotalHours optional.Value[float64] `json:"total_hours"`
	TotalCost  optional.Value[float64] `json:"total_cost"`
	Start      optional.Value[string]  `json:"start"`
	End        optional.Value[string]  `json:"end"`
	Status     optional.Value[string]  `json:"status"`
}

func (req taskRequest) input() (projects.TaskInput, error) {
	start, err := parseDate("start", req.Start)
	if err != nil {
		return projects.TaskInput{}, err
	}
	end, err := parseDate("end", req.End)
	if err != nil {
		return projects.TaskInput{}, err
	}
	return projects.TaskInput{
		Name:       req.Name,
		TotalHours: req.TotalHours,
		TotalCost:  req.TotalCost,
		Start:      start,
		End:        end,
		Status:     req.Status,
	}, nil
}

func taskDocument(task projects.Task) *hypermedia.Document {
	return hypermedia.New().
		Set("name", task.Name).
		Set("total_hours", task.TotalHours).
		Set("total_cost", task.TotalCost).
		Set("start", formatDate(task.Start)).
		Set("end", formatDate(task.End)).
		Set("status", string(task.Status))
}

// taskPath holds the route parameters addressing a task.
type taskPath struct {
	project, phase, task string
}

func taskPathOf(r *http.Request) taskPath {
	return taskPath{
		project: pathParam(r, "project"),
		phase:   pathParam(r, "phase"),
		task:    pathParam(r, "task"),
	}
}

func (h *Handlers) ListTasks(w http.ResponseWriter, r *http.Request) {
	p := taskPathOf(r)
	items, err := h.Projects.ListTasks(r.Context(), p.project, p.phase)
	if err != nil {
		h.fail(w, r, "tasks.list", err)
		return
	}

	doc := hypermedia.NewCollection().WithPromana()
	doc.AddControl("self", tasksURL(p.project, p.phase))
	doc.AddControl("up", phaseURL(p.project, p.phase))
	addControl(doc, "promana:add-task", tasksURL(p.project, p.phase), "Add new task", taskSchema())
	for _, task := range items {
		doc.AddItem(taskDocument(task).AddControl("self", taskURL(p.project, p.phase, task.Name)))
	}
	writeMason(w, http.StatusOK, doc)
}

func (h *Handlers) GetTask(w http.ResponseWriter, r *http.Request) {
	p := taskPathOf(r)
	task, err := h.Projects.GetTask(r.Context(), p.project, p.phase, p.task)
	if err != nil {
		h.fail(w, r, "tasks.get", err)
		return
	}

	self := taskURL(p.project, p.phase, task.Name)
	doc := taskDocument(*task).WithPromana()
	doc.AddControl("self", self)
	doc.AddControl("collection", tasksURL(p.project, p.phase))
	doc.AddControl("up", phaseURL(p.project, p.phase))
	doc.AddControl("promana:task-members", taskMembersURL(p.project, p.phase, task.Name))
	editControl(doc, self, "Edit task", taskSchema())
	deleteControl(doc, "promana:delete", self, "Delete task")
	writeMason(w, http.StatusOK, doc)
}

func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := h.readBody(r, taskSchemaName, &req); err != nil {
		h.fail(w, r, "tasks.create", err)
		return
	}
	input, err := req.input()
	if err != nil {
		h.fail(w, r, "tasks.create", err)
		return
	}

	p := taskPathOf(r)
	task, err := h.Projects.CreateTask(r.Context(), p.project, p.phase, input)
	if err != nil {
		h.fail(w, r, "tasks.create", err)
		return
	}
	writeCreated(w, taskURL(p.project, p.phase, task.Name))
}

func (h *Handlers) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := h.readBody(r, taskSchemaName, &req); err != nil {
		h.fail(w, r, "tasks.update", err)
		return
	}
	input, err := req.input()
	if err != nil {
		h.fail(w, r, "tasks.update", err)
		return
	}

	p := taskPathOf(r)
	task, err := h.Projects.UpdateTask(r.Context(), p.project, p.phase, p.task, input)
	if err != nil {
		h.fail(w, r, "tasks.update", err)
		return
	}
	writeNoContent(w, taskURL(p.project, p.phase, task.Name))
}

func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	p := taskPathOf(r)
	if err := h.Projects.DeleteTask(r.Context(), p.project, p.phase, p.task); err != nil {
		h.fail(w, r, "tasks.delete", err)
		return
	}
	writeNoContent(w, "")
}
