package handler

import (
	"net/http"

	"promana-go/internal/domain/projects"
	"promana-go/internal/hypermedia"
	"promana-go/pkg/optional"
)

type hourEntryRequest struct {
	Task   optional.Value[string]  `json:"task"`
	Member optional.Value[string]  `json:"member"`
	Date   optional.Value[string]  `json:"date"`
	Time   optional.Value[float64] `json:"time"`
}

func (req hourEntryRequest) input() (projects.HourEntryInput, error) {
	day, err := parseDate("date", req.Date)
	if err != nil {
		return projects.HourEntryInput{}, err
	}
	return projects.HourEntryInput{
		Task:   req.Task,
		Member: req.Member,
		Date:   day,
		Time:   req.Time,
	}, nil
}

func hourEntryDocument(entry projects.HourEntry) *hypermedia.Document {
	var task, member *string
	if entry.Task != nil {
		task = &entry.Task.Name
	}
	if entry.Member != nil {
		member = &entry.Member.Name
	}
	return hypermedia.New().
		Set("id", entry.ID).
		Set("task", task).
		Set("member", member).
		Set("date", formatDate(entry.Date)).
		Set("time", entry.TimeSpent)
}

func (h *Handlers) ListHourEntries(w http.ResponseWriter, r *http.Request) {
	projectName := pathParam(r, "project")
	items, err := h.Projects.ListHourEntries(r.Context(), projectName)
	if err != nil {
		h.fail(w, r, "hours.list", err)
		return
	}

	doc := hypermedia.NewCollection().WithPromana()
	doc.AddControl("self", hoursURL(projectName))
	doc.AddControl("up", projectURL(projectName))
	addControl(doc, "promana:add-hours", hoursURL(projectName), "Book hours", hourEntrySchema())
	for _, entry := range items {
		doc.AddItem(hourEntryDocument(entry).AddControl("self", hourURL(projectName, entry.ID)))
	}
	writeMason(w, http.StatusOK, doc)
}

func (h *Handlers) GetHourEntry(w http.ResponseWriter, r *http.Request) {
	projectName := pathParam(r, "project")
	entry, err := h.Projects.GetHourEntry(r.Context(), projectName, pathParam(r, "entry"))
	if err != nil {
		h.fail(w, r, "hours.get", err)
		return
	}

	self := hourURL(projectName, entry.ID)
	doc := hourEntryDocument(*entry).WithPromana()
	doc.AddControl("self", self)
	doc.AddControl("collection", hoursURL(projectName))
	doc.AddControl("up", projectURL(projectName))
	if entry.Member != nil {
		doc.AddControl("promana:member", memberURL(entry.Member.Name))
	}
	editControl(doc, self, "Edit hour entry", hourEntrySchema())
	deleteControl(doc, "promana:delete", self, "Delete hour entry")
	writeMason(w, http.StatusOK, doc)
}

func (h *Handlers) CreateHourEntry(w http.ResponseWriter, r *http.Request) {
	var req hourEntryRequest
	if err := h.readBody(r, hourEntrySchemaName, &req); err != nil {
		h.fail(w, r, "hours.create", err)
		return
	}
	input, err := req.input()
	if err != nil {
		h.fail(w, r, "hours.create", err)
		return
	}

	projectName := pathParam(r, "project")
	entry, err := h.Projects.CreateHourEntry(r.Context(), projectName, input)
	if err != nil {
		h.fail(w, r, "hours.create", err)
		return
	}
	writeCreated(w, hourURL(projectName, entry.ID))
}

func (h *Handlers) UpdateHourEntry(w http.ResponseWriter, r *http.Request) {
	var req hourEntryRequest
	if err := h.readBody(r, hourEntrySchemaName, &req); err != nil {
		h.fail(w, r, "hours.update", err)
		return
	}
	input, err := req.input()
	if err != nil {
		h.fail(w, r, "hours.update", err)
		return
	}

	projectName := pathParam(r, "project")
	entry, err := h.Projects.UpdateHourEntry(r.Context(), projectName, pathParam(r, "entry"), input)
	if err != nil {
		h.fail(w, r, "hours.update", err)
		return
	}
	writeNoContent(w, hourURL(projectName, entry.ID))
}

func (h *Handlers) DeleteHourEntry(w http.ResponseWriter, r *http.Request) {
	if err := h.Projects.DeleteHourEntry(r.Context(), pathParam(r, "project"), pathParam(r, "entry")); err != nil {
		h.fail(w, r, "hours.delete", err)
		return
	}
	writeNoContent(w, "")
}
