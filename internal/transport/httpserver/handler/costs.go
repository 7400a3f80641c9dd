package handler

import (
	"net/http"

	"promana-go/internal/domain/projects"
	"promana-go/internal/hypermedia"
	"promana-go/pkg/optional"
)

type costRequest struct {
	Name        optional.Value[string]  `json:"name"`
	Description optional.Value[string]  `json:"description"`
	HourlyPrice optional.Value[float64] `json:"hourly_price"`
	Quantity    optional.Value[float64] `json:"quantity"`
	Phase       optional.Value[string]  `json:"phase"`
}

func (req costRequest) input() projects.CostInput {
	return projects.CostInput{
		Name:        req.Name,
		Description: req.Description,
		HourlyPrice: req.HourlyPrice,
		Quantity:    req.Quantity,
		Phase:       req.Phase,
	}
}

func costDocument(cost projects.Cost) *hypermedia.Document {
	var phase *string
	if cost.Phase != nil {
		phase = &cost.Phase.Name
	}
	return hypermedia.New().
		Set("id", cost.ID).
		Set("name", cost.Name).
		Set("description", cost.Description).
		Set("hourly_price", cost.HourlyPrice).
		Set("quantity", cost.Quantity).
		Set("total_cost", cost.TotalCost()).
		Set("phase", phase)
}

func (h *Handlers) ListCosts(w http.ResponseWriter, r *http.Request) {
	projectName := pathParam(r, "project")
	items, err := h.Projects.ListCosts(r.Context(), projectName)
	if err != nil {
		h.fail(w, r, "costs.list", err)
		return
	}

	doc := hypermedia.NewCollection().WithPromana()
	doc.AddControl("self", costsURL(projectName))
	doc.AddControl("up", projectURL(projectName))
	addControl(doc, "promana:add-cost", costsURL(projectName), "Add new cost", costSchema())
	for _, cost := range items {
		doc.AddItem(costDocument(cost).AddControl("self", costURL(projectName, cost.ID)))
	}
	writeMason(w, http.StatusOK, doc)
}

func (h *Handlers) GetCost(w http.ResponseWriter, r *http.Request) {
	projectName := pathParam(r, "project")
	cost, err := h.Projects.GetCost(r.Context(), projectName, pathParam(r, "cost"))
	if err != nil {
		h.fail(w, r, "costs.get", err)
		return
	}

	self := costURL(projectName, cost.ID)
	doc := costDocument(*cost).WithPromana()
	doc.AddControl("self", self)
	doc.AddControl("collection", costsURL(projectName))
	doc.AddControl("up", projectURL(projectName))
	if cost.Phase != nil {
		doc.AddControl("promana:phase", phaseURL(projectName, cost.Phase.Name))
	}
	editControl(doc, self, "Edit cost", costSchema())
	deleteControl(doc, "promana:delete", self, "Delete cost")
	writeMason(w, http.StatusOK, doc)
}

func (h *Handlers) CreateCost(w http.ResponseWriter, r *http.Request) {
	var req costRequest
	if err := h.readBody(r, costSchemaName, &req); err != nil {
		h.fail(w, r, "costs.create", err)
		return
	}

	projectName := pathParam(r, "project")
	cost, err := h.Projects.CreateCost(r.Context(), projectName, req.input())
	if err != nil {
		h.fail(w, r, "costs.create", err)
		return
	}
	writeCreated(w, costURL(projectName, cost.ID))
}

func (h *Handlers) UpdateCost(w http.ResponseWriter, r *http.Request) {
	var req costRequest
	if err := h.readBody(r, costSchemaName, &req); err != nil {
		h.fail(w, r, "costs.update", err)
		return
	}

	projectName := pathParam(r, "project")
	cost, err := h.Projects.UpdateCost(r.Context(), projectName, pathParam(r, "cost"), req.input())
	if err != nil {
		h.fail(w, r, "costs.update", err)
		return
	}
	writeNoContent(w, costURL(projectName, cost.ID))
}

func (h *Handlers) DeleteCost(w http.ResponseWriter, r *http.Request) {
	if err := h.Projects.DeleteCost(r.Context(), pathParam(r, "project"), pathParam(r, "cost")); err != nil {
		h.fail(w, r, "costs.delete", err)
		return
	}
	writeNoContent(w, "")
}
