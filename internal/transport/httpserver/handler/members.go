package handler

import (
	"net/http"

	"promana-go/internal/domain/members"
	"promana-go/internal/hypermedia"
	"promana-go/pkg/optional"
)

type memberRequest struct {
	Name       optional.Value[string]  `json:"name"`
	HourlyCost optional.Value[float64] `json:"hourly_cost"`
}

func (req memberRequest) input() members.Input {
	return members.Input{
		Name:       req.Name,
		HourlyCost: req.HourlyCost,
	}
}

func memberDocument(member members.Member) *hypermedia.Document {
	return hypermedia.New().
		Set("name", member.Name).
		Set("hourly_cost", member.HourlyCost)
}

func (h *Handlers) ListMembers(w http.ResponseWriter, r *http.Request) {
	items, err := h.Members.ListMembers(r.Context())
	if err != nil {
		h.fail(w, r, "members.list", err)
		return
	}

	doc := hypermedia.NewCollection().WithPromana()
	doc.AddControl("self", membersURL())
	doc.AddControl("up", entryURL())
	addControl(doc, "promana:add-member", membersURL(), "Add new member", memberSchema())
	for _, member := range items {
		doc.AddItem(memberDocument(member).AddControl("self", memberURL(member.Name)))
	}
	writeMason(w, http.StatusOK, doc)
}

func (h *Handlers) GetMember(w http.ResponseWriter, r *http.Request) {
	member, err := h.Members.GetMember(r.Context(), pathParam(r, "member"))
	if err != nil {
		h.fail(w, r, "members.get", err)
		return
	}

	doc := memberDocument(*member).WithPromana()
	doc.AddControl("self", memberURL(member.Name))
	doc.AddControl("collection", membersURL())
	editControl(doc, memberURL(member.Name), "Edit member", memberSchema())
	deleteControl(doc, "promana:delete", memberURL(member.Name), "Delete member")
	writeMason(w, http.StatusOK, doc)
}

func (h *Handlers) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if err := h.readBody(r, memberSchemaName, &req); err != nil {
		h.fail(w, r, "members.create", err)
		return
	}

	member, err := h.Members.CreateMember(r.Context(), req.input())
	if err != nil {
		h.fail(w, r, "members.create", err)
		return
	}
	writeCreated(w, memberURL(member.Name))
}

func (h *Handlers) UpdateMember(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if err := h.readBody(r, memberSchemaName, &req); err != nil {
		h.fail(w, r, "members.update", err)
		return
	}

	member, err := h.Members.UpdateMember(r.Context(), pathParam(r, "member"), req.input())
	if err != nil {
		h.fail(w, r, "members.update", err)
		return
	}
	writeNoContent(w, memberURL(member.Name))
}

func (h *Handlers) DeleteMember(w http.ResponseWriter, r *http.Request) {
	if err := h.Members.DeleteMember(r.Context(), pathParam(r, "member")); err != nil {
		h.fail(w, r, "members.delete", err)
		return
	}
	writeNoContent(w, "")
}
