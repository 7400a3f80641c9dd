package handler

import (
	"net/http"

	"promana-go/internal/domain/members"
	"promana-go/internal/domain/projects"
	"promana-go/internal/hypermedia"
)

type projectMemberRequest struct {
	Name string `json:"name"`
	Task string `json:"task"`
}

type taskMemberRequest struct {
	Name string `json:"name"`
}

func projectMemberDocument(pm projects.ProjectMember) *hypermedia.Document {
	return memberDocument(pm.Member).Set("tasks", pm.Tasks)
}

func (h *Handlers) ListProjectMembers(w http.ResponseWriter, r *http.Request) {
	projectName := pathParam(r, "project")
	items, err := h.Projects.ListProjectMembers(r.Context(), projectName)
	if err != nil {
		h.fail(w, r, "project_members.list", err)
		return
	}

	collection := projectMembersURL(projectName)
	doc := hypermedia.NewCollection().WithPromana()
	doc.AddControl("self", collection)
	doc.AddControl("up", projectURL(projectName))
	addControl(doc, "promana:add-member", collection, "Add new member to project", projectMemberSchema())
	if len(items) > 0 {
		deleteMemberControl(doc, collection, "Remove member from project")
	}
	for _, pm := range items {
		doc.AddItem(projectMemberDocument(pm).AddControl("self", projectMemberURL(projectName, pm.Member.Name)))
	}
	writeMason(w, http.StatusOK, doc)
}

func (h *Handlers) GetProjectMember(w http.ResponseWriter, r *http.Request) {
	projectName := pathParam(r, "project")
	pm, err := h.Projects.GetProjectMember(r.Context(), projectName, pathParam(r, "member"))
	if err != nil {
		h.fail(w, r, "project_members.get", err)
		return
	}

	self := projectMemberURL(projectName, pm.Member.Name)
	doc := projectMemberDocument(*pm).WithPromana()
	doc.AddControl("self", self)
	doc.AddControl("up", projectMembersURL(projectName))
	doc.AddControl("promana:member", memberURL(pm.Member.Name))
	deleteControl(doc, "promana:delete", self, "Remove member from project")
	writeMason(w, http.StatusOK, doc)
}

func (h *Handlers) AddProjectMember(w http.ResponseWriter, r *http.Request) {
	var req projectMemberRequest
	if err := h.readBody(r, projectMemberSchemaName, &req); err != nil {
		h.fail(w, r, "project_members.add", err)
		return
	}

	projectName := pathParam(r, "project")
	member, err := h.Projects.AddProjectMember(r.Context(), projectName, projects.ProjectMemberInput{
		Member: req.Name,
		Task:   req.Task,
	})
	if err != nil {
		h.fail(w, r, "project_members.add", err)
		return
	}
	writeCreated(w, projectMemberURL(projectName, member.Name))
}

func (h *Handlers) RemoveProjectMember(w http.ResponseWriter, r *http.Request) {
	if err := h.Projects.RemoveProjectMember(r.Context(), pathParam(r, "project"), pathParam(r, "member")); err != nil {
		h.fail(w, r, "project_members.remove", err)
		return
	}
	writeNoContent(w, "")
}

func (h *Handlers) ListTaskMembers(w http.ResponseWriter, r *http.Request) {
	p := taskPathOf(r)
	items, err := h.Projects.ListTaskMembers(r.Context(), p.project, p.phase, p.task)
	if err != nil {
		h.fail(w, r, "task_members.list", err)
		return
	}

	collection := taskMembersURL(p.project, p.phase, p.task)
	doc := hypermedia.NewCollection().WithPromana()
	doc.AddControl("self", collection)
	doc.AddControl("up", taskURL(p.project, p.phase, p.task))
	addControl(doc, "promana:add-member", collection, "Add new member to task", taskMemberSchema())
	if len(items) > 0 {
		deleteMemberControl(doc, collection, "Remove member from task")
	}
	for _, member := range items {
		doc.AddItem(memberDocument(member).AddControl("self", taskMemberURL(p.project, p.phase, p.task, member.Name)))
	}
	writeMason(w, http.StatusOK, doc)
}

func (h *Handlers) GetTaskMember(w http.ResponseWriter, r *http.Request) {
	p := taskPathOf(r)
	member, err := h.Projects.GetTaskMember(r.Context(), p.project, p.phase, p.task, pathParam(r, "member"))
	if err != nil {
		h.fail(w, r, "task_members.get", err)
		return
	}
	writeMason(w, http.StatusOK, taskMemberDocument(p, *member))
}

func taskMemberDocument(p taskPath, member members.Member) *hypermedia.Document {
	self := taskMemberURL(p.project, p.phase, p.task, member.Name)
	doc := memberDocument(member).WithPromana()
	doc.AddControl("self", self)
	doc.AddControl("up", taskMembersURL(p.project, p.phase, p.task))
	doc.AddControl("promana:member", memberURL(member.Name))
	deleteControl(doc, "promana:delete", self, "Remove member from task")
	return doc
}

func (h *Handlers) AddTaskMember(w http.ResponseWriter, r *http.Request) {
	var req taskMemberRequest
	if err := h.readBody(r, taskMemberSchemaName, &req); err != nil {
		h.fail(w, r, "task_members.add", err)
		return
	}

	p := taskPathOf(r)
	member, err := h.Projects.AddTaskMember(r.Context(), p.project, p.phase, p.task, req.Name)
	if err != nil {
		h.fail(w, r, "task_members.add", err)
		return
	}
	writeCreated(w, taskMemberURL(p.project, p.phase, p.task, member.Name))
}

func (h *Handlers) RemoveTaskMember(w http.ResponseWriter, r *http.Request) {
	p := taskPathOf(r)
	if err := h.Projects.RemoveTaskMember(r.Context(), p.project, p.phase, p.task, pathParam(r, "member")); err != nil {
		h.fail(w, r, "task_members.remove", err)
		return
	}
	writeNoContent(w, "")
}
