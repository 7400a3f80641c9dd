package projects

import (
	"context"
	"fmt"

	"promana-go/internal/domain/integrity"
	"promana-go/internal/domain/members"
)

type fakeProjectRepo struct {
	members     []*members.Member
	projects    []*Project
	phases      []*Phase
	tasks       []*Task
	costs       []*Cost
	hours       []*HourEntry
	assignments []*TeamAssignment
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{}
}

func (r *fakeProjectRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeProjectRepo) NullifyReferences(ctx context.Context, refs []integrity.Reference, id string) error {
	for _, ref := range refs {
		switch ref.Table + "." + ref.Column {
		case "projects.manager_id":
			for _, p := range r.projects {
				clearRef(&p.ManagerID, id)
			}
		case "phases.project_id":
			for _, ph := range r.phases {
				clearRef(&ph.ProjectID, id)
			}
		case "tasks.project_id":
			for _, t := range r.tasks {
				clearRef(&t.ProjectID, id)
			}
		case "tasks.phase_id":
			for _, t := range r.tasks {
				clearRef(&t.PhaseID, id)
			}
		case "costs.project_id":
			for _, c := range r.costs {
				clearRef(&c.ProjectID, id)
			}
		case "costs.phase_id":
			for _, c := range r.costs {
				clearRef(&c.PhaseID, id)
			}
		case "hour_entries.project_id":
			for _, h := range r.hours {
				clearRef(&h.ProjectID, id)
			}
		case "hour_entries.task_id":
			for _, h := range r.hours {
				clearRef(&h.TaskID, id)
			}
		case "hour_entries.member_id":
			for _, h := range r.hours {
				clearRef(&h.MemberID, id)
			}
		case "team_assignments.task_id":
			for _, a := range r.assignments {
				clearRef(&a.TaskID, id)
			}
		case "team_assignments.member_id":
			for _, a := range r.assignments {
				clearRef(&a.MemberID, id)
			}
		default:
			return fmt.Errorf("unknown reference %s.%s", ref.Table, ref.Column)
		}
	}
	return nil
}

func clearRef(ref **string, id string) {
	if *ref != nil && **ref == id {
		*ref = nil
	}
}

func (r *fakeProjectRepo) addMember(name string) *members.Member {
	member := &members.Member{ID: "m-" + name, Name: name}
	r.members = append(r.members, member)
	return member
}

func (r *fakeProjectRepo) memberByID(id *string) *members.Member {
	if id == nil {
		return nil
	}
	for _, m := range r.members {
		if m.ID == *id {
			copied := *m
			return &copied
		}
	}
	return nil
}

func (r *fakeProjectRepo) taskByID(id *string) *Task {
	if id == nil {
		return nil
	}
	for _, t := range r.tasks {
		if t.ID == *id {
			copied := *t
			return &copied
		}
	}
	return nil
}

func (r *fakeProjectRepo) GetMemberByName(ctx context.Context, name string) (*members.Member, error) {
	for _, m := range r.members {
		if m.Name == name {
			copied := *m
			return &copied, nil
		}
	}
	return nil, members.ErrMemberNotFound
}

func (r *fakeProjectRepo) ListProjects(ctx context.Context) ([]Project, error) {
	result := make([]Project, 0, len(r.projects))
	for _, p := range r.projects {
		copied := *p
		copied.Manager = r.memberByID(p.ManagerID)
		result = append(result, copied)
	}
	return result, nil
}

func (r *fakeProjectRepo) GetProjectByName(ctx context.Context, name string) (*Project, error) {
	for _, p := range r.projects {
		if p.Name == name {
			copied := *p
			copied.Manager = r.memberByID(p.ManagerID)
			return &copied, nil
		}
	}
	return nil, ErrProjectNotFound
}

func (r *fakeProjectRepo) CreateProject(ctx context.Context, project *Project) error {
	for _, p := range r.projects {
		if p.Name == project.Name {
			return integrity.ErrAlreadyExists
		}
	}
	copied := *project
	r.projects = append(r.projects, &copied)
	return nil
}

func (r *fakeProjectRepo) UpdateProject(ctx context.Context, project *Project) error {
	for i, p := range r.projects {
		if p.ID != project.ID && p.Name == project.Name {
			return integrity.ErrAlreadyExists
		}
		if p.ID == project.ID {
			copied := *project
			r.projects[i] = &copied
		}
	}
	return nil
}

func (r *fakeProjectRepo) DeleteProject(ctx context.Context, projectID string) error {
	for i, p := range r.projects {
		if p.ID == projectID {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return nil
		}
	}
	return ErrProjectNotFound
}

func (r *fakeProjectRepo) ListPhases(ctx context.Context, projectID string) ([]Phase, error) {
	var result []Phase
	for _, ph := range r.phases {
		if ph.ProjectID != nil && *ph.ProjectID == projectID {
			result = append(result, *ph)
		}
	}
	return result, nil
}

func (r *fakeProjectRepo) GetPhaseByName(ctx context.Context, projectID, name string) (*Phase, error) {
	for _, ph := range r.phases {
		if ph.ProjectID != nil && *ph.ProjectID == projectID && ph.Name == name {
			copied := *ph
			return &copied, nil
		}
	}
	return nil, ErrPhaseNotFound
}

func (r *fakeProjectRepo) CreatePhase(ctx context.Context, phase *Phase) error {
	for _, ph := range r.phases {
		if sameRef(ph.ProjectID, phase.ProjectID) && ph.Name == phase.Name {
			return integrity.ErrAlreadyExists
		}
	}
	copied := *phase
	r.phases = append(r.phases, &copied)
	return nil
}

func (r *fakeProjectRepo) UpdatePhase(ctx context.Context, phase *Phase) error {
	for i, ph := range r.phases {
		if ph.ID == phase.ID {
			copied := *phase
			r.phases[i] = &copied
		}
	}
	return nil
}

func (r *fakeProjectRepo) DeletePhase(ctx context.Context, phaseID string) error {
	for i, ph := range r.phases {
		if ph.ID == phaseID {
			r.phases = append(r.phases[:i], r.phases[i+1:]...)
			return nil
		}
	}
	return ErrPhaseNotFound
}

func (r *fakeProjectRepo) ListTasks(ctx context.Context, phaseID string) ([]Task, error) {
	var result []Task
	for _, t := range r.tasks {
		if t.PhaseID != nil && *t.PhaseID == phaseID {
			result = append(result, *t)
		}
	}
	return result, nil
}

func (r *fakeProjectRepo) GetTaskByName(ctx context.Context, name string) (*Task, error) {
	for _, t := range r.tasks {
		if t.Name == name {
			copied := *t
			return &copied, nil
		}
	}
	return nil, ErrTaskNotFound
}

func (r *fakeProjectRepo) CreateTask(ctx context.Context, task *Task) error {
	for _, t := range r.tasks {
		if t.Name == task.Name {
			return integrity.ErrAlreadyExists
		}
	}
	copied := *task
	r.tasks = append(r.tasks, &copied)
	return nil
}

func (r *fakeProjectRepo) UpdateTask(ctx context.Context, task *Task) error {
	for i, t := range r.tasks {
		if t.ID != task.ID && t.Name == task.Name {
			return integrity.ErrAlreadyExists
		}
		if t.ID == task.ID {
			copied := *task
			r.tasks[i] = &copied
		}
	}
	return nil
}

func (r *fakeProjectRepo) DeleteTask(ctx context.Context, taskID string) error {
	for i, t := range r.tasks {
		if t.ID == taskID {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return ErrTaskNotFound
}

func (r *fakeProjectRepo) ListCosts(ctx context.Context, projectID string) ([]Cost, error) {
	var result []Cost
	for _, c := range r.costs {
		if c.ProjectID != nil && *c.ProjectID == projectID {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (r *fakeProjectRepo) GetCost(ctx context.Context, projectID, costID string) (*Cost, error) {
	for _, c := range r.costs {
		if c.ID == costID && c.ProjectID != nil && *c.ProjectID == projectID {
			copied := *c
			return &copied, nil
		}
	}
	return nil, ErrCostNotFound
}

func (r *fakeProjectRepo) CreateCost(ctx context.Context, cost *Cost) error {
	copied := *cost
	r.costs = append(r.costs, &copied)
	return nil
}

func (r *fakeProjectRepo) UpdateCost(ctx context.Context, cost *Cost) error {
	for i, c := range r.costs {
		if c.ID == cost.ID {
			copied := *cost
			r.costs[i] = &copied
		}
	}
	return nil
}

func (r *fakeProjectRepo) DeleteCost(ctx context.Context, costID string) error {
	for i, c := range r.costs {
		if c.ID == costID {
			r.costs = append(r.costs[:i], r.costs[i+1:]...)
			return nil
		}
	}
	return ErrCostNotFound
}

func (r *fakeProjectRepo) ListHourEntries(ctx context.Context, projectID string) ([]HourEntry, error) {
	var result []HourEntry
	for _, h := range r.hours {
		if h.ProjectID != nil && *h.ProjectID == projectID {
			result = append(result, *h)
		}
	}
	return result, nil
}

func (r *fakeProjectRepo) GetHourEntry(ctx context.Context, projectID, entryID string) (*HourEntry, error) {
	for _, h := range r.hours {
		if h.ID == entryID && h.ProjectID != nil && *h.ProjectID == projectID {
			copied := *h
			return &copied, nil
		}
	}
	return nil, ErrHourEntryNotFound
}

func (r *fakeProjectRepo) CreateHourEntry(ctx context.Context, entry *HourEntry) error {
	copied := *entry
	r.hours = append(r.hours, &copied)
	return nil
}

func (r *fakeProjectRepo) UpdateHourEntry(ctx context.Context, entry *HourEntry) error {
	for i, h := range r.hours {
		if h.ID == entry.ID {
			copied := *entry
			r.hours[i] = &copied
		}
	}
	return nil
}

func (r *fakeProjectRepo) DeleteHourEntry(ctx context.Context, entryID string) error {
	for i, h := range r.hours {
		if h.ID == entryID {
			r.hours = append(r.hours[:i], r.hours[i+1:]...)
			return nil
		}
	}
	return ErrHourEntryNotFound
}

func (r *fakeProjectRepo) ListTaskAssignments(ctx context.Context, taskID string) ([]TeamAssignment, error) {
	var result []TeamAssignment
	for _, a := range r.assignments {
		if a.TaskID != nil && *a.TaskID == taskID {
			copied := *a
			copied.Member = r.memberByID(a.MemberID)
			result = append(result, copied)
		}
	}
	return result, nil
}

func (r *fakeProjectRepo) ListProjectAssignments(ctx context.Context, projectID string) ([]TeamAssignment, error) {
	var result []TeamAssignment
	for _, t := range r.tasks {
		if t.ProjectID == nil || *t.ProjectID != projectID {
			continue
		}
		for _, a := range r.assignments {
			if a.TaskID != nil && *a.TaskID == t.ID {
				copied := *a
				copied.Task = r.taskByID(a.TaskID)
				copied.Member = r.memberByID(a.MemberID)
				result = append(result, copied)
			}
		}
	}
	return result, nil
}

func (r *fakeProjectRepo) CreateAssignment(ctx context.Context, assignment *TeamAssignment) error {
	for _, a := range r.assignments {
		if sameRef(a.TaskID, assignment.TaskID) && sameRef(a.MemberID, assignment.MemberID) {
			return integrity.ErrAlreadyExists
		}
	}
	copied := *assignment
	r.assignments = append(r.assignments, &copied)
	return nil
}

func (r *fakeProjectRepo) DeleteTaskAssignment(ctx context.Context, taskID, memberID string) (bool, error) {
	for i, a := range r.assignments {
		if sameID(a.TaskID, taskID) && sameID(a.MemberID, memberID) {
			r.assignments = append(r.assignments[:i], r.assignments[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProjectRepo) DeleteProjectAssignments(ctx context.Context, projectID, memberID string) (int64, error) {
	var kept []*TeamAssignment
	var removed int64
	for _, a := range r.assignments {
		task := r.taskByID(a.TaskID)
		if task != nil && sameID(task.ProjectID, projectID) && sameID(a.MemberID, memberID) {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	r.assignments = kept
	return removed, nil
}

func sameRef(a, b *string) bool {
	return a != nil && b != nil && *a == *b
}
