package projects

import (
	"context"

	"promana-go/internal/domain/integrity"
	"promana-go/internal/domain/members"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	NullifyReferences(ctx context.Context, refs []integrity.Reference, id string) error

	GetMemberByName(ctx context.Context, name string) (*members.Member, error)

	ListProjects(ctx context.Context) ([]Project, error)
	GetProjectByName(ctx context.Context, name string) (*Project, error)
	CreateProject(ctx context.Context, project *Project) error
	UpdateProject(ctx context.Context, project *Project) error
	DeleteProject(ctx context.Context, projectID string) error

	ListPhases(ctx context.Context, projectID string) ([]Phase, error)
	GetPhaseByName(ctx context.Context, projectID, name string) (*Phase, error)
	CreatePhase(ctx context.Context, phase *Phase) error
	UpdatePhase(ctx context.Context, phase *Phase) error
	DeletePhase(ctx context.Context, phaseID string) error

	ListTasks(ctx context.Context, phaseID string) ([]Task, error)
	GetTaskByName(ctx context.Context, name string) (*Task, error)
	CreateTask(ctx context.Context, task *Task) error
	UpdateTask(ctx context.Context, task *Task) error
	DeleteTask(ctx context.Context, taskID string) error

	ListCosts(ctx context.Context, projectID string) ([]Cost, error)
	GetCost(ctx context.Context, projectID, costID string) (*Cost, error)
	CreateCost(ctx context.Context, cost *Cost) error
	UpdateCost(ctx context.Context, cost *Cost) error
	DeleteCost(ctx context.Context, costID string) error

	ListHourEntries(ctx context.Context, projectID string) ([]HourEntry, error)
	GetHourEntry(ctx context.Context, projectID, entryID string) (*HourEntry, error)
	CreateHourEntry(ctx context.Context, entry *HourEntry) error
	UpdateHourEntry(ctx context.Context, entry *HourEntry) error
	DeleteHourEntry(ctx context.Context, entryID string) error

	ListTaskAssignments(ctx context.Context, taskID string) ([]TeamAssignment, error)
	ListProjectAssignments(ctx context.Context, projectID string) ([]TeamAssignment, error)
	CreateAssignment(ctx context.Context, assignment *TeamAssignment) error
	DeleteTaskAssignment(ctx context.Context, taskID, memberID string) (bool, error)
	DeleteProjectAssignments(ctx context.Context, projectID, memberID string) (int64, error)
}
