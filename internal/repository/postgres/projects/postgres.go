package projects

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"promana-go/internal/domain/integrity"
	"promana-go/internal/domain/members"
	projectsdomain "promana-go/internal/domain/projects"
	"promana-go/internal/repository/postgres"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(projectsdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) NullifyReferences(ctx context.Context, refs []integrity.Reference, id string) error {
	return postgres.NullifyReferences(ctx, r.db, refs, id)
}

func (r *PostgresRepository) GetMemberByName(ctx context.Context, name string) (*members.Member, error) {
	var member members.Member
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&member).Error; err != nil {
		return nil, notFound(err, members.ErrMemberNotFound)
	}
	return &member, nil
}

// Projects

func (r *PostgresRepository) ListProjects(ctx context.Context) ([]projectsdomain.Project, error) {
	var items []projectsdomain.Project
	if err := r.db.WithContext(ctx).
		Preload("Manager").
		Order("created_at asc, name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetProjectByName(ctx context.Context, name string) (*projectsdomain.Project, error) {
	var project projectsdomain.Project
	if err := r.db.WithContext(ctx).
		Preload("Manager").
		Where("name = ?", name).
		First(&project).Error; err != nil {
		return nil, notFound(err, projectsdomain.ErrProjectNotFound)
	}
	return &project, nil
}

func (r *PostgresRepository) CreateProject(ctx context.Context, project *projectsdomain.Project) error {
	return r.create(ctx, project)
}

func (r *PostgresRepository) UpdateProject(ctx context.Context, project *projectsdomain.Project) error {
	return r.update(ctx, &projectsdomain.Project{}, project.ID, map[string]interface{}{
		"name":            project.Name,
		"start_date":      project.Start,
		"end_date":        project.End,
		"budget":          project.Budget,
		"avg_hourly_cost": project.AvgHourlyCost,
		"total_hours":     project.TotalHours,
		"total_costs":     project.TotalCosts,
		"status":          project.Status,
		"manager_id":      project.ManagerID,
	})
}

func (r *PostgresRepository) DeleteProject(ctx context.Context, projectID string) error {
	return r.delete(ctx, &projectsdomain.Project{}, projectID, projectsdomain.ErrProjectNotFound)
}

// Phases

func (r *PostgresRepository) ListPhases(ctx context.Context, projectID string) ([]projectsdomain.Phase, error) {
	var items []projectsdomain.Phase
	if err := r.db.WithContext(ctx).
		Preload("Project").
		Where("project_id = ?", projectID).
		Order("created_at asc, name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetPhaseByName(ctx context.Context, projectID, name string) (*projectsdomain.Phase, error) {
	var phase projectsdomain.Phase
	if err := r.db.WithContext(ctx).
		Preload("Project").
		Where("project_id = ? AND name = ?", projectID, name).
		First(&phase).Error; err != nil {
		return nil, notFound(err, projectsdomain.ErrPhaseNotFound)
	}
	return &phase, nil
}

func (r *PostgresRepository) CreatePhase(ctx context.Context, phase *projectsdomain.Phase) error {
	return r.create(ctx, phase)
}

func (r *PostgresRepository) UpdatePhase(ctx context.Context, phase *projectsdomain.Phase) error {
	return r.update(ctx, &projectsdomain.Phase{}, phase.ID, map[string]interface{}{
		"name":     phase.Name,
		"deadline": phase.Deadline,
		"status":   phase.Status,
	})
}

func (r *PostgresRepository) DeletePhase(ctx context.Context, phaseID string) error {
	return r.delete(ctx, &projectsdomain.Phase{}, phaseID, projectsdomain.ErrPhaseNotFound)
}

// Tasks

func (r *PostgresRepository) ListTasks(ctx context.Context, phaseID string) ([]projectsdomain.Task, error) {
	var items []projectsdomain.Task
	if err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Phase").
		Where("phase_id = ?", phaseID).
		Order("created_at asc, name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetTaskByName(ctx context.Context, name string) (*projectsdomain.Task, error) {
	var task projectsdomain.Task
	if err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Phase").
		Where("name = ?", name).
		First(&task).Error; err != nil {
		return nil, notFound(err, projectsdomain.ErrTaskNotFound)
	}
	return &task, nil
}

func (r *PostgresRepository) CreateTask(ctx context.Context, task *projectsdomain.Task) error {
	return r.create(ctx, task)
}

func (r *PostgresRepository) UpdateTask(ctx context.Context, task *projectsdomain.Task) error {
	return r.update(ctx, &projectsdomain.Task{}, task.ID, map[string]interface{}{
		"name":        task.Name,
		"total_hours": task.TotalHours,
		"total_cost":  task.TotalCost,
		"start_date":  task.Start,
		"end_date":    task.End,
		"status":      task.Status,
	})
}

func (r *PostgresRepository) DeleteTask(ctx context.Context, taskID string) error {
	return r.delete(ctx, &projectsdomain.Task{}, taskID, projectsdomain.ErrTaskNotFound)
}

// Costs

func (r *PostgresRepository) ListCosts(ctx context.Context, projectID string) ([]projectsdomain.Cost, error) {
	var items []projectsdomain.Cost
	if err := r.db.WithContext(ctx).
		Preload("Phase").
		Where("project_id = ?", projectID).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetCost(ctx context.Context, projectID, costID string) (*projectsdomain.Cost, error) {
	var cost projectsdomain.Cost
	if err := r.db.WithContext(ctx).
		Preload("Phase").
		Where("project_id = ? AND id = ?", projectID, costID).
		First(&cost).Error; err != nil {
		return nil, notFound(err, projectsdomain.ErrCostNotFound)
	}
	return &cost, nil
}

func (r *PostgresRepository) CreateCost(ctx context.Context, cost *projectsdomain.Cost) error {
	return r.create(ctx, cost)
}

func (r *PostgresRepository) UpdateCost(ctx context.Context, cost *projectsdomain.Cost) error {
	return r.update(ctx, &projectsdomain.Cost{}, cost.ID, map[string]interface{}{
		"name":         cost.Name,
		"description":  cost.Description,
		"hourly_price": cost.HourlyPrice,
		"quantity":     cost.Quantity,
		"phase_id":     cost.PhaseID,
	})
}

func (r *PostgresRepository) DeleteCost(ctx context.Context, costID string) error {
	return r.delete(ctx, &projectsdomain.Cost{}, costID, projectsdomain.ErrCostNotFound)
}

// Hour entries

func (r *PostgresRepository) ListHourEntries(ctx context.Context, projectID string) ([]projectsdomain.HourEntry, error) {
	var items []projectsdomain.HourEntry
	if err := r.db.WithContext(ctx).
		Preload("Task").
		Preload("Member").
		Where("project_id = ?", projectID).
		Order("entry_date asc, created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetHourEntry(ctx context.Context, projectID, entryID string) (*projectsdomain.HourEntry, error) {
	var entry projectsdomain.HourEntry
	if err := r.db.WithContext(ctx).
		Preload("Task").
		Preload("Member").
		Where("project_id = ? AND id = ?", projectID, entryID).
		First(&entry).Error; err != nil {
		return nil, notFound(err, projectsdomain.ErrHourEntryNotFound)
	}
	return &entry, nil
}

func (r *PostgresRepository) CreateHourEntry(ctx context.Context, entry *projectsdomain.HourEntry) error {
	return r.create(ctx, entry)
}

func (r *PostgresRepository) UpdateHourEntry(ctx context.Context, entry *projectsdomain.HourEntry) error {
	return r.update(ctx, &projectsdomain.HourEntry{}, entry.ID, map[string]interface{}{
		"task_id":    entry.TaskID,
		"member_id":  entry.MemberID,
		"entry_date": entry.Date,
		"time_spent": entry.TimeSpent,
	})
}

func (r *PostgresRepository) DeleteHourEntry(ctx context.Context, entryID string) error {
	return r.delete(ctx, &projectsdomain.HourEntry{}, entryID, projectsdomain.ErrHourEntryNotFound)
}

// Team assignments

func (r *PostgresRepository) ListTaskAssignments(ctx context.Context, taskID string) ([]projectsdomain.TeamAssignment, error) {
	var items []projectsdomain.TeamAssignment
	if err := r.db.WithContext(ctx).
		Preload("Member").
		Where("task_id = ?", taskID).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListProjectAssignments returns the assignments of every task in the
// project, grouped by task creation order.
func (r *PostgresRepository) ListProjectAssignments(ctx context.Context, projectID string) ([]projectsdomain.TeamAssignment, error) {
	var items []projectsdomain.TeamAssignment
	if err := r.db.WithContext(ctx).
		Select("team_assignments.*").
		Joins("JOIN tasks ON tasks.id = team_assignments.task_id").
		Where("tasks.project_id = ? AND team_assignments.member_id IS NOT NULL", projectID).
		Order("tasks.created_at asc, team_assignments.created_at asc").
		Preload("Task").
		Preload("Member").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) CreateAssignment(ctx context.Context, assignment *projectsdomain.TeamAssignment) error {
	return r.create(ctx, assignment)
}

func (r *PostgresRepository) DeleteTaskAssignment(ctx context.Context, taskID, memberID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("task_id = ? AND member_id = ?", taskID, memberID).
		Delete(&projectsdomain.TeamAssignment{})
	if err := postgres.Write(result); err != nil {
		return false, err
	}
	return result.RowsAffected > 0, nil
}

func (r *PostgresRepository) DeleteProjectAssignments(ctx context.Context, projectID, memberID string) (int64, error) {
	taskIDs := r.db.WithContext(ctx).
		Model(&projectsdomain.Task{}).
		Select("id").
		Where("project_id = ?", projectID)

	result := r.db.WithContext(ctx).
		Where("member_id = ? AND task_id IN (?)", memberID, taskIDs).
		Delete(&projectsdomain.TeamAssignment{})
	if err := postgres.Write(result); err != nil {
		return 0, err
	}
	return result.RowsAffected, nil
}

func (r *PostgresRepository) create(ctx context.Context, value interface{}) error {
	return postgres.Write(r.db.WithContext(ctx).Omit(clause.Associations).Create(value))
}

func (r *PostgresRepository) update(ctx context.Context, model interface{}, id string, fields map[string]interface{}) error {
	return postgres.Write(r.db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(fields))
}

func (r *PostgresRepository) delete(ctx context.Context, model interface{}, id string, missing error) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(model)
	if err := postgres.Write(result); err != nil {
		return err
	}
	if result.RowsAffected == 0 {
		return missing
	}
	return nil
}

func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
