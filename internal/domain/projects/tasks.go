package projects

import (
	"context"

	"promana-go/internal/domain/integrity"
)

func (s *Service) ListTasks(ctx context.Context, projectName, phaseName string) ([]Task, error) {
	_, phase, err := resolvePhase(ctx, s.repo, projectName, phaseName)
	if err != nil {
		return nil, err
	}
	return s.repo.ListTasks(ctx, phase.ID)
}

func (s *Service) GetTask(ctx context.Context, projectName, phaseName, taskName string) (*Task, error) {
	return resolveTask(ctx, s.repo, projectName, phaseName, taskName)
}

func (s *Service) CreateTask(ctx context.Context, projectName, phaseName string, input TaskInput) (*Task, error) {
	task := &Task{
		ID:     s.newID(),
		Status: StatusNotStarted,
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		project, phase, err := resolvePhase(ctx, tx, projectName, phaseName)
		if err != nil {
			return err
		}
		task.ProjectID = &project.ID
		task.Project = project
		task.PhaseID = &phase.ID
		task.Phase = phase

		if err := applyTaskInput(task, input); err != nil {
			return err
		}
		if err := validateTask(task); err != nil {
			return err
		}
		return tx.CreateTask(ctx, task)
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (s *Service) UpdateTask(ctx context.Context, projectName, phaseName, taskName string, input TaskInput) (*Task, error) {
	var updated *Task
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		task, err := resolveTask(ctx, tx, projectName, phaseName, taskName)
		if err != nil {
			return err
		}
		if err := applyTaskInput(task, input); err != nil {
			return err
		}
		if err := validateTask(task); err != nil {
			return err
		}
		if err := tx.UpdateTask(ctx, task); err != nil {
			return err
		}
		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTask leaves team assignments and hour entries in place with a null task.
func (s *Service) DeleteTask(ctx context.Context, projectName, phaseName, taskName string) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		task, err := resolveTask(ctx, tx, projectName, phaseName, taskName)
		if err != nil {
			return err
		}
		if err := tx.NullifyReferences(ctx, taskReferences, task.ID); err != nil {
			return err
		}
		return tx.DeleteTask(ctx, task.ID)
	})
}

func applyTaskInput(task *Task, input TaskInput) error {
	if err := integrity.AssignName(input.Name, &task.Name); err != nil {
		return err
	}
	input.TotalHours.Apply(&task.TotalHours)
	input.TotalCost.Apply(&task.TotalCost)
	input.Start.Apply(&task.Start)
	input.End.Apply(&task.End)

	if input.Status.Set {
		if input.Status.Null {
			return integrity.Violate("status", "is required")
		}
		status, err := ParseStatus(input.Status.V)
		if err != nil {
			return err
		}
		task.Status = status
	}
	return nil
}

func validateTask(task *Task) error {
	if task.Name == "" {
		return integrity.Violate("name", "is required")
	}
	if err := checkDateOrder(task.Start, task.End); err != nil {
		return err
	}
	if err := integrity.NonNegative("total_hours", task.TotalHours); err != nil {
		return err
	}
	return integrity.NonNegative("total_cost", task.TotalCost)
}

// resolveTask looks a task up by its unique name and checks that it still
// belongs to the addressed project and phase.
func resolveTask(ctx context.Context, repo Repository, projectName, phaseName, taskName string) (*Task, error) {
	project, phase, err := resolvePhase(ctx, repo, projectName, phaseName)
	if err != nil {
		return nil, err
	}
	task, err := repo.GetTaskByName(ctx, taskName)
	if err != nil {
		return nil, err
	}
	if !sameID(task.ProjectID, project.ID) || !sameID(task.PhaseID, phase.ID) {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func projectTask(ctx context.Context, repo Repository, project *Project, taskName string) (*Task, error) {
	task, err := repo.GetTaskByName(ctx, taskName)
	if err != nil {
		return nil, err
	}
	if !sameID(task.ProjectID, project.ID) {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func sameID(ref *string, id string) bool {
	return ref != nil && *ref == id
}
