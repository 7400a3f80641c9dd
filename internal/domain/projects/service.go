package projects

import (
	"context"
	"time"

	"github.com/google/uuid"
	"promana-go/internal/domain/integrity"
)

type Service struct {
	repo  Repository
	newID func() string
	now   func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		newID: uuid.NewString,
		now:   time.Now,
	}
}

func (s *Service) ListProjects(ctx context.Context) ([]Project, error) {
	return s.repo.ListProjects(ctx)
}

func (s *Service) GetProject(ctx context.Context, name string) (*Project, error) {
	return s.repo.GetProjectByName(ctx, name)
}

func (s *Service) CreateProject(ctx context.Context, input ProjectInput) (*Project, error) {
	project := &Project{
		ID:     s.newID(),
		Status: StatusNotStarted,
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if err := applyProjectInput(ctx, tx, project, input); err != nil {
			return err
		}
		if err := validateProject(project); err != nil {
			return err
		}
		return tx.CreateProject(ctx, project)
	})
	if err != nil {
		return nil, err
	}
	return project, nil
}

func (s *Service) UpdateProject(ctx context.Context, name string, input ProjectInput) (*Project, error) {
	var updated *Project
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		project, err := tx.GetProjectByName(ctx, name)
		if err != nil {
			return err
		}
		if err := applyProjectInput(ctx, tx, project, input); err != nil {
			return err
		}
		if err := validateProject(project); err != nil {
			return err
		}
		if err := tx.UpdateProject(ctx, project); err != nil {
			return err
		}
		updated = project
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteProject detaches phases, tasks, costs and hour entries from the
// project. They are kept with a null project reference.
func (s *Service) DeleteProject(ctx context.Context, name string) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		project, err := tx.GetProjectByName(ctx, name)
		if err != nil {
			return err
		}
		if err := tx.NullifyReferences(ctx, projectReferences, project.ID); err != nil {
			return err
		}
		return tx.DeleteProject(ctx, project.ID)
	})
}

func applyProjectInput(ctx context.Context, tx Repository, project *Project, input ProjectInput) error {
	if err := integrity.AssignName(input.Name, &project.Name); err != nil {
		return err
	}
	input.Start.Apply(&project.Start)
	input.End.Apply(&project.End)
	input.Budget.Apply(&project.Budget)
	input.AvgHourlyCost.Apply(&project.AvgHourlyCost)
	input.TotalHours.Apply(&project.TotalHours)
	input.TotalCosts.Apply(&project.TotalCosts)

	if input.Status.Set {
		if input.Status.Null {
			return integrity.Violate("status", "is required")
		}
		status, err := ParseStatus(input.Status.V)
		if err != nil {
			return err
		}
		project.Status = status
	}

	if input.Manager.Set {
		if input.Manager.Null {
			project.ManagerID = nil
			project.Manager = nil
			return nil
		}
		manager, err := tx.GetMemberByName(ctx, input.Manager.V)
		if err != nil {
			return err
		}
		project.ManagerID = &manager.ID
		project.Manager = manager
	}
	return nil
}

func validateProject(project *Project) error {
	if project.Name == "" {
		return integrity.Violate("name", "is required")
	}
	if err := checkDateOrder(project.Start, project.End); err != nil {
		return err
	}
	amounts := []struct {
		field string
		value *float64
	}{
		{"budget", project.Budget},
		{"avg_hourly_cost", project.AvgHourlyCost},
		{"total_hours", project.TotalHours},
		{"total_costs", project.TotalCosts},
	}
	for _, amount := range amounts {
		if err := integrity.NonNegative(amount.field, amount.value); err != nil {
			return err
		}
	}
	if !project.Status.Valid() {
		_, err := ParseStatus(string(project.Status))
		return err
	}
	return nil
}

func checkDateOrder(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return integrity.Violate("end", "must not be before start")
	}
	return nil
}

func parseOptionalStatus(value string) (*Status, error) {
	status, err := ParseStatus(value)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (s *Service) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
