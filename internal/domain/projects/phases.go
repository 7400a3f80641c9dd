package projects

import (
	"context"

	"promana-go/internal/domain/integrity"
)

func (s *Service) ListPhases(ctx context.Context, projectName string) ([]Phase, error) {
	project, err := s.repo.GetProjectByName(ctx, projectName)
	if err != nil {
		return nil, err
	}
	return s.repo.ListPhases(ctx, project.ID)
}

func (s *Service) GetPhase(ctx context.Context, projectName, phaseName string) (*Phase, error) {
	_, phase, err := resolvePhase(ctx, s.repo, projectName, phaseName)
	return phase, err
}

func (s *Service) CreatePhase(ctx context.Context, projectName string, input PhaseInput) (*Phase, error) {
	phase := &Phase{
		ID:   s.newID(),
		Name: DefaultPhaseName,
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		project, err := tx.GetProjectByName(ctx, projectName)
		if err != nil {
			return err
		}
		phase.ProjectID = &project.ID
		phase.Project = project

		if err := applyPhaseInput(phase, input); err != nil {
			return err
		}
		return tx.CreatePhase(ctx, phase)
	})
	if err != nil {
		return nil, err
	}
	return phase, nil
}

func (s *Service) UpdatePhase(ctx context.Context, projectName, phaseName string, input PhaseInput) (*Phase, error) {
	var updated *Phase
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		_, phase, err := resolvePhase(ctx, tx, projectName, phaseName)
		if err != nil {
			return err
		}
		if err := applyPhaseInput(phase, input); err != nil {
			return err
		}
		if err := tx.UpdatePhase(ctx, phase); err != nil {
			return err
		}
		updated = phase
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeletePhase keeps the phase's tasks and costs, clearing their phase.
func (s *Service) DeletePhase(ctx context.Context, projectName, phaseName string) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		_, phase, err := resolvePhase(ctx, tx, projectName, phaseName)
		if err != nil {
			return err
		}
		if err := tx.NullifyReferences(ctx, phaseReferences, phase.ID); err != nil {
			return err
		}
		return tx.DeletePhase(ctx, phase.ID)
	})
}

func applyPhaseInput(phase *Phase, input PhaseInput) error {
	if err := integrity.AssignName(input.Name, &phase.Name); err != nil {
		return err
	}
	input.Deadline.Apply(&phase.Deadline)

	if input.Status.Set {
		if input.Status.Null {
			phase.Status = nil
			return nil
		}
		status, err := parseOptionalStatus(input.Status.V)
		if err != nil {
			return err
		}
		phase.Status = status
	}
	return nil
}

func resolvePhase(ctx context.Context, repo Repository, projectName, phaseName string) (*Project, *Phase, error) {
	project, err := repo.GetProjectByName(ctx, projectName)
	if err != nil {
		return nil, nil, err
	}
	phase, err := repo.GetPhaseByName(ctx, project.ID, phaseName)
	if err != nil {
		return nil, nil, err
	}
	return project, phase, nil
}
