package projects

import (
	"context"

	"promana-go/internal/domain/integrity"
)

func (s *Service) ListCosts(ctx context.Context, projectName string) ([]Cost, error) {
	project, err := s.repo.GetProjectByName(ctx, projectName)
	if err != nil {
		return nil, err
	}
	return s.repo.ListCosts(ctx, project.ID)
}

func (s *Service) GetCost(ctx context.Context, projectName, costID string) (*Cost, error) {
	project, err := s.repo.GetProjectByName(ctx, projectName)
	if err != nil {
		return nil, err
	}
	return s.repo.GetCost(ctx, project.ID, costID)
}

func (s *Service) CreateCost(ctx context.Context, projectName string, input CostInput) (*Cost, error) {
	cost := &Cost{ID: s.newID()}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		project, err := tx.GetProjectByName(ctx, projectName)
		if err != nil {
			return err
		}
		cost.ProjectID = &project.ID

		if err := applyCostInput(ctx, tx, project, cost, input); err != nil {
			return err
		}
		if err := validateCost(cost); err != nil {
			return err
		}
		return tx.CreateCost(ctx, cost)
	})
	if err != nil {
		return nil, err
	}
	return cost, nil
}

func (s *Service) UpdateCost(ctx context.Context, projectName, costID string, input CostInput) (*Cost, error) {
	var updated *Cost
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		project, err := tx.GetProjectByName(ctx, projectName)
		if err != nil {
			return err
		}
		cost, err := tx.GetCost(ctx, project.ID, costID)
		if err != nil {
			return err
		}
		if err := applyCostInput(ctx, tx, project, cost, input); err != nil {
			return err
		}
		if err := validateCost(cost); err != nil {
			return err
		}
		if err := tx.UpdateCost(ctx, cost); err != nil {
			return err
		}
		updated = cost
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteCost(ctx context.Context, projectName, costID string) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		project, err := tx.GetProjectByName(ctx, projectName)
		if err != nil {
			return err
		}
		cost, err := tx.GetCost(ctx, project.ID, costID)
		if err != nil {
			return err
		}
		return tx.DeleteCost(ctx, cost.ID)
	})
}

func applyCostInput(ctx context.Context, tx Repository, project *Project, cost *Cost, input CostInput) error {
	if err := integrity.AssignName(input.Name, &cost.Name); err != nil {
		return err
	}
	input.Description.Apply(&cost.Description)
	input.HourlyPrice.Apply(&cost.HourlyPrice)
	input.Quantity.Apply(&cost.Quantity)

	if input.Phase.Set {
		if input.Phase.Null {
			cost.PhaseID = nil
			cost.Phase = nil
			return nil
		}
		phase, err := tx.GetPhaseByName(ctx, project.ID, input.Phase.V)
		if err != nil {
			return err
		}
		cost.PhaseID = &phase.ID
		cost.Phase = phase
	}
	return nil
}

func validateCost(cost *Cost) error {
	if cost.Name == "" {
		return integrity.Violate("name", "is required")
	}
	if err := integrity.NonNegative("hourly_price", cost.HourlyPrice); err != nil {
		return err
	}
	return integrity.NonNegative("quantity", cost.Quantity)
}
