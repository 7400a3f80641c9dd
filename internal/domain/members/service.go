package members

import (
	"context"

	"github.com/google/uuid"
	"promana-go/internal/domain/integrity"
)

type Service struct {
	repo  Repository
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, newID: uuid.NewString}
}

func (s *Service) ListMembers(ctx context.Context) ([]Member, error) {
	return s.repo.ListMembers(ctx)
}

func (s *Service) GetMember(ctx context.Context, name string) (*Member, error) {
	return s.repo.GetMemberByName(ctx, name)
}

func (s *Service) CreateMember(ctx context.Context, input Input) (*Member, error) {
	member := &Member{ID: s.newID()}
	if err := applyInput(member, input); err != nil {
		return nil, err
	}
	if err := validate(member); err != nil {
		return nil, err
	}

	if err := s.repo.CreateMember(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// UpdateMember applies only the fields present in input.
func (s *Service) UpdateMember(ctx context.Context, name string, input Input) (*Member, error) {
	var updated *Member
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		member, err := tx.GetMemberByName(ctx, name)
		if err != nil {
			return err
		}
		if err := applyInput(member, input); err != nil {
			return err
		}
		if err := validate(member); err != nil {
			return err
		}
		if err := tx.UpdateMember(ctx, member); err != nil {
			return err
		}
		updated = member
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteMember clears every reference to the member before removing it.
func (s *Service) DeleteMember(ctx context.Context, name string) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		member, err := tx.GetMemberByName(ctx, name)
		if err != nil {
			return err
		}
		if err := tx.NullifyReferences(ctx, References, member.ID); err != nil {
			return err
		}
		return tx.DeleteMember(ctx, member.ID)
	})
}

func applyInput(member *Member, input Input) error {
	if err := integrity.AssignName(input.Name, &member.Name); err != nil {
		return err
	}
	input.HourlyCost.Apply(&member.HourlyCost)
	return nil
}

func validate(member *Member) error {
	if member.Name == "" {
		return integrity.Violate("name", "is required")
	}
	return integrity.NonNegative("hourly_cost", member.HourlyCost)
}
