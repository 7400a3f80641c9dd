package members

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"promana-go/internal/domain/integrity"
	"promana-go/pkg/optional"
)

type fakeMemberRepo struct {
	members   map[string]*Member
	nullified []integrity.Reference
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: make(map[string]*Member)}
}

func (r *fakeMemberRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeMemberRepo) ListMembers(ctx context.Context) ([]Member, error) {
	result := make([]Member, 0, len(r.members))
	for _, member := range r.members {
		result = append(result, *member)
	}
	return result, nil
}

func (r *fakeMemberRepo) GetMemberByName(ctx context.Context, name string) (*Member, error) {
	for _, member := range r.members {
		if member.Name == name {
			copied := *member
			return &copied, nil
		}
	}
	return nil, ErrMemberNotFound
}

func (r *fakeMemberRepo) CreateMember(ctx context.Context, member *Member) error {
	for _, existing := range r.members {
		if existing.Name == member.Name {
			return integrity.ErrAlreadyExists
		}
	}
	copied := *member
	r.members[member.ID] = &copied
	return nil
}

func (r *fakeMemberRepo) UpdateMember(ctx context.Context, member *Member) error {
	for id, existing := range r.members {
		if id != member.ID && existing.Name == member.Name {
			return integrity.ErrAlreadyExists
		}
	}
	copied := *member
	r.members[member.ID] = &copied
	return nil
}

func (r *fakeMemberRepo) NullifyReferences(ctx context.Context, refs []integrity.Reference, id string) error {
	r.nullified = append(r.nullified, refs...)
	return nil
}

func (r *fakeMemberRepo) DeleteMember(ctx context.Context, memberID string) error {
	delete(r.members, memberID)
	return nil
}

func newTestService(repo Repository) *Service {
	service := NewService(repo)
	next := 0
	service.newID = func() string {
		next++
		return fmt.Sprintf("member-%d", next)
	}
	return service
}

func TestCreateMember(t *testing.T) {
	repo := newFakeMemberRepo()
	service := newTestService(repo)

	member, err := service.CreateMember(context.Background(), Input{
		Name:       optional.Of(" m1 "),
		HourlyCost: optional.Of(42.5),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if member.ID != "member-1" || member.Name != "m1" {
		t.Fatalf("unexpected member: %+v", member)
	}
	if member.HourlyCost == nil || *member.HourlyCost != 42.5 {
		t.Fatalf("expected hourly cost 42.5, got %v", member.HourlyCost)
	}
}

func TestCreateMemberRejectsInvalidInput(t *testing.T) {
	service := newTestService(newFakeMemberRepo())

	cases := map[string]Input{
		"missing name":    {},
		"blank name":      {Name: optional.Of("  ")},
		"negative cost":   {Name: optional.Of("m1"), HourlyCost: optional.Of(-1.0)},
		"null name value": {Name: optional.Null[string]()},
	}

	for name, input := range cases {
		_, err := service.CreateMember(context.Background(), input)
		if !errors.Is(err, integrity.ErrConstraintViolation) {
			t.Fatalf("%s: expected constraint violation, got %v", name, err)
		}
	}
}

func TestCreateMemberDuplicateName(t *testing.T) {
	service := newTestService(newFakeMemberRepo())

	if _, err := service.CreateMember(context.Background(), Input{Name: optional.Of("m1")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := service.CreateMember(context.Background(), Input{Name: optional.Of("m1")})
	if !errors.Is(err, integrity.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestUpdateMemberAppliesOnlyPresentFields(t *testing.T) {
	repo := newFakeMemberRepo()
	service := newTestService(repo)

	if _, err := service.CreateMember(context.Background(), Input{Name: optional.Of("m1"), HourlyCost: optional.Of(10.0)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := service.UpdateMember(context.Background(), "m1", Input{Name: optional.Of("m2")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "m2" {
		t.Fatalf("expected renamed member, got %q", updated.Name)
	}
	if updated.HourlyCost == nil || *updated.HourlyCost != 10 {
		t.Fatalf("hourly cost must be kept, got %v", updated.HourlyCost)
	}

	updated, err = service.UpdateMember(context.Background(), "m2", Input{HourlyCost: optional.Null[float64]()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.HourlyCost != nil {
		t.Fatalf("expected hourly cost cleared, got %v", *updated.HourlyCost)
	}
}

func TestUpdateMemberNotFound(t *testing.T) {
	service := newTestService(newFakeMemberRepo())

	_, err := service.UpdateMember(context.Background(), "ghost", Input{Name: optional.Of("x")})
	if !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
}

func TestDeleteMemberNullifiesReferences(t *testing.T) {
	repo := newFakeMemberRepo()
	service := newTestService(repo)

	if _, err := service.CreateMember(context.Background(), Input{Name: optional.Of("m1")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.DeleteMember(context.Background(), "m1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.members) != 0 {
		t.Fatalf("expected member removed, got %d members", len(repo.members))
	}
	if len(repo.nullified) != len(References) {
		t.Fatalf("expected %d references cleared, got %d", len(References), len(repo.nullified))
	}

	if err := service.DeleteMember(context.Background(), "m1"); !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound on second delete, got %v", err)
	}
}
