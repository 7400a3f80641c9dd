package members

import (
	"context"

	"promana-go/internal/domain/integrity"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	ListMembers(ctx context.Context) ([]Member, error)
	GetMemberByName(ctx context.Context, name string) (*Member, error)
	CreateMember(ctx context.Context, member *Member) error
	UpdateMember(ctx context.Context, member *Member) error
	NullifyReferences(ctx context.Context, refs []integrity.Reference, id string) error
	DeleteMember(ctx context.Context, memberID string) error
}
