package members

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"promana-go/internal/domain/integrity"
	membersdomain "promana-go/internal/domain/members"
	"promana-go/internal/repository/postgres"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(membersdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) ListMembers(ctx context.Context) ([]membersdomain.Member, error) {
	var members []membersdomain.Member
	if err := r.db.WithContext(ctx).
		Order("created_at asc, name asc").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *PostgresRepository) GetMemberByName(ctx context.Context, name string) (*membersdomain.Member, error) {
	var member membersdomain.Member
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, membersdomain.ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *PostgresRepository) CreateMember(ctx context.Context, member *membersdomain.Member) error {
	return postgres.Write(r.db.WithContext(ctx).Omit(clause.Associations).Create(member))
}

func (r *PostgresRepository) UpdateMember(ctx context.Context, member *membersdomain.Member) error {
	return postgres.Write(r.db.WithContext(ctx).
		Model(&membersdomain.Member{}).
		Where("id = ?", member.ID).
		Updates(map[string]interface{}{
			"name":        member.Name,
			"hourly_cost": member.HourlyCost,
		}))
}

func (r *PostgresRepository) NullifyReferences(ctx context.Context, refs []integrity.Reference, id string) error {
	return postgres.NullifyReferences(ctx, r.db, refs, id)
}

func (r *PostgresRepository) DeleteMember(ctx context.Context, memberID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", memberID).Delete(&membersdomain.Member{})
	if err := postgres.Write(result); err != nil {
		return err
	}
	if result.RowsAffected == 0 {
		return membersdomain.ErrMemberNotFound
	}
	return nil
}
