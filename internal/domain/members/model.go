package members

import (
	"time"

	"promana-go/internal/domain/integrity"
	"promana-go/pkg/optional"
)

type Member struct {
	ID         string    `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"not null;uniqueIndex"`
	HourlyCost *float64  `gorm:"column:hourly_cost"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

type Input struct {
	Name       optional.Value[string]
	HourlyCost optional.Value[float64]
}

// References lists the columns cleared when a member is deleted.
var References = []integrity.Reference{
	{Table: "projects", Column: "manager_id"},
	{Table: "team_assignments", Column: "member_id"},
	{Table: "hour_entries", Column: "member_id"},
}
