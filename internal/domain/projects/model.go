package projects

import (
	"time"

	"promana-go/internal/domain/integrity"
	"promana-go/internal/domain/members"
	"promana-go/pkg/optional"
)

const DefaultPhaseName = "planning"

type Project struct {
	ID            string          `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"not null;uniqueIndex"`
	Start         *time.Time      `gorm:"column:start_date;type:date"`
	End           *time.Time      `gorm:"column:end_date;type:date"`
	Budget        *float64        `gorm:"column:budget"`
	AvgHourlyCost *float64        `gorm:"column:avg_hourly_cost"`
	TotalHours    *float64        `gorm:"column:total_hours"`
	TotalCosts    *float64        `gorm:"column:total_costs"`
	Status        Status          `gorm:"not null;default:NOT_STARTED"`
	ManagerID     *string         `gorm:"type:uuid;column:manager_id"`
	Manager       *members.Member `gorm:"foreignKey:ManagerID"`
	CreatedAt     time.Time       `gorm:"autoCreateTime"`
}

type Phase struct {
	ID        string     `gorm:"type:uuid;primaryKey"`
	ProjectID *string    `gorm:"type:uuid;column:project_id"`
	Project   *Project   `gorm:"foreignKey:ProjectID"`
	Name      string     `gorm:"not null"`
	Deadline  *time.Time `gorm:"type:date"`
	Status    *Status
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type Task struct {
	ID         string     `gorm:"type:uuid;primaryKey"`
	ProjectID  *string    `gorm:"type:uuid;column:project_id"`
	Project    *Project   `gorm:"foreignKey:ProjectID"`
	PhaseID    *string    `gorm:"type:uuid;column:phase_id"`
	Phase      *Phase     `gorm:"foreignKey:PhaseID"`
	Name       string     `gorm:"not null;uniqueIndex"`
	TotalHours *float64   `gorm:"column:total_hours"`
	TotalCost  *float64   `gorm:"column:total_cost"`
	Start      *time.Time `gorm:"column:start_date;type:date"`
	End        *time.Time `gorm:"column:end_date;type:date"`
	Status     Status     `gorm:"not null;default:NOT_STARTED"`
	CreatedAt  time.Time  `gorm:"autoCreateTime"`
}

type Cost struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	ProjectID   *string   `gorm:"type:uuid;column:project_id"`
	PhaseID     *string   `gorm:"type:uuid;column:phase_id"`
	Phase       *Phase    `gorm:"foreignKey:PhaseID"`
	Name        string    `gorm:"not null"`
	Description *string   `gorm:"column:description"`
	HourlyPrice *float64  `gorm:"column:hourly_price"`
	Quantity    *float64  `gorm:"column:quantity"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

// TotalCost is derived on read and is nil unless both factors are known.
func (c Cost) TotalCost() *float64 {
	if c.HourlyPrice == nil || c.Quantity == nil {
		return nil
	}
	total := *c.HourlyPrice * *c.Quantity
	return &total
}

type TeamAssignment struct {
	ID        string          `gorm:"type:uuid;primaryKey"`
	TaskID    *string         `gorm:"type:uuid;column:task_id"`
	Task      *Task           `gorm:"foreignKey:TaskID"`
	MemberID  *string         `gorm:"type:uuid;column:member_id"`
	Member    *members.Member `gorm:"foreignKey:MemberID"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
}

type HourEntry struct {
	ID        string          `gorm:"type:uuid;primaryKey"`
	ProjectID *string         `gorm:"type:uuid;column:project_id"`
	TaskID    *string         `gorm:"type:uuid;column:task_id"`
	Task      *Task           `gorm:"foreignKey:TaskID"`
	MemberID  *string         `gorm:"type:uuid;column:member_id"`
	Member    *members.Member `gorm:"foreignKey:MemberID"`
	Date      *time.Time      `gorm:"column:entry_date;type:date"`
	TimeSpent *float64        `gorm:"column:time_spent"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
}

// ProjectMember is a member reached through the team assignments of a
// project's tasks.
type ProjectMember struct {
	Member members.Member
	Tasks  []string
}

type ProjectInput struct {
	Name          optional.Value[string]
	Start         optional.Value[time.Time]
	End           optional.Value[time.Time]
	Budget        optional.Value[float64]
	AvgHourlyCost optional.Value[float64]
	TotalHours    optional.Value[float64]
	TotalCosts    optional.Value[float64]
	Status        optional.Value[string]
	Manager       optional.Value[string]
}

type PhaseInput struct {
	Name     optional.Value[string]
	Deadline optional.Value[time.Time]
	Status   optional.Value[string]
}

type TaskInput struct {
	Name       optional.Value[string]
	TotalHours optional.Value[float64]
	TotalCost  optional.Value[float64]
	Start      optional.Value[time.Time]
	End        optional.Value[time.Time]
	Status     optional.Value[string]
}

type CostInput struct {
	Name        optional.Value[string]
	Description optional.Value[string]
	HourlyPrice optional.Value[float64]
	Quantity    optional.Value[float64]
	Phase       optional.Value[string]
}

type HourEntryInput struct {
	Task   optional.Value[string]
	Member optional.Value[string]
	Date   optional.Value[time.Time]
	Time   optional.Value[float64]
}

type ProjectMemberInput struct {
	Member string
	Task   string
}

var (
	projectReferences = []integrity.Reference{
		{Table: "phases", Column: "project_id"},
		{Table: "tasks", Column: "project_id"},
		{Table: "costs", Column: "project_id"},
		{Table: "hour_entries", Column: "project_id"},
	}
	phaseReferences = []integrity.Reference{
		{Table: "tasks", Column: "phase_id"},
		{Table: "costs", Column: "phase_id"},
	}
	taskReferences = []integrity.Reference{
		{Table: "team_assignments", Column: "task_id"},
		{Table: "hour_entries", Column: "task_id"},
	}
)
