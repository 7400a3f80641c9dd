package projects

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"promana-go/internal/domain/integrity"
	"promana-go/internal/domain/members"
)

// ListProjectMembers walks the team assignments of every task in the project
// and returns each member once, in the order first seen.
func (s *Service) ListProjectMembers(ctx context.Context, projectName string) ([]ProjectMember, error) {
	project, err := s.repo.GetProjectByName(ctx, projectName)
	if err != nil {
		return nil, err
	}
	assignments, err := s.repo.ListProjectAssignments(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	return groupByMember(assignments), nil
}

func (s *Service) GetProjectMember(ctx context.Context, projectName, memberName string) (*ProjectMember, error) {
	projectMembers, err := s.ListProjectMembers(ctx, projectName)
	if err != nil {
		return nil, err
	}
	found, ok := lo.Find(projectMembers, func(pm ProjectMember) bool {
		return pm.Member.Name == memberName
	})
	if !ok {
		return nil, ErrAssignmentNotFound
	}
	return &found, nil
}

// AddProjectMember assigns a member to one of the project's tasks.
func (s *Service) AddProjectMember(ctx context.Context, projectName string, input ProjectMemberInput) (*members.Member, error) {
	memberName := strings.TrimSpace(input.Member)
	taskName := strings.TrimSpace(input.Task)
	if memberName == "" {
		return nil, integrity.Violate("name", "is required")
	}
	if taskName == "" {
		return nil, integrity.Violate("task", "is required")
	}

	var added *members.Member
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		project, err := tx.GetProjectByName(ctx, projectName)
		if err != nil {
			return err
		}
		task, err := projectTask(ctx, tx, project, taskName)
		if err != nil {
			return err
		}
		member, err := s.assign(ctx, tx, task, memberName)
		if err != nil {
			return err
		}
		added = member
		return nil
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}

// RemoveProjectMember drops every assignment of the member on the project's tasks.
func (s *Service) RemoveProjectMember(ctx context.Context, projectName, memberName string) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		project, err := tx.GetProjectByName(ctx, projectName)
		if err != nil {
			return err
		}
		member, err := tx.GetMemberByName(ctx, memberName)
		if err != nil {
			return err
		}
		removed, err := tx.DeleteProjectAssignments(ctx, project.ID, member.ID)
		if err != nil {
			return err
		}
		if removed == 0 {
			return ErrAssignmentNotFound
		}
		return nil
	})
}

// ListTaskMembers skips assignments whose member has been deleted.
func (s *Service) ListTaskMembers(ctx context.Context, projectName, phaseName, taskName string) ([]members.Member, error) {
	task, err := resolveTask(ctx, s.repo, projectName, phaseName, taskName)
	if err != nil {
		return nil, err
	}
	assignments, err := s.repo.ListTaskAssignments(ctx, task.ID)
	if err != nil {
		return nil, err
	}
	return lo.FilterMap(assignments, func(a TeamAssignment, _ int) (members.Member, bool) {
		if a.Member == nil {
			return members.Member{}, false
		}
		return *a.Member, true
	}), nil
}

// GetTaskMember returns the member if it is assigned to the task.
func (s *Service) GetTaskMember(ctx context.Context, projectName, phaseName, taskName, memberName string) (*members.Member, error) {
	assigned, err := s.ListTaskMembers(ctx, projectName, phaseName, taskName)
	if err != nil {
		return nil, err
	}
	found, ok := lo.Find(assigned, func(m members.Member) bool {
		return m.Name == memberName
	})
	if !ok {
		return nil, ErrAssignmentNotFound
	}
	return &found, nil
}

// AddTaskMember fails with integrity.ErrAlreadyExists when the pair is
// already assigned. The unique index decides, there is no pre-check.
func (s *Service) AddTaskMember(ctx context.Context, projectName, phaseName, taskName, memberName string) (*members.Member, error) {
	memberName = strings.TrimSpace(memberName)
	if memberName == "" {
		return nil, integrity.Violate("name", "is required")
	}

	var added *members.Member
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		task, err := resolveTask(ctx, tx, projectName, phaseName, taskName)
		if err != nil {
			return err
		}
		member, err := s.assign(ctx, tx, task, memberName)
		if err != nil {
			return err
		}
		added = member
		return nil
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}

func (s *Service) RemoveTaskMember(ctx context.Context, projectName, phaseName, taskName, memberName string) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		task, err := resolveTask(ctx, tx, projectName, phaseName, taskName)
		if err != nil {
			return err
		}
		member, err := tx.GetMemberByName(ctx, memberName)
		if err != nil {
			return err
		}
		removed, err := tx.DeleteTaskAssignment(ctx, task.ID, member.ID)
		if err != nil {
			return err
		}
		if !removed {
			return ErrAssignmentNotFound
		}
		return nil
	})
}

func (s *Service) assign(ctx context.Context, tx Repository, task *Task, memberName string) (*members.Member, error) {
	member, err := tx.GetMemberByName(ctx, memberName)
	if err != nil {
		return nil, err
	}
	assignment := &TeamAssignment{
		ID:       s.newID(),
		TaskID:   &task.ID,
		MemberID: &member.ID,
	}
	if err := tx.CreateAssignment(ctx, assignment); err != nil {
		return nil, err
	}
	return member, nil
}

func groupByMember(assignments []TeamAssignment) []ProjectMember {
	assigned := lo.Filter(assignments, func(a TeamAssignment, _ int) bool {
		return a.Member != nil
	})

	firstSeen := lo.UniqBy(assigned, func(a TeamAssignment) string {
		return a.Member.Name
	})

	result := make([]ProjectMember, 0, len(firstSeen))
	for _, first := range firstSeen {
		tasks := lo.FilterMap(assigned, func(a TeamAssignment, _ int) (string, bool) {
			if a.Task == nil || a.Member.Name != first.Member.Name {
				return "", false
			}
			return a.Task.Name, true
		})
		result = append(result, ProjectMember{
			Member: *first.Member,
			Tasks:  lo.Uniq(tasks),
		})
	}
	return result
}
