package projects

import (
	"context"

	"promana-go/internal/domain/integrity"
)

func (s *Service) ListHourEntries(ctx context.Context, projectName string) ([]HourEntry, error) {
	project, err := s.repo.GetProjectByName(ctx, projectName)
	if err != nil {
		return nil, err
	}
	return s.repo.ListHourEntries(ctx, project.ID)
}

func (s *Service) GetHourEntry(ctx context.Context, projectName, entryID string) (*HourEntry, error) {
	project, err := s.repo.GetProjectByName(ctx, projectName)
	if err != nil {
		return nil, err
	}
	return s.repo.GetHourEntry(ctx, project.ID, entryID)
}

// CreateHourEntry books time against the project. The date defaults to the
// current UTC day.
func (s *Service) CreateHourEntry(ctx context.Context, projectName string, input HourEntryInput) (*HourEntry, error) {
	today := s.today()
	entry := &HourEntry{
		ID:   s.newID(),
		Date: &today,
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		project, err := tx.GetProjectByName(ctx, projectName)
		if err != nil {
			return err
		}
		entry.ProjectID = &project.ID

		if err := applyHourEntryInput(ctx, tx, project, entry, input); err != nil {
			return err
		}
		if err := integrity.NonNegative("time", entry.TimeSpent); err != nil {
			return err
		}
		return tx.CreateHourEntry(ctx, entry)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *Service) UpdateHourEntry(ctx context.Context, projectName, entryID string, input HourEntryInput) (*HourEntry, error) {
	var updated *HourEntry
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		project, err := tx.GetProjectByName(ctx, projectName)
		if err != nil {
			return err
		}
		entry, err := tx.GetHourEntry(ctx, project.ID, entryID)
		if err != nil {
			return err
		}
		if err := applyHourEntryInput(ctx, tx, project, entry, input); err != nil {
			return err
		}
		if err := integrity.NonNegative("time", entry.TimeSpent); err != nil {
			return err
		}
		if err := tx.UpdateHourEntry(ctx, entry); err != nil {
			return err
		}
		updated = entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteHourEntry(ctx context.Context, projectName, entryID string) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		project, err := tx.GetProjectByName(ctx, projectName)
		if err != nil {
			return err
		}
		entry, err := tx.GetHourEntry(ctx, project.ID, entryID)
		if err != nil {
			return err
		}
		return tx.DeleteHourEntry(ctx, entry.ID)
	})
}

func applyHourEntryInput(ctx context.Context, tx Repository, project *Project, entry *HourEntry, input HourEntryInput) error {
	input.Date.Apply(&entry.Date)
	input.Time.Apply(&entry.TimeSpent)

	if input.Task.Set {
		if input.Task.Null {
			entry.TaskID = nil
			entry.Task = nil
		} else {
			task, err := projectTask(ctx, tx, project, input.Task.V)
			if err != nil {
				return err
			}
			entry.TaskID = &task.ID
			entry.Task = task
		}
	}

	if input.Member.Set {
		if input.Member.Null {
			entry.MemberID = nil
			entry.Member = nil
		} else {
			member, err := tx.GetMemberByName(ctx, input.Member.V)
			if err != nil {
				return err
			}
			entry.MemberID = &member.ID
			entry.Member = member
		}
	}
	return nil
}
